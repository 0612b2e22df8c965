package synth

import (
	"golang.org/x/sync/errgroup"

	"netsynth/internal/domain"
)

// GenerateParallel partitions count into chunkSize-record chunks and
// generates each on its own goroutine with an independent generator seeded
// baseSeed + chunkIndex, so every chunk's stream is distinct and
// reproducible. Results concatenate in chunk order.
//
// Uniqueness holds only within a chunk: callers must not rely on global
// uniqueness across chunk boundaries unless the value spaces are large
// relative to per-chunk sizes.
func GenerateParallel(count, chunkSize int, baseSeed int64) ([]*domain.VLAN, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}
	if chunkSize < 1 || chunkSize > count {
		chunkSize = count
	}

	chunks := (count + chunkSize - 1) / chunkSize
	results := make([][]*domain.VLAN, chunks)

	var eg errgroup.Group
	for i := 0; i < chunks; i++ {
		eg.Go(func() error {
			n := chunkSize
			if i == chunks-1 {
				n = count - chunkSize*(chunks-1)
			}
			records, err := NewSeededGenerator(baseSeed + int64(i)).GenerateBatch(n, nil)
			if err != nil {
				return err
			}
			results[i] = records
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	out := make([]*domain.VLAN, 0, count)
	for _, chunk := range results {
		out = append(out, chunk...)
	}
	return out, nil
}
