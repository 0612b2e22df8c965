package synth

import (
	"math/rand/v2"
	"time"

	"netsynth/internal/domain"
)

// Occupancy safety thresholds for a long-lived OptimizedGenerator issuing
// many sequential batches. When a set's size plus the next batch would
// exceed its threshold, the set is cleared: cross-batch uniqueness is traded
// for bounded memory.
const (
	idOccupancyLimit      = 4000
	networkOccupancyLimit = 10000

	departmentCacheSize = 16
	arenaInitialSize    = 4096
)

// Metrics reports the last batch's throughput and memory figures. Purely
// observational.
type Metrics struct {
	Records          int
	Elapsed          time.Duration
	RecordsPerSecond float64
	BytesPerRecord   int
}

// OptimizedGenerator is the throughput/memory-tuned batch driver. It honors
// the same record invariants as Generator but pre-sizes its output, bounds
// occupancy growth, serves department lookups through a fixed-capacity
// recency cache, and reuses a scratch arena across batches. It is not
// required to produce the same values as Generator for the same seed; each
// variant is deterministic on its own.
type OptimizedGenerator struct {
	rng         *rand.Rand
	departments []string

	vlanIDs  map[int]struct{}
	networks map[string]struct{}

	deptCache *recencyCache
	arena     *scratchArena
	metrics   Metrics
}

// NewOptimizedGenerator creates an entropy-seeded optimized driver.
func NewOptimizedGenerator() *OptimizedGenerator {
	return newOptimizedGenerator(NewEntropyStream())
}

// NewSeededOptimizedGenerator creates a deterministic optimized driver.
func NewSeededOptimizedGenerator(seed int64) *OptimizedGenerator {
	return newOptimizedGenerator(NewStream(seed))
}

func newOptimizedGenerator(rng *rand.Rand) *OptimizedGenerator {
	return &OptimizedGenerator{
		rng:         rng,
		departments: defaultDepartments,
		vlanIDs:     make(map[int]struct{}, idOccupancyLimit),
		networks:    make(map[string]struct{}, networkOccupancyLimit),
		deptCache:   newRecencyCache(departmentCacheSize),
		arena:       newScratchArena(arenaInitialSize),
	}
}

// SetDepartments replaces the department table used for VLAN labels.
func (g *OptimizedGenerator) SetDepartments(names []string) {
	if len(names) > 0 {
		g.departments = names
		g.deptCache.reset()
	}
}

// GenerateBatch produces count VLAN records under the same contract as the
// standard driver. IDs and networks are unique within the batch; they are
// unique across batches only until an occupancy threshold forces a clear.
func (g *OptimizedGenerator) GenerateBatch(count int, progress ProgressFunc) ([]*domain.VLAN, error) {
	if err := validateCount(count); err != nil {
		return nil, err
	}

	if len(g.vlanIDs)+count > idOccupancyLimit {
		clear(g.vlanIDs)
	}
	if len(g.networks)+count > networkOccupancyLimit {
		clear(g.networks)
	}
	g.arena.reset()

	start := time.Now()
	records := make([]*domain.VLAN, 0, count)
	for i := 0; i < count; i++ {
		id, err := AllocateUnique(resourceVLANIDs, optimizedIDAttempts, func() int {
			return randomVLANID(g.rng)
		}, g.vlanIDs)
		if err != nil {
			return nil, err
		}

		network, err := AllocateUnique(resourceNetworks, networkAttempts, func() string {
			return randomNetwork(g.rng)
		}, g.networks)
		if err != nil {
			return nil, err
		}

		label := g.arena.label(g.department(g.rng.IntN(len(g.departments))), id)

		record, err := domain.NewVLAN(id, network, label, randomEgress(g.rng))
		if err != nil {
			return nil, err
		}
		records = append(records, record)

		if progress != nil {
			progress(i+1, count)
		}
	}

	g.metrics = measure(records, time.Since(start))
	return records, nil
}

// Metrics returns the last batch's figures. Zero before the first batch.
func (g *OptimizedGenerator) Metrics() Metrics {
	return g.metrics
}

// Reset clears occupancy sets, the department cache, and the arena without
// discarding the stream position. Idempotent.
func (g *OptimizedGenerator) Reset() {
	clear(g.vlanIDs)
	clear(g.networks)
	g.deptCache.reset()
	g.arena.reset()
}

// department serves table lookups through the recency cache so hot indexes
// skip the table walk on long runs.
func (g *OptimizedGenerator) department(idx int) string {
	if name, ok := g.deptCache.get(idx); ok {
		return name
	}
	name := g.departments[idx%len(g.departments)]
	g.deptCache.put(idx, name)
	return name
}

// measure estimates per-record memory from string payloads plus the fixed
// struct and pointer overhead.
func measure(records []*domain.VLAN, elapsed time.Duration) Metrics {
	const recordOverhead = 64

	bytes := 0
	for _, r := range records {
		bytes += len(r.Network) + len(r.Label) + recordOverhead
	}

	m := Metrics{
		Records: len(records),
		Elapsed: elapsed,
	}
	if len(records) > 0 {
		m.BytesPerRecord = bytes / len(records)
	}
	if elapsed > 0 {
		m.RecordsPerSecond = float64(len(records)) / elapsed.Seconds()
	}
	return m
}
