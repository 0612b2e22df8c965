// Package repository defines the persistence boundary for generated
// batches. Only produced records are stored; generator state (occupancy,
// caches, stream position) never persists across runs.
package repository

import (
	"context"
	"time"

	"netsynth/internal/domain"
)

// SavedBatch is the stored metadata for one generation run.
type SavedBatch struct {
	ID        int64
	Kind      domain.RecordKind
	Seed      *int64
	Count     int
	CreatedAt time.Time
}

// Repository stores and retrieves generated batches.
type Repository interface {
	SaveBatch(ctx context.Context, batch *domain.Batch) (int64, error)
	GetBatch(ctx context.Context, id int64) (*domain.Batch, error)
	ListBatches(ctx context.Context) ([]SavedBatch, error)
	Close() error
}
