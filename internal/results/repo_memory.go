package results

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo stores records in memory and is safe for concurrent use.
// It backs dev runs without a database and the test suite.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

// Create appends the record.
func (r *MemoryRepo) Create(ctx context.Context, record Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = append(r.records, record)
	return nil
}

// ListAll returns a copy of every record, newest first.
func (r *MemoryRepo) ListAll(ctx context.Context) ([]Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	r.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// DeleteAll removes every record.
func (r *MemoryRepo) DeleteAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
