package results

import "context"

// Repo defines persistence operations for analysis records. The store
// exclusively owns the persisted table; rows leave it only through
// ListAll.
type Repo interface {
	// Create appends one record. Each call is its own atomic unit.
	Create(ctx context.Context, record Record) error
	// ListAll returns every record, newest first.
	ListAll(ctx context.Context) ([]Record, error)
	// DeleteAll removes every record unconditionally. Deleting an empty
	// store succeeds and leaves it empty.
	DeleteAll(ctx context.Context) error
}
