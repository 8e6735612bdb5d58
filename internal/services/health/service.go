package health

import (
	"context"
	"database/sql"
	"time"
)

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a health service. db may be nil when running on
// the in-memory store.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns a health payload including the storage backend state.
func (s *Service) Status(ctx context.Context) map[string]any {
	status := map[string]any{"ok": true, "storage": "memory"}
	if s.db == nil {
		return status
	}

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(pingCtx); err != nil {
		status["ok"] = false
		status["storage"] = "postgres: unreachable"
		return status
	}
	status["storage"] = "postgres"
	return status
}
