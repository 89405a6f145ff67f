package repositories

import (
	"context"

	"github.com/google/uuid"
)

// Repository is a keyed record store with at most one committed writer per
// key. Implementations must be thread-safe.
type Repository interface {
	Close(ctx context.Context) error
	// Load returns the record stored under key, or *ErrNotFound.
	Load(ctx context.Context, key uuid.UUID) (*Record, error)
	// Store writes record under key if the stored version still equals
	// record.Version, and returns the new version. Otherwise it returns
	// *ErrConflict and nothing is written.
	Store(ctx context.Context, key uuid.UUID, record *Record) (uint64, error)
}
