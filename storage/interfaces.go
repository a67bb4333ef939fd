package storage

import (
	"context"

	"github.com/poiesic/loadsmith/core"
)

// BuildRepository provides operations for persisting saved builds.
// Implementations must be thread-safe and support concurrent access.
type BuildRepository interface {
	// AddBuilds adds one or more saved builds to storage.
	// For builds with ID=0, generates new IDs from sequence.
	// Sets InsertedAt timestamp if not already set.
	// Returns the builds with generated IDs and timestamps populated.
	AddBuilds(ctx context.Context, builds ...*core.SavedBuild) ([]*core.SavedBuild, error)

	// UpdateBuilds updates existing saved builds.
	// Updates the UpdatedAt timestamp automatically.
	// Returns ErrNotFound if any build doesn't exist.
	UpdateBuilds(ctx context.Context, builds ...*core.SavedBuild) ([]*core.SavedBuild, error)

	// DeleteBuilds removes saved builds by their IDs.
	// Returns ErrNotFound if any build doesn't exist.
	DeleteBuilds(ctx context.Context, ids ...core.ID) error

	// GetBuild retrieves a single saved build by ID.
	// Returns ErrNotFound if the build doesn't exist.
	GetBuild(ctx context.Context, id core.ID) (*core.SavedBuild, error)

	// GetBuilds retrieves multiple saved builds by their IDs.
	// Returns only the builds that exist (no error for missing builds).
	GetBuilds(ctx context.Context, ids ...core.ID) ([]*core.SavedBuild, error)

	// GetRecentBuilds retrieves the N most recently saved builds,
	// most recent first.
	GetRecentBuilds(ctx context.Context, limit int) ([]*core.SavedBuild, error)

	// WithTransaction executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error

	// Close closes the repository and releases resources.
	Close() error
}
