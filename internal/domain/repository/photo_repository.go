package repository

import (
	"context"

	"github.com/kartinke/kartinke/internal/domain/entity"
)

// DefaultSearchLimit caps a search when the caller does not supply a
// positive limit of its own.
const DefaultSearchLimit = 50

// PhotoRepository is the storage contract shared by every backend. The
// handlers never know which implementation is active; the backend is picked
// once at startup and fixed for the process lifetime.
type PhotoRepository interface {
	// Init creates the backing schema if it does not exist yet. It is
	// idempotent and safe to call on every start; it never mutates data.
	Init(ctx context.Context) error

	// Upsert inserts the photo, or replaces file_id, caption, tags and
	// created_at in place when a row with the same message_id already
	// exists. Each call is atomic: a concurrent reader never observes a
	// partially-updated row.
	Upsert(ctx context.Context, photo *entity.Photo) error

	// Search returns at most limit photos whose caption or tags contain
	// query as a case-insensitive substring, newest first (message_id
	// descending). A non-positive limit falls back to DefaultSearchLimit.
	// An empty result set is valid and not an error.
	Search(ctx context.Context, query string, limit int) ([]entity.Photo, error)
}
