package persistence

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/kartinke/kartinke/internal/domain/entity"
	"github.com/kartinke/kartinke/internal/domain/repository"
)

// MemoryPhotoRepository is an in-memory photo store for development and
// tests. It honors the same contract as the GORM backends: atomic upserts
// keyed by message id, case-insensitive substring search, newest first.
type MemoryPhotoRepository struct {
	mu     sync.RWMutex
	photos map[int64]entity.Photo
}

// NewMemoryPhotoRepository creates an empty in-memory photo repository.
func NewMemoryPhotoRepository() repository.PhotoRepository {
	return &MemoryPhotoRepository{
		photos: make(map[int64]entity.Photo),
	}
}

// Init is a no-op; there is no schema to create.
func (r *MemoryPhotoRepository) Init(ctx context.Context) error {
	return nil
}

// Upsert stores a copy of the photo, replacing any previous row with the
// same message id.
func (r *MemoryPhotoRepository) Upsert(ctx context.Context, photo *entity.Photo) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.photos[photo.MessageID] = *photo
	return nil
}

// Search scans all rows, matching query against the lower-cased caption
// and tags independently.
func (r *MemoryPhotoRepository) Search(ctx context.Context, query string, limit int) ([]entity.Photo, error) {
	if limit <= 0 {
		limit = repository.DefaultSearchLimit
	}
	needle := strings.ToLower(query)

	r.mu.RLock()
	matched := make([]entity.Photo, 0, len(r.photos))
	for _, photo := range r.photos {
		if strings.Contains(strings.ToLower(photo.Caption), needle) ||
			strings.Contains(strings.ToLower(photo.Tags), needle) {
			matched = append(matched, photo)
		}
	}
	r.mu.RUnlock()

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].MessageID > matched[j].MessageID
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}
