package usecase

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/domain/repository"
	apperrors "github.com/kartinke/kartinke/pkg/errors"
)

// ResultCacheSeconds is the cache-lifetime hint attached to every query
// answer, including empty ones. Results go stale as the channel gets new
// posts, so clients only ever cache briefly.
const ResultCacheSeconds = 10

// PhotoResult is one search hit as handed to the transport. ID is the
// decimal message id; it is stable across queries and unique within a
// batch, which is all the transport's deduplication needs.
type PhotoResult struct {
	ID      string
	FileID  string
	Caption string
}

// SearchPhotosUseCase answers free-text queries against the photo index.
type SearchPhotosUseCase struct {
	photos repository.PhotoRepository
	logger *zap.Logger
}

// NewSearchPhotosUseCase creates the search use case.
func NewSearchPhotosUseCase(photos repository.PhotoRepository, logger *zap.Logger) *SearchPhotosUseCase {
	return &SearchPhotosUseCase{
		photos: photos,
		logger: logger,
	}
}

// Execute runs one query and returns the hits plus the cache hint. A blank
// query short-circuits without touching the store. Store failures degrade
// to an empty result set — the person typing a query never sees an error.
func (uc *SearchPhotosUseCase) Execute(ctx context.Context, rawQuery string) ([]PhotoResult, int) {
	query := strings.ToLower(strings.TrimSpace(rawQuery))
	if query == "" {
		return []PhotoResult{}, ResultCacheSeconds
	}

	photos, err := uc.photos.Search(ctx, query, repository.DefaultSearchLimit)
	if err != nil {
		if apperrors.IsStoreUnavailable(err) {
			uc.logger.Warn("Photo store unavailable, returning no results",
				zap.String("query", query),
				zap.Error(err),
			)
		} else {
			uc.logger.Error("Photo search failed",
				zap.String("query", query),
				zap.Error(err),
			)
		}
		return []PhotoResult{}, ResultCacheSeconds
	}

	results := make([]PhotoResult, 0, len(photos))
	for _, photo := range photos {
		results = append(results, PhotoResult{
			ID:      strconv.FormatInt(photo.MessageID, 10),
			FileID:  photo.FileID,
			Caption: photo.Caption,
		})
	}
	return results, ResultCacheSeconds
}
