package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/domain/entity"
	"github.com/kartinke/kartinke/internal/domain/repository"
	"github.com/kartinke/kartinke/internal/domain/valueobject"
)

// IngestPhotoInput is one photo-bearing channel post. The transport filters
// out everything without a photo before calling Execute.
type IngestPhotoInput struct {
	MessageID int64
	FileID    string
	Caption   string
	PostedAt  time.Time // zero when the event carried no timestamp
}

// IngestPhotoUseCase indexes channel photos: it derives tags from the
// caption and upserts the record keyed by message id, so re-ingesting an
// edited post replaces the old row instead of duplicating it.
type IngestPhotoUseCase struct {
	photos repository.PhotoRepository
	logger *zap.Logger
}

// NewIngestPhotoUseCase creates the ingestion use case.
func NewIngestPhotoUseCase(photos repository.PhotoRepository, logger *zap.Logger) *IngestPhotoUseCase {
	return &IngestPhotoUseCase{
		photos: photos,
		logger: logger,
	}
}

// Execute indexes one photo post. Store failures propagate to the caller
// unchanged; the transport decides whether the event gets redelivered.
func (uc *IngestPhotoUseCase) Execute(ctx context.Context, in IngestPhotoInput) error {
	tags := valueobject.ExtractTags(in.Caption)

	// Timestamps are always stored as UTC instants; a missing timestamp
	// stays NULL rather than being invented.
	var createdAt *time.Time
	if !in.PostedAt.IsZero() {
		utc := in.PostedAt.UTC()
		createdAt = &utc
	}

	photo := &entity.Photo{
		MessageID: in.MessageID,
		FileID:    in.FileID,
		Caption:   in.Caption,
		Tags:      valueobject.JoinTags(tags),
		CreatedAt: createdAt,
	}

	if err := uc.photos.Upsert(ctx, photo); err != nil {
		return err
	}

	uc.logger.Info("Photo indexed",
		zap.Int64("message_id", in.MessageID),
		zap.String("caption", in.Caption),
		zap.Int("tags", len(tags)),
	)
	return nil
}
