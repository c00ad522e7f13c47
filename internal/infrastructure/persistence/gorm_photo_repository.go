package persistence

import (
	"context"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/kartinke/kartinke/internal/domain/entity"
	"github.com/kartinke/kartinke/internal/domain/repository"
	"github.com/kartinke/kartinke/internal/infrastructure/persistence/models"
	apperrors "github.com/kartinke/kartinke/pkg/errors"
)

// GormPhotoRepository is the photo store backed by GORM. The same code
// serves both backends; the dialector chosen in NewDBConnection is the only
// difference, so ordering and match sets are identical by construction.
type GormPhotoRepository struct {
	db *gorm.DB
}

// NewGormPhotoRepository creates a GORM-backed photo repository.
func NewGormPhotoRepository(db *gorm.DB) repository.PhotoRepository {
	return &GormPhotoRepository{
		db: db,
	}
}

// Init creates the photos table if it is absent. Running it on every start
// is safe; existing rows are never touched.
func (r *GormPhotoRepository) Init(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&models.PhotoModel{}); err != nil {
		return apperrors.NewStoreUnavailableError("failed to migrate photos table", err)
	}
	return nil
}

// Upsert inserts or replaces the row keyed by message_id. The single
// INSERT ... ON CONFLICT statement keeps each call atomic.
func (r *GormPhotoRepository) Upsert(ctx context.Context, photo *entity.Photo) error {
	model := toModel(photo)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "message_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"file_id", "caption", "tags", "created_at"}),
		}).
		Create(model).Error
	if err != nil {
		return apperrors.NewStoreUnavailableError("failed to upsert photo", err)
	}
	return nil
}

// Search matches query as a case-insensitive substring of caption or tags,
// newest message first.
func (r *GormPhotoRepository) Search(ctx context.Context, query string, limit int) ([]entity.Photo, error) {
	if limit <= 0 {
		limit = repository.DefaultSearchLimit
	}
	like := "%" + strings.ToLower(query) + "%"

	var rows []models.PhotoModel
	err := r.db.WithContext(ctx).
		Where("LOWER(caption) LIKE ? OR LOWER(tags) LIKE ?", like, like).
		Order("message_id DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, apperrors.NewStoreUnavailableError("failed to search photos", err)
	}

	photos := make([]entity.Photo, 0, len(rows))
	for i := range rows {
		photos = append(photos, *toEntity(&rows[i]))
	}
	return photos, nil
}

func toModel(photo *entity.Photo) *models.PhotoModel {
	return &models.PhotoModel{
		MessageID: photo.MessageID,
		FileID:    photo.FileID,
		Caption:   photo.Caption,
		Tags:      photo.Tags,
		PostedAt:  photo.CreatedAt,
	}
}

func toEntity(model *models.PhotoModel) *entity.Photo {
	return &entity.Photo{
		MessageID: model.MessageID,
		FileID:    model.FileID,
		Caption:   model.Caption,
		Tags:      model.Tags,
		CreatedAt: model.PostedAt,
	}
}
