package models

import (
	"time"
)

// PhotoModel is the database row for an indexed photo.
//
// PostedAt is deliberately not named CreatedAt so GORM never auto-fills
// it: a missing post timestamp must stay NULL.
type PhotoModel struct {
	MessageID int64      `gorm:"column:message_id;primaryKey;autoIncrement:false"`
	FileID    string     `gorm:"column:file_id;type:text;not null"`
	Caption   string     `gorm:"column:caption;type:text"`
	Tags      string     `gorm:"column:tags;type:text"`
	PostedAt  *time.Time `gorm:"column:created_at"`
}

// TableName pins the table name.
func (PhotoModel) TableName() string {
	return "photos"
}
