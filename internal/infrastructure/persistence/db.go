package persistence

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kartinke/kartinke/internal/infrastructure/config"
)

// NewDBConnection opens the photo database. An empty cfg.URL selects the
// embedded SQLite file at cfg.Path; otherwise a pooled Postgres connection
// is opened with cfg.URL.
func NewDBConnection(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	if cfg.UsesPostgres() {
		dialector = postgres.Open(cfg.URL)
	} else {
		dialector = sqlite.Open(cfg.Path)
	}

	gormConfig := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access connection pool: %w", err)
	}
	if cfg.UsesPostgres() {
		sqlDB.SetMaxOpenConns(cfg.MaxConns)
	} else {
		// The SQLite file takes a single writer; serialize all access
		// through one connection instead of fighting over file locks.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}
