package application

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/kartinke/kartinke/internal/application/usecase"
	"github.com/kartinke/kartinke/internal/domain/repository"
	"github.com/kartinke/kartinke/internal/infrastructure/config"
	"github.com/kartinke/kartinke/internal/infrastructure/persistence"
	httpserver "github.com/kartinke/kartinke/internal/interfaces/http"
	"github.com/kartinke/kartinke/internal/interfaces/telegram"
)

// App is the dependency-injection container. The photo store is built once
// here and handed to the use cases; nothing reaches it through globals.
type App struct {
	config *config.Config
	logger *zap.Logger
	db     *gorm.DB

	photoRepo repository.PhotoRepository

	ingestPhoto  *usecase.IngestPhotoUseCase
	searchPhotos *usecase.SearchPhotosUseCase

	telegramAdapter *telegram.Adapter
	httpServer      *httpserver.Server
}

// NewApp wires the full application.
func NewApp(cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{
		config: cfg,
		logger: logger,
	}

	if err := app.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to init repositories: %w", err)
	}

	app.initUseCases()

	if err := app.initInterfaces(); err != nil {
		return nil, fmt.Errorf("failed to init interfaces: %w", err)
	}

	return app, nil
}

func (a *App) initRepositories() error {
	db, err := persistence.NewDBConnection(&a.config.Database)
	if err != nil {
		return err
	}
	a.db = db
	a.photoRepo = persistence.NewGormPhotoRepository(db)

	if err := a.photoRepo.Init(context.Background()); err != nil {
		return err
	}

	backend := "sqlite"
	if a.config.Database.UsesPostgres() {
		backend = "postgres"
	}
	a.logger.Info("Photo store ready", zap.String("backend", backend))
	return nil
}

func (a *App) initUseCases() {
	a.ingestPhoto = usecase.NewIngestPhotoUseCase(a.photoRepo, a.logger)
	a.searchPhotos = usecase.NewSearchPhotosUseCase(a.photoRepo, a.logger)
}

func (a *App) initInterfaces() error {
	adapter, err := telegram.NewAdapter(
		&telegram.Config{
			BotToken: a.config.Telegram.BotToken,
			Debug:    a.config.Telegram.Debug,
		},
		a.ingestPhoto,
		a.searchPhotos,
		a.logger,
	)
	if err != nil {
		return fmt.Errorf("failed to create telegram adapter: %w", err)
	}
	a.telegramAdapter = adapter

	if a.config.HTTP.Addr != "" {
		a.httpServer = httpserver.NewServer(a.config.HTTP.Addr, a.searchPhotos, a.logger)
	}
	return nil
}

// Start launches the interfaces.
func (a *App) Start(ctx context.Context) error {
	if err := a.telegramAdapter.Start(ctx); err != nil {
		return err
	}
	if a.httpServer != nil {
		if err := a.httpServer.Start(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Stop shuts everything down and closes the database.
func (a *App) Stop(ctx context.Context) error {
	a.telegramAdapter.Stop()

	if a.httpServer != nil {
		if err := a.httpServer.Stop(ctx); err != nil {
			a.logger.Error("Failed to stop HTTP server", zap.Error(err))
		}
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				return err
			}
		}
	}
	return nil
}
