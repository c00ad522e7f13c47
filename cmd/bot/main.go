package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kartinke/kartinke/internal/application"
	"github.com/kartinke/kartinke/internal/infrastructure/config"
	"github.com/kartinke/kartinke/internal/infrastructure/logger"
	"github.com/kartinke/kartinke/internal/infrastructure/persistence"
)

const (
	appName    = "kartinke"
	appVersion = "0.1.0"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Kartinke — channel photo indexer and inline search bot",
		Long:  "Indexes photo posts from a Telegram channel and answers inline queries with substring search over captions and hashtags.",
		RunE:  runBot,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Create the photos schema and exit",
		Long:  "Connects to the configured backend, creates the photos table if it is absent and exits. Safe to run repeatedly.",
		RunE:  runMigrate,
	})

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("%s v%s\n", appName, appVersion)
		},
	})

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.NewLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	log.Info("Starting kartinke",
		zap.String("version", appVersion),
	)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := application.NewApp(cfg, log)
	if err != nil {
		log.Error("Failed to initialize application", zap.Error(err))
		return err
	}

	if err := app.Start(ctx); err != nil {
		log.Error("Failed to start application", zap.Error(err))
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quit
	log.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := app.Stop(shutdownCtx); err != nil {
		log.Error("Error during shutdown", zap.Error(err))
		return err
	}

	log.Info("Application stopped")
	return nil
}

// runMigrate mirrors what the bot does on startup, without starting any
// interface. Useful for provisioning a fresh Postgres database.
func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewLogger(logger.Config{
		Level:  cfg.Log.Level,
		Format: "console",
	})
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer log.Sync()

	db, err := persistence.NewDBConnection(&cfg.Database)
	if err != nil {
		return err
	}
	repo := persistence.NewGormPhotoRepository(db)
	if err := repo.Init(cmd.Context()); err != nil {
		return err
	}

	backend := "sqlite"
	if cfg.Database.UsesPostgres() {
		backend = "postgres"
	}
	log.Info("Photos schema ready", zap.String("backend", backend))
	return nil
}
