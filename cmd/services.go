package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tomato-timer/tomato/internal/adapters/git"
	"github.com/tomato-timer/tomato/internal/adapters/notification"
	"github.com/tomato-timer/tomato/internal/adapters/storage"
	"github.com/tomato-timer/tomato/internal/config"
	"github.com/tomato-timer/tomato/internal/ports"
	"github.com/tomato-timer/tomato/internal/services"
)

// appDeps groups all service-layer dependencies initialized at startup.
type appDeps struct {
	store    ports.Store
	engine   *services.TimerService
	tasks    *services.TaskService
	importer *services.ImportService
	stats    *services.StatsService
	config   *config.Config
}

// app holds all initialized service dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices sets up all the required services and adapters.
func initializeServices() error {
	var err error
	app.config, err = config.Load()
	if err != nil {
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
	}

	if dbPath == "" {
		dbPath = config.GetDBPath(app.config)
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}

	app.store, err = storage.New(dbPath)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	opts := []services.TimerOption{
		services.WithNotifier(notification.New(app.config.Notifications.Enabled)),
		services.WithAudio(notification.NewAudio()),
		services.WithGitDetector(git.NewDetector()),
	}
	if app.config.Notifications.Badge {
		opts = append(opts, services.WithBadge(notification.NewStatusFile(app.config.Storage.DataDir)))
	}

	app.engine, err = services.NewTimerService(context.Background(), app.store, opts...)
	if err != nil {
		return fmt.Errorf("failed to initialize timer: %w", err)
	}

	app.tasks = services.NewTaskService(app.store)
	app.importer = services.NewImportService(app.store)
	app.stats = services.NewStatsService(app.store)

	return nil
}

// cleanupServices releases resources acquired during initialization.
func cleanupServices() error {
	if app.store != nil {
		return app.store.Close()
	}
	return nil
}
