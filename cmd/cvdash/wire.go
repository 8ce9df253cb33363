package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gradsuite/cvdash/internal/adapters/driven/config/file"
	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/memory"
	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/sqlite"
	"github.com/gradsuite/cvdash/internal/adapters/driven/watch"
	"github.com/gradsuite/cvdash/internal/adapters/driving/cli"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driven"
	"github.com/gradsuite/cvdash/internal/core/services"
	"github.com/gradsuite/cvdash/internal/logger"
)

// LogFile receives verbose logs while the dashboard is open.
const LogFile = "cvdash.log"

// bootstrap wires stores, services and the watcher for opts.
func bootstrap(opts cli.Options) (*cli.Services, error) {
	configDir := opts.ConfigDir
	if configDir == "" {
		dir, err := file.DefaultConfigDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	configStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}

	backend := settings.StorageBackend
	if opts.Memory {
		backend = domain.StorageMemory
	}
	logger.Debug("config %s, backend %s, grace %s", configStore.Path(), backend, settings.GraceInterval)

	var (
		cvStore driven.CVStore
		closers []func() error
		changes <-chan struct{}
	)

	switch backend {
	case domain.StorageMemory:
		cvStore = memory.NewCVStore()
	case domain.StorageSQLite:
		dataDir := resolveDataDir(opts.DataDir, settings.DataDir, configDir)
		store, err := sqlite.NewStore(dataDir)
		if err != nil {
			return nil, fmt.Errorf("opening cv store: %w", err)
		}
		logger.Debug("cv store %s", store.Path())
		cvStore = store.CVStore()
		closers = append(closers, store.Close)

		w, err := watch.New(dataDir, sqlite.DBFile)
		if err != nil {
			// The dashboard still works, it just misses outside edits.
			logger.Warn("watching %s: %v", dataDir, err)
		} else {
			changes = w.Changes()
			closers = append(closers, w.Close)
		}
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnsupportedBackend, backend)
	}

	cvService := services.NewCVService(cvStore)
	deleter := services.NewDeletionCoordinator(cvService, settings.GraceInterval)

	return &cli.Services{
		CV:       cvService,
		Settings: settingsService,
		Deleter:  deleter,
		Changes:  changes,
		LogPath:  filepath.Join(configDir, LogFile),
		Close: func() error {
			deleter.Close()
			var errs []error
			// Watcher before store.
			for i := len(closers) - 1; i >= 0; i-- {
				errs = append(errs, closers[i]())
			}
			return errors.Join(errs...)
		},
	}, nil
}

// resolveDataDir picks the flag, then the setting, then <configDir>/data.
func resolveDataDir(flag, setting, configDir string) string {
	switch {
	case flag != "":
		return flag
	case setting != "":
		return setting
	default:
		return filepath.Join(configDir, "data")
	}
}
