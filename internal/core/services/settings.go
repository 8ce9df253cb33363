package services

import (
	"fmt"
	"time"

	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driven"
	"github.com/gradsuite/cvdash/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	KeyGraceIntervalMS = "dashboard.grace_interval_ms"
	KeyStorageBackend  = "storage.backend"
	KeyStorageDataDir  = "storage.data_dir"
)

// SettingKeys lists the keys `config set` accepts.
var SettingKeys = []string{KeyGraceIntervalMS, KeyStorageBackend, KeyStorageDataDir}

// SettingsService maps configuration keys onto domain.Settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current settings. Missing or invalid values fall back
// to the defaults.
func (s *SettingsService) Get() (domain.Settings, error) {
	settings := domain.DefaultSettings()
	if s.configStore == nil {
		return settings, nil
	}

	if _, ok := s.configStore.Get(KeyGraceIntervalMS); ok {
		grace := time.Duration(s.configStore.GetInt(KeyGraceIntervalMS)) * time.Millisecond
		if grace >= 0 && grace <= domain.MaxGraceInterval {
			settings.GraceInterval = grace
		}
	}
	if backend := domain.StorageBackend(s.configStore.GetString(KeyStorageBackend)); backend.IsValid() {
		settings.StorageBackend = backend
	}
	settings.DataDir = s.configStore.GetString(KeyStorageDataDir)

	return settings, nil
}

// Save validates and persists settings.
func (s *SettingsService) Save(settings domain.Settings) error {
	if s.configStore == nil {
		return domain.ErrNotImplemented
	}
	if err := settings.Validate(); err != nil {
		return err
	}

	if err := s.configStore.Set(KeyGraceIntervalMS, settings.GraceInterval.Milliseconds()); err != nil {
		return fmt.Errorf("save grace interval: %w", err)
	}
	if err := s.configStore.Set(KeyStorageBackend, settings.StorageBackend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if err := s.configStore.Set(KeyStorageDataDir, settings.DataDir); err != nil {
		return fmt.Errorf("save data dir: %w", err)
	}
	return nil
}

// SetGraceInterval updates the delete grace interval.
func (s *SettingsService) SetGraceInterval(d time.Duration) error {
	return s.update(func(settings *domain.Settings) {
		settings.GraceInterval = d
	})
}

// SetStorageBackend updates the storage backend.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend) error {
	return s.update(func(settings *domain.Settings) {
		settings.StorageBackend = backend
	})
}

// SetDataDir updates the data directory.
func (s *SettingsService) SetDataDir(dir string) error {
	return s.update(func(settings *domain.Settings) {
		settings.DataDir = dir
	})
}

func (s *SettingsService) update(mutate func(*domain.Settings)) error {
	settings, err := s.Get()
	if err != nil {
		return err
	}
	mutate(&settings)
	return s.Save(settings)
}

// ConfigPath returns where settings are persisted.
func (s *SettingsService) ConfigPath() string {
	if s.configStore == nil {
		return ""
	}
	return s.configStore.Path()
}
