package driving

import (
	"time"

	"github.com/gradsuite/cvdash/internal/core/domain"
)

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current settings, filling unset keys with defaults.
	Get() (domain.Settings, error)

	// Save validates and persists settings.
	Save(settings domain.Settings) error

	// SetGraceInterval updates the delete grace interval.
	SetGraceInterval(d time.Duration) error

	// SetStorageBackend updates the storage backend.
	SetStorageBackend(backend domain.StorageBackend) error

	// SetDataDir updates the data directory.
	SetDataDir(dir string) error

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
