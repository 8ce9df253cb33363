package domain

import (
	"fmt"
	"time"
)

// DefaultGraceInterval is the delay between a delete request and the
// store mutation. It matches the length of the removing transition.
const DefaultGraceInterval = 300 * time.Millisecond

// MaxGraceInterval bounds the configurable grace interval.
const MaxGraceInterval = 10 * time.Second

// StorageBackend selects the CV store implementation.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists CVs in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps CVs in process memory only.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Settings holds the user-configurable dashboard options.
type Settings struct {
	// GraceInterval is how long a CV stays in the removing state
	// before the store deletes it.
	GraceInterval time.Duration

	// StorageBackend selects where CVs live.
	StorageBackend StorageBackend

	// DataDir is the directory holding the SQLite database.
	// Empty means the default (~/.cvdash/data).
	DataDir string
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() Settings {
	return Settings{
		GraceInterval:  DefaultGraceInterval,
		StorageBackend: StorageSQLite,
	}
}

// Validate checks the settings for consistency.
func (s Settings) Validate() error {
	if s.GraceInterval < 0 || s.GraceInterval > MaxGraceInterval {
		return fmt.Errorf("%w: grace interval %s outside [0, %s]", ErrInvalidInput, s.GraceInterval, MaxGraceInterval)
	}
	if !s.StorageBackend.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedBackend, s.StorageBackend)
	}
	return nil
}
