package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/gradsuite/cvdash/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/gradsuite/cvdash/internal/core/domain"
	"github.com/gradsuite/cvdash/internal/core/ports/driven"
)

// DBFile is the database file name inside the data directory.
const DBFile = "cvs.db"

// Store is a SQLite-based store that exposes driven.CVStore.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.cvdash/data/cvs.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".cvdash", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	// WAL lets the CLI write while a TUI session reads.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// CVStore returns a CVStore interface backed by this store.
func (s *Store) CVStore() driven.CVStore {
	return &cvStore{store: s}
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys fs.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		if name := entry.Name(); strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_cvs.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}
		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}
		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}
		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// schemaVersion returns the highest applied migration.
func (s *Store) schemaVersion() (int, error) {
	var v int
	err := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&v)
	return v, err
}

// ==================== CV Store ====================

// cvStore implements driven.CVStore.
type cvStore struct {
	store *Store
}

var _ driven.CVStore = (*cvStore)(nil)

const cvColumns = "id, title, full_name, email, phone, created_at, last_modified"

// List returns every CV in insertion order.
func (s *cvStore) List(ctx context.Context) ([]domain.CV, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT "+cvColumns+" FROM cvs ORDER BY rowid")
	if err != nil {
		return nil, fmt.Errorf("querying cvs: %w", err)
	}
	defer rows.Close()

	var cvs []domain.CV //nolint:prealloc // size unknown from query
	for rows.Next() {
		cv, err := scanCV(rows)
		if err != nil {
			return nil, err
		}
		cvs = append(cvs, *cv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cvs: %w", err)
	}

	return cvs, nil
}

// Get retrieves a CV by ID.
func (s *cvStore) Get(ctx context.Context, id string) (*domain.CV, error) {
	row := s.store.db.QueryRowContext(ctx, "SELECT "+cvColumns+" FROM cvs WHERE id = ?", id)

	cv, err := scanCV(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return cv, err
}

// Save stores or updates a CV.
func (s *cvStore) Save(ctx context.Context, cv *domain.CV) error {
	if cv == nil || cv.ID == "" {
		return domain.ErrInvalidInput
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO cvs (`+cvColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			full_name = excluded.full_name,
			email = excluded.email,
			phone = excluded.phone,
			last_modified = excluded.last_modified
	`, cv.ID, cv.Title, cv.PersonalInfo.FullName, cv.PersonalInfo.Email, cv.PersonalInfo.Phone,
		cv.CreatedAt.UTC(), cv.LastModified.UTC())
	if err != nil {
		return fmt.Errorf("saving cv: %w", err)
	}
	return nil
}

// Delete removes a CV. Unknown IDs are ignored.
func (s *cvStore) Delete(ctx context.Context, id string) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM cvs WHERE id = ?", id); err != nil {
		return fmt.Errorf("deleting cv: %w", err)
	}
	return nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanCV(sc scanner) (*domain.CV, error) {
	var cv domain.CV
	if err := sc.Scan(&cv.ID, &cv.Title, &cv.PersonalInfo.FullName, &cv.PersonalInfo.Email,
		&cv.PersonalInfo.Phone, &cv.CreatedAt, &cv.LastModified); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cv: %w", err)
	}
	return &cv, nil
}
