// Package sqlite provides the SQLite-backed CV store.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. The schema is managed through versioned migrations in the
// migrations/ directory; applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.cvdash/data/cvs.db
//
// # Ordering
//
// CVs are listed in insertion order (rowid). Upserts keep the row, so
// editing a CV never moves it.
package sqlite
