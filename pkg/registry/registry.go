// Package registry persists the ordered list of wallpaper image paths in a local
// SQLite database.
package registry

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/jonboulle/clockwork"

	// Pure-Go SQLite driver, registered as "sqlite".
	_ "modernc.org/sqlite"
)

// DriverName is the database/sql driver used for the registry.
const DriverName = "sqlite"

const schema = `
	CREATE TABLE IF NOT EXISTS images (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path TEXT NOT NULL,
		added_time DATETIME DEFAULT CURRENT_TIMESTAMP
	)`

var pragmas = []string{
	"PRAGMA journal_mode=WAL",
	"PRAGMA synchronous=NORMAL",
	"PRAGMA busy_timeout=5000",
}

// Entry is one registered image.
type Entry struct {
	ID        int64     `db:"id" json:"id"`
	Path      string    `db:"path" json:"path"`
	AddedTime time.Time `db:"added_time" json:"added_time"`
}

// StoreError reports a failure of the persistent layer.
type StoreError struct {
	Op   string // schema, add, remove, list, close
	Path string // image path involved, if any
	Err  error
}

func (e *StoreError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("registry %s %q: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("registry %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ErrEmptyPath is returned (wrapped in a StoreError) when adding an empty path.
var ErrEmptyPath = errors.New("image path cannot be empty")

// Registry is the image registry. Row ids are assigned by the store and never reused,
// so ordering by id is insertion order.
type Registry struct {
	db    *sqlx.DB
	clock clockwork.Clock
}

// Open opens (creating if needed) the database file at path and ensures the schema exists.
func Open(path string, clock clockwork.Clock) (*Registry, error) {
	db, err := sqlx.Open(DriverName, path)
	if err != nil {
		return nil, &StoreError{Op: "schema", Err: fmt.Errorf("failed to open database: %w", err)}
	}

	// A single connection keeps writes serialized and makes ":memory:" usable.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, &StoreError{Op: "schema", Err: fmt.Errorf("failed to ping database: %w", err)}
	}

	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, &StoreError{Op: "schema", Err: fmt.Errorf("failed to set pragma %q: %w", pragma, err)}
		}
	}

	r, err := New(db, clock)
	if err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

// New wraps an already open handle and ensures the schema exists. Calling it against an
// initialized database leaves existing rows untouched.
func New(db *sqlx.DB, clock clockwork.Clock) (*Registry, error) {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	if _, err := db.Exec(schema); err != nil {
		return nil, &StoreError{Op: "schema", Err: err}
	}
	return &Registry{db: db, clock: clock}, nil
}

const insertQuery = `INSERT INTO images (path, added_time) VALUES (?, ?)`

// Add inserts path and returns the id the store assigned to it.
func (r *Registry) Add(ctx context.Context, path string) (int64, error) {
	if path == "" {
		return 0, &StoreError{Op: "add", Err: ErrEmptyPath}
	}

	res, err := r.db.ExecContext(ctx, insertQuery, path, r.clock.Now().UTC())
	if err != nil {
		return 0, &StoreError{Op: "add", Path: path, Err: err}
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, &StoreError{Op: "add", Path: path, Err: err}
	}
	return id, nil
}

// Duplicate paths are allowed; only the oldest matching row goes.
const deleteQuery = `
	DELETE FROM images
	WHERE id = (SELECT id FROM images WHERE path = ? ORDER BY id LIMIT 1)`

// Remove deletes one entry matching path and reports whether a row was removed.
func (r *Registry) Remove(ctx context.Context, path string) (bool, error) {
	res, err := r.db.ExecContext(ctx, deleteQuery, path)
	if err != nil {
		return false, &StoreError{Op: "remove", Path: path, Err: err}
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, &StoreError{Op: "remove", Path: path, Err: err}
	}
	return n > 0, nil
}

// List returns every registered path, ascending by id. Rows with a NULL path, which
// older databases allow, are skipped.
func (r *Registry) List(ctx context.Context) ([]string, error) {
	paths := []string{}
	if err := r.db.SelectContext(ctx, &paths, `SELECT path FROM images WHERE path IS NOT NULL ORDER BY id`); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}
	return paths, nil
}

// Entries returns the full rows, ascending by id.
func (r *Registry) Entries(ctx context.Context) ([]Entry, error) {
	var rows []entryRow
	if err := r.db.SelectContext(ctx, &rows, `SELECT id, path, added_time FROM images WHERE path IS NOT NULL ORDER BY id`); err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	entries := make([]Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, row.toEntry())
	}
	return entries, nil
}

// Count returns the number of registered entries.
func (r *Registry) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT COUNT(*) FROM images WHERE path IS NOT NULL`); err != nil {
		return 0, &StoreError{Op: "list", Err: err}
	}
	return n, nil
}

// Close closes the underlying database handle.
func (r *Registry) Close() error {
	if err := r.db.Close(); err != nil {
		return &StoreError{Op: "close", Err: err}
	}
	return nil
}

// entryRow scans rows whose added_time may be NULL when written by older tools.
type entryRow struct {
	ID        int64        `db:"id"`
	Path      string       `db:"path"`
	AddedTime sql.NullTime `db:"added_time"`
}

func (er entryRow) toEntry() Entry {
	e := Entry{ID: er.ID, Path: er.Path}
	if er.AddedTime.Valid {
		e.AddedTime = er.AddedTime.Time
	}
	return e
}
