package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/done-app/donectl/internal/entry"
	"github.com/done-app/donectl/internal/storage"
	_ "github.com/tursodatabase/go-libsql"
)

// Store implements storage.Storage using SQLite via Turso/libSQL.
type Store struct {
	db *sql.DB
}

// New creates a new SQLite storage backend under dataDir.
func New(dataDir string) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory: %v", storage.ErrStorage, err)
	}

	dbPath := filepath.Join(dataDir, "donectl.db")
	db, err := sql.Open("libsql", "file:"+dbPath)
	if err != nil {
		return nil, fmt.Errorf("%w: opening database: %v", storage.ErrStorage, err)
	}

	// Enable WAL mode. The pragma returns a row, which the libsql driver
	// rejects under Exec, so issue it as a query and discard the result.
	rows, err := db.Query("PRAGMA journal_mode=WAL")
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: enabling WAL mode: %v", storage.ErrStorage, err)
	}
	rows.Close()

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func createSchema(db *sql.DB) error {
	schema := `
		CREATE TABLE IF NOT EXISTS entries (
			id         TEXT PRIMARY KEY,
			content    TEXT NOT NULL CHECK(length(trim(content)) > 0),
			created_at TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_entries_created_at ON entries(created_at);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("%w: creating schema: %v", storage.ErrStorage, err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load reads the full entry collection in stored order.
func (s *Store) Load() ([]entry.Entry, error) {
	rows, err := s.db.Query("SELECT id, content, created_at FROM entries ORDER BY created_at")
	if err != nil {
		return nil, fmt.Errorf("%w: querying entries: %v", storage.ErrStorage, err)
	}
	defer rows.Close()

	var entries []entry.Entry
	for rows.Next() {
		var e entry.Entry
		var createdStr string
		if err := rows.Scan(&e.ID, &e.Content, &createdStr); err != nil {
			return nil, fmt.Errorf("%w: scanning entry: %v", storage.ErrStorage, err)
		}
		e.CreatedAt, err = time.Parse(time.RFC3339, createdStr)
		if err != nil {
			return nil, fmt.Errorf("%w: parsing created_at: %v", storage.ErrStorage, err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating entries: %v", storage.ErrStorage, err)
	}
	return entries, nil
}

// Save replaces the persisted collection with the given entries in a single
// transaction.
func (s *Store) Save(entries []entry.Entry) error {
	for i := range entries {
		if err := entry.ValidateContent(entries[i].Content); err != nil {
			return fmt.Errorf("%w: %v", storage.ErrValidation, err)
		}
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning transaction: %v", storage.ErrStorage, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("%w: clearing entries: %v", storage.ErrStorage, err)
	}

	stmt, err := tx.Prepare("INSERT INTO entries (id, content, created_at) VALUES (?, ?, ?)")
	if err != nil {
		return fmt.Errorf("%w: preparing insert: %v", storage.ErrStorage, err)
	}
	defer stmt.Close()

	for _, e := range entries {
		if _, err := stmt.Exec(e.ID, e.Content, e.CreatedAt.UTC().Format(time.RFC3339)); err != nil {
			return fmt.Errorf("%w: inserting entry %s: %v", storage.ErrStorage, e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing: %v", storage.ErrStorage, err)
	}
	return nil
}
