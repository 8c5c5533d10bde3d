package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/kmorozov/caseboard-server/internal/store"
)

// SQLiteStore implements store.Store for SQLite.
type SQLiteStore struct {
	db *sql.DB
}

const schema = `
CREATE TABLE IF NOT EXISTS uploads (
	id         TEXT PRIMARY KEY,
	name       TEXT NOT NULL,
	size       INTEGER NOT NULL,
	created_at TIMESTAMP NOT NULL
);
`

// New creates a new SQLite store and applies the schema.
// dbPath is the path to the SQLite database file.
func New(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// SQLite works best with a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// CreateUpload inserts one upload record.
func (s *SQLiteStore) CreateUpload(ctx context.Context, up store.Upload) error {
	query := `
		INSERT INTO uploads (id, name, size, created_at)
		VALUES (?, ?, ?, ?)
	`
	if _, err := s.db.ExecContext(ctx, query, up.ID, up.Name, up.Size, up.CreatedAt); err != nil {
		return fmt.Errorf("insert upload: %w", err)
	}
	return nil
}

// GetUpload retrieves an upload record by id, or nil when not found.
func (s *SQLiteStore) GetUpload(ctx context.Context, id string) (*store.Upload, error) {
	query := `
		SELECT id, name, size, created_at
		FROM uploads
		WHERE id = ?
	`
	var up store.Upload
	err := s.db.QueryRowContext(ctx, query, id).Scan(&up.ID, &up.Name, &up.Size, &up.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select upload: %w", err)
	}
	return &up, nil
}

// ListUploads returns the most recent upload records, newest first.
func (s *SQLiteStore) ListUploads(ctx context.Context, limit int) ([]store.Upload, error) {
	if limit <= 0 {
		limit = 50
	}
	query := `
		SELECT id, name, size, created_at
		FROM uploads
		ORDER BY created_at DESC
		LIMIT ?
	`
	rows, err := s.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("select uploads: %w", err)
	}
	defer rows.Close()

	var ups []store.Upload
	for rows.Next() {
		var up store.Upload
		if err := rows.Scan(&up.ID, &up.Name, &up.Size, &up.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan upload: %w", err)
		}
		ups = append(ups, up)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate uploads: %w", err)
	}
	return ups, nil
}
