package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"sorarelay/internal/entity"
)

// Schema for the relay endpoint store.
const schema = `
CREATE TABLE IF NOT EXISTS endpoints (
    id          INTEGER PRIMARY KEY AUTOINCREMENT,
    url         TEXT NOT NULL,
    api_key     TEXT NOT NULL DEFAULT '',
    enabled     INTEGER NOT NULL DEFAULT 1,
    created_at  INTEGER NOT NULL
);
`

// SQLite persists relay endpoint configuration rows.
type SQLite struct {
	db *sql.DB
}

// Open opens or creates the database at the given path and applies the
// schema.
func Open(path string) (*SQLite, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

// ListEndpointConfigs returns every row in insertion order.
func (s *SQLite) ListEndpointConfigs(ctx context.Context) ([]entity.EndpointConfig, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id, url, api_key, enabled FROM endpoints ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query endpoints: %w", err)
	}
	defer rows.Close()

	var out []entity.EndpointConfig
	for rows.Next() {
		var ep entity.EndpointConfig
		var enabled int
		if err := rows.Scan(&ep.ID, &ep.URL, &ep.APIKey, &enabled); err != nil {
			return nil, fmt.Errorf("scan endpoint: %w", err)
		}
		ep.Enabled = enabled != 0
		out = append(out, ep)
	}
	return out, rows.Err()
}

// AddEndpoint inserts a row and returns its id.
func (s *SQLite) AddEndpoint(ctx context.Context, url, apiKey string, enabled bool) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO endpoints (url, api_key, enabled, created_at) VALUES (?, ?, ?, ?)`,
		url, apiKey, boolInt(enabled), time.Now().Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("insert endpoint: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id: %w", err)
	}
	return id, nil
}

// SetEndpointEnabled flips one row's enabled flag.
func (s *SQLite) SetEndpointEnabled(ctx context.Context, id int64, enabled bool) error {
	res, err := s.db.ExecContext(ctx, `UPDATE endpoints SET enabled = ? WHERE id = ?`, boolInt(enabled), id)
	if err != nil {
		return fmt.Errorf("update endpoint: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if n == 0 {
		return entity.ErrEndpointNotFound
	}
	return nil
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
