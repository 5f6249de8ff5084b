package preference

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const sqliteSchema = `CREATE TABLE IF NOT EXISTS preferences (
	name       TEXT PRIMARY KEY,
	value      INTEGER NOT NULL,
	updated_at TIMESTAMP NOT NULL
)`

// SQLiteStore keeps the preference in a local sqlite file, for single-node
// deployments without postgres.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// sqlite serializes writers anyway; one connection also keeps
	// ":memory:" databases shared.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create preferences table: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) IsFahrenheit(ctx context.Context) (bool, error) {
	var value bool
	err := s.db.QueryRowContext(ctx, `SELECT value FROM preferences WHERE name = ?`, FahrenheitKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read preference: %w", err)
	}
	return value, nil
}

func (s *SQLiteStore) SetFahrenheit(ctx context.Context, value bool) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO preferences (name, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		FahrenheitKey, value, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("write preference: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
