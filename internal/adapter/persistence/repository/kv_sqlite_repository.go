package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"nardoo_storefront/internal/usecase/interfaces"
)

const kvSQLiteSchema = `
CREATE TABLE IF NOT EXISTS kv_entries (
	key        TEXT PRIMARY KEY,
	value      BLOB NOT NULL,
	updated_at TEXT NOT NULL
)`

// KeyValueSQLiteRepository stores collection documents in a single kv_entries table.

type KeyValueSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IKeyValueStore = (*KeyValueSQLiteRepository)(nil)

// NewKeyValueSQLiteRepository creates the kv_entries table when missing.
func NewKeyValueSQLiteRepository(ctx context.Context, db *sql.DB) (*KeyValueSQLiteRepository, error) {
	if _, err := db.ExecContext(ctx, kvSQLiteSchema); err != nil {
		return nil, err
	}
	return &KeyValueSQLiteRepository{db: db}, nil
}

func (r *KeyValueSQLiteRepository) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return value, nil
}

func (r *KeyValueSQLiteRepository) Set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, time.Now().UTC().Format(time.RFC3339Nano))
	return err
}
