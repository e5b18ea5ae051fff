package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

const createCollectionsTable = `
	CREATE TABLE IF NOT EXISTS collections (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)
`

// Backend guarda cada colección como una fila (key, payload).
type Backend struct {
	db *sql.DB
}

// NewBackend crea la tabla si no existe.
func NewBackend(ctx context.Context, db *sql.DB) (*Backend, error) {
	if db == nil {
		return nil, errors.New("postgres: nil db")
	}
	if _, err := db.ExecContext(ctx, createCollectionsTable); err != nil {
		return nil, fmt.Errorf("postgres: create collections table: %w", err)
	}
	return &Backend{db: db}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return nil, false, nil
	}

	var payload string
	err := b.db.QueryRowContext(ctx, `
		SELECT payload
		FROM collections
		WHERE key = $1
	`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return errors.New("postgres: key required")
	}

	_, err := b.db.ExecContext(ctx, `
		INSERT INTO collections (key, payload, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE
		SET payload = EXCLUDED.payload,
			updated_at = EXCLUDED.updated_at
	`, key, string(value))
	return err
}

func (b *Backend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
