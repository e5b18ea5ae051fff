package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

const createCollectionsTable = `
	CREATE TABLE IF NOT EXISTS collections (
		key        TEXT PRIMARY KEY,
		payload    TEXT NOT NULL,
		updated_at INTEGER NOT NULL
	)
`

// Backend es el medio por defecto: un archivo SQLite local con una fila por colección.
type Backend struct {
	db *sql.DB
}

// Open abre (o crea) el archivo en path y asegura el esquema.
func Open(path string) (*Backend, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	// SQLite admite un solo escritor
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := db.Exec(createCollectionsTable); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create collections table: %w", err)
	}

	return &Backend{db: db}, nil
}

func (b *Backend) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var payload string
	err := b.db.QueryRowContext(ctx, `SELECT payload FROM collections WHERE key = ?`, key).Scan(&payload)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return []byte(payload), true, nil
}

func (b *Backend) Put(ctx context.Context, key string, value []byte) error {
	if strings.TrimSpace(key) == "" {
		return errors.New("sqlite: key required")
	}

	_, err := b.db.ExecContext(ctx, `
		INSERT INTO collections (key, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`, key, string(value), time.Now().UTC().UnixMilli())
	return err
}

// Close cierra la base subyacente.
func (b *Backend) Close() error {
	if b == nil || b.db == nil {
		return nil
	}
	return b.db.Close()
}
