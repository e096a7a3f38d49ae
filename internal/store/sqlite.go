package store

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

//go:embed schema.sql
var schemaSQL string

// sqliteParams are go-sqlite3 DSN options applied to every pooled connection:
// WAL journal, NORMAL sync and a 5-second busy timeout.
const sqliteParams = "_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000"

// SQLiteBackend stores each collection as one row of the collections table.
type SQLiteBackend struct {
	db *sql.DB
}

// OpenSQLite creates or opens a SQLite database at path and ensures the
// collections table exists. Opening an existing database is a no-op apart
// from the connection.
func OpenSQLite(path string) (*SQLiteBackend, error) {
	db, err := sql.Open("sqlite3", path+"?"+sqliteParams)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}

	// One writer at a time.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("open %s: create schema: %w", path, err)
	}

	return &SQLiteBackend{db: db}, nil
}

// Close closes the database connection.
func (b *SQLiteBackend) Close() error {
	if b.db == nil {
		return nil
	}
	err := b.db.Close()
	b.db = nil
	return err
}

// Get returns the JSON document stored under key.
func (b *SQLiteBackend) Get(ctx context.Context, key string) ([]byte, error) {
	var data string
	err := b.db.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = ?`, key).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return []byte(data), nil
}

// Put overwrites the document stored under key.
func (b *SQLiteBackend) Put(ctx context.Context, key string, value []byte) error {
	if err := upsert(ctx, b.db, key, value); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// PutMany writes all values in one transaction.
func (b *SQLiteBackend) PutMany(ctx context.Context, values map[string][]byte) error {
	tx, err := b.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("write collections: begin tx: %w", err)
	}
	defer tx.Rollback() // No-op if committed

	for key, value := range values {
		if err := upsert(ctx, tx, key, value); err != nil {
			return fmt.Errorf("write collections: %s: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("write collections: commit: %w", err)
	}
	return nil
}

// Each iterates every stored collection ordered by key.
func (b *SQLiteBackend) Each(ctx context.Context, fn func(key string, value []byte) error) error {
	rows, err := b.db.QueryContext(ctx, `SELECT key, data FROM collections ORDER BY key COLLATE BINARY ASC`)
	if err != nil {
		return fmt.Errorf("query collections: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, data string
		if err := rows.Scan(&key, &data); err != nil {
			return fmt.Errorf("scan collection: %w", err)
		}
		if err := fn(key, []byte(data)); err != nil {
			return err
		}
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate collections: %w", err)
	}
	return nil
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func upsert(ctx context.Context, db execer, key string, value []byte) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO collections (key, data) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET data = excluded.data
	`, key, string(value))
	return err
}
