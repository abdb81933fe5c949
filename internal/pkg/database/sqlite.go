package database

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// DB wraps the live SQLite connection. The handle can be swapped out during a
// database import, so callers must always go through Conn() instead of caching
// the *sql.DB they got earlier.
type DB struct {
	mu   sync.RWMutex
	sdb  *sql.DB
	path string
}

func NewSQLiteDB(path string) (*DB, error) {
	sdb, err := open(path)
	if err != nil {
		return nil, err
	}

	d := &DB{sdb: sdb, path: path}
	if err := d.Migrate(context.Background()); err != nil {
		_ = sdb.Close()
		return nil, err
	}
	return d, nil
}

func open(path string) (*sql.DB, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)", path)
	}

	sdb, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	// SQLite serializes writers anyway; a single connection avoids
	// table-locked errors and keeps :memory: databases coherent.
	sdb.SetMaxOpenConns(1)

	if err := sdb.Ping(); err != nil {
		_ = sdb.Close()
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}
	return sdb, nil
}

// Conn returns the live database handle. Do not cache the result across calls.
func (d *DB) Conn() *sql.DB {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.sdb
}

// Path returns the database file path.
func (d *DB) Path() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.path
}

// Migrate applies the embedded schema. Statements are idempotent.
func (d *DB) Migrate(ctx context.Context) error {
	if _, err := d.Conn().ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// Checkpoint flushes the WAL into the main database file so a plain file copy
// captures all committed data.
func (d *DB) Checkpoint(ctx context.Context) error {
	_, err := d.Conn().ExecContext(ctx, "PRAGMA wal_checkpoint(TRUNCATE)")
	if err != nil {
		return fmt.Errorf("wal checkpoint: %w", err)
	}
	return nil
}

// Exclusive closes the connection, runs fn against the closed database file,
// then reopens. Used by import/replace. The write lock blocks every Conn()
// caller for the duration, so nobody can observe the closed handle.
func (d *DB) Exclusive(fn func(path string) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if err := d.sdb.Close(); err != nil {
		return fmt.Errorf("close database: %w", err)
	}

	fnErr := fn(d.path)

	sdb, openErr := open(d.path)
	if openErr != nil {
		return fmt.Errorf("reopen database: %w", openErr)
	}
	d.sdb = sdb

	return fnErr
}

func (d *DB) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.sdb.Close()
}

// Querier is satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}
