// Package database owns the SQLite database file: opening it through a
// selectable driver, applying pragmas, running statements and transactions,
// and removing the file again.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lucasvillarinho/testmap/database/drivers"
	"github.com/lucasvillarinho/testmap/internal/helpers"
)

type database struct {
	engine drivers.Driver
	path   string
}

type Database interface {
	Destroy(ctx context.Context) error
	Close(ctx context.Context) error
	Vacuum(ctx context.Context) error
	Path() string
	GetEngine(ctx context.Context) drivers.Driver
	ExecWithTx(ctx context.Context, fn func(*sql.Tx) error) error
	Exec(ctx context.Context, query string, args ...interface{}) error

	SetJournalModeWal(ctx context.Context) error
	SetSynchronousNormal(ctx context.Context) error
	SetPageSize(ctx context.Context, pageSize int) error
	SetCacheSize(ctx context.Context, cacheSize int) error
}

// NewDatabase opens (creating it if needed) the database file at the given
// path and applies any provided options.
//
// Parent directories of the path are created when missing. The default
// engine is the mattn driver; use WithDriver to select another one.
func NewDatabase(ctx context.Context, path string, opts ...Option) (Database, error) {
	db := &database{path: path}

	cfg := &config{driver: DriverMattn}
	for _, opt := range opts {
		opt(db, cfg)
	}

	if db.engine == nil {
		if err := helpers.EnsureParentDir(path); err != nil {
			return nil, fmt.Errorf("error creating database directory: %w", err)
		}

		engine, err := NewEngine(cfg.driver, path)
		if err != nil {
			return nil, fmt.Errorf("error setting up engine: %w", err)
		}
		db.engine = engine
	}

	return db, nil
}

// SetJournalModeWal sets the journal mode to WAL.
func (db *database) SetJournalModeWal(ctx context.Context) error {
	_, err := db.engine.ExecContext(ctx, "PRAGMA journal_mode=WAL;")
	if err != nil {
		return fmt.Errorf("enabling WAL mode: %w", err)
	}

	return nil
}

// SetSynchronousNormal relaxes fsync behavior to NORMAL, which is the
// recommended pairing with WAL mode.
func (db *database) SetSynchronousNormal(ctx context.Context) error {
	_, err := db.engine.ExecContext(ctx, "PRAGMA synchronous=NORMAL;")
	if err != nil {
		return fmt.Errorf("setting synchronous mode: %w", err)
	}

	return nil
}

// SetPageSize sets the page size.
//
// Parameters:
//   - ctx: the context
//   - pageSize: the page size in bytes
//
// Returns:
//   - error: an error if the operation failed
func (db *database) SetPageSize(ctx context.Context, pageSize int) error {
	if pageSize == 0 {
		return fmt.Errorf("invalid page size: %d", pageSize)
	}

	_, err := db.engine.ExecContext(ctx, fmt.Sprintf("PRAGMA page_size = %d;", pageSize))
	if err != nil {
		return fmt.Errorf("setting page size: %w", err)
	}

	return nil
}

// SetCacheSize sets the cache size, in pages.
//
// Parameters:
//   - ctx: the context
//   - cacheSize: the cache size
//
// Returns:
//   - error: an error if the operation failed
func (db *database) SetCacheSize(ctx context.Context, cacheSize int) error {
	if cacheSize == 0 {
		return fmt.Errorf("invalid cache size: %d", cacheSize)
	}

	_, err := db.engine.ExecContext(
		ctx,
		fmt.Sprintf("PRAGMA cache_size = %d;", cacheSize),
	)
	if err != nil {
		return fmt.Errorf("setting cache size: %w", err)
	}

	return nil
}

// Destroy closes the database connection and deletes the database file.
//
// Deleting is idempotent: a missing file is not an error.
//
// ⚠️ WARNING: This operation is irreversible and will delete all data stored
// in the database.
func (db *database) Destroy(ctx context.Context) error {
	err := db.Close(ctx)
	if err != nil {
		return fmt.Errorf("error closing database: %w", err)
	}

	if err := os.Remove(db.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing database file: %w", err)
	}

	return nil
}

func (db *database) Close(_ context.Context) error {
	return db.engine.Close()
}

// Vacuum runs a VACUUM operation on the database.
// This operation rebuilds the database file, repacking it into a minimal
// amount of disk space.
//
// ⚠️ WARNING: This operation may take a long time to complete on large databases.
func (db *database) Vacuum(ctx context.Context) error {
	_, err := db.engine.ExecContext(ctx, "VACUUM;")
	if err != nil {
		return fmt.Errorf("vacuuming: %w", err)
	}
	return nil
}

// Path returns the filesystem path of the database file.
func (db *database) Path() string {
	return db.path
}

// GetEngine returns the database engine.
func (db *database) GetEngine(_ context.Context) drivers.Driver {
	return db.engine
}

// ExecWithTx executes a function inside a transaction. The transaction is
// committed when the function returns nil and rolled back otherwise.
//
// Parameters:
//   - ctx: the context
//   - fn: the function to execute
//
// Returns:
//   - error: an error if the operation failed
func (db *database) ExecWithTx(_ context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.engine.Begin()
	if err != nil {
		return fmt.Errorf("error beginning transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			return errors.Join(err, rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Exec executes a query with the given arguments.
//
// Parameters:
//   - ctx: the context
//   - query: the query to execute
//   - args: the query arguments
//
// Returns:
//   - error: an error if the operation failed
func (db *database) Exec(ctx context.Context, query string, args ...interface{}) error {
	_, err := db.engine.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("executing query: %w", err)
	}

	return nil
}
