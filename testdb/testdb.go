// Package testdb creates and removes the example map database: an SQLite
// file holding the fixed test road network, with nodes and lines tables.
//
// The usual cycle is Remove then Setup (or just Reset), giving a fresh,
// deterministic database at a path regardless of what was there before.
package testdb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/lucasvillarinho/testmap/database"
	"github.com/lucasvillarinho/testmap/database/drivers"
)

// DefaultPath is the database file used when no path is given.
const DefaultPath = "db.sqlite"

type config struct {
	driver database.Driver
}

// Option configures a setup run.
type Option func(*config)

// WithDriver selects the SQLite driver used to create the database.
func WithDriver(driver database.Driver) Option {
	return func(cfg *config) {
		cfg.driver = driver
	}
}

// Setup creates a new example map database at the given path and populates
// it with the test network.
//
// The file is created if absent. Setup does not clear prior content: calling
// it on a database that already holds the fixture fails on duplicate ids.
// Use Reset for the remove-then-create cycle.
//
// Parameters:
//   - ctx: the context
//   - path: the path of the database file
//   - opts: setup options
//
// Returns:
//   - error: an error if the operation failed
func Setup(ctx context.Context, path string, opts ...Option) error {
	cfg := &config{driver: database.DriverMattn}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := database.NewDatabase(ctx, path, database.WithDriver(cfg.driver))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close(ctx)

	if err := db.SetJournalModeWal(ctx); err != nil {
		return err
	}
	if err := db.SetSynchronousNormal(ctx); err != nil {
		return err
	}

	if err := seed(ctx, db); err != nil {
		return fmt.Errorf("seeding database %s: %w", path, err)
	}

	return nil
}

// Remove deletes the database file at the given path.
//
// Removing is idempotent: a missing file is not an error.
//
// Parameters:
//   - path: the path of the database file
//
// Returns:
//   - error: an error if the operation failed
func Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing database file: %w", err)
	}

	return nil
}

// Reset removes the database file at the given path, if present, and sets
// up a fresh one. Resetting twice yields the same file content as once.
func Reset(ctx context.Context, path string, opts ...Option) error {
	if err := Remove(path); err != nil {
		return err
	}

	return Setup(ctx, path, opts...)
}

// SetupInMemory creates the example map database in memory and returns the
// live connection. The caller owns the connection; the fixture disappears
// when it is closed.
func SetupInMemory(ctx context.Context) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("opening in-memory database: %w", err)
	}

	// Every pooled connection would get its own empty in-memory database.
	conn.SetMaxOpenConns(1)

	db, err := database.NewDatabase(ctx, ":memory:", database.WithEngine(drivers.FromDB(conn)))
	if err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := seed(ctx, db); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("seeding in-memory database: %w", err)
	}

	return conn, nil
}
