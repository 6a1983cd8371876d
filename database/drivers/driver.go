package drivers

import (
	"context"
	"database/sql"
)

// Driver abstracts the SQLite driver behind the database package, so the
// engine can be switched between the cgo and the pure-Go implementation.
type Driver interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	Begin() (*sql.Tx, error)
	Close() error
}

// BaseDriver is a base implementation that satisfies the Driver interface.
type BaseDriver struct {
	DB *sql.DB
}

// ExecContext executes a command that does not return rows, such as INSERT,
// UPDATE, or DELETE.
func (d *BaseDriver) ExecContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (sql.Result, error) {
	return d.DB.ExecContext(ctx, query, args...)
}

// QueryContext executes a query that returns rows.
func (d *BaseDriver) QueryContext(
	ctx context.Context,
	query string,
	args ...interface{},
) (*sql.Rows, error) {
	return d.DB.QueryContext(ctx, query, args...)
}

// QueryRowContext executes a SELECT command that returns a single row.
func (d *BaseDriver) QueryRowContext(
	ctx context.Context,
	query string,
	args ...interface{},
) *sql.Row {
	return d.DB.QueryRowContext(ctx, query, args...)
}

// Begin starts a new transaction.
func (d *BaseDriver) Begin() (*sql.Tx, error) {
	return d.DB.Begin()
}

// Close closes the database connection.
func (d *BaseDriver) Close() error {
	return d.DB.Close()
}
