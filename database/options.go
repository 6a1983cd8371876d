package database

import "github.com/lucasvillarinho/testmap/database/drivers"

type config struct {
	driver Driver
}

// Option configures a database instance.
type Option func(*database, *config)

// WithDriver selects the SQLite driver backing the database.
func WithDriver(driver Driver) Option {
	return func(db *database, cfg *config) {
		cfg.driver = driver
	}
}

// WithEngine sets the database engine directly, bypassing driver selection.
// Used to wrap an already open connection, e.g. an in-memory one.
func WithEngine(engine drivers.Driver) Option {
	return func(db *database, cfg *config) {
		db.engine = engine
	}
}
