// Package testmap creates, resets and reads the example map database: a
// small SQLite road network used as a deterministic fixture by OpenLR
// decoder tests and demos.
package testmap

import (
	"context"

	"github.com/lucasvillarinho/testmap/testdb"
)

// Setup creates and populates a fresh example map database at path.
func Setup(ctx context.Context, path string, opts ...testdb.Option) error {
	return testdb.Setup(ctx, path, opts...)
}

// Remove deletes the database file at path. A missing file is not an error.
func Remove(path string) error {
	return testdb.Remove(path)
}

// Reset removes the database file at path and sets up a fresh one.
func Reset(ctx context.Context, path string, opts ...testdb.Option) error {
	return testdb.Reset(ctx, path, opts...)
}
