package drivers

import "database/sql"

// FromDB wraps an already open *sql.DB as a Driver. Used for in-memory
// fixture connections and for tests backed by sqlmock.
func FromDB(db *sql.DB) Driver {
	return &BaseDriver{DB: db}
}
