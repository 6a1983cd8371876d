package database

import (
	"fmt"

	"github.com/lucasvillarinho/testmap/database/drivers"
)

// Driver selects the SQLite driver backing a database.
type Driver string

const (
	// DriverMattn is "github.com/mattn/go-sqlite3".
	DriverMattn Driver = "mattn"
	// DriverModernc is "modernc.org/sqlite".
	DriverModernc Driver = "modernc"
)

var supportedDrivers = map[Driver]func(string) (drivers.Driver, error){
	DriverMattn:   drivers.NewMattnDriver,
	DriverModernc: drivers.NewModerncDriver,
}

// ParseDriver validates a driver name, e.g. from a flag or a config file.
func ParseDriver(name string) (Driver, error) {
	driver := Driver(name)
	if _, ok := supportedDrivers[driver]; !ok {
		return "", fmt.Errorf("unsupported driver type: %s", name)
	}
	return driver, nil
}

// NewEngine creates a new database engine with the given driver and DSN.
func NewEngine(dt Driver, dsn string) (drivers.Driver, error) {
	createDriverFunc, exists := supportedDrivers[dt]
	if !exists {
		return nil, fmt.Errorf("unsupported driver type: %s", dt)
	}

	driver, err := createDriverFunc(dsn)
	if err != nil {
		return nil, fmt.Errorf("error creating driver: %w", err)
	}

	return driver, nil
}
