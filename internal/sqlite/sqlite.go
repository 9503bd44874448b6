// Package sqlite opens SQLite databases with the driver selected at build time.
//
// Build modes:
//   - Default: pure Go modernc.org/sqlite
//   - -tags cgo_sqlite (CGO_ENABLED=1): github.com/mattn/go-sqlite3
//
// Every connection opened through Open enforces foreign key constraints.
package sqlite

import (
	"database/sql"
	"strings"
)

// DriverName returns the database/sql driver name in use.
func DriverName() string {
	return driverName
}

// DriverType returns "purego" or "cgo".
func DriverType() string {
	return driverType
}

// DSN appends the driver's foreign key parameter to path.
func DSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + foreignKeysParam
}

// Open opens the database at path with foreign keys enabled.
func Open(path string) (*sql.DB, error) {
	return sql.Open(driverName, DSN(path))
}
