//go:build cgo_sqlite

package sqlite

import (
	_ "github.com/mattn/go-sqlite3" // CGO SQLite driver
)

const (
	driverName       = "sqlite3"
	driverType       = "cgo"
	foreignKeysParam = "_foreign_keys=on"
)
