//go:build !cgo_sqlite

package sqlite

import (
	_ "modernc.org/sqlite" // pure Go SQLite driver
)

const (
	driverName       = "sqlite"
	driverType       = "purego"
	foreignKeysParam = "_pragma=foreign_keys(1)"
)
