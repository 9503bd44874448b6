// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// FS embeds all SQL migration files in this directory.
// They evolve tables created by repository.Initialize from the catalog,
// so they must run after it.
//
//go:embed *.sql
var FS embed.FS
