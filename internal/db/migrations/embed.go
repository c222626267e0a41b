// filepath: internal/db/migrations/embed.go
package migrations

import "embed"

// FS holds the schema migrations shipped inside the binary, so a fresh
// deployment needs no external SQL files.
//
//go:embed *.sql
var FS embed.FS
