// Package migrations embeds the SQL schema so both binaries can ensure it
// without shipping the files next to them.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
