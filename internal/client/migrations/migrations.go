// Package migrations embeds the console's local sqlite schema.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
