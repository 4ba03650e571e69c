// Package migrations embeds the schema applied on store open.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
