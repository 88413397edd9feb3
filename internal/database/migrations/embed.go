// Package migrations embeds the per-dialect SQL migrations applied by goose.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
