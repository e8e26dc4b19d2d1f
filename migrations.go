// Package terms resolves loosely typed term references into taxonomy term
// objects. The root package only carries the embedded database migrations.
package terms

import "embed"

// Migrations holds the goose migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
