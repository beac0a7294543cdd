// Package diabetes holds assets shared by the binaries of the diabetes
// prediction service.
package diabetes

import "embed"

// MigrationsDir is the directory of the goose migrations inside Migrations.
const MigrationsDir = "migrations"

// Migrations contains the goose SQL migrations of the prediction history.
//
//go:embed migrations/*.sql
var Migrations embed.FS
