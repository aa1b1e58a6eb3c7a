package postgres

import "embed"

// MigrationsFS embeds the goose migration files so the server binary can
// bring a fresh database up to the current schema without shipping SQL
// files alongside it.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration files inside MigrationsFS.
const MigrationsDir = "migrations"
