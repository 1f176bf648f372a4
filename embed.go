package mindfulchat

import "embed"

// MigrationsFS holds the SQL migrations applied to the local store at startup.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS
