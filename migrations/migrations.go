// Package migrations embeds the schema so the binary and the tests share one copy.
package migrations

import "embed"

//go:embed postgres/*.sql
var Postgres embed.FS

const PostgresDir = "postgres"
