// Package testutil opens throwaway databases for repository and service tests.
package testutil

import (
	"fmt"
	"io/fs"
	"slices"
	"strings"
	"sync/atomic"
	"testing"
	"todolist/infras/postgres"
	"todolist/migrations"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

const driverName = "sqlite"

var dbCounter atomic.Int64

func init() {
	sqlx.BindDriver(driverName, sqlx.QUESTION)
}

// NewConnection opens a private in-memory SQLite database with the up
// migrations applied and returns it as both read and write connection.
// It is closed when the test completes.
func NewConnection(t *testing.T) *postgres.Connection {
	t.Helper()

	dsn := fmt.Sprintf("file:todolist%d?mode=memory&cache=shared&_pragma=foreign_keys(1)&_time_format=sqlite", dbCounter.Add(1))

	db, err := sqlx.Open(driverName, dsn)
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	// a single connection keeps every statement on the same in-memory database
	db.SetMaxOpenConns(1)

	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Errorf("closing test database: %v", err)
		}
	})

	if err := applyMigrations(db); err != nil {
		t.Fatalf("applying migrations: %v", err)
	}

	return &postgres.Connection{
		Read:  db,
		Write: db,
	}
}

func applyMigrations(db *sqlx.DB) error {
	files, err := fs.Glob(migrations.Postgres, migrations.PostgresDir+"/*.up.sql")
	if err != nil {
		return fmt.Errorf("listing migrations: %w", err)
	}

	slices.Sort(files)

	for _, file := range files {
		content, err := fs.ReadFile(migrations.Postgres, file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", file, err)
		}

		for _, statement := range strings.Split(string(content), ";") {
			if strings.TrimSpace(statement) == "" {
				continue
			}

			if _, err := db.Exec(statement); err != nil {
				return fmt.Errorf("applying %s: %w", file, err)
			}
		}
	}

	return nil
}
