package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"todolist/config"
	"todolist/infras/postgres"
	"todolist/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/rs/zerolog/log"
)

const (
	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var errUnknownAction = errors.New("unknown migration action")

type step struct {
	run  func(mig *migrate.Migrate) error
	done string
}

var steps = map[string]step{
	ActionUp: {
		run:  func(mig *migrate.Migrate) error { return mig.Up() },
		done: "Database migrations completed successfully",
	},
	ActionStepUp: {
		run:  func(mig *migrate.Migrate) error { return mig.Steps(1) },
		done: "Next database migration applied",
	},
	ActionDown: {
		run:  func(mig *migrate.Migrate) error { return mig.Steps(-1) },
		done: "Last database migration rolled back",
	},
	ActionDrop: {
		run:  func(mig *migrate.Migrate) error { return mig.Down() },
		done: "Every database migration rolled back",
	},
	ActionVersion: {
		run:  logVersion,
		done: "Database migration version read",
	},
}

// Actions lists the accepted Runner actions in a stable order.
func Actions() []string {
	return slices.Sorted(maps.Keys(steps))
}

func connectionString(cfg *config.Config) string {
	connection := postgres.DSN(cfg, cfg.DB.Postgres.Write)

	if cfg.DB.Postgres.MigrationTable != "" {
		connection += "&x-migrations-table=" + cfg.DB.Postgres.MigrationTable
	}

	return connection
}

// open reads migrations from DB_POSTGRES_MIGRATION_PATH when set and from the
// copy embedded in the binary otherwise.
func open(cfg *config.Config) (*migrate.Migrate, error) {
	if cfg.DB.Postgres.MigrationPath != "" {
		return migrate.New(cfg.DB.Postgres.MigrationPath, connectionString(cfg)) //nolint:wrapcheck
	}

	source, err := iofs.New(migrations.Postgres, migrations.PostgresDir)
	if err != nil {
		return nil, fmt.Errorf("error reading embedded migrations: %w", err)
	}

	return migrate.NewWithSourceInstance("iofs", source, connectionString(cfg)) //nolint:wrapcheck
}

func logVersion(mig *migrate.Migrate) error {
	version, dirty, err := mig.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		log.Info().Msg("No migration applied yet")

		return nil
	}

	if err != nil {
		return err //nolint:wrapcheck
	}

	log.Info().Uint("version", version).Bool("dirty", dirty).Msg("Current migration")

	return nil
}

// Runner runs one migration action against the write database. Having
// nothing to do is not an error.
func Runner(cfg *config.Config, action string) error {
	s, ok := steps[action]
	if !ok {
		return fmt.Errorf("%w: %s", errUnknownAction, action)
	}

	mig, err := open(cfg)
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}
	defer mig.Close()

	if err := s.run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("error running %s migration: %w", action, err)
	}

	log.Info().Str("action", action).Msg(s.done)

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, ActionUp)
}
