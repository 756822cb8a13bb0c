package postgres

//nolint:revive
import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"
	"todolist/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName                = "postgres"
	postgresMaxIdleConnection = 10
	postgresMaxOpenConnection = 10
)

// Connection holds the pools used for reads and for writes. Both point to the
// same pool when no separate read host is configured.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// DSN is the lib/pq connection URL for one endpoint, with the configured
// database name prefix applied.
func DSN(cfg *config.Config, e config.Endpoint) string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s/%s?sslmode=%s",
		e.Username,
		e.Password,
		net.JoinHostPort(e.Host, e.Port),
		cfg.DB.Postgres.Prefix+e.Name,
		e.SSLMode,
	)
}

func New(cfg *config.Config) *Connection {
	pg := cfg.DB.Postgres

	write := connect(cfg, "write", pg.Write)
	if pg.Read.Host == "" {
		return &Connection{Read: write, Write: write}
	}

	return &Connection{Read: connect(cfg, "read", pg.Read), Write: write}
}

// Ping checks that every pool answers.
func (c *Connection) Ping(ctx context.Context) error {
	if err := c.Write.PingContext(ctx); err != nil {
		return fmt.Errorf("write database: %w", err)
	}

	if c.Read == c.Write {
		return nil
	}

	if err := c.Read.PingContext(ctx); err != nil {
		return fmt.Errorf("read database: %w", err)
	}

	return nil
}

func (c *Connection) Close() error {
	err := c.Write.Close()
	if c.Read != c.Write {
		err = errors.Join(err, c.Read.Close())
	}

	return err
}

// connect retries until the database answers and exits the process when it
// never does.
func connect(cfg *config.Config, name string, e config.Endpoint) *sqlx.DB {
	pg := cfg.DB.Postgres
	logger := log.With().
		Str("name", name).
		Str("host", e.Host).
		Str("port", e.Port).
		Str("dbName", pg.Prefix+e.Name).
		Logger()

	for attempt := range max(pg.MaxRetry, 1) {
		sqlDB, err := sqlx.Connect(driverName, DSN(cfg, e))
		if err == nil {
			logger.Info().Msg("Connected to database")

			sqlDB.SetMaxIdleConns(postgresMaxIdleConnection)
			sqlDB.SetMaxOpenConns(postgresMaxOpenConnection)

			return sqlDB
		}

		logger.Error().Err(err).Int("attempt", attempt+1).Msg("Failed connecting to database, retrying")

		time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
	}

	logger.Fatal().Msg("Giving up connecting to database")

	return nil
}
