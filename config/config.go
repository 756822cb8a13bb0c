// Package config reads the service configuration from the environment once.
// A .env file in the working directory is loaded first when present.
package config

import (
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

const envDevelopment = "development"

// Endpoint is one postgres server.
type Endpoint struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT"     default:"5432"`
	Username string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	Name     string `envconfig:"NAME"`
	SSLMode  string `envconfig:"SSL_MODE" default:"disable"`
}

type Log struct {
	File       string `envconfig:"FILE"`
	MaxSizeMB  int    `envconfig:"MAX_SIZE_MB"  default:"100"`
	MaxBackups int    `envconfig:"MAX_BACKUPS"  default:"3"`
	MaxAgeDays int    `envconfig:"MAX_AGE_DAYS" default:"28"`
	Compress   bool   `envconfig:"COMPRESS"`
}

type Shutdown struct {
	CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS" default:"10"`
	GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"   default:"5"`
}

type CORS struct {
	Enable           bool     `envconfig:"ENABLE"`
	AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
	AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS" default:"Authorization,Content-Type"`
	AllowedMethods   []string `envconfig:"ALLOWED_METHODS" default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS" default:"*"`
	MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS" default:"300"`
}

type RateLimiter struct {
	Enable        bool `envconfig:"ENABLE"`
	MaxRequests   int  `envconfig:"MAX_REQUESTS"   default:"100"`
	WindowSeconds int  `envconfig:"WINDOW_SECONDS" default:"60"`
}

type Config struct {
	Server struct {
		Env      string   `envconfig:"ENV"       default:"production"`
		LogLevel string   `envconfig:"LOG_LEVEL" default:"info"`
		Host     string   `envconfig:"HOST"`
		Port     string   `envconfig:"PORT"      default:"8080"`
		Log      Log      `envconfig:"LOG"`
		Shutdown Shutdown `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name        string      `envconfig:"NAME"     default:"todolist"`
		Timezone    string      `envconfig:"TIMEZONE" default:"UTC"`
		CORS        CORS        `envconfig:"CORS"`
		RateLimiter RateLimiter `envconfig:"RATE_LIMITER"`
		Swagger     struct {
			Enable bool `envconfig:"ENABLE"`
		} `envconfig:"SWAGGER"`
	} `envconfig:"APP"`

	Auth struct {
		Realm string `envconfig:"REALM" default:"To do list"`
	} `envconfig:"AUTH"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST" default:"localhost"`
				Port     string `envconfig:"PORT" default:"6379"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
	} `envconfig:"CACHE"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"  default:"15"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN" default:"10080"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry       int    `envconfig:"MAX_RETRY"       default:"5"`
			RetryWaitTime  int    `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MigrationTable string `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			MigrationPath  string `envconfig:"MIGRATION_PATH"`
			AutoMigrate    bool   `envconfig:"AUTO_MIGRATE"`
			Prefix         string `envconfig:"PREFIX"`
			// Read may be left empty to read from Write.
			Read  Endpoint `envconfig:"READ"`
			Write Endpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint string `envconfig:"ENDPOINT"`
		} `envconfig:"OTEL"`
	} `envconfig:"EXTERNAL"`
}

// IsDevelopment turns off the graceful shutdown periods.
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == envDevelopment
}

// Load reads the environment into a fresh Config.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Debug().Err(err).Msg("No .env file loaded, using the process environment")
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return cfg, nil
}

var get = sync.OnceValue(func() *Config {
	cfg, err := Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to process environment variables")
	}

	log.Info().Str("env", cfg.Server.Env).Msg("Service configuration initialized")

	return cfg
})

// Get returns the process wide configuration.
func Get() *Config {
	return get()
}
