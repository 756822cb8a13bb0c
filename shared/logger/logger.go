// Package logger sets up the global zerolog logger. Everything else logs
// through github.com/rs/zerolog/log directly.
package logger

import (
	"io"
	"os"
	"time"
	"todolist/config"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultLevel = zerolog.InfoLevel

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

// InitLogger logs everything to the console until Configure runs.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(console()).With().Timestamp().Logger()
}

// Configure applies SERVER_LOG_LEVEL and, when SERVER_LOG_FILE is set, tees
// the console into a rotated JSON file. Closing the result flushes the file.
func Configure(cfg *config.Config) io.Closer {
	zerolog.SetGlobalLevel(level(cfg.Server.LogLevel))

	if cfg.Server.Log.File == "" {
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   cfg.Server.Log.File,
		MaxSize:    cfg.Server.Log.MaxSizeMB,
		MaxBackups: cfg.Server.Log.MaxBackups,
		MaxAge:     cfg.Server.Log.MaxAgeDays,
		Compress:   cfg.Server.Log.Compress,
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console(), rotator)).With().Timestamp().Logger()
	log.Info().Str("file", cfg.Server.Log.File).Msg("File logging enabled")

	return rotator
}

func level(name string) zerolog.Level {
	if name == "" {
		return defaultLevel
	}

	lvl, err := zerolog.ParseLevel(name)
	if err != nil {
		log.Warn().Str("level", name).Msg("Unknown log level, using info")

		return defaultLevel
	}

	return lvl
}

// ErrorWithStack logs err with the stack of the caller.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
