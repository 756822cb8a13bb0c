package logger_test

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"todolist/config"
	"todolist/shared/logger"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restore puts the global logger back after a test changes it.
func restore(t *testing.T) {
	t.Helper()

	original := log.Logger
	level := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(level)
	})
}

func TestInitLogger(t *testing.T) {
	restore(t)

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	restore(t)

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("failed to insert todo"))

	assert.Contains(t, buf.String(), "failed to insert todo")
	assert.Contains(t, buf.String(), `"level":"error"`)
}

func TestConfigure_Level(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{name: "debug", level: "debug", expected: zerolog.DebugLevel},
		{name: "warn", level: "warn", expected: zerolog.WarnLevel},
		{name: "disabled", level: "disabled", expected: zerolog.Disabled},
		{name: "empty uses info", level: "", expected: zerolog.InfoLevel},
		{name: "unknown uses info", level: "chatty", expected: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			restore(t)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.level

			closer := logger.Configure(cfg)
			require.NoError(t, closer.Close())

			assert.Equal(t, tt.expected, zerolog.GlobalLevel())
		})
	}
}

func TestConfigure_File(t *testing.T) {
	restore(t)

	path := filepath.Join(t.TempDir(), "todolist.log")

	cfg := &config.Config{}
	cfg.Server.LogLevel = "info"
	cfg.Server.Log.File = path
	cfg.Server.Log.MaxSizeMB = 1

	closer := logger.Configure(cfg)
	log.Info().Str("owner", "alice").Msg("todo created")
	log.Debug().Msg("dropped below the level")
	require.NoError(t, closer.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(content), "todo created")
	assert.Contains(t, string(content), `"owner":"alice"`)
	assert.NotContains(t, string(content), "dropped below the level")
}
