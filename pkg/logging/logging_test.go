package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)
			t.Setenv(EnvLogFile, "")

			SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, "fmlabel", "fmlabel.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestLevelFor(t *testing.T) {
	assert.Equal(t, zerolog.WarnLevel, LevelFor(-1))
	assert.Equal(t, zerolog.WarnLevel, LevelFor(0))
	assert.Equal(t, zerolog.DebugLevel, LevelFor(2))
	assert.Equal(t, zerolog.TraceLevel, LevelFor(9))
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv(EnvLogFile, "")

	t.Run("explicit file", func(t *testing.T) {
		t.Setenv(EnvLogFile, "/tmp/labels.log")
		assert.Equal(t, "/tmp/labels.log", getLogFilePath())
	})

	t.Run("with XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "/custom/state")
		assert.Equal(t, filepath.Join("/custom/state", "fmlabel", "fmlabel.log"), getLogFilePath())
	})

	t.Run("without XDG_STATE_HOME", func(t *testing.T) {
		t.Setenv("XDG_STATE_HOME", "")
		got := getLogFilePath()
		assert.Contains(t, filepath.ToSlash(got), ".local/state/fmlabel/fmlabel.log")
	})
}

func TestGetLoggerAddsComponent(t *testing.T) {
	var buf bytes.Buffer
	saved := log.Logger
	defer func() { log.Logger = saved }()
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(&buf)
	logger := WithSession(GetLogger("synchronizer"), "abc")
	logger.Info().Msg("hello")

	out := buf.String()
	assert.Contains(t, out, `"component":"synchronizer"`)
	assert.Contains(t, out, `"session":"abc"`)
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "refresh-all")
	done()

	out := buf.String()
	assert.Contains(t, out, "Operation started")
	assert.Contains(t, out, "Operation completed")
	assert.Contains(t, out, "refresh-all")
	assert.Contains(t, out, "duration")
}
