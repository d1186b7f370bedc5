package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arthur-debert/pkgls/pkg/logging"
	"github.com/arthur-debert/pkgls/pkg/paths"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLoggerVerbosityLevels(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())

	tests := []struct {
		verbosity int
		level     zerolog.Level
	}{
		{0, zerolog.WarnLevel},
		{1, zerolog.InfoLevel},
		{2, zerolog.DebugLevel},
		{3, zerolog.TraceLevel},
		{5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		logging.SetupLogger(tt.verbosity)
		assert.Equal(t, tt.level, zerolog.GlobalLevel(), "verbosity %d", tt.verbosity)
	}
}

func TestSetupLoggerCreatesLogFile(t *testing.T) {
	stateDir := t.TempDir()
	t.Setenv(paths.EnvStateDir, stateDir)

	logging.SetupLogger(1)

	_, err := os.Stat(filepath.Join(stateDir, paths.LogFileName))
	require.NoError(t, err)
}

func TestGetLogger(t *testing.T) {
	t.Setenv(paths.EnvStateDir, t.TempDir())
	logging.SetupLogger(0)

	logger := logging.GetLogger("filter")
	// Logging must not panic and the logger must be usable
	logger.Debug().Str("key", "value").Msg("component logger works")
}
