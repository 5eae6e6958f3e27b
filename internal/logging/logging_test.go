package logging

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_WritesToFile(t *testing.T) {
	prevLogger := slog.Default()
	prevWriter := log.Writer()
	t.Cleanup(func() {
		slog.SetDefault(prevLogger)
		log.SetOutput(prevWriter)
	})

	dir := filepath.Join(t.TempDir(), "logs")
	require.NoError(t, Init(dir, slog.LevelInfo))

	slog.Info("Inserted 1 lines into station table.")
	slog.Debug("hidden at info level")

	data, err := os.ReadFile(filepath.Join(dir, FileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Inserted 1 lines into station table.")
	assert.NotContains(t, string(data), "hidden at info level")
	assert.NotSame(t, prevLogger, slog.Default())
}

func TestInit_UnwritableDir(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	assert.Error(t, Init(filepath.Join(blocker, "logs"), slog.LevelInfo))
}
