package cmd

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/config"
	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/logging"
	"github.com/thenoetrevino/novi/internal/testutil"
)

// isolate points config, data and database resolution at temp dirs
func isolate(t *testing.T) string {
	t.Helper()

	dataDir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv(config.EnvDataDir, dataDir)
	t.Setenv(config.EnvDatabaseURL, "")
	t.Setenv(config.EnvLegacyDatabaseURL, "")
	t.Setenv(config.EnvThemeFile, "")
	return dataDir
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := NewRootCmd()
	root.SetArgs(args)

	var err error
	out := testutil.CaptureOutput(t, func() {
		err = root.Execute()
	})
	return out, err
}

func TestRoot_DefaultDatabaseInDataDir(t *testing.T) {
	dataDir := isolate(t)

	out, err := run(t, "station", "add", "ABC1", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "1", strings.TrimSpace(out))

	assert.FileExists(t, filepath.Join(dataDir, database.DatabaseFileName))
	assert.FileExists(t, filepath.Join(dataDir, "logs", logging.FileName))

	out, err = run(t, "station", "list", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "ABC1", strings.TrimSpace(out))
}

func TestRoot_DBFlagWinsOverEnvironment(t *testing.T) {
	isolate(t)
	envDB := filepath.Join(t.TempDir(), "env.db")
	flagDB := filepath.Join(t.TempDir(), "nested", "flag.db")
	t.Setenv(config.EnvDatabaseURL, envDB)

	_, err := run(t, "--db", flagDB, "station", "add", "FLAG1", "--quiet")
	require.NoError(t, err)
	assert.FileExists(t, flagDB)
	assert.NoFileExists(t, envDB)

	_, err = run(t, "station", "add", "ENV1", "--quiet")
	require.NoError(t, err)
	assert.FileExists(t, envDB)
}

func TestRoot_MigrateStatusDoesNotMigrate(t *testing.T) {
	isolate(t)
	dbPath := filepath.Join(t.TempDir(), "fresh.db")

	out, err := run(t, "--db", dbPath, "migrate", "status", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, "0", strings.TrimSpace(out))

	out, err = run(t, "--db", dbPath, "migrate", "up", "--quiet")
	require.NoError(t, err)
	latest, err := database.LatestMigrationVersion()
	require.NoError(t, err)
	assert.Equal(t, latest, parseUint(t, out))
}

func TestRoot_ErrorsMapToExitCodes(t *testing.T) {
	isolate(t)

	_, err := run(t, "station", "add", "--bogus")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	_, err = run(t, "station", "add", "--code", "")
	require.Error(t, err)
	assert.Equal(t, cli.ExitValidation, cli.ExitCodeFor(err))

	_, err = run(t, "invoke", "nope")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
}

func TestRoot_HelpSkipsSetup(t *testing.T) {
	dataDir := isolate(t)

	_, err := run(t, "help")
	require.NoError(t, err)
	assert.NoFileExists(t, filepath.Join(dataDir, database.DatabaseFileName))
}

func TestRoot_Subcommands(t *testing.T) {
	root := NewRootCmd()

	var names []string
	for _, c := range root.Commands() {
		names = append(names, c.Name())
	}
	assert.Subset(t, names, []string{"station", "sameday", "lmcp", "invoke", "serve", "migrate", "config"})
}

func parseUint(t *testing.T, s string) uint {
	t.Helper()
	var v uint
	_, err := fmt.Sscanf(strings.TrimSpace(s), "%d", &v)
	require.NoError(t, err)
	return v
}
