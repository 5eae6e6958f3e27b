package configcmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/config"
	clitest "github.com/thenoetrevino/novi/internal/testutil/cli"
)

func run(t *testing.T, c *cli.CLI, args ...string) (string, error) {
	t.Helper()
	return clitest.ExecuteCLICommand(t, c, ConfigCmd(), args)
}

// isolateConfig points config lookups at a fresh directory
func isolateConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv(config.EnvDatabaseURL, "")
	t.Setenv(config.EnvLegacyDatabaseURL, "")
	t.Setenv(config.EnvThemeFile, "")
	t.Setenv(config.EnvDataDir, "")
	return filepath.Join(dir, config.AppName, "config.yaml")
}

func TestConfigInit_WritesResolvedConfig(t *testing.T) {
	want := isolateConfig(t)
	_, c := clitest.SetupCLITest(t)

	output, err := run(t, c, "init", "--quiet")
	require.NoError(t, err)
	assert.Equal(t, want, strings.TrimSpace(output))

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, c.Config.DatabaseURL, loaded.DatabaseURL)
	assert.Equal(t, c.Config.DataDir, loaded.DataDir)
	assert.Equal(t, c.Config.SocketPath, loaded.SocketPath)
}

func TestConfigInit_RefusesToOverwrite(t *testing.T) {
	path := isolateConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("log_level: debug\n"), 0o644))
	_, c := clitest.SetupCLITest(t)

	_, err := run(t, c, "init")
	require.Error(t, err)
	assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "log_level: debug\n", string(data), "file must be left alone")

	output, err := run(t, c, "init", "--force", "--json")
	require.NoError(t, err)
	result := clitest.ParseJSON(t, output)["data"].(map[string]any)
	assert.Equal(t, path, result["path"])
	assert.Equal(t, true, result["replaced"])

	loaded, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "error", loaded.LogLevel)
}

func TestConfigCmd_SkipsAutoMigration(t *testing.T) {
	cmd := ConfigCmd()
	assert.Equal(t, "true", cmd.Annotations[cli.SkipMigrationsAnnotation])
}
