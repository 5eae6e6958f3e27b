// Package cli holds helpers for command tests. It lives apart from testutil
// so service tests can import testutil without pulling in the cli package.
package cli

import (
	"testing"

	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/config"
	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/testutil"
)

// SetupCLITest migrates a temp database and returns its provider together
// with a CLI wired to it
func SetupCLITest(t *testing.T) (*database.Provider, *cli.CLI) {
	t.Helper()

	p := testutil.SetupTestProvider(t)
	cfg := &config.Config{
		DataDir:     t.TempDir(),
		DatabaseURL: p.Path(),
		SocketPath:  testutil.GetTestSocketPath(t),
		LogLevel:    "error",
		ColorScheme: config.DefaultColorScheme(),
	}

	c := cli.NewCLI(cfg, p)
	t.Cleanup(func() { _ = c.Close() })

	return p, c
}

// CreateTestStation wraps testutil.CreateTestStation for CLI tests
func CreateTestStation(t *testing.T, p *database.Provider, code string) {
	t.Helper()
	testutil.CreateTestStation(t, p, code)
}
