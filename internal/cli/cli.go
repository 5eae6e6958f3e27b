// Package cli holds the shared plumbing for the novi command line: the
// per-invocation CLI context, output formatting and exit codes.
package cli

import (
	"github.com/thenoetrevino/novi/internal/app"
	"github.com/thenoetrevino/novi/internal/commands"
	"github.com/thenoetrevino/novi/internal/config"
	"github.com/thenoetrevino/novi/internal/database"
)

// CLI represents the CLI application context
type CLI struct {
	App      *app.App           // Application container with services
	Registry *commands.Registry // Named operations for invoke/serve
	Config   *config.Config     // Resolved user configuration
	Provider *database.Provider // Connection source for the resolved database path
}

// NewCLI wires the application container for one CLI invocation.
// The database is expected to be migrated already.
func NewCLI(cfg *config.Config, provider *database.Provider, opts ...app.Option) *CLI {
	application := app.New(provider, opts...)

	return &CLI{
		App:      application,
		Registry: commands.NewRegistry(application),
		Config:   cfg,
		Provider: provider,
	}
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	return c.App.Close()
}

// SkipMigrationsAnnotation marks commands the root command must not
// auto-migrate for, such as the migrate commands themselves
const SkipMigrationsAnnotation = "novi/skip-migrations"
