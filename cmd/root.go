// Package cmd assembles the novi command tree
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/app"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/configcmd"
	"github.com/thenoetrevino/novi/internal/cli/invoke"
	"github.com/thenoetrevino/novi/internal/cli/lmcp"
	"github.com/thenoetrevino/novi/internal/cli/migrate"
	"github.com/thenoetrevino/novi/internal/cli/sameday"
	"github.com/thenoetrevino/novi/internal/cli/serve"
	"github.com/thenoetrevino/novi/internal/cli/station"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/config"
	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/logging"
)

// NewRootCmd builds the full command tree. Each call returns fresh commands
// so tests can execute it repeatedly.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "novi",
		Short: "Novi - station and task records for delivery planning",
		Long: `Novi keeps delivery stations, same-day route tasks and LMCP adjustment
tasks in a local SQLite database, and serves them to the desktop shell.`,
		SilenceUsage:       true,
		SilenceErrors:      true,
		PersistentPreRunE:  setup,
		PersistentPostRunE: teardown,
	}

	rootCmd.PersistentFlags().String("db", "", "Database path (overrides config and environment)")

	rootCmd.AddCommand(station.StationCmd())
	rootCmd.AddCommand(sameday.SameDayCmd())
	rootCmd.AddCommand(lmcp.LMCPCmd())
	rootCmd.AddCommand(invoke.InvokeCmd())
	rootCmd.AddCommand(serve.ServeCmd())
	rootCmd.AddCommand(migrate.MigrateCmd())
	rootCmd.AddCommand(configcmd.ConfigCmd())

	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cli.NewUsageError("%v", err)
	})

	return rootCmd
}

// Execute runs the command tree against os.Args
func Execute() error {
	return NewRootCmd().Execute()
}

// setup loads configuration, starts logging, prepares the database and
// stores the CLI on the command context
func setup(cmd *cobra.Command, _ []string) error {
	if isBuiltin(cmd) {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logging.Init(cfg.LogDir(), cfg.SlogLevel()); err != nil {
		return fmt.Errorf("failed to initialize logging: %w", err)
	}
	styles.Init(cfg.ColorScheme)

	dbFlag, _ := cmd.Flags().GetString("db")
	path := cfg.DatabasePath(dbFlag)
	if err := ensureDir(cfg.DataDir, path); err != nil {
		return err
	}

	provider := database.NewProvider(path)
	if !skipsMigrations(cmd) {
		db, err := database.InitDB(cmd.Context(), provider)
		if err != nil {
			slog.Error("database initialization failed", "path", path, "error", err)
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}

	c := cli.NewCLI(cfg, provider, app.WithLogger(slog.Default()))
	cmd.SetContext(cli.WithCLI(cmd.Context(), c))
	return nil
}

func teardown(cmd *cobra.Command, _ []string) error {
	c, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return nil
	}
	return c.Close()
}

// ensureDir creates the data directory and, for plain file paths, the
// database's parent directory
func ensureDir(dataDir, dbPath string) error {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}
	if strings.HasPrefix(dbPath, "file:") || strings.HasPrefix(dbPath, "sqlite://") {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// skipsMigrations reports whether cmd or one of its parents opted out of
// automatic migration
func skipsMigrations(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations[cli.SkipMigrationsAnnotation] == "true" {
			return true
		}
	}
	return false
}

// isBuiltin reports cobra's own help and completion commands
func isBuiltin(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "help", "completion", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
			return true
		}
	}
	return false
}
