// Package configcmd holds the cli commands that manage the config file
// e.g., novi config ...
package configcmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/config"
)

// ConfigCmd returns the config parent command
func ConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:         "config",
		Short:       "Manage the novi config file",
		Annotations: map[string]string{cli.SkipMigrationsAnnotation: "true"},
	}

	cmd.AddCommand(initCmd())

	return cmd
}

func initCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write the resolved configuration to the config file",
		Long: `Write the resolved configuration to the config file.

The written file holds the values this invocation resolved: file values,
environment overrides and defaults. An existing file is only replaced
with --force.
`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.SkipMigrationsAnnotation: "true"},
		RunE:        handler.SimpleCommand(&initHandler{}),
	}

	cmd.Flags().Bool("force", false, "Overwrite an existing config file")
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (path only)")

	return cmd
}

type initHandler struct{}

// Execute implements the Handler interface
func (h *initHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	path, err := config.Path()
	if err != nil {
		return nil, err
	}

	_, statErr := os.Stat(path)
	exists := statErr == nil
	if statErr != nil && !errors.Is(statErr, os.ErrNotExist) {
		return nil, statErr
	}
	if exists && !args.GetBool("force") {
		return nil, cli.NewUsageError("config file %s already exists (use --force to overwrite)", path)
	}

	if err := cliInstance.Config.Save(); err != nil {
		return nil, fmt.Errorf("failed to write config: %w", err)
	}

	return &initResult{Path: path, Replaced: exists}, nil
}

type initResult struct {
	Path     string `json:"path"`
	Replaced bool   `json:"replaced"`
}

// QuietString implements cli.Quieter
func (r *initResult) QuietString() string {
	return r.Path
}

// Render implements cli.Renderer
func (r *initResult) Render() string {
	verb := "Wrote"
	if r.Replaced {
		verb = "Replaced"
	}
	return styles.Success("%s %s", verb, r.Path) + "\n"
}
