package lmcp

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
)

// ListCmd returns the lmcp list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List LMCP adjustment tasks",
		Args:    cobra.NoArgs,
		RunE:    handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	tasks, err := cliInstance.App.LMCPService.GetAllLMCPTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("lmcp task list error: %w", err)
	}

	if tasks == nil {
		return taskList{}, nil
	}
	return taskList(tasks), nil
}
