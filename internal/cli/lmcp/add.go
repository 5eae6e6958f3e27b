package lmcp

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
	"github.com/thenoetrevino/novi/internal/models"
	lmcpservice "github.com/thenoetrevino/novi/internal/services/lmcp"
)

// AddCmd returns the lmcp add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an LMCP adjustment task",
		Long: `Record an LMCP adjustment task read from a JSON file.

The payload uses the same field names as get_all_lmcp_tasks returns,
without the id. --station overrides the file's stationCode.

Examples:
  novi lmcp add --file task.json
  cat task.json | novi lmcp add --file - --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("file", "", "Read the task as JSON from a file, or - for stdin (required)")
	cmd.Flags().String("station", "", "Station code")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	var task models.NewLMCPTask
	if err := cli.DecodeTaskInput(args.GetString("file", ""), args.Stdin(), &task); err != nil {
		return nil, err
	}
	task.StationCode = args.GetString("station", task.StationCode)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	id, err := cliInstance.App.LMCPService.InsertLMCPTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("lmcp task insert error: %w", err)
	}

	return &cli.InsertResult{ID: id, Message: lmcpservice.SuccessMessage}, nil
}

func parseAddFlags(cmd *cobra.Command) error {
	if file, _ := cmd.Flags().GetString("file"); file == "" {
		return cli.NewUsageError("--file is required")
	}
	return nil
}
