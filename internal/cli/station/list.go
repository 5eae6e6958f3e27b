package station

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli/handler"
)

// ListCmd returns the station list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List stations",
		Long: `List every station in insertion order.

Examples:
  novi station list
  novi station list --json

  # One code per line
  novi station list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.SimpleCommand(handler.HandlerFunc(runList)),
	}

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (codes only)")

	return cmd
}

func runList(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := stationCLI(ctx)
	if err != nil {
		return nil, err
	}

	stations, err := cliInstance.App.StationService.GetStations(ctx)
	if err != nil {
		return nil, fmt.Errorf("station list error: %w", err)
	}

	if stations == nil {
		return stationList{}, nil
	}
	return stationList(stations), nil
}
