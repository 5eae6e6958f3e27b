package station

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli/handler"
)

// AddCmd returns the station add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "add [code]",
		Aliases: []string{"insert"},
		Short:   "Add a station",
		Long: `Add a station by its code.

Examples:
  # Add a station (human-readable output)
  novi station add DAB5

  # Same, with the flag form
  novi station add --code=DAB5

  # Quiet mode prints the number of rows inserted
  novi station add DAB5 --quiet
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(&addHandler{}),
	}

	cmd.Flags().String("code", "", "Station code")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (row count only)")

	return cmd
}

// addHandler implements handler.Handler for station insertion
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	code, err := codeFromArgs(args)
	if err != nil {
		return nil, err
	}

	cliInstance, err := stationCLI(ctx)
	if err != nil {
		return nil, err
	}

	n, err := cliInstance.App.StationService.InsertStation(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("station insert error: %w", err)
	}

	return &countResult{Action: "Inserted", StationCode: code, Count: n}, nil
}
