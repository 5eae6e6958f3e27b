package station

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli/handler"
)

// DeleteCmd returns the station delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "delete [code]",
		Aliases: []string{"rm"},
		Short:   "Delete a station",
		Long: `Delete a station by its code.

Deleting a code that does not exist is not an error; it reports 0 rows.
A station that still has tasks cannot be deleted.

Examples:
  novi station delete DAB5
  novi station delete --code=DAB5 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.SimpleCommand(&deleteHandler{}),
	}

	cmd.Flags().String("code", "", "Station code")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (row count only)")

	return cmd
}

// deleteHandler implements handler.Handler for station deletion
type deleteHandler struct{}

// Execute implements the Handler interface
func (h *deleteHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	code, err := codeFromArgs(args)
	if err != nil {
		return nil, err
	}

	cliInstance, err := stationCLI(ctx)
	if err != nil {
		return nil, err
	}

	n, err := cliInstance.App.StationService.DeleteStation(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("station delete error: %w", err)
	}

	return &countResult{Action: "Deleted", StationCode: code, Count: n}, nil
}
