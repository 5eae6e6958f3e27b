package sameday

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
	"github.com/thenoetrevino/novi/internal/models"
	samedayservice "github.com/thenoetrevino/novi/internal/services/sameday"
)

// AddCmd returns the sameday add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a same-day route task",
		Long: `Record a same-day route task for a station.

Fields come from flags, from a JSON file given with --file, or both; flags
set on the command line override values read from the file.

Examples:
  novi sameday add --station=DAB5 --type=Single --start=2024-01-01 \
    --dpo-complete=2024-01-01 --end=2024-01-02 --buffer=10 \
    --dpo-link=https://example.com --tba-routed=5 --routes=2

  # Payload from stdin, printing only the new ID
  cat task.json | novi sameday add --file - --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(&addHandler{}, parseAddFlags),
	}

	cmd.Flags().String("file", "", "Read the task as JSON from a file, or - for stdin")
	cmd.Flags().String("station", "", "Station code")
	cmd.Flags().String("start", "", "Start time")
	cmd.Flags().String("dpo-complete", "", "DPO complete time")
	cmd.Flags().String("end", "", "End time")
	cmd.Flags().String("type", "", "Same-day type")
	cmd.Flags().Int("buffer", 0, "Buffer percent")
	cmd.Flags().String("dpo-link", "", "DPO link")
	cmd.Flags().Int("tba-routed", 0, "TBA routed count")
	cmd.Flags().Int("tba-submitted", 0, "TBA submitted count (omit to leave empty)")
	cmd.Flags().Int("routes", 0, "Route count")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")

	return cmd
}

// addHandler implements handler.Handler for same-day task insertion
type addHandler struct{}

// Execute implements the Handler interface
func (h *addHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	var task models.NewSameDayTask
	if args.Has("file") {
		if err := cli.DecodeTaskInput(args.GetString("file", ""), args.Stdin(), &task); err != nil {
			return nil, err
		}
	}
	applyFlags(&task, args)

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	id, err := cliInstance.App.SameDayService.InsertSameDayTask(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("same-day task insert error: %w", err)
	}

	return &cli.InsertResult{ID: id, Message: samedayservice.SuccessMessage}, nil
}

// applyFlags overlays the flags set on the command line onto task
func applyFlags(task *models.NewSameDayTask, args *handler.Arguments) {
	task.StationCode = args.GetString("station", task.StationCode)
	task.StartTime = args.GetString("start", task.StartTime)
	task.DpoCompleteTime = args.GetString("dpo-complete", task.DpoCompleteTime)
	task.EndTime = args.GetString("end", task.EndTime)
	task.SameDayType = args.GetString("type", task.SameDayType)
	task.BufferPercent = args.GetInt("buffer", task.BufferPercent)
	task.DpoLink = args.GetString("dpo-link", task.DpoLink)
	task.TbaRoutedCount = args.GetInt("tba-routed", task.TbaRoutedCount)
	task.RouteCount = args.GetInt("routes", task.RouteCount)
	if n := args.GetIntPtr("tba-submitted"); n != nil {
		task.TbaSubmittedCount = n
	}
}

func parseAddFlags(cmd *cobra.Command) error {
	file, _ := cmd.Flags().GetString("file")
	station, _ := cmd.Flags().GetString("station")
	if file == "" && station == "" {
		return cli.NewUsageError("either --file or --station is required")
	}
	return nil
}
