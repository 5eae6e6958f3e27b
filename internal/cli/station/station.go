// Package station holds all cli commands related to stations
// e.g., novi station ...
package station

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/models"
)

// StationCmd returns the station parent command
func StationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "station",
		Short: "Manage stations",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())
	cmd.AddCommand(DeleteCmd())

	return cmd
}

// codeFromArgs takes the station code from the positional argument or --code.
// An explicitly empty value is passed through so the service can reject it.
func codeFromArgs(args *handler.Arguments) (string, error) {
	if len(args.Args) > 0 {
		return args.Args[0], nil
	}
	if args.Has("code") {
		return args.GetString("code", ""), nil
	}
	return "", cli.NewUsageError("station code is required: pass it as an argument or with --code")
}

// stationCLI resolves the CLI set up by the root command
func stationCLI(ctx context.Context) (*cli.CLI, error) {
	c, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}
	return c, nil
}

// countResult reports how many station rows a write touched
type countResult struct {
	Action      string `json:"action"`
	StationCode string `json:"stationCode"`
	Count       int64  `json:"count"`
}

// QuietString implements cli.Quieter
func (r *countResult) QuietString() string {
	return strconv.FormatInt(r.Count, 10)
}

// Render implements cli.Renderer
func (r *countResult) Render() string {
	preposition := "into"
	if r.Action == "Deleted" {
		preposition = "from"
	}
	return styles.Success("%s %d lines %s station table.", r.Action, r.Count, preposition) + "\n"
}

// stationList is the list result; it encodes as a plain JSON array
type stationList []*models.Station

// QuietString implements cli.Quieter with one code per line
func (l stationList) QuietString() string {
	codes := make([]string, len(l))
	for i, s := range l {
		codes[i] = s.StationCode
	}
	return strings.Join(codes, "\n")
}

// Render implements cli.Renderer
func (l stationList) Render() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No stations found.") + "\n"
	}

	rows := make([][]string, len(l))
	for i, s := range l {
		rows[i] = []string{s.StationCode}
	}
	return styles.TitleStyle.Render(fmt.Sprintf("Stations (%d)", len(l))) + "\n" +
		styles.RenderTable([]string{"Station"}, rows)
}
