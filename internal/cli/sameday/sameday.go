// Package sameday holds the cli commands for same-day route tasks
// e.g., novi sameday ...
package sameday

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/models"
)

// SameDayCmd returns the sameday parent command
func SameDayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "sameday",
		Aliases: []string{"same-day"},
		Short:   "Manage same-day route tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

// taskList is the list result; it encodes as a plain JSON array
type taskList []*models.SameDayTask

// QuietString implements cli.Quieter with one ID per line
func (l taskList) QuietString() string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = strconv.Itoa(t.ID)
	}
	return strings.Join(ids, "\n")
}

// Render implements cli.Renderer
func (l taskList) Render() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No same-day tasks found.") + "\n"
	}

	str := func(s string) string { return s }
	rows := make([][]string, len(l))
	for i, t := range l {
		rows[i] = []string{
			strconv.Itoa(t.ID),
			t.StationCode,
			t.SameDayType,
			cli.FormatOptional(t.StartTime, str),
			cli.FormatOptional(t.EndTime, str),
			strconv.Itoa(t.RouteCount),
			strconv.Itoa(t.BufferPercent) + "%",
		}
	}

	headers := []string{"ID", "Station", "Type", "Start", "End", "Routes", "Buffer"}
	return styles.TitleStyle.Render(fmt.Sprintf("Same-day tasks (%d)", len(l))) + "\n" +
		styles.RenderTable(headers, rows)
}
