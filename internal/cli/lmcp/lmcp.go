// Package lmcp holds the cli commands for LMCP adjustment tasks
// e.g., novi lmcp ...
package lmcp

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/models"
)

// LMCPCmd returns the lmcp parent command
func LMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lmcp",
		Short: "Manage LMCP adjustment tasks",
	}

	cmd.AddCommand(AddCmd())
	cmd.AddCommand(ListCmd())

	return cmd
}

type taskList []*models.LMCPTask

func (l taskList) QuietString() string {
	ids := make([]string, len(l))
	for i, t := range l {
		ids[i] = strconv.Itoa(t.ID)
	}
	return strings.Join(ids, "\n")
}

func (l taskList) Render() string {
	if len(l) == 0 {
		return styles.SubtitleStyle.Render("No LMCP tasks found.") + "\n"
	}

	rows := make([][]string, len(l))
	for i, t := range l {
		rows[i] = []string{
			strconv.Itoa(t.ID),
			t.StationCode,
			t.OfdDate,
			t.Type,
			strconv.Itoa(t.CurrentLmcp),
			strconv.Itoa(t.Requested),
			strconv.Itoa(t.Value),
			strconv.Itoa(t.Week),
		}
	}

	headers := []string{"ID", "Station", "OFD", "Type", "LMCP", "Requested", "Value", "Week"}
	return styles.TitleStyle.Render(fmt.Sprintf("LMCP tasks (%d)", len(l))) + "\n" +
		styles.RenderTable(headers, rows)
}
