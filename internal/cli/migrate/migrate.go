// Package migrate holds the cli commands that manage the database schema
// e.g., novi migrate ...
package migrate

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
	"github.com/thenoetrevino/novi/internal/cli/styles"
	"github.com/thenoetrevino/novi/internal/database"
)

// MigrateCmd returns the migrate parent command
func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Inspect or change the database schema version",
		Long: `Inspect or change the database schema version.

Every other command applies pending migrations automatically; these
commands do not, so status reports the schema as it is on disk.
`,
		Annotations: map[string]string{cli.SkipMigrationsAnnotation: "true"},
	}

	cmd.AddCommand(newSubcommand("up", "Apply all pending migrations", database.RunMigrations))
	cmd.AddCommand(newSubcommand("down", "Roll back the most recent migration", database.MigrateDown))
	cmd.AddCommand(newSubcommand("status", "Show the applied and latest schema versions", nil))

	return cmd
}

func newSubcommand(name, short string, apply func(context.Context, *sql.DB) error) *cobra.Command {
	cmd := &cobra.Command{
		Use:         name,
		Short:       short,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{cli.SkipMigrationsAnnotation: "true"},
		RunE:        handler.SimpleCommand(&migrateHandler{action: name, apply: apply}),
	}

	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (version only)")

	return cmd
}

// migrateHandler runs apply, if any, and reports the resulting state
type migrateHandler struct {
	action string
	apply  func(context.Context, *sql.DB) error
}

// Execute implements the Handler interface
func (h *migrateHandler) Execute(ctx context.Context, _ *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	db, err := cliInstance.Provider.Establish(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := db.Close(); err != nil {
			slog.Error("error closing db", "error", err)
		}
	}()

	if h.apply != nil {
		if err := h.apply(ctx, db); err != nil {
			return nil, err
		}
	}

	state, err := database.MigrationStatus(ctx, db)
	if err != nil {
		return nil, err
	}

	return &migrateResult{Action: h.action, Path: cliInstance.Provider.Path(), MigrationState: state}, nil
}

type migrateResult struct {
	Action string `json:"action"`
	Path   string `json:"path"`
	database.MigrationState
}

// QuietString implements cli.Quieter
func (r *migrateResult) QuietString() string {
	return strconv.FormatUint(uint64(r.Version), 10)
}

// Render implements cli.Renderer
func (r *migrateResult) Render() string {
	status := "up to date"
	switch {
	case r.Dirty:
		status = "dirty"
	case r.Pending():
		status = fmt.Sprintf("%d pending", r.Latest-r.Version)
	}

	rows := [][]string{
		{"Database", r.Path},
		{"Version", fmt.Sprintf("%d", r.Version)},
		{"Latest", fmt.Sprintf("%d", r.Latest)},
		{"Status", status},
	}
	return styles.TitleStyle.Render("Schema "+r.Action) + "\n" +
		styles.RenderTable([]string{"Field", "Value"}, rows)
}
