package cli

import (
	"context"
	"encoding/json"
	"io"
	"testing"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/testutil"
)

// ExecuteCLICommand runs cmd with args against c and returns its stdout
func ExecuteCLICommand(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	return ExecuteCLICommandWithInput(t, c, cmd, args, nil)
}

// ExecuteCLICommandWithInput is ExecuteCLICommand with stdin replaced by in
func ExecuteCLICommandWithInput(t *testing.T, c *cli.CLI, cmd *cobra.Command, args []string, in io.Reader) (string, error) {
	t.Helper()

	if c == nil {
		t.Fatal("cli cannot be nil - SetupCLITest must be called first")
	}

	ctx := cli.WithCLI(context.Background(), c)

	// cobra falls back to os.Args when args is nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	if in != nil {
		cmd.SetIn(in)
	}
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	var executeErr error
	output := testutil.CaptureOutput(t, func() {
		executeErr = cmd.ExecuteContext(ctx)
	})

	return output, executeErr
}

// ParseJSON decodes the {"success":..., "data":...} envelope printed by --json
func ParseJSON(t *testing.T, output string) map[string]any {
	t.Helper()

	var result map[string]any
	if err := json.Unmarshal([]byte(output), &result); err != nil {
		t.Fatalf("Failed to parse JSON output: %v\nOutput: %s", err, output)
	}

	return result
}
