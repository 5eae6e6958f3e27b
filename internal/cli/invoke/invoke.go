// Package invoke runs a named data command with JSON arguments, either
// in-process or through a running bridge
// e.g., novi invoke get_stations
package invoke

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/bridge"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/cli/handler"
)

// InvokeCmd returns the invoke command
func InvokeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke <command> [json-args]",
		Short: "Run a named command with JSON arguments",
		Long: `Run one of the named data commands the desktop shell uses and print
its string result.

Arguments are a JSON object given inline, read from --file, or omitted.
With --bridge (or --socket) the command is sent to a running "novi serve"
instead of being executed in this process.

Examples:
  novi invoke get_stations
  novi invoke insert_station '{"stationCode":"DAB5"}'
  novi invoke insert_lmcp_task --file task.json
  novi invoke delete_station '{"deleteStationCode":"DAB5"}' --bridge
  novi invoke --list
`,
		Args: cobra.MaximumNArgs(2),
		RunE: handler.Command(&invokeHandler{}, parseInvokeFlags),
	}

	cmd.Flags().String("file", "", "Read JSON arguments from a file, or - for stdin")
	cmd.Flags().Bool("bridge", false, "Send the command to the bridge at the configured socket")
	cmd.Flags().String("socket", "", "Send the command to the bridge at this socket path")
	cmd.Flags().Bool("list", false, "List the available command names")

	// Agent-friendly flags
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (raw result only)")

	return cmd
}

func parseInvokeFlags(cmd *cobra.Command) error {
	list, _ := cmd.Flags().GetBool("list")
	if list {
		return nil
	}
	if cmd.Flags().NArg() == 0 {
		return cli.NewUsageError("a command name is required (see --list)")
	}
	file, _ := cmd.Flags().GetString("file")
	if file != "" && cmd.Flags().NArg() > 1 {
		return cli.NewUsageError("pass arguments inline or with --file, not both")
	}
	return nil
}

type invokeHandler struct{}

// Execute implements the Handler interface
func (h *invokeHandler) Execute(ctx context.Context, args *handler.Arguments) (any, error) {
	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("initialization error: %w", err)
	}

	if args.GetBool("list") {
		return commandList(cliInstance.Registry.Names()), nil
	}

	name := args.Args[0]
	payload, err := readArgs(args)
	if err != nil {
		return nil, err
	}

	var result string
	if socket := socketPath(cliInstance, args); socket != "" {
		result, err = invokeRemote(ctx, socket, name, payload)
	} else {
		result, err = cliInstance.Registry.Invoke(ctx, name, payload)
	}
	if err != nil {
		return nil, err
	}

	return &invokeResult{Command: name, Result: result}, nil
}

func readArgs(args *handler.Arguments) (json.RawMessage, error) {
	if file := args.GetString("file", ""); file != "" {
		return cli.ReadJSONInput(file, args.Stdin())
	}
	if len(args.Args) < 2 {
		return nil, nil
	}
	raw := json.RawMessage(strings.TrimSpace(args.Args[1]))
	if !json.Valid(raw) {
		return nil, cli.ErrInvalidJSON
	}
	return raw, nil
}

func socketPath(c *cli.CLI, args *handler.Arguments) string {
	if socket := args.GetString("socket", ""); socket != "" {
		return socket
	}
	if args.GetBool("bridge") {
		return c.Config.SocketPath
	}
	return ""
}

func invokeRemote(ctx context.Context, socket, name string, payload json.RawMessage) (string, error) {
	if _, err := os.Stat(socket); errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("%w at %s: is \"novi serve\" running?", cli.ErrSocketNotFound, socket)
	}

	client, err := bridge.Dial(ctx, socket)
	if err != nil {
		return "", err
	}
	defer func() {
		if err := client.Close(); err != nil {
			slog.Error("error closing bridge client", "error", err)
		}
	}()

	return client.Invoke(ctx, name, payload)
}

// invokeResult carries a command's string result. Results that are JSON
// are embedded as-is in --json output rather than double-encoded.
type invokeResult struct {
	Command string
	Result  string
}

// MarshalJSON implements json.Marshaler
func (r *invokeResult) MarshalJSON() ([]byte, error) {
	out := struct {
		Command string          `json:"command"`
		Result  json.RawMessage `json:"result"`
	}{Command: r.Command}

	if json.Valid([]byte(r.Result)) {
		out.Result = json.RawMessage(r.Result)
	} else {
		quoted, err := json.Marshal(r.Result)
		if err != nil {
			return nil, err
		}
		out.Result = quoted
	}
	return json.Marshal(out)
}

// QuietString implements cli.Quieter
func (r *invokeResult) QuietString() string {
	return r.Result
}

// Render implements cli.Renderer
func (r *invokeResult) Render() string {
	return r.Result + "\n"
}

type commandList []string

// QuietString implements cli.Quieter
func (l commandList) QuietString() string {
	return strings.Join(l, "\n")
}

// Render implements cli.Renderer
func (l commandList) Render() string {
	return strings.Join(l, "\n") + "\n"
}
