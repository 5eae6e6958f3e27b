// Package serve runs the bridge that lets the desktop shell call the data
// commands over a Unix socket
// e.g., novi serve
package serve

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/thenoetrevino/novi/internal/bridge"
	"github.com/thenoetrevino/novi/internal/cli"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the data commands over a Unix socket",
		Long: `Listen on a Unix socket for newline-delimited JSON requests of the form
{"version":1,"id":"...","cmd":"get_stations","args":{}} and answer each
with {"version":1,"id":"...","ok":true,"result":"..."}.

Runs until interrupted. The socket defaults to socket_path from the config
file, or novi.sock in the data directory.
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("socket", "", "Socket path (overrides the configured one)")

	return cmd
}

func runServe(cmd *cobra.Command, _ []string) error {
	cliInstance, err := cli.GetCLIFromContext(cmd.Context())
	if err != nil {
		return fmt.Errorf("initialization error: %w", err)
	}

	socketPath, _ := cmd.Flags().GetString("socket")
	if socketPath == "" {
		socketPath = cliInstance.Config.SocketPath
	}

	server, err := bridge.NewServer(socketPath, cliInstance.Registry)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cliInstance.App.Logger().Info("Serving commands", "socket", socketPath, "database", cliInstance.Provider.Path())
	return server.Start(ctx)
}
