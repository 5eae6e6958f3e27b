package serve

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/novi/internal/bridge"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/testutil"
	clitest "github.com/thenoetrevino/novi/internal/testutil/cli"
)

func TestServe_AnswersUntilCancelled(t *testing.T) {
	p, c := clitest.SetupCLITest(t)
	clitest.CreateTestStation(t, p, "ABC1")
	socket := testutil.GetTestSocketPath(t)

	ctx, cancel := context.WithCancel(cli.WithCLI(context.Background(), c))
	defer cancel()

	cmd := ServeCmd()
	cmd.SetArgs([]string{"--socket", socket})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	done := make(chan error, 1)
	go func() { done <- cmd.ExecuteContext(ctx) }()

	require.True(t, testutil.WaitForCondition(t, func() bool {
		_, err := os.Stat(socket)
		return err == nil
	}, 2*time.Second, "serve socket"))

	client, err := bridge.Dial(ctx, socket)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	out, err := client.Invoke(ctx, "get_stations", nil)
	require.NoError(t, err)
	assert.Equal(t, `[{"stationCode":"ABC1"}]`, out)

	snap, err := client.Ping(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), snap.ConnectedClients)

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}

	_, err = os.Stat(socket)
	assert.True(t, os.IsNotExist(err), "socket should be removed on shutdown")
}

func TestServe_RequiresCLI(t *testing.T) {
	cmd := ServeCmd()
	cmd.SetArgs([]string{})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true

	err := cmd.ExecuteContext(context.Background())
	assert.ErrorIs(t, err, cli.ErrNoCLI)
}
