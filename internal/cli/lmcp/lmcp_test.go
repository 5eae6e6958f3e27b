package lmcp

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/novi/internal/cli"
	"github.com/thenoetrevino/novi/internal/testutil"
	clitest "github.com/thenoetrevino/novi/internal/testutil/cli"
)

func writePayload(t *testing.T, station string) string {
	t.Helper()

	data, err := json.Marshal(testutil.SampleLMCPTask(station))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "lmcp.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestAddLMCPTaskCommand(t *testing.T) {
	p, c := clitest.SetupCLITest(t)
	clitest.CreateTestStation(t, p, "ABC1")
	clitest.CreateTestStation(t, p, "XYZ9")

	t.Run("quiet prints the new id", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--file", writePayload(t, "ABC1"), "--quiet"})
		require.NoError(t, err)

		id, err := strconv.Atoi(strings.TrimSpace(output))
		require.NoError(t, err)
		assert.Positive(t, id)
	})

	t.Run("station flag overrides the payload", func(t *testing.T) {
		output, err := clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--file", writePayload(t, "ABC1"), "--station", "XYZ9"})
		require.NoError(t, err)
		assert.Contains(t, output, "Inserted 1 row into lmcp_task.")
	})

	tasks, err := c.App.LMCPService.GetAllLMCPTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, "ABC1", tasks[0].StationCode)
	assert.Equal(t, "XYZ9", tasks[1].StationCode)
	assert.Equal(t, testutil.SampleLMCPTask("XYZ9"), tasks[1].ToNew())
}

func TestAddLMCPTaskCommand_WrappedTask(t *testing.T) {
	p, c := clitest.SetupCLITest(t)
	clitest.CreateTestStation(t, p, "ABC1")

	data, err := json.Marshal(map[string]any{"task": testutil.SampleLMCPTask("ABC1")})
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "wrapped.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err = clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--file", path})
	require.NoError(t, err)

	tasks, err := c.App.LMCPService.GetAllLMCPTasks(t.Context())
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, testutil.SampleLMCPTask("ABC1"), tasks[0].ToNew())
}

func TestAddLMCPTask_Negative(t *testing.T) {
	_, c := clitest.SetupCLITest(t)

	t.Run("file is required", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--station", "ABC1"})
		require.Error(t, err)
		assert.Equal(t, cli.ExitUsage, cli.ExitCodeFor(err))
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--file", filepath.Join(t.TempDir(), "nope.json")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read input")
	})

	t.Run("unknown station", func(t *testing.T) {
		_, err := clitest.ExecuteCLICommand(t, c, AddCmd(), []string{"--file", writePayload(t, "NOPE")})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")
	})
}

func TestListLMCPTasksCommand(t *testing.T) {
	p, c := clitest.SetupCLITest(t)

	output, err := clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"--json"})
	require.NoError(t, err)
	assert.Equal(t, []any{}, clitest.ParseJSON(t, output)["data"])

	clitest.CreateTestStation(t, p, "ABC1")
	id, err := c.App.LMCPService.InsertLMCPTask(t.Context(), testutil.SampleLMCPTask("ABC1"))
	require.NoError(t, err)

	output, err = clitest.ExecuteCLICommand(t, c, ListCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, strconv.FormatInt(id, 10), strings.TrimSpace(output))

	output, err = clitest.ExecuteCLICommand(t, c, ListCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "LMCP tasks (1)")
	assert.Contains(t, output, "Adjustment")
}
