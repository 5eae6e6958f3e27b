package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/thenoetrevino/novi/internal/models"
)

// ============================================================================
// Station Tests
// ============================================================================

func TestStation_CreateAndList(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()

	stations, err := repo.GetAllStations(ctx)
	require.NoError(t, err)
	assert.Empty(t, stations)

	for _, code := range []string{"ABC1", "XYZ9", "abc1"} {
		mustCreateStation(t, repo, code)
	}

	stations, err = repo.GetAllStations(ctx)
	require.NoError(t, err)

	var codes []string
	for _, s := range stations {
		codes = append(codes, s.StationCode)
	}
	assert.Equal(t, []string{"ABC1", "XYZ9", "abc1"}, codes, "codes are case-sensitive and listed in insertion order")
}

func TestStation_DuplicateRejected(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	mustCreateStation(t, repo, "ABC1")

	n, err := repo.CreateStation(context.Background(), models.NewStation{StationCode: "ABC1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE constraint failed")
	assert.EqualValues(t, 0, n)

	stations, err := repo.GetAllStations(context.Background())
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestStation_Delete(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()
	mustCreateStation(t, repo, "ABC1")
	mustCreateStation(t, repo, "XYZ9")

	n, err := repo.DeleteStation(ctx, "ABC1")
	require.NoError(t, err)
	assert.EqualValues(t, 1, n)

	// Unknown code deletes nothing and is not an error
	n, err = repo.DeleteStation(ctx, "NOPE")
	require.NoError(t, err)
	assert.EqualValues(t, 0, n)

	stations, err := repo.GetAllStations(ctx)
	require.NoError(t, err)
	require.Len(t, stations, 1)
	assert.Equal(t, "XYZ9", stations[0].StationCode)
}

func TestStation_DeleteReferencedFails(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()
	mustCreateStation(t, repo, "ABC1")

	_, err := repo.CreateSameDayTask(ctx, sampleSameDayTask("ABC1"))
	require.NoError(t, err)

	_, err = repo.DeleteStation(ctx, "ABC1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	stations, err := repo.GetAllStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 1)
}

func TestStation_ConcurrentInserts(t *testing.T) {
	p := newTestProvider(t)
	ctx := context.Background()

	// Each insert gets its own connection, as the command layer does
	var g errgroup.Group
	for i := range 50 {
		g.Go(func() error {
			store, err := p.Open(ctx)
			if err != nil {
				return err
			}
			defer store.Close()

			_, err = store.CreateStation(ctx, models.NewStation{StationCode: fmt.Sprintf("ST%02d", i)})
			return err
		})
	}
	require.NoError(t, g.Wait())

	stations, err := openTestRepo(t, p).GetAllStations(ctx)
	require.NoError(t, err)
	assert.Len(t, stations, 50)
}

// ============================================================================
// Same-day Task Tests
// ============================================================================

func sampleSameDayTask(station string) models.NewSameDayTask {
	return models.NewSameDayTask{
		StationCode:     station,
		StartTime:       "2024-01-01",
		DpoCompleteTime: "2024-01-01",
		EndTime:         "2024-01-02",
		SameDayType:     "Single",
		BufferPercent:   10,
		DpoLink:         "https://example.com/dpo",
		TbaRoutedCount:  5,
		RouteCount:      2,
	}
}

func TestSameDayTask_RoundTrip(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()
	mustCreateStation(t, repo, "ABC1")

	first := sampleSameDayTask("ABC1")
	second := sampleSameDayTask("ABC1")
	second.TbaSubmittedCount = intPtr(12)
	second.SameDayType = "Multi"

	id1, err := repo.CreateSameDayTask(ctx, first)
	require.NoError(t, err)
	id2, err := repo.CreateSameDayTask(ctx, second)
	require.NoError(t, err)
	assert.Greater(t, id2, id1)

	tasks, err := repo.GetAllSameDayTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.EqualValues(t, id1, tasks[0].ID)
	if diff := cmp.Diff(first, tasks[0].ToNew()); diff != "" {
		t.Errorf("first task mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(second, tasks[1].ToNew()); diff != "" {
		t.Errorf("second task mismatch (-want +got):\n%s", diff)
	}
	assert.Nil(t, tasks[0].TbaSubmittedCount)
}

func TestSameDayTask_UnknownStationRejected(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()

	_, err := repo.CreateSameDayTask(ctx, sampleSameDayTask("NOPE"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	tasks, err := repo.GetAllSameDayTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

// ============================================================================
// LMCP Task Tests
// ============================================================================

func sampleLMCPTask(station string) models.NewLMCPTask {
	return models.NewLMCPTask{
		StationCode:            station,
		OfdDate:                "2024-01-01",
		Ead:                    "2024-01-02",
		CurrentLmcp:            100,
		CurrentAtrops:          90,
		Pdr:                    5,
		Requested:              110,
		SimLink:                "https://example.com/sim",
		Value:                  10,
		Source:                 "manual",
		Namespace:              "ns",
		Type:                   "Adjustment",
		WaveGroupName:          "W1",
		ShipOptionCategory:     "SameDay",
		AddressType:            "Residential",
		PackageType:            "Box",
		Cluster:                "C1",
		FulfillmentNetworkType: "FN",
		VolumeType:             "Standard",
		Week:                   1,
		F:                      "x",
	}
}

func TestLMCPTask_RoundTrip(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()
	mustCreateStation(t, repo, "ABC1")

	withTimes := sampleLMCPTask("ABC1")
	withTimes.StartTime = strPtr("08:00")
	withTimes.ExportTime = strPtr("09:00")
	withTimes.EndTime = strPtr("17:00")

	_, err := repo.CreateLMCPTask(ctx, sampleLMCPTask("ABC1"))
	require.NoError(t, err)
	_, err = repo.CreateLMCPTask(ctx, withTimes)
	require.NoError(t, err)

	tasks, err := repo.GetAllLMCPTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 2)

	assert.Nil(t, tasks[0].StartTime)
	assert.Nil(t, tasks[0].ExportTime)
	assert.Nil(t, tasks[0].EndTime)
	assert.Equal(t, "Adjustment", tasks[0].Type)

	if diff := cmp.Diff(withTimes, tasks[1].ToNew()); diff != "" {
		t.Errorf("lmcp task mismatch (-want +got):\n%s", diff)
	}
}

func TestLMCPTask_UnknownStationRejected(t *testing.T) {
	repo := openTestRepo(t, newTestProvider(t))
	ctx := context.Background()

	_, err := repo.CreateLMCPTask(ctx, sampleLMCPTask("NOPE"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	tasks, err := repo.GetAllLMCPTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}
