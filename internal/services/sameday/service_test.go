package sameday_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/novi/internal/services/sameday"
	"github.com/thenoetrevino/novi/internal/testutil"
)

func TestInsertSameDayTask(t *testing.T) {
	p := testutil.SetupTestProvider(t)
	testutil.CreateTestStation(t, p, "ABC1")
	svc := sameday.NewService(p, nil)
	ctx := context.Background()

	id, err := svc.InsertSameDayTask(ctx, testutil.SampleSameDayTask("ABC1"))
	require.NoError(t, err)
	assert.Positive(t, id)

	tasks, err := svc.GetAllSameDayTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.EqualValues(t, id, tasks[0].ID)
	assert.Equal(t, testutil.SampleSameDayTask("ABC1"), tasks[0].ToNew())
}

func TestInsertSameDayTask_UnknownStation(t *testing.T) {
	svc := sameday.NewService(testutil.SetupTestProvider(t), nil)
	ctx := context.Background()

	_, err := svc.InsertSameDayTask(ctx, testutil.SampleSameDayTask("NOPE"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FOREIGN KEY constraint failed")

	tasks, err := svc.GetAllSameDayTasks(ctx)
	require.NoError(t, err)
	assert.Empty(t, tasks)
}

func TestGetAllSameDayTasks_Ordered(t *testing.T) {
	p := testutil.SetupTestProvider(t)
	testutil.CreateTestStation(t, p, "ABC1")
	testutil.CreateTestStation(t, p, "XYZ9")
	svc := sameday.NewService(p, nil)
	ctx := context.Background()

	for _, code := range []string{"XYZ9", "ABC1", "XYZ9"} {
		_, err := svc.InsertSameDayTask(ctx, testutil.SampleSameDayTask(code))
		require.NoError(t, err)
	}

	tasks, err := svc.GetAllSameDayTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 3)
	for i := 1; i < len(tasks); i++ {
		assert.Greater(t, tasks[i].ID, tasks[i-1].ID)
	}
	assert.Equal(t, "ABC1", tasks[1].StationCode)
}
