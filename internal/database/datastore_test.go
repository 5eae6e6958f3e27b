package database

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithStore_ClosesAfterFn(t *testing.T) {
	ctx := context.Background()
	p := newTestProvider(t)

	var held DataStore
	err := WithStore(ctx, p, slog.Default(), func(store DataStore) error {
		held = store
		_, err := store.GetAllStations(ctx)
		return err
	})
	require.NoError(t, err)

	_, err = held.GetAllStations(ctx)
	assert.Error(t, err, "store should be closed once WithStore returns")
}

func TestWithStore_ReturnsFnErrorUnchanged(t *testing.T) {
	ctx := context.Background()
	fnErr := errors.New("FOREIGN KEY constraint failed")

	var held DataStore
	err := WithStore(ctx, newTestProvider(t), slog.Default(), func(store DataStore) error {
		held = store
		return fnErr
	})
	assert.Equal(t, fnErr, err)

	_, err = held.GetAllStations(ctx)
	assert.Error(t, err, "store should be closed on the error path too")
}

func TestWithStore_OpenFailure(t *testing.T) {
	called := false
	err := WithStore(context.Background(), NewProvider(""), slog.Default(), func(DataStore) error {
		called = true
		return nil
	})
	require.ErrorIs(t, err, ErrNoDatabasePath)
	assert.Contains(t, err.Error(), "failed to open database")
	assert.False(t, called)
}
