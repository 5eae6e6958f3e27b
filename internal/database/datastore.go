package database

import (
	"context"
	"fmt"
	"log/slog"
)

// Opener hands out a DataStore over a fresh connection.
// Services call Open once per operation and Close the result before
// returning, so no connection outlives a single command.
type Opener interface {
	Open(ctx context.Context) (DataStore, error)
}

var _ Opener = (*Provider)(nil)

// WithStore opens a connection through db, runs fn against it and closes it
// again. Close failures are logged; fn's error is returned unchanged.
func WithStore(ctx context.Context, db Opener, logger *slog.Logger, fn func(DataStore) error) error {
	store, err := db.Open(ctx)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("error closing store", "error", err)
		}
	}()

	return fn(store)
}
