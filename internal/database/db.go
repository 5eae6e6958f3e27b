// Package database handles the connection to the SQLite store, its schema
// migrations, and the per-table repositories
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	_ "modernc.org/sqlite"
)

// DatabaseFileName is the file created inside the application data directory
// when no explicit database path is configured
const DatabaseFileName = "database.db"

// ErrNoDatabasePath is returned when a Provider was built without a path
var ErrNoDatabasePath = errors.New("database path is not set")

// Provider opens connections to a single SQLite file.
// The path is resolved once at startup and never changes afterwards, so a
// Provider can be shared freely between goroutines.
type Provider struct {
	path string
}

// NewProvider creates a Provider for the database at path
func NewProvider(path string) *Provider {
	return &Provider{path: path}
}

// Path returns the database location this provider connects to
func (p *Provider) Path() string {
	return p.path
}

// Establish opens a new connection with foreign key enforcement enabled.
// Every command calls this for itself and closes the handle when done.
func (p *Provider) Establish(ctx context.Context) (*sql.DB, error) {
	if p.path == "" {
		return nil, ErrNoDatabasePath
	}

	db, err := sql.Open("sqlite", dsn(p.path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", p.path, err)
	}

	// One physical connection per handle so the pragmas below, which SQLite
	// scopes to a connection, cover every statement issued through it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	// The DSN already carries foreign_keys(1); verify it took effect since
	// the rest of the layer relies on the store rejecting orphan tasks
	var enabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to read foreign_keys pragma: %w", err)
	}
	if enabled != 1 {
		_, err = db.ExecContext(ctx, "PRAGMA foreign_keys = ON")
		if err != nil {
			slog.Error("Failed to enable foreign keys", "error", err)
			closeDB(db)
			return nil, err
		}
	}

	return db, nil
}

// Open establishes a connection and wraps it in a Repository.
// Closing the repository releases the connection.
func (p *Provider) Open(ctx context.Context) (DataStore, error) {
	db, err := p.Establish(ctx)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// InitDB establishes a connection and applies pending migrations.
// It is the startup path: failures here mean the application has no
// usable storage and the caller is expected to abort.
func InitDB(ctx context.Context, p *Provider) (*sql.DB, error) {
	db, err := p.Establish(ctx)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}
