package database

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/novi/internal/models"
)

// ============================================================================
// Local Test Helpers (to avoid import cycle with testutil)
// ============================================================================

// newTestProvider returns a provider for a fresh, fully migrated database file.
// A file is used rather than :memory: because every Establish opens its own
// connection and an in-memory database would be empty for each of them.
func newTestProvider(t *testing.T) *Provider {
	t.Helper()

	p := NewProvider(filepath.Join(t.TempDir(), DatabaseFileName))
	db, err := InitDB(context.Background(), p)
	require.NoError(t, err, "failed to initialise test database")
	require.NoError(t, db.Close())

	return p
}

// openTestRepo opens a Repository against p and closes it when the test ends
func openTestRepo(t *testing.T, p *Provider) *Repository {
	t.Helper()

	db, err := p.Establish(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(db)
}

func mustCreateStation(t *testing.T, repo *Repository, code string) {
	t.Helper()
	n, err := repo.CreateStation(context.Background(), models.NewStation{StationCode: code})
	require.NoError(t, err, "failed to create station %s", code)
	require.EqualValues(t, 1, n)
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }
