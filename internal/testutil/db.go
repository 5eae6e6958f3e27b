package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/thenoetrevino/novi/internal/database"
	"github.com/thenoetrevino/novi/internal/models"
)

// SetupTestProvider creates a migrated database file in a temp dir and
// returns a Provider for it. A file is used instead of :memory: because every
// operation opens its own connection.
func SetupTestProvider(t *testing.T) *database.Provider {
	t.Helper()

	p := database.NewProvider(filepath.Join(t.TempDir(), database.DatabaseFileName))
	db, err := database.InitDB(context.Background(), p)
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	if err := db.Close(); err != nil {
		t.Fatalf("Failed to close test database: %v", err)
	}

	return p
}

// CreateTestStation inserts a station directly through the repository
func CreateTestStation(t *testing.T, p *database.Provider, code string) {
	t.Helper()

	store, err := p.Open(context.Background())
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	defer func() { _ = store.Close() }()

	if _, err := store.CreateStation(context.Background(), models.NewStation{StationCode: code}); err != nil {
		t.Fatalf("Failed to create test station %s: %v", code, err)
	}
}

// SampleSameDayTask returns a valid same-day task payload for station
func SampleSameDayTask(station string) models.NewSameDayTask {
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

// SampleLMCPTask returns a valid LMCP task payload for station
func SampleLMCPTask(station string) models.NewLMCPTask {
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
