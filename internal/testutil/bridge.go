package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/thenoetrevino/novi/internal/bridge"
)

// GetTestSocketPath generates a unique temporary socket path for testing.
// Kept short because Unix socket paths are limited to ~100 bytes.
func GetTestSocketPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "novi.sock")
}

// SetupTestBridge starts a bridge server for inv on a temporary socket and
// waits until it accepts connections. Cleanup is automatic via t.Cleanup().
func SetupTestBridge(t *testing.T, inv bridge.Invoker) (*bridge.Server, string) {
	t.Helper()

	socketPath := GetTestSocketPath(t)

	server, err := bridge.NewServer(socketPath, inv)
	if err != nil {
		t.Fatalf("Failed to create test bridge: %v", err)
	}

	t.Cleanup(func() {
		if err := server.Shutdown(); err != nil {
			t.Logf("Warning: bridge shutdown error during cleanup: %v", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	go func() {
		if err := server.Start(ctx); err != nil {
			t.Logf("Bridge error: %v", err)
		}
	}()

	if !WaitForCondition(t, func() bool {
		_, err := os.Stat(socketPath)
		return err == nil
	}, 2*time.Second, "bridge socket to appear") {
		t.Fatal("Timeout waiting for bridge socket to be created")
	}

	return server, socketPath
}

// WaitForCondition waits for a condition to become true within the timeout.
// The condition function is called repeatedly until it returns true or timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, description string) bool {
	t.Helper()

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if condition() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}

	t.Logf("Timeout waiting for condition: %s", description)
	return false
}
