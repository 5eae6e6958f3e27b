package bridge

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	before := time.Now()
	m := NewMetrics()

	assert.Zero(t, m.RequestsTotal.Load())
	assert.Zero(t, m.RequestsFailed.Load())
	assert.Zero(t, m.ConnectedClients.Load())
	assert.False(t, m.StartTime.Before(before))
}

func TestMetricsConcurrency(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for range 100 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			m.IncRequests()
			m.IncFailures()
			m.IncConnections()
			_ = m.GetSnapshot()
		}()
	}
	wg.Wait()

	snap := m.GetSnapshot()
	assert.EqualValues(t, 100, snap.RequestsTotal)
	assert.EqualValues(t, 100, snap.RequestsFailed)
	assert.EqualValues(t, 100, snap.ConnectionsTotal)
}

func TestMetricsSnapshot_IsImmutable(t *testing.T) {
	m := NewMetrics()
	m.IncRequests()
	m.SetConnectedClients(3)

	snap := m.GetSnapshot()
	m.IncRequests()
	m.SetConnectedClients(0)

	assert.EqualValues(t, 1, snap.RequestsTotal)
	assert.EqualValues(t, 3, snap.ConnectedClients)
	assert.NotEmpty(t, snap.Uptime)
}
