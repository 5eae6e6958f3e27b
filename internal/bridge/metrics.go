package bridge

import (
	"sync/atomic"
	"time"
)

// Metrics tracks bridge statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal    atomic.Int64
	RequestsFailed   atomic.Int64
	ConnectionsTotal atomic.Int64
	ConnectedClients atomic.Int32
	StartTime        time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests counts a dispatched request
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncFailures counts a request answered with ok:false
func (m *Metrics) IncFailures() {
	m.RequestsFailed.Add(1)
}

// IncConnections counts an accepted connection
func (m *Metrics) IncConnections() {
	m.ConnectionsTotal.Add(1)
}

// SetConnectedClients sets the current connected clients count
func (m *Metrics) SetConnectedClients(count int32) {
	m.ConnectedClients.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal    int64     `json:"requests_total"`
	RequestsFailed   int64     `json:"requests_failed"`
	ConnectionsTotal int64     `json:"connections_total"`
	ConnectedClients int32     `json:"connected_clients"`
	StartTime        time.Time `json:"start_time"`
	Uptime           string    `json:"uptime"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal:    m.RequestsTotal.Load(),
		RequestsFailed:   m.RequestsFailed.Load(),
		ConnectionsTotal: m.ConnectionsTotal.Load(),
		ConnectedClients: m.ConnectedClients.Load(),
		StartTime:        m.StartTime,
		Uptime:           time.Since(m.StartTime).Round(time.Second).String(),
	}
}
