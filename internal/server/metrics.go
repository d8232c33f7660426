package server

import (
	"sync/atomic"
	"time"
)

// Metrics tracks API statistics using atomic operations for thread-safety
type Metrics struct {
	RequestsTotal atomic.Int64
	IssuesCreated atomic.Int64
	ClientErrors  atomic.Int64
	ServerErrors  atomic.Int64
	StartTime     time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncRequests increments the request counter
func (m *Metrics) IncRequests() {
	m.RequestsTotal.Add(1)
}

// IncIssuesCreated increments the created issues counter
func (m *Metrics) IncIssuesCreated() {
	m.IssuesCreated.Add(1)
}

// ObserveStatus counts 4xx and 5xx responses
func (m *Metrics) ObserveStatus(status int) {
	switch {
	case status >= 500:
		m.ServerErrors.Add(1)
	case status >= 400:
		m.ClientErrors.Add(1)
	}
}

// GetRequests returns the total requests served
func (m *Metrics) GetRequests() int64 {
	return m.RequestsTotal.Load()
}

// GetIssuesCreated returns the total issues created
func (m *Metrics) GetIssuesCreated() int64 {
	return m.IssuesCreated.Load()
}

// GetClientErrors returns the total 4xx responses
func (m *Metrics) GetClientErrors() int64 {
	return m.ClientErrors.Load()
}

// GetServerErrors returns the total 5xx responses
func (m *Metrics) GetServerErrors() int64 {
	return m.ServerErrors.Load()
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	RequestsTotal int64   `json:"requestsTotal"`
	IssuesCreated int64   `json:"issuesCreated"`
	ClientErrors  int64   `json:"clientErrors"`
	ServerErrors  int64   `json:"serverErrors"`
	UptimeSeconds float64 `json:"uptimeSeconds"`
}

// GetSnapshot returns a snapshot of current metrics
func (m *Metrics) GetSnapshot() MetricsSnapshot {
	return MetricsSnapshot{
		RequestsTotal: m.GetRequests(),
		IssuesCreated: m.GetIssuesCreated(),
		ClientErrors:  m.GetClientErrors(),
		ServerErrors:  m.GetServerErrors(),
		UptimeSeconds: time.Since(m.StartTime).Seconds(),
	}
}
