package server

import (
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetrics(t *testing.T) {
	m := NewMetrics()

	assert.Zero(t, m.GetRequests())
	assert.Zero(t, m.GetIssuesCreated())
	assert.Zero(t, m.GetClientErrors())
	assert.Zero(t, m.GetServerErrors())
	assert.WithinDuration(t, time.Now(), m.StartTime, time.Second)
}

func TestObserveStatus(t *testing.T) {
	m := NewMetrics()

	for _, status := range []int{http.StatusOK, http.StatusCreated, http.StatusBadRequest, http.StatusMethodNotAllowed, http.StatusInternalServerError} {
		m.ObserveStatus(status)
	}

	assert.Equal(t, int64(2), m.GetClientErrors())
	assert.Equal(t, int64(1), m.GetServerErrors())
}

func TestMetricsConcurrentIncrements(t *testing.T) {
	m := NewMetrics()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.IncRequests()
				m.IncIssuesCreated()
			}
		}()
	}
	wg.Wait()

	snapshot := m.GetSnapshot()
	assert.Equal(t, int64(5000), snapshot.RequestsTotal)
	assert.Equal(t, int64(5000), snapshot.IssuesCreated)
}
