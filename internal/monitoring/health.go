package monitoring

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// HealthChecker tracks progress of a batch of runs
type HealthChecker struct {
	mu        sync.RWMutex
	startTime time.Time
	total     int
	completed int
	failed    int
	lastRun   time.Time
	errors    []string
}

// HealthStatus is the JSON body served on /health
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Total     int       `json:"total"`
	Completed int       `json:"completed"`
	Failed    int       `json:"failed"`
	LastRun   time.Time `json:"last_run,omitempty"`
	Uptime    string    `json:"uptime"`
	Errors    []string  `json:"errors,omitempty"`
}

func NewHealthChecker() *HealthChecker {
	return &HealthChecker{
		startTime: time.Now(),
		errors:    make([]string, 0),
	}
}

// AddExpected adds n runs to the number expected before the work is done
func (h *HealthChecker) AddExpected(n int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.total += n
}

// MarkCompleted records a finished run
func (h *HealthChecker) MarkCompleted(target int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.completed++
	h.lastRun = time.Now()
}

// MarkFailed records a run that returned an error
func (h *HealthChecker) MarkFailed(target int, err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.failed++
	h.lastRun = time.Now()
	h.errors = append(h.errors, fmt.Sprintf("target %d: %v", target, err))
}

// Status returns a snapshot of the batch health
func (h *HealthChecker) Status() HealthStatus {
	h.mu.RLock()
	defer h.mu.RUnlock()

	status := "running"
	switch {
	case h.failed > 0:
		status = "degraded"
	case h.total > 0 && h.completed >= h.total:
		status = "completed"
	}

	return HealthStatus{
		Status:    status,
		Timestamp: time.Now(),
		Total:     h.total,
		Completed: h.completed,
		Failed:    h.failed,
		LastRun:   h.lastRun,
		Uptime:    time.Since(h.startTime).Round(time.Second).String(),
		Errors:    append([]string(nil), h.errors...),
	}
}

func (h *HealthChecker) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	health := h.Status()

	w.Header().Set("Content-Type", "application/json")
	if health.Status == "degraded" {
		w.WriteHeader(http.StatusServiceUnavailable)
	}
	json.NewEncoder(w).Encode(health)
}
