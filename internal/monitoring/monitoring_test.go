package monitoring

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordRun(t *testing.T) {
	counter := runsTotal.WithLabelValues("test-variant", OutcomeConverged)
	before := testutil.ToFloat64(counter)

	RecordRun("test-variant", OutcomeConverged, 12, 250*time.Millisecond)
	RecordRun("test-variant", OutcomeConverged, 3, time.Millisecond)

	assert.Equal(t, before+2, testutil.ToFloat64(counter))
	assert.Equal(t, 0.0, testutil.ToFloat64(runsTotal.WithLabelValues("test-variant", OutcomeExhausted)))
}

func TestUpdateBestFitness(t *testing.T) {
	UpdateBestFitness("test-variant", 37, 23)
	assert.Equal(t, 23.0, testutil.ToFloat64(bestFitness.WithLabelValues("test-variant", "37")))

	UpdateBestFitness("test-variant", 37, 5)
	assert.Equal(t, 5.0, testutil.ToFloat64(bestFitness.WithLabelValues("test-variant", "37")))
}

func TestRecordError(t *testing.T) {
	counter := errorsTotal.WithLabelValues("test_error")
	before := testutil.ToFloat64(counter)

	RecordError("test_error")

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestMetricsEndpoint(t *testing.T) {
	RecordRun("endpoint-variant", OutcomeExhausted, 100, time.Second)

	rec := httptest.NewRecorder()
	NewServeMux(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.True(t, strings.Contains(body, `coinga_runs_total{outcome="exhausted",variant="endpoint-variant"}`))
	assert.Contains(t, body, "coinga_generations_bucket")
	assert.Contains(t, body, "coinga_run_duration_seconds_count")
}

func TestHealthChecker(t *testing.T) {
	h := NewHealthChecker()
	h.AddExpected(1)
	h.AddExpected(1)
	assert.Equal(t, "running", h.Status().Status)

	h.MarkCompleted(11)
	h.MarkCompleted(16)
	status := h.Status()
	assert.Equal(t, "completed", status.Status)
	assert.Equal(t, 2, status.Completed)
	assert.False(t, status.LastRun.IsZero())

	rec := httptest.NewRecorder()
	NewServeMux(h).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	h.MarkFailed(75, errors.New("boom"))
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body HealthStatus
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "degraded", body.Status)
	assert.Equal(t, 1, body.Failed)
	assert.Equal(t, []string{"target 75: boom"}, body.Errors)
}
