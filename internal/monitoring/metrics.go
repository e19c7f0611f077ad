package monitoring

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Run outcomes used as the "outcome" label of coinga_runs_total
const (
	OutcomeConverged = "converged"
	OutcomeExhausted = "exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

var (
	// Run metrics
	runsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinga_runs_total",
			Help: "Total number of optimization runs by outcome",
		},
		[]string{"variant", "outcome"},
	)

	generationsUsed = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coinga_generations",
			Help:    "Distribution of generations executed per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 9),
		},
		[]string{"variant"},
	)

	runDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "coinga_run_duration_seconds",
			Help:    "Wall-clock duration of optimization runs",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"variant"},
	)

	// Solution metrics
	bestFitness = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "coinga_best_fitness",
			Help: "Best fitness reached for a target",
		},
		[]string{"variant", "target"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "coinga_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	// Register metrics
	prometheus.MustRegister(runsTotal)
	prometheus.MustRegister(generationsUsed)
	prometheus.MustRegister(runDuration)
	prometheus.MustRegister(bestFitness)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordRun records a finished run. generations is the number of generations
// executed, so a run that stopped at generation 0 counts as 1.
func RecordRun(variant, outcome string, generations int, elapsed time.Duration) {
	runsTotal.WithLabelValues(variant, outcome).Inc()
	generationsUsed.WithLabelValues(variant).Observe(float64(generations))
	runDuration.WithLabelValues(variant).Observe(elapsed.Seconds())
}

// UpdateBestFitness updates the best fitness gauge of a target
func UpdateBestFitness(variant string, target int, fitness float64) {
	bestFitness.WithLabelValues(variant, strconv.Itoa(target)).Set(fitness)
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}

// NewServeMux returns a mux exposing /metrics and, when health is non-nil, /health
func NewServeMux(health *HealthChecker) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", NewMetricsHandler())
	if health != nil {
		mux.Handle("/health", health)
	}
	return mux
}

// Server exposes metrics and health over HTTP for the lifetime of a batch
type Server struct {
	srv *http.Server
}

// StartServer starts serving in the background on addr
func StartServer(addr string, health *HealthChecker) *Server {
	s := &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           NewServeMux(health),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}

	go func() {
		log.Printf("📡 Starting metrics server on %s", addr)
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("⚠️ Metrics server error: %v", err)
			RecordError("metrics_server")
		}
	}()

	return s
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s == nil || s.srv == nil {
		return nil
	}
	return s.srv.Shutdown(ctx)
}
