package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/sourcegraph/conc/pool"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/internal/logger"
	"github.com/ducminhle1904/coinchange-ga/internal/monitoring"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// DefaultOrchestrator implements the Orchestrator interface
type DefaultOrchestrator struct {
	runner TargetRunner
	health *monitoring.HealthChecker
}

// NewOrchestrator creates a new orchestrator with default components.
// fileLog may be nil.
func NewOrchestrator(fileLog *logger.Logger) *DefaultOrchestrator {
	return &DefaultOrchestrator{
		runner: NewDefaultTargetRunner(fileLog),
	}
}

// NewOrchestratorWithComponents creates a new orchestrator with a custom runner
func NewOrchestratorWithComponents(runner TargetRunner) *DefaultOrchestrator {
	return &DefaultOrchestrator{
		runner: runner,
	}
}

// SetHealthChecker reports batch progress to a health checker
func (o *DefaultOrchestrator) SetHealthChecker(health *monitoring.HealthChecker) {
	o.health = health
}

// RunBatch runs one independent evolutionary loop per target on a bounded
// pool of cfg.Workers goroutines. Results come back in target order. If ctx
// is cancelled the partial batch is returned with a cancellation error.
func (o *DefaultOrchestrator) RunBatch(ctx context.Context, cfg *config.RunConfig) (*BatchResult, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	strategy, err := cfg.Strategy()
	if err != nil {
		return nil, err
	}

	jobs := buildJobs(cfg.Targets, cfg.Seed)
	log.Printf("🚀 Starting %s batch: %d targets, %d workers", strategy.Variant, len(jobs), cfg.Workers)

	if o.health != nil {
		o.health.AddExpected(len(jobs))
	}

	batch := &BatchResult{
		Variant:       string(strategy.Variant),
		Denominations: append([]int(nil), cfg.Denominations...),
		Tolerance:     cfg.Tolerance,
		StartedAt:     time.Now(),
		Results:       make([]TargetResult, len(jobs)),
	}

	p := pool.New().WithMaxGoroutines(cfg.Workers)
	for _, job := range jobs {
		job := job
		p.Go(func() {
			res := o.runner.Run(ctx, cfg, strategy, job)
			batch.Results[job.Index] = res
			o.track(res)
		})
	}
	p.Wait()

	batch.Duration = time.Since(batch.StartedAt)

	if err := ctx.Err(); err != nil {
		log.Printf("⚠️ Batch interrupted after %s", batch.Duration.Round(time.Millisecond))
		return batch, opterrors.NewCancelledError("orchestrator", "RunBatch", err).
			WithContext("variant", batch.Variant)
	}

	s := batch.Summary()
	log.Printf("✅ %s batch completed in %s - exact: %d, within tolerance: %d, invalid: %d, failed: %d",
		batch.Variant, batch.Duration.Round(time.Millisecond), s.Exact, s.WithinTolerance, s.Invalid, s.Failed)

	return batch, nil
}

// RunComparison runs every variant over the same targets and picks the one
// with the most exact solutions. Penalty constants fall back to each
// variant's defaults.
func (o *DefaultOrchestrator) RunComparison(ctx context.Context, cfg *config.RunConfig) (*ComparisonResult, error) {
	if cfg == nil {
		return nil, opterrors.NewValidationError("orchestrator", "RunComparison", "configuration is nil")
	}

	log.Println("🚀 Starting variant comparison")

	result := &ComparisonResult{}
	var best *BatchResult

	for _, name := range optimization.VariantNames() {
		variantCfg := *cfg
		variantCfg.Variant = name
		variantCfg.DistanceExponent = 0
		variantCfg.ShapingFactor = 0

		batch, err := o.RunBatch(ctx, &variantCfg)
		if err != nil {
			if batch != nil {
				result.Batches = append(result.Batches, batch)
			}
			return result, err
		}
		result.Batches = append(result.Batches, batch)

		if best == nil || betterBatch(batch, best) {
			best = batch
		}
	}

	result.BestVariant = best.Variant
	log.Printf("🏆 Best variant: %s (%d/%d exact)", best.Variant, best.Summary().Exact, len(best.Results))

	return result, nil
}

func (o *DefaultOrchestrator) track(res TargetResult) {
	if o.health == nil {
		return
	}
	if res.Failed() {
		o.health.MarkFailed(res.Target, res.Err)
		return
	}
	o.health.MarkCompleted(res.Target)
}

// buildJobs assigns each target a seed. A zero base seed draws one from the clock.
func buildJobs(targets []int, baseSeed int64) []TargetJob {
	if baseSeed == 0 {
		baseSeed = time.Now().UnixNano()
	}

	jobs := make([]TargetJob, len(targets))
	for i, target := range targets {
		jobs[i] = TargetJob{
			Index:  i,
			Target: target,
			Seed:   baseSeed + int64(i),
		}
	}
	return jobs
}

// betterBatch ranks by exact solutions, then optimal ones, then fewer coins
func betterBatch(a, b *BatchResult) bool {
	sa, sb := a.Summary(), b.Summary()
	if sa.Exact != sb.Exact {
		return sa.Exact > sb.Exact
	}
	if sa.Optimal != sb.Optimal {
		return sa.Optimal > sb.Optimal
	}
	return totalCoins(a) < totalCoins(b)
}

func totalCoins(b *BatchResult) int {
	total := 0
	for _, r := range b.Results {
		total += r.Coins
	}
	return total
}
