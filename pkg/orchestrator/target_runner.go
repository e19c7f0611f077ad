package orchestrator

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/internal/logger"
	"github.com/ducminhle1904/coinchange-ga/internal/monitoring"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/exact"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// progressEvery is the generation interval between progress lines in the session log
const progressEvery = 100

// DefaultTargetRunner implements the TargetRunner interface
type DefaultTargetRunner struct {
	fileLog *logger.Logger
}

// NewDefaultTargetRunner creates a target runner. fileLog may be nil.
func NewDefaultTargetRunner(fileLog *logger.Logger) TargetRunner {
	return &DefaultTargetRunner{fileLog: fileLog}
}

// Run executes one evolutionary loop with its own random source and
// attaches the exact baseline and verdict to the result
func (r *DefaultTargetRunner) Run(ctx context.Context, cfg *config.RunConfig, strategy *optimization.Strategy, job TargetJob) TargetResult {
	variant := string(strategy.Variant)
	result := TargetResult{
		Target:         job.Target,
		Seed:           job.Seed,
		LastGeneration: -1,
		OptimalCoins:   NoValue,
		Gap:            NoValue,
	}

	optimizer := optimization.NewOptimizer(cfg.Options(), strategy, rand.New(rand.NewSource(job.Seed)))
	if r.fileLog != nil {
		optimizer.SetObserver(func(stats optimization.GenerationStats) {
			if stats.Generation%progressEvery == 0 {
				r.fileLog.LogGeneration(job.Target, stats.Generation, stats.BestFitness, stats.MeanFitness, stats.BestTotal)
			}
		})
	}

	start := time.Now()
	run, err := optimizer.Run(ctx, cfg.Denominations, job.Target)
	result.Duration = time.Since(start)

	if err != nil {
		r.recordFailure(variant, &result, err)
		return result
	}

	result.Genes = run.Best.Genes
	result.Total = run.Total
	result.Coins = run.Best.Genes.CoinCount()
	result.Fitness = run.Best.Fitness
	result.LastGeneration = run.LastGeneration
	result.Converged = run.Converged
	result.Verdict = optimization.Verify(run.Total, job.Target, cfg.Tolerance)
	if cfg.KeepHistory {
		result.History = run.History
	}

	if optimum, ok := baseline(strategy.Encoder.Encoding(), cfg.Denominations, job.Target); ok {
		result.OptimalCoins = optimum.Coins
		if result.Verdict == optimization.VerdictExact {
			result.Gap = result.Coins - optimum.Coins
		}
	}

	outcome := monitoring.OutcomeExhausted
	if run.Converged {
		outcome = monitoring.OutcomeConverged
	}
	monitoring.RecordRun(variant, outcome, run.LastGeneration+1, result.Duration)
	monitoring.UpdateBestFitness(variant, job.Target, run.Best.Fitness)

	if r.fileLog != nil {
		r.fileLog.LogRunCompletion(job.Target, result.Genes, result.Total, result.Fitness,
			result.LastGeneration, string(result.Verdict), result.Duration)
	}

	return result
}

func (r *DefaultTargetRunner) recordFailure(variant string, result *TargetResult, err error) {
	result.Err = err
	result.Error = err.Error()

	outcome := monitoring.OutcomeFailed
	if opterrors.IsCategory(err, opterrors.ErrorCategoryCancelled) {
		outcome = monitoring.OutcomeCancelled
	}
	monitoring.RecordRun(variant, outcome, 0, result.Duration)

	category := opterrors.CategorizeError(err, "orchestrator", "Run").Category
	monitoring.RecordError(strings.ToLower(string(category)))

	if r.fileLog != nil {
		r.fileLog.LogError(fmt.Sprintf("target %d", result.Target), err)
	}
}

// baseline solves the target exactly under the same encoding as the genes
func baseline(encoding optimization.Encoding, denominations []int, target int) (exact.Solution, bool) {
	if encoding == optimization.EncodingBinary {
		return exact.MinCoinsBinary(denominations, target)
	}
	return exact.MinCoins(denominations, target)
}
