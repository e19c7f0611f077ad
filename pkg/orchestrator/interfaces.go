package orchestrator

import (
	"context"
	"time"

	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// Orchestrator coordinates batches of optimization runs
type Orchestrator interface {
	// RunBatch runs the configured variant once per target
	RunBatch(ctx context.Context, cfg *config.RunConfig) (*BatchResult, error)

	// RunComparison runs every variant over the same targets
	RunComparison(ctx context.Context, cfg *config.RunConfig) (*ComparisonResult, error)
}

// TargetRunner runs the evolutionary loop for a single target
type TargetRunner interface {
	Run(ctx context.Context, cfg *config.RunConfig, strategy *optimization.Strategy, job TargetJob) TargetResult
}

// Workflow represents different execution workflows
type Workflow interface {
	// Execute runs the workflow and returns results
	Execute(ctx context.Context) (interface{}, error)

	// GetWorkflowType returns the type of workflow
	GetWorkflowType() WorkflowType
}

// WorkflowType represents different types of workflows
type WorkflowType string

const (
	WorkflowTypeBatch      WorkflowType = "batch"
	WorkflowTypeComparison WorkflowType = "comparison"
)

// TargetJob is one unit of work in a batch
type TargetJob struct {
	Index  int
	Target int
	Seed   int64
}

// NoValue marks optimum and gap columns that do not apply
const NoValue = -1

// TargetResult is the outcome of one target. OptimalCoins is the exact
// minimum for the encoding and Gap is Coins - OptimalCoins for exact
// solutions; both are NoValue when they do not apply.
type TargetResult struct {
	Target         int                            `json:"target"`
	Seed           int64                          `json:"seed"`
	Genes          optimization.Individual        `json:"genes"`
	Total          int                            `json:"total"`
	Coins          int                            `json:"coins"`
	Fitness        float64                        `json:"fitness"`
	LastGeneration int                            `json:"last_generation"`
	Converged      bool                           `json:"converged"`
	Verdict        optimization.Verdict           `json:"verdict"`
	OptimalCoins   int                            `json:"optimal_coins"`
	Gap            int                            `json:"gap"`
	Duration       time.Duration                  `json:"duration_ns"`
	History        []optimization.GenerationStats `json:"history,omitempty"`
	Error          string                         `json:"error,omitempty"`

	Err error `json:"-"`
}

// Failed reports whether the run returned an error
func (r TargetResult) Failed() bool {
	return r.Err != nil
}

// HasOptimum reports whether the exact baseline found a solution
func (r TargetResult) HasOptimum() bool {
	return r.OptimalCoins != NoValue
}

// HasGap reports whether the gap to the optimum is defined
func (r TargetResult) HasGap() bool {
	return r.Gap != NoValue
}

// BatchResult holds every target of one variant, in target order
type BatchResult struct {
	Variant       string         `json:"variant"`
	Denominations []int          `json:"denominations"`
	Tolerance     int            `json:"tolerance"`
	StartedAt     time.Time      `json:"started_at"`
	Duration      time.Duration  `json:"duration_ns"`
	Results       []TargetResult `json:"results"`
}

// Summary counts results by verdict
type Summary struct {
	Targets         int `json:"targets"`
	Exact           int `json:"exact"`
	WithinTolerance int `json:"within_tolerance"`
	Invalid         int `json:"invalid"`
	Failed          int `json:"failed"`
	Optimal         int `json:"optimal"`
	Converged       int `json:"converged"`
}

// Summary returns verdict counts for the batch
func (b *BatchResult) Summary() Summary {
	s := Summary{Targets: len(b.Results)}
	for _, r := range b.Results {
		if r.Failed() {
			s.Failed++
			continue
		}
		switch r.Verdict {
		case optimization.VerdictExact:
			s.Exact++
		case optimization.VerdictWithinTolerance:
			s.WithinTolerance++
		default:
			s.Invalid++
		}
		if r.HasGap() && r.Gap == 0 {
			s.Optimal++
		}
		if r.Converged {
			s.Converged++
		}
	}
	return s
}

// ComparisonResult holds one batch per variant
type ComparisonResult struct {
	Batches     []*BatchResult `json:"batches"`
	BestVariant string         `json:"best_variant"`
}
