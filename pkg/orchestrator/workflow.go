package orchestrator

import (
	"context"

	"github.com/ducminhle1904/coinchange-ga/pkg/config"
)

// BatchWorkflow runs the configured variant over every target
type BatchWorkflow struct {
	orchestrator Orchestrator
	config       *config.RunConfig
}

// NewBatchWorkflow creates a new batch workflow
func NewBatchWorkflow(orchestrator Orchestrator, cfg *config.RunConfig) Workflow {
	return &BatchWorkflow{
		orchestrator: orchestrator,
		config:       cfg,
	}
}

// Execute runs the batch workflow; the result is a *BatchResult
func (w *BatchWorkflow) Execute(ctx context.Context) (interface{}, error) {
	return w.orchestrator.RunBatch(ctx, w.config)
}

// GetWorkflowType returns the workflow type
func (w *BatchWorkflow) GetWorkflowType() WorkflowType {
	return WorkflowTypeBatch
}

// ComparisonWorkflow runs every variant over the same targets
type ComparisonWorkflow struct {
	orchestrator Orchestrator
	config       *config.RunConfig
}

// NewComparisonWorkflow creates a new comparison workflow
func NewComparisonWorkflow(orchestrator Orchestrator, cfg *config.RunConfig) Workflow {
	return &ComparisonWorkflow{
		orchestrator: orchestrator,
		config:       cfg,
	}
}

// Execute runs the comparison workflow; the result is a *ComparisonResult
func (w *ComparisonWorkflow) Execute(ctx context.Context) (interface{}, error) {
	return w.orchestrator.RunComparison(ctx, w.config)
}

// GetWorkflowType returns the workflow type
func (w *ComparisonWorkflow) GetWorkflowType() WorkflowType {
	return WorkflowTypeComparison
}
