package reporting

import (
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// Package reporting provides output generation for coin-change optimization batches

// ConsoleReporter defines interface for console output
type ConsoleReporter interface {
	OutputBatch(batch *orchestrator.BatchResult)
	OutputComparison(result *orchestrator.ComparisonResult)
	PrintConfig(cfg *config.RunConfig)
}

// FileReporter defines interface for file output
type FileReporter interface {
	WriteResultsCSV(batch *orchestrator.BatchResult, path string) error
	WriteResultsXLSX(batch *orchestrator.BatchResult, path string) error
	WriteResultsJSON(batch *orchestrator.BatchResult, path string) error
	WriteComparisonXLSX(result *orchestrator.ComparisonResult, path string) error
}

// PathManager defines interface for output path management
type PathManager interface {
	GetDefaultOutputDir(variant string) string
	EnsureDirectoryExists(path string) error
}

// Reporter combines all reporting interfaces
type Reporter interface {
	ConsoleReporter
	FileReporter
	PathManager
}

// ExcelStyles holds Excel formatting styles
type ExcelStyles struct {
	HeaderStyle    int
	BaseStyle      int
	DecimalStyle   int
	ExactStyle     int
	ToleranceStyle int
	InvalidStyle   int
	SummaryStyle   int
}

// ReportingConfig holds configuration for reporting
type ReportingConfig struct {
	OutputDirectory string
	Formats         []string
}

// Enabled reports whether a format was requested
func (c ReportingConfig) Enabled(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}
