package reporting

import (
	"path/filepath"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// ComparisonExcelFile is the workbook written for a variant comparison
const ComparisonExcelFile = "comparison.xlsx"

// DefaultReporter implements the complete Reporter interface
type DefaultReporter struct {
	console    *DefaultConsoleReporter
	csv        *DefaultCSVReporter
	excel      *DefaultExcelReporter
	comparison *ComparisonReporter
	json       *DefaultJSONFormatter
	paths      *DefaultPathManager
}

// NewDefaultReporter creates a new default reporter with all functionality
func NewDefaultReporter() *DefaultReporter {
	return NewDefaultReporterWithConsole(NewDefaultConsoleReporter())
}

// NewDefaultReporterWithConsole creates a reporter with a custom console reporter
func NewDefaultReporterWithConsole(console *DefaultConsoleReporter) *DefaultReporter {
	return &DefaultReporter{
		console:    console,
		csv:        NewDefaultCSVReporter(),
		excel:      NewDefaultExcelReporter(),
		comparison: NewComparisonReporter(),
		json:       NewDefaultJSONFormatter(),
		paths:      NewDefaultPathManager(),
	}
}

// Console output methods
func (r *DefaultReporter) OutputBatch(batch *orchestrator.BatchResult) {
	r.console.OutputBatch(batch)
}

func (r *DefaultReporter) OutputComparison(result *orchestrator.ComparisonResult) {
	r.console.OutputComparison(result)
}

func (r *DefaultReporter) PrintConfig(cfg *config.RunConfig) {
	r.console.PrintConfig(cfg)
}

// File output methods
func (r *DefaultReporter) WriteResultsCSV(batch *orchestrator.BatchResult, path string) error {
	return r.csv.WriteResultsCSV(batch, path)
}

func (r *DefaultReporter) WriteResultsXLSX(batch *orchestrator.BatchResult, path string) error {
	return r.excel.WriteResultsXLSX(batch, path)
}

func (r *DefaultReporter) WriteResultsJSON(batch *orchestrator.BatchResult, path string) error {
	return r.json.WriteResultsJSON(batch, path)
}

func (r *DefaultReporter) WriteComparisonXLSX(result *orchestrator.ComparisonResult, path string) error {
	return r.comparison.WriteComparisonXLSX(result, path)
}

// Path management methods
func (r *DefaultReporter) GetDefaultOutputDir(variant string) string {
	return r.paths.GetDefaultOutputDir(variant)
}

func (r *DefaultReporter) EnsureDirectoryExists(path string) error {
	return r.paths.EnsureDirectoryExists(path)
}

// ReportingManager provides a high-level interface for all reporting needs
type ReportingManager struct {
	reporter Reporter
	config   ReportingConfig
}

// NewReportingManager creates a new reporting manager with configuration
func NewReportingManager(cfg ReportingConfig) *ReportingManager {
	return &ReportingManager{
		reporter: NewDefaultReporter(),
		config:   cfg,
	}
}

// NewReportingManagerWithReporter creates a reporting manager with a custom reporter
func NewReportingManagerWithReporter(cfg ReportingConfig, reporter Reporter) *ReportingManager {
	return &ReportingManager{
		reporter: reporter,
		config:   cfg,
	}
}

// OutputDir returns where files for a variant are written
func (m *ReportingManager) OutputDir(variant string) string {
	if m.config.OutputDirectory != "" {
		return m.config.OutputDirectory
	}
	return m.reporter.GetDefaultOutputDir(variant)
}

// ReportBatch outputs a batch in every enabled format and returns the files written
func (m *ReportingManager) ReportBatch(batch *orchestrator.BatchResult) ([]string, error) {
	return m.reportBatchTo(batch, m.OutputDir(batch.Variant))
}

// ReportComparison outputs every batch into its own variant directory plus a
// comparison workbook when Excel output is enabled
func (m *ReportingManager) ReportComparison(result *orchestrator.ComparisonResult) ([]string, error) {
	base := m.config.OutputDirectory
	if base == "" {
		base = config.DefaultResultsDir
	}

	var written []string
	for _, batch := range result.Batches {
		files, err := m.reportBatchTo(batch, filepath.Join(base, batch.Variant))
		written = append(written, files...)
		if err != nil {
			return written, err
		}
	}

	if m.config.Enabled(config.FormatConsole) {
		m.reporter.OutputComparison(result)
	}

	if m.config.Enabled(config.FormatExcel) {
		path := filepath.Join(base, ComparisonExcelFile)
		if err := m.reporter.WriteComparisonXLSX(result, path); err != nil {
			return written, opterrors.NewOutputError("reporting", "ReportComparison", err).WithContext("path", path)
		}
		written = append(written, path)
	}

	return written, nil
}

func (m *ReportingManager) reportBatchTo(batch *orchestrator.BatchResult, dir string) ([]string, error) {
	if m.config.Enabled(config.FormatConsole) {
		m.reporter.OutputBatch(batch)
	}

	var written []string
	writers := []struct {
		format string
		file   string
		write  func(*orchestrator.BatchResult, string) error
	}{
		{config.FormatCSV, config.ResultsCSVFile, m.reporter.WriteResultsCSV},
		{config.FormatJSON, config.ResultsJSONFile, m.reporter.WriteResultsJSON},
		{config.FormatExcel, config.ResultsExcelFile, m.reporter.WriteResultsXLSX},
	}

	for _, w := range writers {
		if !m.config.Enabled(w.format) {
			continue
		}
		path := filepath.Join(dir, w.file)
		if err := w.write(batch, path); err != nil {
			return written, opterrors.NewOutputError("reporting", "ReportBatch", err).WithContext("path", path)
		}
		written = append(written, path)
	}

	return written, nil
}
