package reporting

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// DefaultJSONFormatter implements JSON output functionality
type DefaultJSONFormatter struct{}

// NewDefaultJSONFormatter creates a new JSON formatter
func NewDefaultJSONFormatter() *DefaultJSONFormatter {
	return &DefaultJSONFormatter{}
}

// batchDocument is the results.json layout
type batchDocument struct {
	*orchestrator.BatchResult
	Summary orchestrator.Summary `json:"summary"`
}

// FormatBatch formats a batch and its summary as indented JSON
func (f *DefaultJSONFormatter) FormatBatch(batch *orchestrator.BatchResult) ([]byte, error) {
	return json.MarshalIndent(batchDocument{
		BatchResult: batch,
		Summary:     batch.Summary(),
	}, "", "  ")
}

// PrintBatch prints a batch as JSON to stdout
func (f *DefaultJSONFormatter) PrintBatch(batch *orchestrator.BatchResult) {
	data, _ := f.FormatBatch(batch)
	fmt.Println(string(data))
}

// WriteResultsJSON writes a batch to a JSON file
func (f *DefaultJSONFormatter) WriteResultsJSON(batch *orchestrator.BatchResult, path string) error {
	data, err := f.FormatBatch(batch)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}

// ReadResultsJSON loads a batch previously written by WriteResultsJSON
func ReadResultsJSON(path string) (*orchestrator.BatchResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var doc batchDocument
	doc.BatchResult = &orchestrator.BatchResult{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse results file %s: %w", path, err)
	}
	return doc.BatchResult, nil
}

// Package-level convenience functions

// WriteResultsJSON is a convenience function using the default formatter
func WriteResultsJSON(batch *orchestrator.BatchResult, path string) error {
	formatter := NewDefaultJSONFormatter()
	return formatter.WriteResultsJSON(batch, path)
}
