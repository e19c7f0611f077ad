package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// DefaultCSVReporter implements CSV output functionality
type DefaultCSVReporter struct{}

// NewDefaultCSVReporter creates a new CSV reporter
func NewDefaultCSVReporter() *DefaultCSVReporter {
	return &DefaultCSVReporter{}
}

var csvHeader = []string{
	"Target",
	"Genes",
	"Total",
	"Coins",
	"Optimal_Coins",
	"Gap",
	"Fitness",
	"Generations",
	"Converged",
	"Verdict",
	"Seed",
	"Duration_ms",
	"Error",
}

// WriteResultsCSV writes one row per target
func (r *DefaultCSVReporter) WriteResultsCSV(batch *orchestrator.BatchResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	// If the user requests an Excel file, delegate to Excel writer
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteResultsXLSX(batch, path)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, res := range batch.Results {
		if err := w.Write(csvRow(res)); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

func csvRow(res orchestrator.TargetResult) []string {
	if res.Failed() {
		row := make([]string, len(csvHeader))
		row[0] = strconv.Itoa(res.Target)
		row[10] = strconv.FormatInt(res.Seed, 10)
		row[12] = res.Error
		return row
	}

	genes := make([]string, len(res.Genes))
	for i, g := range res.Genes {
		genes[i] = strconv.Itoa(g)
	}

	return []string{
		strconv.Itoa(res.Target),
		strings.Join(genes, " "),
		strconv.Itoa(res.Total),
		strconv.Itoa(res.Coins),
		csvOptional(res.OptimalCoins),
		csvOptional(res.Gap),
		strconv.FormatFloat(res.Fitness, 'f', 4, 64),
		strconv.Itoa(res.LastGeneration + 1),
		strconv.FormatBool(res.Converged),
		string(res.Verdict),
		strconv.FormatInt(res.Seed, 10),
		fmt.Sprintf("%.3f", float64(res.Duration.Microseconds())/1000),
		"",
	}
}

func csvOptional(v int) string {
	if v == orchestrator.NoValue {
		return ""
	}
	return strconv.Itoa(v)
}

// Package-level convenience function
func WriteResultsCSV(batch *orchestrator.BatchResult, path string) error {
	reporter := NewDefaultCSVReporter()
	return reporter.WriteResultsCSV(batch, path)
}
