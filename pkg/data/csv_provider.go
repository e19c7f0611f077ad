package data

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// CSVProvider implements TargetProvider for CSV files
type CSVProvider struct {
	format CSVColumnMapping
}

// NewCSVProvider creates a new CSV target provider with the default format
func NewCSVProvider() *CSVProvider {
	return &CSVProvider{
		format: DefaultCSVFormat,
	}
}

// NewCSVProviderWithFormat creates a new CSV target provider with a custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
	}
}

// GetName returns the name of the provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadTargets loads target totals from a CSV file
func (p *CSVProvider) LoadTargets(source string) ([]int, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return p.ReadTargets(file)
}

// ReadTargets parses target totals from r. Rows whose target cell is blank or
// not an integer are skipped with a warning; a file without any target is an error.
func (p *CSVProvider) ReadTargets(r io.Reader) ([]int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.Comment = '#'
	reader.TrimLeadingSpace = true

	col := p.format.TargetCol
	lineNum := 0

	if p.format.HasHeader {
		header, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil, fmt.Errorf("no targets found")
			}
			return nil, fmt.Errorf("error reading CSV header: %w", err)
		}
		lineNum++
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), p.format.TargetHeader) {
				col = i
				break
			}
		}
	}

	var targets []int
	for {
		record, err := reader.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum+1, err)
		}
		lineNum++

		if col >= len(record) {
			log.Printf("⚠️ Missing target column at line %d (expected %d columns, got %d), skipping", lineNum, col+1, len(record))
			continue
		}

		cell := strings.TrimSpace(record[col])
		if cell == "" {
			continue
		}

		target, err := strconv.Atoi(cell)
		if err != nil {
			log.Printf("⚠️ Invalid target %q at line %d, skipping", cell, lineNum)
			continue
		}
		targets = append(targets, target)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets found")
	}
	return targets, nil
}
