package reporting

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// Sheet names of the comparison workbook
const (
	ComparisonSummarySheet = "Variant Summary"
	ComparisonHeatMapSheet = "Coin Heat Map"
)

// ComparisonReporter writes workbooks comparing variants over the same targets
type ComparisonReporter struct {
	*DefaultExcelReporter
}

// NewComparisonReporter creates a new comparison reporter
func NewComparisonReporter() *ComparisonReporter {
	return &ComparisonReporter{
		DefaultExcelReporter: NewDefaultExcelReporter(),
	}
}

// WriteComparisonXLSX writes a summary sheet and a target × variant heat map
func (r *ComparisonReporter) WriteComparisonXLSX(result *orchestrator.ComparisonResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), ComparisonSummarySheet)
	if _, err := fx.NewSheet(ComparisonHeatMapSheet); err != nil {
		return err
	}

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return fmt.Errorf("failed to create Excel styles: %w", err)
	}

	if err := r.writeSummarySheet(fx, ComparisonSummarySheet, result, styles); err != nil {
		return fmt.Errorf("failed to write summary sheet: %w", err)
	}

	if err := r.writeHeatMapSheet(fx, ComparisonHeatMapSheet, result, styles); err != nil {
		return fmt.Errorf("failed to write heat map sheet: %w", err)
	}

	return fx.SaveAs(path)
}

func (r *ComparisonReporter) writeSummarySheet(fx *excelize.File, sheet string, result *orchestrator.ComparisonResult, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 20)
	fx.SetColWidth(sheet, "B", "H", 14)

	headers := []string{"Variant", "Targets", "Exact", "Within Tolerance", "Invalid", "Failed", "Optimal", "Duration (s)"}
	if err := r.writeHeader(fx, sheet, headers, styles); err != nil {
		return err
	}

	for i, batch := range result.Batches {
		s := batch.Summary()
		row := i + 2
		cell, _ := excelize.CoordinatesToCellName(1, row)
		values := []interface{}{
			batch.Variant, s.Targets, s.Exact, s.WithinTolerance, s.Invalid, s.Failed, s.Optimal,
			batch.Duration.Seconds(),
		}
		if err := fx.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}

		style := styles.BaseStyle
		if batch.Variant == result.BestVariant {
			style = styles.ExactStyle
		}
		fx.SetCellStyle(sheet, cell, "H"+strconv.Itoa(row), style)
	}

	row := len(result.Batches) + 3
	fx.SetCellValue(sheet, "A"+strconv.Itoa(row), fmt.Sprintf("Best variant: %s", result.BestVariant))
	fx.SetCellStyle(sheet, "A"+strconv.Itoa(row), "A"+strconv.Itoa(row), styles.SummaryStyle)

	return nil
}

// writeHeatMapSheet shows coin counts per target and variant, coloured by verdict
func (r *ComparisonReporter) writeHeatMapSheet(fx *excelize.File, sheet string, result *orchestrator.ComparisonResult, styles ExcelStyles) error {
	headers := []string{"Target"}
	for _, batch := range result.Batches {
		headers = append(headers, batch.Variant)
	}
	headers = append(headers, "Optimal (count)")

	fx.SetColWidth(sheet, "A", "A", 10)
	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	fx.SetColWidth(sheet, "B", lastCol, 18)

	if err := r.writeHeader(fx, sheet, headers, styles); err != nil {
		return err
	}
	if len(result.Batches) == 0 {
		return nil
	}

	for i, target := range result.Batches[0].Results {
		row := i + 2
		fx.SetCellValue(sheet, "A"+strconv.Itoa(row), target.Target)

		optimal := orchestrator.NoValue
		for col, batch := range result.Batches {
			if i >= len(batch.Results) {
				continue
			}
			res := batch.Results[i]
			cell, _ := excelize.CoordinatesToCellName(col+2, row)
			if res.Failed() {
				fx.SetCellValue(sheet, cell, "error")
			} else {
				fx.SetCellValue(sheet, cell, fmt.Sprintf("%d coins (total %d)", res.Coins, res.Total))
			}
			fx.SetCellStyle(sheet, cell, cell, r.verdictCellStyle(res, styles))

			// count encodings carry the unbounded optimum
			if res.OptimalCoins != orchestrator.NoValue && (optimal == orchestrator.NoValue || res.OptimalCoins < optimal) {
				optimal = res.OptimalCoins
			}
		}

		cell, _ := excelize.CoordinatesToCellName(len(headers), row)
		fx.SetCellValue(sheet, cell, excelOptional(optimal))
		fx.SetCellStyle(sheet, cell, cell, styles.BaseStyle)
	}

	// Legend
	row := len(result.Batches[0].Results) + 3
	legend := []struct {
		label string
		style int
	}{
		{"Exact", styles.ExactStyle},
		{"Within tolerance", styles.ToleranceStyle},
		{"Invalid or failed", styles.InvalidStyle},
	}
	fx.SetCellValue(sheet, "A"+strconv.Itoa(row), "Legend:")
	for _, l := range legend {
		row++
		fx.SetCellValue(sheet, "A"+strconv.Itoa(row), l.label)
		fx.SetCellStyle(sheet, "A"+strconv.Itoa(row), "B"+strconv.Itoa(row), l.style)
	}

	return nil
}

// Package-level convenience function
func WriteComparisonXLSX(result *orchestrator.ComparisonResult, path string) error {
	reporter := NewComparisonReporter()
	return reporter.WriteComparisonXLSX(result, path)
}
