package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// Sheet names of the results workbook
const (
	ResultsSheet     = "Results"
	ConvergenceSheet = "Convergence"
)

// DefaultExcelReporter implements Excel output functionality
type DefaultExcelReporter struct{}

// NewDefaultExcelReporter creates a new Excel reporter
func NewDefaultExcelReporter() *DefaultExcelReporter {
	return &DefaultExcelReporter{}
}

// WriteResultsXLSX writes a workbook with a Results sheet and a Convergence
// sheet holding the per-generation history of every target
func (r *DefaultExcelReporter) WriteResultsXLSX(batch *orchestrator.BatchResult, path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	fx := excelize.NewFile()
	defer fx.Close()

	fx.SetSheetName(fx.GetSheetName(0), ResultsSheet)
	if _, err := fx.NewSheet(ConvergenceSheet); err != nil {
		return err
	}

	styles, err := r.createExcelStyles(fx)
	if err != nil {
		return err
	}

	if err := r.writeResultsSheet(fx, ResultsSheet, batch, styles); err != nil {
		return fmt.Errorf("failed to write results sheet: %w", err)
	}

	if err := r.writeConvergenceSheet(fx, ConvergenceSheet, batch, styles); err != nil {
		return fmt.Errorf("failed to write convergence sheet: %w", err)
	}

	return fx.SaveAs(path)
}

// createExcelStyles creates all Excel styles
func (r *DefaultExcelReporter) createExcelStyles(fx *excelize.File) (ExcelStyles, error) {
	var styles ExcelStyles
	var err error

	lightBorder := []excelize.Border{
		{Type: "left", Color: "E0E0E0", Style: 1},
		{Type: "right", Color: "E0E0E0", Style: 1},
		{Type: "bottom", Color: "E0E0E0", Style: 1},
	}

	// Header style - Dark slate background with white text
	styles.HeaderStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return styles, err
	}

	styles.BaseStyle, err = fx.NewStyle(&excelize.Style{
		Border: lightBorder,
	})
	if err != nil {
		return styles, err
	}

	// Four decimals for fitness values
	fitnessFormat := "0.0000"
	styles.DecimalStyle, err = fx.NewStyle(&excelize.Style{
		CustomNumFmt: &fitnessFormat,
		Alignment: &excelize.Alignment{
			Horizontal: "right",
		},
		Border: lightBorder,
	})
	if err != nil {
		return styles, err
	}

	styles.ExactStyle, err = verdictStyle(fx, "E6F4EA", "008000", lightBorder)
	if err != nil {
		return styles, err
	}

	styles.ToleranceStyle, err = verdictStyle(fx, "FFF4E5", "B26A00", lightBorder)
	if err != nil {
		return styles, err
	}

	styles.InvalidStyle, err = verdictStyle(fx, "FDECEA", "FF0000", lightBorder)
	if err != nil {
		return styles, err
	}

	styles.SummaryStyle, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: "2F4F4F",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"E6F3FF"},
			Pattern: 1,
		},
	})
	if err != nil {
		return styles, err
	}

	return styles, nil
}

func verdictStyle(fx *excelize.File, fill, font string, border []excelize.Border) (int, error) {
	return fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:  true,
			Color: font,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{fill},
			Pattern: 1,
		},
		Border: border,
	})
}

func (r *DefaultExcelReporter) writeHeader(fx *excelize.File, sheet string, headers []string, styles ExcelStyles) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		fx.SetCellValue(sheet, cell, h)
		fx.SetCellStyle(sheet, cell, cell, styles.HeaderStyle)
	}
	return fx.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

// writeResultsSheet writes one row per target and a summary row
func (r *DefaultExcelReporter) writeResultsSheet(fx *excelize.File, sheet string, batch *orchestrator.BatchResult, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "A", 10) // Target
	fx.SetColWidth(sheet, "B", "B", 24) // Genes
	fx.SetColWidth(sheet, "C", "F", 10) // Total .. Gap
	fx.SetColWidth(sheet, "G", "G", 14) // Fitness
	fx.SetColWidth(sheet, "H", "I", 12) // Generations, Converged
	fx.SetColWidth(sheet, "J", "J", 18) // Verdict
	fx.SetColWidth(sheet, "K", "K", 22) // Seed
	fx.SetColWidth(sheet, "L", "L", 40) // Error

	headers := []string{"Target", "Genes", "Total", "Coins", "Optimal Coins", "Gap", "Fitness",
		"Generations", "Converged", "Verdict", "Seed", "Error"}
	if err := r.writeHeader(fx, sheet, headers, styles); err != nil {
		return err
	}

	row := 2
	for _, res := range batch.Results {
		values := []interface{}{res.Target}
		if res.Failed() {
			values = append(values, "", "", "", "", "", "", "", "", "", res.Seed, res.Error)
		} else {
			values = append(values,
				formatGenes(res.Genes),
				res.Total,
				res.Coins,
				excelOptional(res.OptimalCoins),
				excelOptional(res.Gap),
				res.Fitness,
				res.LastGeneration+1,
				res.Converged,
				string(res.Verdict),
				res.Seed,
				"",
			)
		}

		first, _ := excelize.CoordinatesToCellName(1, row)
		last, _ := excelize.CoordinatesToCellName(len(headers), row)
		if err := fx.SetSheetRow(sheet, first, &values); err != nil {
			return err
		}
		fx.SetCellStyle(sheet, first, last, styles.BaseStyle)
		fx.SetCellStyle(sheet, fmt.Sprintf("G%d", row), fmt.Sprintf("G%d", row), styles.DecimalStyle)

		verdictCell := fmt.Sprintf("J%d", row)
		fx.SetCellStyle(sheet, verdictCell, verdictCell, r.verdictCellStyle(res, styles))

		row++
	}

	// Summary row
	s := batch.Summary()
	row++
	summaryCell := fmt.Sprintf("A%d", row)
	fx.SetCellValue(sheet, summaryCell, fmt.Sprintf("SUMMARY - Variant: %s | Targets: %d | Exact: %d | Within tolerance: %d | Invalid: %d | Failed: %d | Optimal: %d",
		batch.Variant, s.Targets, s.Exact, s.WithinTolerance, s.Invalid, s.Failed, s.Optimal))
	fx.MergeCell(sheet, summaryCell, fmt.Sprintf("L%d", row))
	fx.SetCellStyle(sheet, summaryCell, summaryCell, styles.SummaryStyle)

	return nil
}

func (r *DefaultExcelReporter) verdictCellStyle(res orchestrator.TargetResult, styles ExcelStyles) int {
	if res.Failed() {
		return styles.InvalidStyle
	}
	switch res.Verdict {
	case optimization.VerdictExact:
		return styles.ExactStyle
	case optimization.VerdictWithinTolerance:
		return styles.ToleranceStyle
	default:
		return styles.InvalidStyle
	}
}

// writeConvergenceSheet writes every recorded generation of every target
func (r *DefaultExcelReporter) writeConvergenceSheet(fx *excelize.File, sheet string, batch *orchestrator.BatchResult, styles ExcelStyles) error {
	fx.SetColWidth(sheet, "A", "B", 12)
	fx.SetColWidth(sheet, "C", "E", 16)
	fx.SetColWidth(sheet, "F", "H", 14)

	headers := []string{"Target", "Generation", "Best Fitness", "Mean Fitness", "StdDev Fitness",
		"Best Total", "Tracked Fitness", "Tracked Total"}
	if err := r.writeHeader(fx, sheet, headers, styles); err != nil {
		return err
	}

	row := 2
	for _, res := range batch.Results {
		for _, h := range res.History {
			cell, _ := excelize.CoordinatesToCellName(1, row)
			values := []interface{}{
				res.Target,
				h.Generation,
				h.BestFitness,
				h.MeanFitness,
				h.StdDevFitness,
				h.BestTotal,
				h.TrackedFitness,
				h.TrackedTotal,
			}
			if err := fx.SetSheetRow(sheet, cell, &values); err != nil {
				return err
			}
			row++
		}
	}

	if row > 2 {
		fx.SetCellStyle(sheet, "C2", fmt.Sprintf("E%d", row-1), styles.DecimalStyle)
		fx.SetCellStyle(sheet, "G2", fmt.Sprintf("G%d", row-1), styles.DecimalStyle)
	}

	return nil
}

func excelOptional(v int) interface{} {
	if v == orchestrator.NoValue {
		return ""
	}
	return v
}

// Package-level convenience function
func WriteResultsXLSX(batch *orchestrator.BatchResult, path string) error {
	reporter := NewDefaultExcelReporter()
	return reporter.WriteResultsXLSX(batch, path)
}
