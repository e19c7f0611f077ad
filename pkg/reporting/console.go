package reporting

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/ducminhle1904/coinchange-ga/pkg/config"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
	"github.com/ducminhle1904/coinchange-ga/pkg/orchestrator"
)

// DefaultConsoleReporter implements console output functionality
type DefaultConsoleReporter struct {
	out io.Writer
}

// NewDefaultConsoleReporter creates a console reporter writing to stdout
func NewDefaultConsoleReporter() *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: os.Stdout}
}

// NewConsoleReporterWithWriter creates a console reporter writing to w
func NewConsoleReporterWithWriter(w io.Writer) *DefaultConsoleReporter {
	return &DefaultConsoleReporter{out: w}
}

// OutputBatch prints one row per target followed by a summary line
func (r *DefaultConsoleReporter) OutputBatch(batch *orchestrator.BatchResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle(fmt.Sprintf("RESULTS - %s", strings.ToUpper(batch.Variant)))
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Target", "Best Solution", "Total", "Coins", "Optimal", "Gap", "Fitness", "Gens", "Verdict"})
	for _, res := range batch.Results {
		if res.Failed() {
			t.AppendRow(table.Row{res.Target, "-", "-", "-", "-", "-", "-", "-", "💥 " + res.Error})
			continue
		}
		t.AppendRow(table.Row{
			res.Target,
			formatGenes(res.Genes),
			res.Total,
			res.Coins,
			optionalInt(res.OptimalCoins),
			optionalInt(res.Gap),
			fmt.Sprintf("%.2f", res.Fitness),
			res.LastGeneration + 1,
			verdictLabel(res.Verdict),
		})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
		{Number: 2, Align: text.AlignLeft},
		{Number: 9, Align: text.AlignLeft},
	})

	t.Render()

	s := batch.Summary()
	fmt.Fprintf(r.out, "📊 %d targets | ✅ exact: %d | ⚠️ within tolerance (±%d): %d | ❌ invalid: %d | 💥 failed: %d | 🎯 optimal: %d\n",
		s.Targets, s.Exact, batch.Tolerance, s.WithinTolerance, s.Invalid, s.Failed, s.Optimal)
	fmt.Fprintf(r.out, "⏱️ Completed in %s\n\n", batch.Duration.Round(time.Millisecond))
}

// OutputComparison prints one summary row per variant
func (r *DefaultConsoleReporter) OutputComparison(result *orchestrator.ComparisonResult) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("VARIANT COMPARISON")
	t.SetStyle(table.StyleRounded)

	t.AppendHeader(table.Row{"Variant", "Exact", "Within Tol.", "Invalid", "Failed", "Optimal", "Duration"})
	for _, batch := range result.Batches {
		s := batch.Summary()
		name := batch.Variant
		if name == result.BestVariant {
			name = "🏆 " + name
		}
		t.AppendRow(table.Row{name, s.Exact, s.WithinTolerance, s.Invalid, s.Failed, s.Optimal, batch.Duration.Round(time.Millisecond)})
	}

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

// PrintConfig prints the run configuration
func (r *DefaultConsoleReporter) PrintConfig(cfg *config.RunConfig) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetTitle("RUN CONFIGURATION")
	t.SetStyle(table.StyleRounded)

	t.AppendRows([]table.Row{
		{"🪙 Denominations", fmt.Sprint(cfg.Denominations)},
		{"🎯 Targets", fmt.Sprint(cfg.Targets)},
		{"🧬 Variant", cfg.Variant},
	})

	t.AppendSeparator()

	t.AppendRows([]table.Row{
		{"👥 Population", cfg.PopulationSize},
		{"🔄 Generations", cfg.Generations},
		{"🎲 Mutation Rate", fmt.Sprintf("%.3f", cfg.MutationRate)},
		{"🏅 Elite Size", cfg.EliteSize},
		{"🥊 Tournament Size", cfg.TournamentSize},
	})

	t.AppendSeparator()

	seed := "clock"
	if cfg.Seed != 0 {
		seed = fmt.Sprint(cfg.Seed)
	}
	t.AppendRows([]table.Row{
		{"🌱 Seed", seed},
		{"⚙️ Workers", cfg.Workers},
		{"📏 Tolerance", cfg.Tolerance},
		{"📄 Formats", strings.Join(cfg.Formats, ", ")},
	})

	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, WidthMin: 18, WidthMax: 18, Align: text.AlignLeft},
		{Number: 2, WidthMin: 25, WidthMax: 60, Align: text.AlignLeft},
	})

	t.Render()
	fmt.Fprintln(r.out)
}

func formatGenes(genes optimization.Individual) string {
	parts := make([]string, len(genes))
	for i, g := range genes {
		parts[i] = fmt.Sprint(g)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

func optionalInt(v int) string {
	if v == orchestrator.NoValue {
		return "-"
	}
	return fmt.Sprint(v)
}

func verdictLabel(v optimization.Verdict) string {
	switch v {
	case optimization.VerdictExact:
		return "✅ " + v.Describe()
	case optimization.VerdictWithinTolerance:
		return "⚠️ " + v.Describe()
	default:
		return "❌ " + v.Describe()
	}
}

// Package-level convenience function
func OutputConsole(batch *orchestrator.BatchResult) {
	reporter := NewDefaultConsoleReporter()
	reporter.OutputBatch(batch)
}
