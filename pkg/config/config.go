package config

import (
	"runtime"

	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// RunConfig holds all configuration for a batch of optimization runs
type RunConfig struct {
	// Problem
	Denominations []int `json:"denominations"`
	Targets       []int `json:"targets"`

	// Genetic algorithm parameters
	PopulationSize int     `json:"population_size"`
	Generations    int     `json:"generations"`
	MutationRate   float64 `json:"mutation_rate"`
	EliteSize      int     `json:"elite_size"`
	TournamentSize int     `json:"tournament_size"`

	// Fitness strategy; zero penalty constants keep the variant defaults
	Variant          string  `json:"variant"`
	DistanceExponent float64 `json:"distance_exponent,omitempty"`
	ShapingFactor    float64 `json:"shaping_factor,omitempty"`

	// Execution
	Seed    int64 `json:"seed"`
	Workers int   `json:"workers"`

	// Verification and output
	Tolerance   int      `json:"tolerance"`
	OutputDir   string   `json:"output_dir"`
	Formats     []string `json:"formats"`
	LogToFile   bool     `json:"log_to_file"`
	KeepHistory bool     `json:"keep_history"`
}

// NewDefaultRunConfig creates the default configuration: coins 1 to 100 over the standard target list
func NewDefaultRunConfig() *RunConfig {
	return &RunConfig{
		Denominations:  append([]int(nil), optimization.DefaultDenominations...),
		Targets:        append([]int(nil), optimization.DefaultTargets...),
		PopulationSize: optimization.DefaultPopulationSize,
		Generations:    optimization.DefaultGenerations,
		MutationRate:   optimization.DefaultMutationRate,
		EliteSize:      optimization.DefaultEliteSize,
		TournamentSize: optimization.DefaultTournamentSize,
		Variant:        string(optimization.VariantBinaryCubic),
		Seed:           0,
		Workers:        defaultWorkers(),
		Tolerance:      optimization.DefaultTolerance,
		Formats:        []string{FormatConsole},
		KeepHistory:    true,
	}
}

// Options returns the genetic algorithm parameters of this configuration
func (c *RunConfig) Options() optimization.Options {
	return optimization.Options{
		PopulationSize: c.PopulationSize,
		Generations:    c.Generations,
		MutationRate:   c.MutationRate,
		EliteSize:      c.EliteSize,
		TournamentSize: c.TournamentSize,
	}
}

// Strategy builds the operator bundle for the configured variant
func (c *RunConfig) Strategy() (*optimization.Strategy, error) {
	variant, err := optimization.ParseVariant(c.Variant)
	if err != nil {
		return nil, err
	}
	return optimization.NewStrategyWithParams(variant, optimization.PenaltyParams{
		DistanceExponent: c.DistanceExponent,
		ShapingFactor:    c.ShapingFactor,
	})
}

// HasFormat reports whether a report format is enabled
func (c *RunConfig) HasFormat(format string) bool {
	for _, f := range c.Formats {
		if f == format {
			return true
		}
	}
	return false
}

// Validate validates the configuration
func (c *RunConfig) Validate() error {
	return NewRunValidator().Validate(c)
}

func defaultWorkers() int {
	if n := runtime.NumCPU(); n < MaxWorkers {
		return n
	}
	return MaxWorkers
}
