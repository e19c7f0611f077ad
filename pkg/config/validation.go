package config

import (
	"fmt"
	"strings"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
	"github.com/ducminhle1904/coinchange-ga/pkg/optimization"
)

// RunValidator implements validation for run configurations
type RunValidator struct{}

// NewRunValidator creates a new run validator
func NewRunValidator() *RunValidator {
	return &RunValidator{}
}

// Validate checks every field and reports all problems at once
func (v *RunValidator) Validate(cfg *RunConfig) error {
	if cfg == nil {
		return opterrors.NewValidationError("config", "Validate", "configuration is nil")
	}

	var problems []string
	add := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if len(cfg.Denominations) == 0 {
		add("denominations must not be empty")
	}
	for i, d := range cfg.Denominations {
		if d <= 0 {
			add("denomination %d must be positive, got: %d", i, d)
		}
	}

	if len(cfg.Targets) == 0 {
		add("at least one target is required")
	}
	for i, t := range cfg.Targets {
		if t < 0 {
			add("target %d must be non-negative, got: %d", i, t)
		}
	}

	if cfg.PopulationSize < 2 || cfg.PopulationSize > MaxPopulationSize {
		add("population size must be between 2 and %d, got: %d", MaxPopulationSize, cfg.PopulationSize)
	}
	if cfg.Generations < 1 || cfg.Generations > MaxGenerations {
		add("generations must be between 1 and %d, got: %d", MaxGenerations, cfg.Generations)
	}
	if cfg.MutationRate < 0 || cfg.MutationRate > 1 {
		add("mutation rate must be between 0 and 1, got: %.4f", cfg.MutationRate)
	}
	if cfg.EliteSize < 0 || cfg.EliteSize >= cfg.PopulationSize {
		add("elite size must be between 0 and population size - 1, got: %d", cfg.EliteSize)
	}
	if cfg.TournamentSize < 1 || cfg.TournamentSize > cfg.PopulationSize {
		add("tournament size must be between 1 and population size, got: %d", cfg.TournamentSize)
	}

	if _, err := optimization.ParseVariant(cfg.Variant); err != nil {
		add("variant must be one of [%s], got: %q", strings.Join(optimization.VariantNames(), ", "), cfg.Variant)
	}
	if cfg.DistanceExponent < 0 {
		add("distance exponent must be non-negative, got: %.2f", cfg.DistanceExponent)
	}
	if cfg.ShapingFactor < 0 {
		add("shaping factor must be non-negative, got: %.2f", cfg.ShapingFactor)
	}

	if cfg.Workers < 1 || cfg.Workers > MaxWorkers {
		add("workers must be between 1 and %d, got: %d", MaxWorkers, cfg.Workers)
	}
	if cfg.Tolerance < 0 {
		add("tolerance must be non-negative, got: %d", cfg.Tolerance)
	}
	for _, f := range cfg.Formats {
		if !isSupportedFormat(f) {
			add("format must be one of [%s], got: %q", strings.Join(SupportedFormats, ", "), f)
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return opterrors.NewValidationError("config", "Validate", strings.Join(problems, "; ")).
		WithContext("problems", problems)
}

func isSupportedFormat(format string) bool {
	for _, f := range SupportedFormats {
		if f == format {
			return true
		}
	}
	return false
}
