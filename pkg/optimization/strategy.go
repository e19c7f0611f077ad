package optimization

import (
	"fmt"
	"sort"
	"strings"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
)

// Variant names one of the fitness/representation/mutation combinations
type Variant string

const (
	// VariantBinaryCubic uses binary genes, cubic miss penalty and elitism
	VariantBinaryCubic Variant = "binary-cubic"
	// VariantBinaryLinear uses binary genes, linear miss penalty and no elitism
	VariantBinaryLinear Variant = "binary-linear"
	// VariantCountWeighted uses greedy count genes, weighted penalty and elitism
	VariantCountWeighted Variant = "count-weighted"
)

// Strategy bundles the operators that differ between variants
type Strategy struct {
	Variant Variant
	Encoder Encoder
	Fitness FitnessEvaluator
	Mutator Mutator

	// Elitism carries the top individuals into the next generation unmodified
	Elitism bool
	// RequireUnweighted stops only when the tracked fitness equals the plain coin count
	RequireUnweighted bool
}

// PenaltyParams overrides the shaping constants of a variant's fitness.
// Zero values keep the variant defaults.
type PenaltyParams struct {
	DistanceExponent float64
	ShapingFactor    float64
}

var variantBuilders = map[Variant]func(PenaltyParams) *Strategy{
	VariantBinaryCubic: func(p PenaltyParams) *Strategy {
		return &Strategy{
			Variant: VariantBinaryCubic,
			Encoder: BinaryEncoder{},
			Fitness: DistanceFitness{Exponent: orDefault(p.DistanceExponent, DefaultCubicExponent), BinaryGenes: true},
			Mutator: BitFlipMutator{},
			Elitism: true,
		}
	},
	VariantBinaryLinear: func(p PenaltyParams) *Strategy {
		return &Strategy{
			Variant: VariantBinaryLinear,
			Encoder: BinaryEncoder{},
			Fitness: DistanceFitness{Exponent: orDefault(p.DistanceExponent, DefaultLinearExponent), BinaryGenes: true},
			Mutator: BitFlipMutator{},
			Elitism: false,
		}
	},
	VariantCountWeighted: func(p PenaltyParams) *Strategy {
		return &Strategy{
			Variant: VariantCountWeighted,
			Encoder: GreedyEncoder{},
			Fitness: WeightedFitness{
				DistanceExponent: orDefault(p.DistanceExponent, DefaultWeightedExponent),
				ShapingFactor:    orDefault(p.ShapingFactor, DefaultShapingFactor),
			},
			Mutator:           CountMutator{},
			Elitism:           true,
			RequireUnweighted: true,
		}
	},
}

// NewStrategy returns the operator bundle for a variant with default constants
func NewStrategy(variant Variant) (*Strategy, error) {
	return NewStrategyWithParams(variant, PenaltyParams{})
}

// NewStrategyWithParams returns the operator bundle for a variant with custom constants
func NewStrategyWithParams(variant Variant, params PenaltyParams) (*Strategy, error) {
	build, ok := variantBuilders[variant]
	if !ok {
		return nil, opterrors.NewValidationError("optimization", "NewStrategy",
			fmt.Sprintf("unknown variant %q (valid: %s)", variant, strings.Join(VariantNames(), ", ")))
	}
	if params.DistanceExponent < 0 || params.ShapingFactor < 0 {
		return nil, opterrors.NewValidationError("optimization", "NewStrategy",
			fmt.Sprintf("penalty constants must be non-negative, got exponent %.2f shaping %.2f",
				params.DistanceExponent, params.ShapingFactor))
	}
	return build(params), nil
}

// ParseVariant converts a user-supplied name to a Variant
func ParseVariant(name string) (Variant, error) {
	v := Variant(strings.ToLower(strings.TrimSpace(name)))
	switch v {
	case "a", "cubic":
		v = VariantBinaryCubic
	case "b", "linear":
		v = VariantBinaryLinear
	case "c", "weighted", "count":
		v = VariantCountWeighted
	}
	if _, ok := variantBuilders[v]; !ok {
		return "", opterrors.NewValidationError("optimization", "ParseVariant",
			fmt.Sprintf("unknown variant %q (valid: %s)", name, strings.Join(VariantNames(), ", ")))
	}
	return v, nil
}

// VariantNames lists the known variants in a stable order
func VariantNames() []string {
	names := make([]string, 0, len(variantBuilders))
	for v := range variantBuilders {
		names = append(names, string(v))
	}
	sort.Strings(names)
	return names
}

// Solved reports whether the tracked best candidate ends the run early
func (s *Strategy) Solved(best Candidate, denominations []int, target int) bool {
	if best.Genes == nil || best.Genes.Total(denominations) != target {
		return false
	}
	if s.RequireUnweighted {
		return best.Fitness == float64(best.Genes.CoinCount())
	}
	return true
}

func orDefault(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
