package optimization

// Default GA constants
const (
	DefaultPopulationSize = 200
	DefaultGenerations    = 3000
	DefaultMutationRate   = 0.1
	DefaultEliteSize      = 2
	DefaultTournamentSize = 3
	DefaultTolerance      = 1

	DefaultCubicExponent    = 3.0
	DefaultLinearExponent   = 1.0
	DefaultWeightedExponent = 2.0
	DefaultShapingFactor    = 10.0
)

// DefaultDenominations are the coin values used when none are configured
var DefaultDenominations = []int{1, 5, 10, 25, 50, 100}

// DefaultTargets are the amounts solved when none are configured
var DefaultTargets = []int{10, 11, 15, 16, 20, 50, 75, 100, 120, 150, 200, 250, 300, 350}

// GetDefaultOptions returns the default genetic algorithm configuration
func GetDefaultOptions() Options {
	return Options{
		PopulationSize: DefaultPopulationSize,
		Generations:    DefaultGenerations,
		MutationRate:   DefaultMutationRate,
		EliteSize:      DefaultEliteSize,
		TournamentSize: DefaultTournamentSize,
	}
}
