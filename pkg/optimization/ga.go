package optimization

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	opterrors "github.com/ducminhle1904/coinchange-ga/internal/errors"
)

// GenerationStats summarises one generation of a run
type GenerationStats struct {
	Generation     int     `json:"generation"`
	BestFitness    float64 `json:"best_fitness"`
	MeanFitness    float64 `json:"mean_fitness"`
	StdDevFitness  float64 `json:"stddev_fitness"`
	BestTotal      int     `json:"best_total"`
	TrackedFitness float64 `json:"tracked_fitness"`
	TrackedTotal   int     `json:"tracked_total"`
}

// Result is the outcome of one run of the evolutionary loop
type Result struct {
	Best  Candidate `json:"best"`
	Total int       `json:"total"`
	// LastGeneration is the index of the final generation executed, -1 if none ran
	LastGeneration int               `json:"last_generation"`
	Converged      bool              `json:"converged"`
	History        []GenerationStats `json:"history,omitempty"`
}

// Optimizer runs the evolutionary loop for one strategy
type Optimizer struct {
	options  Options
	strategy *Strategy
	rng      *rand.Rand
	observer GenerationObserver
}

// NewOptimizer creates a new optimizer. A nil rng is seeded from the clock.
func NewOptimizer(options Options, strategy *Strategy, rng *rand.Rand) *Optimizer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Optimizer{
		options:  options,
		strategy: strategy,
		rng:      rng,
	}
}

// SetObserver registers a callback invoked after every generation
func (o *Optimizer) SetObserver(observer GenerationObserver) {
	o.observer = observer
}

// Run searches for the fewest coins summing to target.
// The returned best candidate is the best seen across all generations.
func (o *Optimizer) Run(ctx context.Context, denominations []int, target int) (*Result, error) {
	if err := ValidateProblem(denominations, target); err != nil {
		return nil, err
	}
	if err := ValidateOptions(o.options); err != nil {
		return nil, err
	}
	if o.strategy == nil {
		return nil, opterrors.NewValidationError("optimization", "Run", "strategy is required")
	}

	if target == 0 {
		zero := NewIndividual(len(denominations))
		return &Result{
			Best:           Candidate{Genes: zero, Fitness: 0},
			Total:          0,
			LastGeneration: 0,
			Converged:      true,
		}, nil
	}

	scorer := o.strategy.Fitness.Bind(denominations, target)
	population := o.initializePopulation(denominations, target, scorer)

	result := &Result{
		LastGeneration: -1,
		History:        make([]GenerationStats, 0, o.options.Generations),
	}
	var best Candidate
	tracked := false

	for gen := 0; gen < o.options.Generations; gen++ {
		select {
		case <-ctx.Done():
			return nil, opterrors.NewCancelledError("optimization", "Run", ctx.Err()).
				WithContext("generation", gen)
		default:
		}

		population = o.nextGeneration(population, denominations, scorer)

		genBest := population.Best()
		if !tracked || genBest.Fitness < best.Fitness {
			best = genBest.Clone()
			tracked = true
		}

		mean, stdDev := population.FitnessStats()
		stats := GenerationStats{
			Generation:     gen,
			BestFitness:    genBest.Fitness,
			MeanFitness:    mean,
			StdDevFitness:  stdDev,
			BestTotal:      genBest.Genes.Total(denominations),
			TrackedFitness: best.Fitness,
			TrackedTotal:   best.Genes.Total(denominations),
		}
		result.History = append(result.History, stats)
		result.LastGeneration = gen
		if o.observer != nil {
			o.observer(stats)
		}

		if o.strategy.Solved(best, denominations, target) {
			result.Converged = true
			break
		}
	}

	result.Best = best
	result.Total = best.Genes.Total(denominations)
	return result, nil
}

// initializePopulation creates and scores the first generation
func (o *Optimizer) initializePopulation(denominations []int, target int, scorer Scorer) *Population {
	members := make([]Candidate, o.options.PopulationSize)
	for i := range members {
		genes := o.strategy.Encoder.Generate(denominations, target, o.rng)
		members[i] = Candidate{Genes: genes, Fitness: scorer.Score(genes)}
	}
	return NewPopulation(members)
}

// nextGeneration builds the replacement population: elites first when the
// strategy keeps them, then mutated crossover children in pairs. A surplus
// child from the last pair is dropped to keep the size fixed.
func (o *Optimizer) nextGeneration(population *Population, denominations []int, scorer Scorer) *Population {
	size := o.options.PopulationSize
	next := make([]Candidate, 0, size)

	if o.strategy.Elitism && o.options.EliteSize > 0 {
		next = append(next, population.Elite(o.options.EliteSize)...)
	}

	for len(next) < size {
		parent1 := TournamentSelection(population, o.options.TournamentSize, o.rng)
		parent2 := TournamentSelection(population, o.options.TournamentSize, o.rng)

		child1, child2 := Crossover(parent1.Genes, parent2.Genes, o.rng)
		child1 = o.strategy.Mutator.Mutate(child1, o.options.MutationRate, denominations, o.rng)
		child2 = o.strategy.Mutator.Mutate(child2, o.options.MutationRate, denominations, o.rng)

		next = append(next, Candidate{Genes: child1, Fitness: scorer.Score(child1)})
		if len(next) < size {
			next = append(next, Candidate{Genes: child2, Fitness: scorer.Score(child2)})
		}
	}

	return NewPopulation(next)
}

// ValidateProblem rejects inputs the loop cannot work with
func ValidateProblem(denominations []int, target int) error {
	if len(denominations) == 0 {
		return opterrors.NewValidationError("optimization", "ValidateProblem", "denomination set must not be empty")
	}
	for i, d := range denominations {
		if d <= 0 {
			return opterrors.NewValidationError("optimization", "ValidateProblem",
				fmt.Sprintf("denomination %d must be positive, got: %d", i, d))
		}
	}
	if target < 0 {
		return opterrors.NewValidationError("optimization", "ValidateProblem",
			fmt.Sprintf("target must be non-negative, got: %d", target))
	}
	return nil
}

// ValidateOptions checks the genetic algorithm parameters
func ValidateOptions(opts Options) error {
	if opts.PopulationSize < 2 {
		return opterrors.NewValidationError("optimization", "ValidateOptions",
			fmt.Sprintf("population size must be at least 2, got: %d", opts.PopulationSize))
	}
	if opts.Generations < 1 {
		return opterrors.NewValidationError("optimization", "ValidateOptions",
			fmt.Sprintf("generations must be at least 1, got: %d", opts.Generations))
	}
	if opts.MutationRate < 0 || opts.MutationRate > 1 {
		return opterrors.NewValidationError("optimization", "ValidateOptions",
			fmt.Sprintf("mutation rate must be between 0 and 1, got: %.4f", opts.MutationRate))
	}
	if opts.EliteSize < 0 || opts.EliteSize >= opts.PopulationSize {
		return opterrors.NewValidationError("optimization", "ValidateOptions",
			fmt.Sprintf("elite size must be between 0 and %d, got: %d", opts.PopulationSize-1, opts.EliteSize))
	}
	if opts.TournamentSize < 1 {
		return opterrors.NewValidationError("optimization", "ValidateOptions",
			fmt.Sprintf("tournament size must be at least 1, got: %d", opts.TournamentSize))
	}
	return nil
}
