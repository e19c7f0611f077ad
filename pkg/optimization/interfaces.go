package optimization

import (
	"math/rand"
)

// Package optimization provides a genetic algorithm for the coin-change problem

// Encoder creates the individuals of the initial population
type Encoder interface {
	Generate(denominations []int, target int, rng *rand.Rand) Individual
	Encoding() Encoding
}

// FitnessEvaluator builds a Scorer bound to one problem instance
type FitnessEvaluator interface {
	Bind(denominations []int, target int) Scorer
}

// Scorer scores an individual against the problem it was bound to (lower is better)
type Scorer interface {
	Score(individual Individual) float64
}

// ScorerFunc adapts a plain function to the Scorer interface
type ScorerFunc func(individual Individual) float64

// Score calls f(individual)
func (f ScorerFunc) Score(individual Individual) float64 {
	return f(individual)
}

// Mutator perturbs the genes of an individual, returning a new individual
type Mutator interface {
	Mutate(individual Individual, rate float64, denominations []int, rng *rand.Rand) Individual
}

// GenerationObserver receives statistics after every generation of a run
type GenerationObserver func(stats GenerationStats)

// Options holds the configuration for the genetic algorithm
type Options struct {
	PopulationSize int
	Generations    int
	MutationRate   float64
	EliteSize      int
	TournamentSize int
}

// Encoding describes how genes map to coins
type Encoding string

const (
	// EncodingBinary genes are 0/1 flags, one coin of the denomination at most
	EncodingBinary Encoding = "binary"
	// EncodingCount genes are non-negative coin counts
	EncodingCount Encoding = "count"
)
