package optimization

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Population represents the candidates of one generation
type Population struct {
	members []Candidate
}

// NewPopulation creates a new population with the given candidates
func NewPopulation(members []Candidate) *Population {
	return &Population{
		members: members,
	}
}

// Members returns all candidates in the population
func (p *Population) Members() []Candidate {
	return p.members
}

// Size returns the number of candidates in the population
func (p *Population) Size() int {
	return len(p.members)
}

// Best returns the candidate with the lowest fitness, first one wins ties
func (p *Population) Best() Candidate {
	if len(p.members) == 0 {
		return Candidate{}
	}

	best := p.members[0]
	for _, candidate := range p.members[1:] {
		if candidate.Fitness < best.Fitness {
			best = candidate
		}
	}
	return best
}

// Elite returns copies of the top n candidates by ascending fitness.
// The population itself is left in its original order.
func (p *Population) Elite(n int) []Candidate {
	if n <= 0 || len(p.members) == 0 {
		return nil
	}
	if n > len(p.members) {
		n = len(p.members)
	}

	ranked := make([]Candidate, len(p.members))
	copy(ranked, p.members)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Fitness < ranked[j].Fitness
	})

	elite := make([]Candidate, n)
	for i := 0; i < n; i++ {
		elite[i] = ranked[i].Clone()
	}
	return elite
}

// FitnessStats returns the mean and sample standard deviation of the fitness scores
func (p *Population) FitnessStats() (mean, stdDev float64) {
	if len(p.members) == 0 {
		return 0, 0
	}

	fitnesses := make([]float64, len(p.members))
	for i, candidate := range p.members {
		fitnesses[i] = candidate.Fitness
	}
	if len(fitnesses) == 1 {
		return fitnesses[0], 0
	}
	return stat.MeanStdDev(fitnesses, nil)
}
