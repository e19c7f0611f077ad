package optimization

import (
	"math/rand"
	"sort"
)

// TournamentSelection samples k distinct candidates without replacement and
// returns the one with the lowest fitness. k is clamped to the population size.
func TournamentSelection(population *Population, k int, rng *rand.Rand) Candidate {
	members := population.Members()
	if len(members) == 0 {
		return Candidate{}
	}
	if k < 1 {
		k = 1
	}
	if k > len(members) {
		k = len(members)
	}

	picked := make([]int, 0, k)
	for len(picked) < k {
		idx := rng.Intn(len(members))
		if containsIndex(picked, idx) {
			continue
		}
		picked = append(picked, idx)
	}

	best := members[picked[0]]
	for _, idx := range picked[1:] {
		if members[idx].Fitness < best.Fitness {
			best = members[idx]
		}
	}
	return best
}

// Crossover performs single-point crossover with a cut drawn from [1, len-1].
// child1 takes parent1's prefix and parent2's suffix, child2 the complement.
// Individuals shorter than two genes cannot be cut and are returned as copies.
func Crossover(parent1, parent2 Individual, rng *rand.Rand) (Individual, Individual) {
	length := len(parent1)
	if len(parent2) < length {
		length = len(parent2)
	}
	if length < 2 {
		return parent1.Clone(), parent2.Clone()
	}

	point := rng.Intn(length-1) + 1
	return CrossoverAt(parent1, parent2, point)
}

// CrossoverAt performs single-point crossover at a fixed cut point
func CrossoverAt(parent1, parent2 Individual, point int) (Individual, Individual) {
	child1 := make(Individual, 0, len(parent1))
	child1 = append(child1, parent1[:point]...)
	child1 = append(child1, parent2[point:]...)

	child2 := make(Individual, 0, len(parent2))
	child2 = append(child2, parent2[:point]...)
	child2 = append(child2, parent1[point:]...)

	return child1, child2
}

// BitFlipMutator flips each binary gene independently with probability rate
type BitFlipMutator struct{}

// Mutate applies the bit flips to a copy of the individual
func (BitFlipMutator) Mutate(individual Individual, rate float64, _ []int, rng *rand.Rand) Individual {
	mutated := individual.Clone()
	for i, gene := range mutated {
		if rng.Float64() < rate {
			mutated[i] = 1 - gene
		}
	}
	return mutated
}

// CountMutator walks the genes from the highest denomination to the lowest and,
// with probability rate per gene, decrements a positive count or increments a zero one.
type CountMutator struct{}

// Mutate applies the count steps to a copy of the individual
func (CountMutator) Mutate(individual Individual, rate float64, denominations []int, rng *rand.Rand) Individual {
	mutated := individual.Clone()
	for _, idx := range descendingOrder(denominations) {
		if idx >= len(mutated) {
			continue
		}
		if rng.Float64() >= rate {
			continue
		}
		// gene never drops below zero: decrement only when positive
		if mutated[idx] > 0 {
			mutated[idx]--
		} else {
			mutated[idx]++
		}
	}
	return mutated
}

// descendingOrder returns denomination indices from highest value to lowest.
// Equal values keep their original relative order.
func descendingOrder(denominations []int) []int {
	order := make([]int, len(denominations))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return denominations[order[a]] > denominations[order[b]]
	})
	return order
}

func containsIndex(indices []int, idx int) bool {
	for _, i := range indices {
		if i == idx {
			return true
		}
	}
	return false
}
