package optimization

import (
	"math"
)

// DistanceFitness scores exact matches by coin count and misses by
// |total - target| raised to Exponent, offset above every exact-match score.
type DistanceFitness struct {
	Exponent    float64
	// BinaryGenes caps the exact-match coin count at one coin per denomination
	BinaryGenes bool
}

// Bind fixes the evaluator to one denomination set and target
func (f DistanceFitness) Bind(denominations []int, target int) Scorer {
	ceiling := maxExactCoins(denominations, target)
	if f.BinaryGenes && len(denominations) < ceiling {
		ceiling = len(denominations)
	}
	return &distanceScorer{
		denominations: denominations,
		target:        target,
		exponent:      f.Exponent,
		ceiling:       float64(ceiling),
	}
}

type distanceScorer struct {
	denominations []int
	target        int
	exponent      float64
	ceiling       float64
}

func (s *distanceScorer) Score(individual Individual) float64 {
	total := individual.Total(s.denominations)
	if total == s.target {
		return float64(individual.CoinCount())
	}
	return s.ceiling + math.Pow(float64(absInt(total-s.target)), s.exponent)
}

// WeightedFitness adds a structural penalty that weighs lower denominations
// more heavily: the gene at ascending value rank r weighs (n-1-r)^2, so the
// largest denomination costs nothing beyond its coin count. The largest coin
// weighs 0 so an individual made only of it scores its plain coin count and
// passes the unweighted termination check. Misses score
// |total - target|^DistanceExponent + ShapingFactor*(count + penalty),
// offset above every exact-match score.
type WeightedFitness struct {
	DistanceExponent float64
	ShapingFactor    float64
}

// Bind fixes the evaluator to one denomination set and target
func (f WeightedFitness) Bind(denominations []int, target int) Scorer {
	n := len(denominations)
	weights := make([]int, n)
	for rank, idx := range descendingOrder(denominations) {
		// descending rank 0 is the largest denomination
		weights[idx] = rank * rank
	}
	maxWeight := (n - 1) * (n - 1)
	if n == 0 {
		maxWeight = 0
	}

	return &weightedScorer{
		denominations: denominations,
		target:        target,
		weights:       weights,
		exponent:      f.DistanceExponent,
		shaping:       f.ShapingFactor,
		ceiling:       float64(maxExactCoins(denominations, target) * (1 + maxWeight)),
	}
}

type weightedScorer struct {
	denominations []int
	target        int
	weights       []int
	exponent      float64
	shaping       float64
	ceiling       float64
}

func (s *weightedScorer) Score(individual Individual) float64 {
	total := individual.Total(s.denominations)
	count := individual.CoinCount()
	penalty := s.penalty(individual)
	if total == s.target {
		return float64(count + penalty)
	}
	distance := math.Pow(float64(absInt(total-s.target)), s.exponent)
	return s.ceiling + distance + s.shaping*float64(count+penalty)
}

func (s *weightedScorer) penalty(individual Individual) int {
	penalty := 0
	for i, gene := range individual {
		if i >= len(s.weights) {
			break
		}
		penalty += gene * s.weights[i]
	}
	return penalty
}

// maxExactCoins bounds the coin count of any exact match: every coin is worth
// at least the smallest denomination.
func maxExactCoins(denominations []int, target int) int {
	smallest := 0
	for _, d := range denominations {
		if d > 0 && (smallest == 0 || d < smallest) {
			smallest = d
		}
	}
	if smallest == 0 || target <= 0 {
		return 0
	}
	return target / smallest
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
