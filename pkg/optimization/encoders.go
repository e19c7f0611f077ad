package optimization

import (
	"math/rand"
)

// BinaryEncoder draws every gene uniformly from {0, 1}, ignoring the target
type BinaryEncoder struct{}

// Generate creates a random binary individual
func (BinaryEncoder) Generate(denominations []int, _ int, rng *rand.Rand) Individual {
	individual := NewIndividual(len(denominations))
	for i := range individual {
		individual[i] = rng.Intn(2)
	}
	return individual
}

// Encoding returns EncodingBinary
func (BinaryEncoder) Encoding() Encoding {
	return EncodingBinary
}

// GreedyEncoder builds the classic greedy change: largest denomination first,
// each gene gets remaining / denomination. Every individual it produces is the same.
type GreedyEncoder struct{}

// Generate creates the greedy count individual
func (GreedyEncoder) Generate(denominations []int, target int, _ *rand.Rand) Individual {
	individual := NewIndividual(len(denominations))
	remaining := target
	for _, idx := range descendingOrder(denominations) {
		if denominations[idx] <= 0 {
			continue
		}
		individual[idx] = remaining / denominations[idx]
		remaining -= individual[idx] * denominations[idx]
	}
	return individual
}

// Encoding returns EncodingCount
func (GreedyEncoder) Encoding() Encoding {
	return EncodingCount
}
