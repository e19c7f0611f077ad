package exact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func total(counts, denominations []int) int {
	sum := 0
	for i, c := range counts {
		sum += c * denominations[i]
	}
	return sum
}

// TestMinCoins tests the unbounded solver on classic cases
func TestMinCoins(t *testing.T) {
	tests := []struct {
		name          string
		denominations []int
		target        int
		coins         int
	}{
		{"us coins 37", []int{1, 5, 10, 25}, 37, 4},
		{"greedy fails", []int{1, 3, 4}, 6, 2},
		{"large target", []int{1, 5, 10, 25, 50, 100}, 10000, 100},
		{"zero target", []int{1, 5}, 0, 0},
		{"unsorted", []int{25, 1, 10, 5}, 30, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sol, ok := MinCoins(tt.denominations, tt.target)
			require.True(t, ok)
			assert.Equal(t, tt.coins, sol.Coins)
			assert.Equal(t, tt.target, total(sol.Counts, tt.denominations))

			sum := 0
			for _, c := range sol.Counts {
				sum += c
			}
			assert.Equal(t, sol.Coins, sum)
		})
	}
}

// TestMinCoins_Unreachable tests targets that cannot be formed
func TestMinCoins_Unreachable(t *testing.T) {
	_, ok := MinCoins([]int{5, 10}, 7)
	assert.False(t, ok)

	_, ok = MinCoins(nil, 7)
	assert.False(t, ok)

	_, ok = MinCoins([]int{0, 1}, 7)
	assert.False(t, ok)

	_, ok = MinCoins([]int{1}, -1)
	assert.False(t, ok)
}

// TestMinCoinsBinary tests the one-coin-per-denomination solver
func TestMinCoinsBinary(t *testing.T) {
	denoms := []int{1, 5, 10, 25, 50, 100}

	sol, ok := MinCoinsBinary(denoms, 16)
	require.True(t, ok)
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0}, sol.Counts)
	assert.Equal(t, 3, sol.Coins)

	sol, ok = MinCoinsBinary(denoms, 191)
	require.True(t, ok)
	assert.Equal(t, 6, sol.Coins)

	sol, ok = MinCoinsBinary([]int{5, 5, 10}, 10)
	require.True(t, ok)
	assert.Equal(t, 1, sol.Coins)

	_, ok = MinCoinsBinary(denoms, 200)
	assert.False(t, ok)

	_, ok = MinCoinsBinary(denoms, 2)
	assert.False(t, ok)
}
