// Package exact solves coin change exactly with dynamic programming. The
// results serve as the optimality baseline the genetic search is measured against.
package exact

// MaxTarget bounds the pseudo-polynomial table size
const MaxTarget = 10_000_000

// Solution is an optimal coin assignment
type Solution struct {
	Counts []int `json:"counts"`
	Coins  int   `json:"coins"`
}

// MinCoins returns the fewest coins (unlimited supply per denomination)
// summing to target. ok is false when the target cannot be formed.
func MinCoins(denominations []int, target int) (Solution, bool) {
	if target < 0 || target > MaxTarget || !validDenominations(denominations) {
		return Solution{}, false
	}

	unreachable := target + 1
	dp := make([]int, target+1)
	last := make([]int, target+1)
	for i := 1; i <= target; i++ {
		dp[i] = unreachable
		last[i] = -1
	}

	for amount := 1; amount <= target; amount++ {
		for idx, coin := range denominations {
			if coin > amount || dp[amount-coin] == unreachable {
				continue
			}
			if dp[amount-coin]+1 < dp[amount] {
				dp[amount] = dp[amount-coin] + 1
				last[amount] = idx
			}
		}
	}
	if dp[target] == unreachable {
		return Solution{}, false
	}

	counts := make([]int, len(denominations))
	for amount := target; amount > 0; amount -= denominations[last[amount]] {
		counts[last[amount]]++
	}
	return Solution{Counts: counts, Coins: dp[target]}, true
}

// MinCoinsBinary returns the fewest coins when each denomination may be used
// at most once (0/1 genes). ok is false when the target cannot be formed.
func MinCoinsBinary(denominations []int, target int) (Solution, bool) {
	if target < 0 || target > MaxTarget || !validDenominations(denominations) {
		return Solution{}, false
	}

	n := len(denominations)
	unreachable := n + 1
	// dp[i][a]: fewest coins among the first i denominations summing to a
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, target+1)
	}
	for a := 1; a <= target; a++ {
		dp[0][a] = unreachable
	}

	for i := 1; i <= n; i++ {
		coin := denominations[i-1]
		for a := 0; a <= target; a++ {
			dp[i][a] = dp[i-1][a]
			if a >= coin && dp[i-1][a-coin]+1 < dp[i][a] {
				dp[i][a] = dp[i-1][a-coin] + 1
			}
		}
	}
	if dp[n][target] >= unreachable {
		return Solution{}, false
	}

	counts := make([]int, n)
	for i, a := n, target; i > 0; i-- {
		if dp[i][a] != dp[i-1][a] {
			counts[i-1] = 1
			a -= denominations[i-1]
		}
	}
	return Solution{Counts: counts, Coins: dp[n][target]}, true
}

func validDenominations(denominations []int) bool {
	if len(denominations) == 0 {
		return false
	}
	for _, d := range denominations {
		if d <= 0 {
			return false
		}
	}
	return true
}
