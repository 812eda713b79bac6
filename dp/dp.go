package dp

import (
	"fmt"
	"sort"
)

// Knapsack01 returns the best total value of items whose weights fit within
// capacity, using each item at most once.
//
// The single DP row is walked from capacity down to the item weight so an
// item cannot be counted twice.
func Knapsack01(weights, values []int, capacity int) (int, error) {
	if len(weights) != len(values) {
		return 0, fmt.Errorf("%w: %d weights vs %d values", ErrBadInput, len(weights), len(values))
	}
	if capacity < 0 {
		return 0, fmt.Errorf("%w: capacity %d", ErrBadInput, capacity)
	}
	for i, w := range weights {
		if w < 0 {
			return 0, fmt.Errorf("%w: weight[%d]=%d", ErrBadInput, i, w)
		}
	}

	best := make([]int, capacity+1)
	for i, w := range weights {
		v := values[i]
		for c := capacity; c >= w; c-- {
			if cand := best[c-w] + v; cand > best[c] {
				best[c] = cand
			}
		}
	}

	return best[capacity], nil
}

// LongestIncreasingSubsequence returns the length of the longest strictly
// increasing subsequence of arr.
//
// tails[k] holds the smallest tail of any increasing run of length k+1;
// each element either extends the longest run or lowers one tail.
func LongestIncreasingSubsequence(arr []int) int {
	tails := make([]int, 0, len(arr))
	for _, x := range arr {
		idx := sort.SearchInts(tails, x)
		if idx == len(tails) {
			tails = append(tails, x)
		} else {
			tails[idx] = x
		}
	}

	return len(tails)
}

// EditDistance returns the Levenshtein distance between a and b: the minimum
// number of single-rune insertions, deletions and substitutions.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 {
		return len(rb)
	}
	if len(rb) == 0 {
		return len(ra)
	}

	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		curr[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(rb)]
}
