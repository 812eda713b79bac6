// Package dp collects classic dynamic-programming patterns as small,
// allocation-conscious functions.
//
// What:
//
//   - Knapsack01 maximises total value under a weight capacity, each item
//     taken at most once.
//   - LongestIncreasingSubsequence returns the length of the longest strictly
//     increasing subsequence.
//   - EditDistance computes the Levenshtein distance between two strings,
//     comparing runes rather than bytes.
//
// Memory:
//
// Every routine keeps a rolling state instead of the full DP matrix: one row
// of size capacity+1 for the knapsack, the "tails" array for LIS and two rows
// of size len(b)+1 for edit distance. None of them can reconstruct the
// chosen items or alignment.
//
// Complexity:
//
//   - Knapsack01:                   O(n·capacity) time, O(capacity) memory.
//   - LongestIncreasingSubsequence: O(n log n) time, O(n) memory.
//   - EditDistance:                 O(|a|·|b|) time, O(|b|) memory.
//
// Errors:
//
//   - ErrBadInput from Knapsack01 on mismatched lengths, negative capacity
//     or a negative weight.
package dp
