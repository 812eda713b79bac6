package sorting

import (
	"cmp"
	"math"
	"slices"
)

// BinarySearch returns the index of target in the ascending slice arr,
// or -1 when target is absent.
func BinarySearch[T cmp.Ordered](arr []T, target T) int {
	lo, hi := 0, len(arr)-1
	for lo <= hi {
		mid := lo + (hi-lo)/2
		switch {
		case arr[mid] == target:
			return mid
		case arr[mid] < target:
			lo = mid + 1
		default:
			hi = mid - 1
		}
	}

	return -1
}

// QuickSort sorts arr in place and returns it for chaining.
func QuickSort[T cmp.Ordered](arr []T) []T {
	quickSort(arr, 0, len(arr)-1)
	return arr
}

func quickSort[T cmp.Ordered](a []T, lo, hi int) {
	for lo < hi {
		pivot := a[lo+(hi-lo)/2]
		i, j := lo, hi
		for i <= j {
			for a[i] < pivot {
				i++
			}
			for a[j] > pivot {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
		}
		// Recurse into the smaller half; loop on the larger one.
		if j-lo < hi-i {
			quickSort(a, lo, j)
			lo = i
		} else {
			quickSort(a, i, hi)
			hi = j
		}
	}
}

// MergeSort returns a sorted copy of arr. Equal elements keep their order.
func MergeSort[T cmp.Ordered](arr []T) []T {
	if len(arr) <= 1 {
		return slices.Clone(arr)
	}
	mid := len(arr) / 2

	return merge(MergeSort(arr[:mid]), MergeSort(arr[mid:]))
}

func merge[T cmp.Ordered](left, right []T) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if left[i] <= right[j] {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)

	return append(out, right[j:]...)
}

// ActivitySelection returns a maximum-size subset of mutually compatible
// intervals, in finish order. An interval may start exactly when the
// previous one finishes. The input slice is not modified.
func ActivitySelection(intervals []Interval) []Interval {
	sorted := slices.Clone(intervals)
	slices.SortStableFunc(sorted, func(a, b Interval) int {
		return cmp.Compare(a.Finish, b.Finish)
	})

	var picked []Interval
	lastFinish := math.MinInt
	for _, iv := range sorted {
		if iv.Start >= lastFinish {
			picked = append(picked, iv)
			lastFinish = iv.Finish
		}
	}

	return picked
}

// UnknownComplexity is returned by BigO for operations it does not know.
const UnknownComplexity = "Unknown / not defined"

var complexities = map[string]string{
	"binary_search":   "O(log n)",
	"linear_search":   "O(n)",
	"quicksort_avg":   "O(n log n)",
	"quicksort_worst": "O(n^2)",
	"mergesort":       "O(n log n)",
	"bfs":             "O(V + E)",
	"dfs":             "O(V + E)",
	"dijkstra":        "O((V + E) log V)",
}

// BigO returns the typical time complexity of a named operation such as
// "binary_search" or "dijkstra", or UnknownComplexity.
func BigO(op string) string {
	if c, ok := complexities[op]; ok {
		return c
	}

	return UnknownComplexity
}
