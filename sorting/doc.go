// Package sorting provides searching, sorting and greedy scheduling
// primitives generic over cmp.Ordered.
//
// What:
//
//   - BinarySearch finds the index of a target in an ascending slice, or -1.
//   - QuickSort sorts in place with a Hoare partition around the middle
//     element and returns the same slice.
//   - MergeSort returns a new, stably sorted slice and leaves the input
//     untouched.
//   - ActivitySelection picks a maximum set of non-overlapping intervals
//     with the earliest-finish greedy rule.
//   - BigO reports the textbook complexity of a named operation.
//
// Determinism:
//
//   - BinarySearch on a slice with duplicates returns whichever matching
//     index the halving reaches first.
//   - ActivitySelection sorts by Finish with a stable sort, so intervals
//     sharing a finish time keep their input order.
//
// Complexity:
//
//   - BinarySearch:      O(log n).
//   - QuickSort:         O(n log n) average, O(n²) worst case.
//   - MergeSort:         O(n log n) time, O(n) extra memory.
//   - ActivitySelection: O(n log n).
package sorting
