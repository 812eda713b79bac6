// Package sorting defines the interval type used by the greedy scheduler.
package sorting

// Interval is a half-open activity [Start, Finish).
type Interval struct {
	Start  int
	Finish int
}
