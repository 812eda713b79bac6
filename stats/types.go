package stats

import "errors"

var (
	// ErrEmptyData is returned when a statistic needs at least one sample.
	ErrEmptyData = errors.New("stats: empty data")

	// ErrLengthMismatch is returned when paired samples differ in length.
	ErrLengthMismatch = errors.New("stats: x and y must have the same length")

	// ErrBadProbability is returned for a probability outside [0, 1].
	ErrBadProbability = errors.New("stats: probability must lie in [0, 1]")

	// ErrOverflow is returned when a count does not fit in uint64.
	ErrOverflow = errors.New("stats: result overflows uint64")
)
