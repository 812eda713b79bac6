// Package dp defines the error values shared by the dynamic-programming
// routines.
package dp

import "errors"

// ErrBadInput is returned when inputs are structurally invalid: mismatched
// slice lengths, a negative capacity or a negative item weight.
var ErrBadInput = errors.New("dp: invalid input")
