package numtheory

import "errors"

var (
	// ErrZeroDenominator is returned by SimplifyFraction for a zero denominator.
	ErrZeroDenominator = errors.New("numtheory: denominator cannot be zero")

	// ErrNoInverse is returned by ModularInverse when gcd(a, m) != 1 or m <= 0.
	ErrNoInverse = errors.New("numtheory: modular inverse does not exist")
)
