// Package numtheory implements integer helpers: primality, prime
// generation and factorisation, perfect numbers, fraction reduction and
// modular inverses.
//
// All functions work on int and never allocate more than their result.
// IsPrime uses 6k±1 trial division, which is fast enough for the int range
// an interactive calculator sees.
//
// Sign conventions:
//
//   - SimplifyFraction returns a positive denominator; the sign moves to the
//     numerator, and 0/x reduces to 0/1.
//   - ModularInverse returns the representative in [0, m).
package numtheory
