package numtheory

import "fmt"

// IsPrime reports whether n is prime.
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i <= n/i; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}

// GeneratePrimes returns the first n primes in ascending order.
func GeneratePrimes(n int) []int {
	if n <= 0 {
		return nil
	}
	primes := make([]int, 0, n)
	for candidate := 2; len(primes) < n; candidate++ {
		if IsPrime(candidate) {
			primes = append(primes, candidate)
		}
	}

	return primes
}

// PrimeFactorization maps each prime factor of n to its exponent.
// Values below 2 yield an empty map.
func PrimeFactorization(n int) map[int]int {
	factors := make(map[int]int)
	for d := 2; d <= n/d; d++ {
		for n%d == 0 {
			factors[d]++
			n /= d
		}
	}
	if n > 1 {
		factors[n]++
	}

	return factors
}

// IsPerfectNumber reports whether n equals the sum of its proper divisors.
func IsPerfectNumber(n int) bool {
	if n <= 1 {
		return false
	}
	sum := 1
	for i := 2; i <= n/i; i++ {
		if n%i == 0 {
			sum += i
			if j := n / i; j != i {
				sum += j
			}
		}
	}

	return sum == n
}

// GCD returns the non-negative greatest common divisor of a and b.
func GCD(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// SimplifyFraction reduces num/den to lowest terms.
func SimplifyFraction(num, den int) (int, int, error) {
	if den == 0 {
		return 0, 0, ErrZeroDenominator
	}
	g := GCD(num, den)
	num, den = num/g, den/g
	if den < 0 {
		num, den = -num, -den
	}

	return num, den, nil
}

// ModularInverse returns x in [0, m) with a·x ≡ 1 (mod m).
func ModularInverse(a, m int) (int, error) {
	if m <= 0 {
		return 0, fmt.Errorf("%w: modulus %d", ErrNoInverse, m)
	}
	a %= m
	if a < 0 {
		a += m
	}

	// Extended Euclid on (a, m), tracking only the coefficient of a.
	oldR, r := a, m
	oldS, s := 1, 0
	for r != 0 {
		q := oldR / r
		oldR, r = r, oldR-q*r
		oldS, s = s, oldS-q*s
	}
	if oldR != 1 {
		return 0, fmt.Errorf("%w: gcd(%d, %d) = %d", ErrNoInverse, a, m, oldR)
	}
	x := oldS % m
	if x < 0 {
		x += m
	}

	return x, nil
}
