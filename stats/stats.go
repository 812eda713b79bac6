package stats

import (
	"fmt"
	"math"
	"math/bits"
	"slices"
)

// Mean returns the arithmetic mean of data.
func Mean(data []float64) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyData
	}
	var sum float64
	for _, x := range data {
		sum += x
	}

	return sum / float64(len(data)), nil
}

// Median returns the middle value of data, averaging the two central values
// for even lengths. data is not modified.
func Median(data []float64) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyData
	}
	sorted := slices.Clone(data)
	slices.Sort(sorted)
	if n%2 == 0 {
		return (sorted[n/2-1] + sorted[n/2]) / 2, nil
	}

	return sorted[n/2], nil
}

// Mode returns every value that occurs most often, in first-seen order.
func Mode(data []float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	counts := make(map[float64]int, len(data))
	order := make([]float64, 0, len(data))
	best := 0
	for _, x := range data {
		if counts[x] == 0 {
			order = append(order, x)
		}
		counts[x]++
		best = max(best, counts[x])
	}

	modes := make([]float64, 0, 1)
	for _, x := range order {
		if counts[x] == best {
			modes = append(modes, x)
		}
	}

	return modes, nil
}

// Variance returns the sample (n-1) or population (n) variance of data.
func Variance(data []float64, sample bool) (float64, error) {
	n := len(data)
	if n == 0 {
		return 0, ErrEmptyData
	}
	if n < 2 {
		return 0, nil
	}
	m, _ := Mean(data)
	var sumSq float64
	for _, x := range data {
		d := x - m
		sumSq += d * d
	}
	if sample {
		return sumSq / float64(n-1), nil
	}

	return sumSq / float64(n), nil
}

// StdDev is the square root of Variance.
func StdDev(data []float64, sample bool) (float64, error) {
	v, err := Variance(data, sample)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(v), nil
}

// Permutations returns n!/(n-r)!, the ordered selections of r items from n.
func Permutations(n, r int) (uint64, error) {
	if r < 0 || n < 0 || r > n {
		return 0, nil
	}
	result := uint64(1)
	for k := n - r + 1; k <= n; k++ {
		hi, lo := bits.Mul64(result, uint64(k))
		if hi != 0 {
			return 0, fmt.Errorf("%w: P(%d, %d)", ErrOverflow, n, r)
		}
		result = lo
	}

	return result, nil
}

// Combinations returns n!/(r!(n-r)!), the unordered selections of r items
// from n. Intermediate products stay exact because C(n, k) is built up one
// factor at a time and each partial product is itself a binomial.
func Combinations(n, r int) (uint64, error) {
	if r < 0 || n < 0 || r > n {
		return 0, nil
	}
	r = min(r, n-r)
	result := uint64(1)
	for k := 1; k <= r; k++ {
		// result·(n-r+k)/k, with the gcd removed first to delay overflow.
		num := uint64(n - r + k)
		den := uint64(k)
		g := gcd(result, den)
		result /= g
		den /= g
		num /= den
		hi, lo := bits.Mul64(result, num)
		if hi != 0 {
			return 0, fmt.Errorf("%w: C(%d, %d)", ErrOverflow, n, r)
		}
		result = lo
	}

	return result, nil
}

func gcd(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// BinomialProbability returns P(X = k) for X ~ Binomial(n, p).
func BinomialProbability(n, k int, p float64) (float64, error) {
	if p < 0 || p > 1 || math.IsNaN(p) {
		return 0, fmt.Errorf("%w: got %v", ErrBadProbability, p)
	}
	c, err := Combinations(n, k)
	if err != nil {
		return 0, err
	}
	if c == 0 {
		return 0, nil
	}

	return float64(c) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k)), nil
}

// LinearRegression fits y = slope·x + intercept by least squares.
func LinearRegression(x, y []float64) (slope, intercept float64, err error) {
	if len(x) != len(y) {
		return 0, 0, fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(x), len(y))
	}
	if len(x) == 0 {
		return 0, 0, ErrEmptyData
	}
	xMean, _ := Mean(x)
	yMean, _ := Mean(y)

	var num, den float64
	for i := range x {
		dx := x[i] - xMean
		num += dx * (y[i] - yMean)
		den += dx * dx
	}
	if den == 0 {
		return 0, yMean, nil
	}
	slope = num / den

	return slope, yMean - slope*xMean, nil
}
