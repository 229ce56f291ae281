package analysis

import (
	"fmt"
	"math"
)

// IndexOfCoincidence is the probability that two characters drawn from text
// without replacement are equal: sum f(f-1) / (N(N-1)).
func IndexOfCoincidence(text string) (float64, error) {
	counts := make(map[rune]int)
	n := 0
	for _, r := range text {
		counts[r]++
		n++
	}
	if n < 2 {
		return 0, fmt.Errorf("%w: index of coincidence needs at least 2 characters, got %d", ErrDegenerateStatistics, n)
	}

	var sum int
	for _, f := range counts {
		sum += f * (f - 1)
	}
	return float64(sum) / float64(n*(n-1)), nil
}

// EstimateKeyLength applies the Friedman formula to a measured index of
// coincidence. Halves round to even.
func EstimateKeyLength(ic float64) (int, error) {
	denominator := ic - RandomIC
	if math.Abs(denominator) < icEpsilon {
		return 0, fmt.Errorf("%w: index of coincidence equals the random-text value", ErrDegenerateStatistics)
	}
	return int(math.RoundToEven((EnglishIC - RandomIC) / denominator)), nil
}

// Friedman estimates the Vigenère key length of ciphertext.
func Friedman(ciphertext string) (int, error) {
	ic, err := IndexOfCoincidence(ciphertext)
	if err != nil {
		return 0, err
	}
	return EstimateKeyLength(ic)
}
