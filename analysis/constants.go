// Package analysis breaks Vigenère ciphertext: Kasiski examination, the
// Friedman test and frequency-based key recovery.
package analysis

import "errors"

const (
	// EnglishIC is the index of coincidence of English text.
	EnglishIC = 0.068
	// RandomIC is the index of coincidence of uniformly random letters.
	RandomIC = 1.0 / 26

	// MostFrequentLetter is assumed to be what each key column's most common
	// ciphertext letter decrypts to.
	MostFrequentLetter = 'E'

	trigramSize = 3
	icEpsilon   = 1e-12
)

var (
	ErrDegenerateStatistics = errors.New("degenerate text statistics")
	ErrInvalidKeyLength     = errors.New("key length must be positive")
)
