package analysis

import (
	"fmt"
	"strings"

	"classical-cipher-backend/crypto"
)

// SplitByKeyLength returns keyLength interleaved columns: column j holds the
// characters at positions j, j+keyLength, j+2*keyLength, ...
func SplitByKeyLength(text string, keyLength int) []string {
	columns := make([]strings.Builder, keyLength)
	i := 0
	for _, r := range text {
		columns[i%keyLength].WriteRune(r)
		i++
	}

	out := make([]string, keyLength)
	for j := range columns {
		out[j] = columns[j].String()
	}
	return out
}

// MostFrequent returns the most common character of text. Ties go to the
// character seen first.
func MostFrequent(text string) (rune, bool) {
	counts := make(map[rune]int)
	var best rune
	bestCount := 0
	for _, r := range text {
		counts[r]++
	}
	for _, r := range text {
		if c := counts[r]; c > bestCount {
			best, bestCount = r, c
		}
	}
	return best, bestCount > 0
}

// LetterFrequencies counts A..Z in text, case-insensitively.
func LetterFrequencies(text string) [crypto.AlphabetSize]int {
	var counts [crypto.AlphabetSize]int
	for _, r := range text {
		if crypto.IsLetter(r) {
			counts[crypto.LetterValue(r)]++
		}
	}
	return counts
}

// RecoverKey guesses a Vigenère key of keyLength letters by assuming the most
// frequent character of each column enciphers MostFrequentLetter.
func RecoverKey(ciphertext string, keyLength int) (string, error) {
	if keyLength < 1 {
		return "", fmt.Errorf("%w: got %d", ErrInvalidKeyLength, keyLength)
	}

	var key strings.Builder
	for j, column := range SplitByKeyLength(ciphertext, keyLength) {
		top, ok := MostFrequent(column)
		if !ok {
			return "", fmt.Errorf("%w: key position %d has no ciphertext", ErrDegenerateStatistics, j)
		}
		key.WriteRune(keyLetter(top))
	}
	return key.String(), nil
}

// keyLetter is the key letter that shifts MostFrequentLetter onto c.
func keyLetter(c rune) rune {
	value := int(c)
	if crypto.IsLetter(c) {
		value = crypto.LetterValue(c) + 'A'
	}
	shift := (value - MostFrequentLetter) % crypto.AlphabetSize
	if shift < 0 {
		shift += crypto.AlphabetSize
	}
	return 'A' + rune(shift)
}
