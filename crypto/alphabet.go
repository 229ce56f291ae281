// Package crypto contains the classical cipher codecs: Vigenère substitution,
// columnar and double transposition, and Playfair digraph substitution.
package crypto

import "strings"

const (
	AlphabetSize = 26

	// Placeholder stands in for spaces while text sits in a transposition matrix.
	Placeholder = '~'
	// Sentinel pads the last row of a single transposition matrix.
	Sentinel = '@'
	// DoubleSentinel pads the last row of a double transposition matrix.
	DoubleSentinel = '^'
	// Filler splits repeated letters and completes odd digraphs.
	Filler = 'X'

	gridSide = 5
	gridSize = gridSide * gridSide
)

// CipherTable is the 26x26 tabula recta. Row i, column j holds letter (i+j) mod 26.
type CipherTable [AlphabetSize][AlphabetSize]byte

func NewCipherTable() CipherTable {
	var table CipherTable
	for i := 0; i < AlphabetSize; i++ {
		for j := 0; j < AlphabetSize; j++ {
			table[i][j] = byte((i+j)%AlphabetSize) + 'A'
		}
	}
	return table
}

// Lookup returns the letter at row, col.
func (t *CipherTable) Lookup(row, col int) byte {
	return t[row][col]
}

// IndexInRow returns the column holding letter in the given row, or -1.
func (t *CipherTable) IndexInRow(row int, letter byte) int {
	for col, c := range t[row] {
		if c == letter {
			return col
		}
	}
	return -1
}

func isUpper(r rune) bool {
	return 'A' <= r && r <= 'Z'
}

func isLower(r rune) bool {
	return 'a' <= r && r <= 'z'
}

// IsLetter reports whether r is one of the 52 ASCII letters.
func IsLetter(r rune) bool {
	return isUpper(r) || isLower(r)
}

func toUpper(r rune) rune {
	if isLower(r) {
		return r - 'a' + 'A'
	}
	return r
}

// LetterValue maps A..Z (either case) to 0..25.
func LetterValue(r rune) int {
	return int(toUpper(r) - 'A')
}

// Shift moves a letter by shift positions modulo 26, keeping its case.
func Shift(r rune, shift int) rune {
	base := 'A'
	if isLower(r) {
		base = 'a'
	}
	v := (int(r-base) + shift) % AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}
	return base + rune(v)
}

// LettersOnly keeps the letters of text, uppercased.
func LettersOnly(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if IsLetter(r) {
			b.WriteRune(toUpper(r))
		}
	}
	return b.String()
}
