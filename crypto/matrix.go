package crypto

import "strings"

// matrix is a row-major grid of runes. Every operation returns a new matrix.
type matrix [][]rune

// newMatrix slices text into rows of cols runes, padding the last row with pad.
func newMatrix(text []rune, cols int, pad rune) matrix {
	rows := (len(text) + cols - 1) / cols
	m := make(matrix, rows)
	for r := 0; r < rows; r++ {
		row := make([]rune, cols)
		for c := 0; c < cols; c++ {
			i := r*cols + c
			if i < len(text) {
				row[c] = text[i]
			} else {
				row[c] = pad
			}
		}
		m[r] = row
	}
	return m
}

func emptyMatrix(rows, cols int) matrix {
	m := make(matrix, rows)
	for r := range m {
		m[r] = make([]rune, cols)
	}
	return m
}

// permuteColumns returns a matrix whose column j is column order[j] of m.
func (m matrix) permuteColumns(order []int) matrix {
	out := make(matrix, len(m))
	for r, row := range m {
		next := make([]rune, len(order))
		for j, src := range order {
			next[j] = row[src]
		}
		out[r] = next
	}
	return out
}

// permuteRows returns a matrix whose row i is row order[i] of m.
func (m matrix) permuteRows(order []int) matrix {
	out := make(matrix, len(order))
	for i, src := range order {
		out[i] = append([]rune(nil), m[src]...)
	}
	return out
}

func (m matrix) String() string {
	var b strings.Builder
	for _, row := range m {
		for _, r := range row {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// maskSpaces swaps spaces for the placeholder so word breaks survive a permutation.
func maskSpaces(text string) []rune {
	return []rune(strings.ReplaceAll(text, " ", string(Placeholder)))
}

// unmask strips trailing padding and turns placeholders back into spaces.
func unmask(text string, pad rune) string {
	text = strings.TrimRight(text, string(pad))
	return strings.ReplaceAll(text, string(Placeholder), " ")
}
