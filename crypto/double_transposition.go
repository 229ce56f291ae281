package crypto

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// DoubleTransposition permutes the columns of the text matrix by the first
// key, then its rows by the second key. The row key repeats when the matrix
// has more rows than the key has letters.
type DoubleTransposition struct {
	columnOrder []int
	rowKeyOrder []int
}

func NewDoubleTransposition(columnKey, rowKey string) (*DoubleTransposition, error) {
	if err := ValidateKey(columnKey); err != nil {
		return nil, fmt.Errorf("column key: %w", err)
	}
	if err := ValidateKey(rowKey); err != nil {
		return nil, fmt.Errorf("row key: %w", err)
	}
	return &DoubleTransposition{
		columnOrder: PermutationOrder(columnKey),
		rowKeyOrder: PermutationOrder(rowKey),
	}, nil
}

func (d *DoubleTransposition) Kind() Kind {
	return KindDoubleTransposition
}

// rowOrder sorts 0..rows-1 by the row key's order applied cyclically.
func (d *DoubleTransposition) rowOrder(rows int) []int {
	order := make([]int, rows)
	for i := range order {
		order[i] = i
	}
	rank := d.rowKeyOrder
	sort.SliceStable(order, func(a, b int) bool {
		return rank[order[a]%len(rank)] < rank[order[b]%len(rank)]
	})
	return order
}

func (d *DoubleTransposition) Encode(text string) (string, error) {
	m := newMatrix(maskSpaces(text), len(d.columnOrder), DoubleSentinel)
	m = m.permuteColumns(d.columnOrder)
	m = m.permuteRows(d.rowOrder(len(m)))
	return m.String(), nil
}

func (d *DoubleTransposition) Decode(ciphertext string) (string, error) {
	cols := len(d.columnOrder)
	n := utf8.RuneCountInString(ciphertext)
	if n%cols != 0 {
		return "", fmt.Errorf("%w: %d characters for a %d-column key", ErrMalformedCiphertext, n, cols)
	}

	m := newMatrix([]rune(ciphertext), cols, DoubleSentinel)
	m = m.permuteRows(invert(d.rowOrder(len(m))))
	m = m.permuteColumns(invert(d.columnOrder))
	return unmask(m.String(), DoubleSentinel), nil
}
