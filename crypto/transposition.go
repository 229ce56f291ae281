package crypto

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Transposition is a single-key columnar transposition. The plaintext is
// written in rows under the keyword and read out column by column in keyword
// order.
type Transposition struct {
	keyword string
	order   []int
}

func NewTransposition(keyword string) (*Transposition, error) {
	if err := ValidateKey(keyword); err != nil {
		return nil, err
	}
	return &Transposition{
		keyword: keyword,
		order:   PermutationOrder(keyword),
	}, nil
}

func (t *Transposition) Kind() Kind {
	return KindTransposition
}

func (t *Transposition) Encode(text string) (string, error) {
	m := newMatrix(maskSpaces(text), len(t.order), Sentinel)

	var b strings.Builder
	b.Grow(len(m) * len(t.order))
	for _, col := range t.order {
		for _, row := range m {
			b.WriteRune(row[col])
		}
	}
	return b.String(), nil
}

func (t *Transposition) Decode(ciphertext string) (string, error) {
	cols := len(t.order)
	n := utf8.RuneCountInString(ciphertext)
	if n%cols != 0 {
		return "", fmt.Errorf("%w: %d characters for a %d-column key", ErrMalformedCiphertext, n, cols)
	}

	rows := n / cols
	m := emptyMatrix(rows, cols)
	src := []rune(ciphertext)
	i := 0
	for _, col := range t.order {
		for r := 0; r < rows; r++ {
			m[r][col] = src[i]
			i++
		}
	}

	return unmask(m.String(), Sentinel), nil
}
