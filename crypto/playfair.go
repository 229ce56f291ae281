package crypto

import (
	"fmt"
	"strings"
)

// PlayfairGrid is the 5x5 Playfair square stored row-major. J never appears.
type PlayfairGrid struct {
	letters [gridSize]byte
	index   [AlphabetSize]int
}

// BuildPlayfairGrid lays out the keyword's letters in first-occurrence order,
// J folded into I, followed by the rest of the alphabet without J.
func BuildPlayfairGrid(keyword string) (PlayfairGrid, error) {
	var grid PlayfairGrid
	if err := ValidateKey(keyword); err != nil {
		return grid, err
	}

	var seen [AlphabetSize]bool
	n := 0
	add := func(r rune) {
		if r == 'J' {
			r = 'I'
		}
		v := r - 'A'
		if seen[v] {
			return
		}
		seen[v] = true
		if n < gridSize {
			grid.letters[n] = byte(r)
		}
		n++
	}

	for _, r := range keyword {
		if !IsLetter(r) {
			return grid, fmt.Errorf("%w: %q is not a letter", ErrInvalidGrid, r)
		}
		add(toUpper(r))
	}
	for r := 'A'; r <= 'Z'; r++ {
		if r != 'J' {
			add(r)
		}
	}

	if n != gridSize {
		return grid, fmt.Errorf("%w: got %d letters", ErrInvalidGrid, n)
	}
	for i := range grid.index {
		grid.index[i] = -1
	}
	for i, c := range grid.letters {
		grid.index[c-'A'] = i
	}
	return grid, nil
}

// String returns the grid's 25 letters row by row.
func (g PlayfairGrid) String() string {
	return string(g.letters[:])
}

func (g PlayfairGrid) position(c byte) (row, col int) {
	i := g.index[c-'A']
	return i / gridSide, i % gridSide
}

func (g PlayfairGrid) at(row, col int) byte {
	row = (row%gridSide + gridSide) % gridSide
	col = (col%gridSide + gridSide) % gridSide
	return g.letters[row*gridSide+col]
}

// substitute maps one digraph. dir is +1 to encode and -1 to decode.
func (g PlayfairGrid) substitute(a, b byte, dir int) (byte, byte) {
	rowA, colA := g.position(a)
	rowB, colB := g.position(b)

	switch {
	case rowA == rowB:
		return g.at(rowA, colA+dir), g.at(rowB, colB+dir)
	case colA == colB:
		return g.at(rowA+dir, colA), g.at(rowB+dir, colB)
	default:
		return g.at(rowA, colB), g.at(rowB, colA)
	}
}

func (g PlayfairGrid) transform(text string, dir int) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/2)
	for _, unit := range SplitDigraphs(text) {
		if !isDigraph(unit) {
			b.WriteString(unit)
			continue
		}
		x, y := g.substitute(unit[0], unit[1], dir)
		b.WriteByte(x)
		b.WriteByte(y)
	}
	return b.String()
}

// Encode substitutes every digraph of text. Output is uppercase.
func (g PlayfairGrid) Encode(text string) string {
	return g.transform(text, 1)
}

// Decode reverses Encode and then drops every filler letter. A filler that
// belonged to the plaintext is dropped too.
func (g PlayfairGrid) Decode(ciphertext string) string {
	return strings.ReplaceAll(g.transform(ciphertext, -1), string(Filler), "")
}

func isDigraph(unit string) bool {
	return len(unit) == 2 && isUpper(rune(unit[0])) && isUpper(rune(unit[1]))
}

// SplitDigraphs prepares text for Playfair: uppercase, J folded into I, letters
// paired, fillers inserted. Each returned unit is a two-letter digraph or a
// single non-letter character.
func SplitDigraphs(text string) []string {
	runes := []rune(text)
	for i, r := range runes {
		if r = toUpper(r); r == 'J' {
			r = 'I'
		}
		runes[i] = r
	}
	units := make([]string, 0, len(runes)/2+1)

	for i := 0; i < len(runes); {
		a := runes[i]
		if !isUpper(a) {
			units = append(units, string(a))
			i++
			continue
		}
		if i+1 == len(runes) {
			units = append(units, string([]rune{a, Filler}))
			i++
			continue
		}

		b := runes[i+1]
		switch {
		case !isUpper(b):
			units = append(units, string([]rune{a, Filler}), string(b))
			i += 2
		case a == b:
			units = append(units, string([]rune{a, Filler}))
			i++
		default:
			units = append(units, string([]rune{a, b}))
			i += 2
		}
	}
	return units
}

// Playfair adapts a PlayfairGrid to the Codec interface.
type Playfair struct {
	grid PlayfairGrid
}

func NewPlayfair(keyword string) (*Playfair, error) {
	grid, err := BuildPlayfairGrid(keyword)
	if err != nil {
		return nil, err
	}
	return &Playfair{grid: grid}, nil
}

func (p *Playfair) Kind() Kind {
	return KindPlayfair
}

// Lossy reports that Decode drops fillers and folds J into I.
func (p *Playfair) Lossy() bool {
	return true
}

func (p *Playfair) Encode(text string) (string, error) {
	return p.grid.Encode(text), nil
}

func (p *Playfair) Decode(ciphertext string) (string, error) {
	return p.grid.Decode(ciphertext), nil
}
