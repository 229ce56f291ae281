package analysis

import "sort"

// Repeat is a trigram that occurs more than once, with its start positions.
type Repeat struct {
	Trigram   string `json:"trigram"`
	Positions []int  `json:"positions"`
}

// Distances returns the gaps between consecutive occurrences.
func (r Repeat) Distances() []int {
	out := make([]int, 0, len(r.Positions)-1)
	for i := 1; i < len(r.Positions); i++ {
		out = append(out, r.Positions[i]-r.Positions[i-1])
	}
	return out
}

// Repeats finds every trigram of text that occurs at two or more positions,
// in order of first occurrence.
func Repeats(text string) []Repeat {
	runes := []rune(text)

	var order []string
	positions := make(map[string][]int)
	for i := 0; i+trigramSize <= len(runes); i++ {
		trigram := string(runes[i : i+trigramSize])
		if _, ok := positions[trigram]; !ok {
			order = append(order, trigram)
		}
		positions[trigram] = append(positions[trigram], i)
	}

	var repeats []Repeat
	for _, trigram := range order {
		if p := positions[trigram]; len(p) > 1 {
			repeats = append(repeats, Repeat{Trigram: trigram, Positions: p})
		}
	}
	return repeats
}

// DivisorCount is how many repeat distances a candidate key length divides.
type DivisorCount struct {
	Length int `json:"length"`
	Count  int `json:"count"`
}

// DivisorTally counts, over all repeat distances, every divisor in
// [2, distance). The result is ordered by descending count; equal counts keep
// the order in which the divisor was first tallied.
func DivisorTally(text string) []DivisorCount {
	var tally []DivisorCount
	index := make(map[int]int)

	for _, r := range Repeats(text) {
		for _, distance := range r.Distances() {
			for d := 2; d < distance; d++ {
				if distance%d != 0 {
					continue
				}
				i, ok := index[d]
				if !ok {
					i = len(tally)
					index[d] = i
					tally = append(tally, DivisorCount{Length: d})
				}
				tally[i].Count++
			}
		}
	}

	sort.SliceStable(tally, func(a, b int) bool {
		return tally[a].Count > tally[b].Count
	})
	return tally
}

// Kasiski ranks candidate key lengths, most likely first. It returns an empty
// slice when no trigram repeats.
func Kasiski(ciphertext string) []int {
	tally := DivisorTally(ciphertext)
	lengths := make([]int, len(tally))
	for i, t := range tally {
		lengths[i] = t.Length
	}
	return lengths
}
