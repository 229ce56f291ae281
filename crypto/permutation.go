package crypto

import "sort"

// PermutationOrder lists the positions of keyword sorted by character value.
// Equal characters keep their left-to-right order.
func PermutationOrder(keyword string) []int {
	runes := []rune(keyword)
	order := make([]int, len(runes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return runes[order[a]] < runes[order[b]]
	})
	return order
}

// invert returns p^-1 such that inv[p[i]] == i.
func invert(p []int) []int {
	inv := make([]int, len(p))
	for i, v := range p {
		inv[v] = i
	}
	return inv
}
