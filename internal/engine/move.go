package engine

// IsAdjacent reports whether a and b share an edge.
func IsAdjacent(a, b Pos) bool {
	return a.Adjacent(b)
}

// AttemptSwap swaps two adjacent cells and keeps the swap only if it creates
// at least one match. Non-adjacent pairs are rejected without touching the
// grid. Returns whether the swap was kept.
func AttemptSwap(g *Grid, a, b Pos) bool {
	if !IsAdjacent(a, b) {
		return false
	}
	g.Swap(a, b)
	if HasMatch(g) {
		return true
	}
	g.Swap(a, b)
	return false
}
