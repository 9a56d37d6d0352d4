package engine

// Move is an adjacent swap that produces a match.
type Move struct {
	A Pos
	B Pos
}

// forEachPair visits every horizontal neighbour pair, then every vertical
// one, temporarily swapping each and asking fn whether to stop.
func forEachPair(g *Grid, fn func(a, b Pos) bool) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c+1 < g.cols; c++ {
			if tryPair(g, Pos{Row: r, Col: c}, Pos{Row: r, Col: c + 1}, fn) {
				return
			}
		}
	}
	for r := 0; r+1 < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if tryPair(g, Pos{Row: r, Col: c}, Pos{Row: r + 1, Col: c}, fn) {
				return
			}
		}
	}
}

func tryPair(g *Grid, a, b Pos, fn func(a, b Pos) bool) bool {
	if g.Get(a) == g.Get(b) {
		return false
	}
	g.Swap(a, b)
	matched := HasMatch(g)
	g.Swap(a, b)
	return matched && fn(a, b)
}

// HasAnyMove reports whether some adjacent swap creates a match.
// The grid is left unchanged.
func HasAnyMove(g *Grid) bool {
	found := false
	forEachPair(g, func(_, _ Pos) bool {
		found = true
		return true
	})
	return found
}

// FindMove returns the first legal swap in scan order.
func FindMove(g *Grid) (Move, bool) {
	var m Move
	found := false
	forEachPair(g, func(a, b Pos) bool {
		m = Move{A: a, B: b}
		found = true
		return true
	})
	return m, found
}

// AllMoves lists every legal swap in scan order.
func AllMoves(g *Grid) []Move {
	var moves []Move
	forEachPair(g, func(a, b Pos) bool {
		moves = append(moves, Move{A: a, B: b})
		return false
	})
	return moves
}
