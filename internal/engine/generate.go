package engine

// Generate fills every cell of g in row-major order. Each cell samples a tile
// uniformly from [1, typeCount] and resamples while it would complete a run of
// three with the two cells to its left or the two cells above it, so the
// result contains no match. typeCount must be at least 3.
func Generate(g *Grid, src Source, typeCount int) {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			for {
				t := randomTile(src, typeCount)
				if !completesRun(g, r, c, t) {
					g.cells[r*g.cols+c] = t
					break
				}
			}
		}
	}
}

// completesRun reports whether placing t at (r, c) would line up with the two
// previously generated cells to the left or above.
func completesRun(g *Grid, r, c int, t TileType) bool {
	if c >= 2 && g.cells[r*g.cols+c-1] == t && g.cells[r*g.cols+c-2] == t {
		return true
	}
	if r >= 2 && g.cells[(r-1)*g.cols+c] == t && g.cells[(r-2)*g.cols+c] == t {
		return true
	}
	return false
}

// Refill replaces every Empty cell with a uniformly random tile. No match
// avoidance is applied; new matches feed the next cascade step.
// Returns the positions that were filled, in row-major order.
func Refill(g *Grid, src Source, typeCount int) []Pos {
	var filled []Pos
	for i, t := range g.cells {
		if t != Empty {
			continue
		}
		g.cells[i] = randomTile(src, typeCount)
		filled = append(filled, Pos{Row: i / g.cols, Col: i % g.cols})
	}
	return filled
}

// Reshuffle regenerates the whole board until it is match-free and has at
// least one legal move. Returns the number of generation attempts.
func Reshuffle(g *Grid, src Source, typeCount int) int {
	attempts := 0
	for {
		attempts++
		Generate(g, src, typeCount)
		if HasAnyMove(g) {
			return attempts
		}
	}
}
