package engine

// ApplyGravity lets non-empty tiles fall within each column so that every
// Empty cell ends up above every tile. Relative order inside a column is kept.
// Returns the number of tiles that moved.
func ApplyGravity(g *Grid) int {
	moved := 0
	for c := 0; c < g.cols; c++ {
		write := g.rows - 1
		for r := g.rows - 1; r >= 0; r-- {
			t := g.cells[r*g.cols+c]
			if t == Empty {
				continue
			}
			if r != write {
				g.cells[write*g.cols+c] = t
				g.cells[r*g.cols+c] = Empty
				moved++
			}
			write--
		}
	}
	return moved
}

// Clear sets every listed position to Empty.
func Clear(g *Grid, positions []Pos) {
	for _, p := range positions {
		g.Set(p, Empty)
	}
}

// BlastArea returns the in-bounds cells of the 3x3 block centred on p,
// row-major. Blocks touching an edge or corner are clipped.
func BlastArea(g *Grid, p Pos) []Pos {
	area := make([]Pos, 0, 9)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			q := Pos{Row: p.Row + dr, Col: p.Col + dc}
			if g.InBounds(q) {
				area = append(area, q)
			}
		}
	}
	return area
}
