package engine

import (
	"slices"

	"github.com/samber/lo"
)

// MinRun is the shortest line of equal tiles that counts as a match.
const MinRun = 3

// Run is a maximal horizontal or vertical line of at least MinRun equal,
// non-empty tiles.
type Run struct {
	Type       TileType
	Start      Pos
	Length     int
	Horizontal bool
}

// Positions lists the cells covered by the run.
func (r Run) Positions() []Pos {
	out := make([]Pos, r.Length)
	for i := range out {
		if r.Horizontal {
			out[i] = Pos{Row: r.Start.Row, Col: r.Start.Col + i}
		} else {
			out[i] = Pos{Row: r.Start.Row + i, Col: r.Start.Col}
		}
	}
	return out
}

// FindRuns scans rows left to right, then columns top to bottom, and returns
// every maximal run. Runs that cross (L and T shapes) are reported separately.
func FindRuns(g *Grid) []Run {
	var runs []Run
	for r := 0; r < g.rows; r++ {
		runs = scanLine(g, runs, Pos{Row: r}, g.cols, true)
	}
	for c := 0; c < g.cols; c++ {
		runs = scanLine(g, runs, Pos{Col: c}, g.rows, false)
	}
	return runs
}

func scanLine(g *Grid, runs []Run, start Pos, length int, horizontal bool) []Run {
	at := func(i int) Pos {
		if horizontal {
			return Pos{Row: start.Row, Col: i}
		}
		return Pos{Row: i, Col: start.Col}
	}

	i := 0
	for i < length {
		t := g.Get(at(i))
		j := i + 1
		for j < length && g.Get(at(j)) == t {
			j++
		}
		if t != Empty && j-i >= MinRun {
			runs = append(runs, Run{Type: t, Start: at(i), Length: j - i, Horizontal: horizontal})
		}
		i = j
	}
	return runs
}

// FindMatches returns the union of all run positions with duplicates removed,
// sorted row-major. An empty result means the board is stable.
func FindMatches(g *Grid) []Pos {
	runs := FindRuns(g)
	if len(runs) == 0 {
		return nil
	}
	positions := lo.Uniq(lo.FlatMap(runs, func(r Run, _ int) []Pos {
		return r.Positions()
	}))
	slices.SortFunc(positions, comparePos)
	return positions
}

// HasMatch reports whether any run exists, stopping at the first one found.
func HasMatch(g *Grid) bool {
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			t := g.cells[r*g.cols+c]
			if t == Empty {
				continue
			}
			if c+2 < g.cols && g.cells[r*g.cols+c+1] == t && g.cells[r*g.cols+c+2] == t {
				return true
			}
			if r+2 < g.rows && g.cells[(r+1)*g.cols+c] == t && g.cells[(r+2)*g.cols+c] == t {
				return true
			}
		}
	}
	return false
}

func comparePos(a, b Pos) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
