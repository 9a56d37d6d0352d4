// Package engine holds the board-state rules of the match-3 puzzle: the tile
// grid, match detection, cascade resolution, swap validation and deadlock
// detection. It has no UI, timing or persistence concerns; the session
// package drives it one intent at a time.
package engine

import "fmt"

// TileType identifies the kind of token occupying a cell.
// Valid tiles are in [1, typeCount]; Empty marks a cleared cell and only
// exists transiently while a cascade or explosion is being resolved.
type TileType uint8

// Empty is the sentinel for a cleared cell.
const Empty TileType = 0

// IsEmpty reports whether the tile is the cleared sentinel.
func (t TileType) IsEmpty() bool {
	return t == Empty
}

// Pos addresses a cell by row (top = 0) and column (left = 0).
type Pos struct {
	Row int
	Col int
}

// P is a convenience constructor for Pos.
func P(row, col int) Pos {
	return Pos{Row: row, Col: col}
}

// String returns a string representation of the position.
func (p Pos) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Manhattan returns the Manhattan distance between two positions.
func (p Pos) Manhattan(other Pos) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

// Adjacent reports whether other shares an edge with p.
func (p Pos) Adjacent(other Pos) bool {
	return p.Manhattan(other) == 1
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
