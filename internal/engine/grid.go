package engine

import (
	"encoding/binary"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Grid is a fixed-size rows x cols board of tiles.
// Cells are stored in row-major order: index = row*cols + col.
// Dimensions never change after construction; all mutation is in place.
type Grid struct {
	rows  int
	cols  int
	cells []TileType
}

// NewGrid creates a grid with every cell Empty.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("engine: invalid grid size %dx%d", rows, cols))
	}
	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: make([]TileType, rows*cols),
	}
}

// FromRows builds a grid from a literal matrix. All rows must have the same
// length. Intended for fixtures and tests.
func FromRows(rows [][]TileType) *Grid {
	if len(rows) == 0 {
		panic("engine: FromRows needs at least one row")
	}
	g := NewGrid(len(rows), len(rows[0]))
	for r, row := range rows {
		if len(row) != g.cols {
			panic(fmt.Sprintf("engine: FromRows row %d has %d cells, want %d", r, len(row), g.cols))
		}
		copy(g.cells[r*g.cols:], row)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds returns true if the position is inside the grid.
func (g *Grid) InBounds(p Pos) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

func (g *Grid) index(p Pos) int {
	if !g.InBounds(p) {
		panic(fmt.Sprintf("engine: position %s outside %dx%d grid", p, g.rows, g.cols))
	}
	return p.Row*g.cols + p.Col
}

// Get returns the tile at p. Panics if p is out of bounds.
func (g *Grid) Get(p Pos) TileType {
	return g.cells[g.index(p)]
}

// Set writes a tile at p. Panics if p is out of bounds.
func (g *Grid) Set(p Pos, t TileType) {
	g.cells[g.index(p)] = t
}

// Swap exchanges two cells unconditionally.
func (g *Grid) Swap(a, b Pos) {
	i, j := g.index(a), g.index(b)
	g.cells[i], g.cells[j] = g.cells[j], g.cells[i]
}

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	cells := make([]TileType, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// CopyFrom overwrites g with the contents of src. Both grids must share
// dimensions.
func (g *Grid) CopyFrom(src *Grid) {
	if g.rows != src.rows || g.cols != src.cols {
		panic(fmt.Sprintf("engine: cannot copy %dx%d grid into %dx%d", src.rows, src.cols, g.rows, g.cols))
	}
	copy(g.cells, src.cells)
}

// Equal returns true if both grids have the same dimensions and contents.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i, t := range g.cells {
		if t != other.cells[i] {
			return false
		}
	}
	return true
}

// Matrix returns a copy of the board as a rows x cols matrix, suitable for
// handing to a renderer.
func (g *Grid) Matrix() [][]TileType {
	out := make([][]TileType, g.rows)
	for r := range out {
		out[r] = make([]TileType, g.cols)
		copy(out[r], g.cells[r*g.cols:(r+1)*g.cols])
	}
	return out
}

// CountEmpty returns how many cells hold the Empty sentinel.
func (g *Grid) CountEmpty() int {
	n := 0
	for _, t := range g.cells {
		if t == Empty {
			n++
		}
	}
	return n
}

// Hash fingerprints dimensions and contents. Equal grids hash equally.
func (g *Grid) Hash() uint64 {
	buf := make([]byte, 8+len(g.cells))
	binary.LittleEndian.PutUint32(buf[0:], uint32(g.rows))
	binary.LittleEndian.PutUint32(buf[4:], uint32(g.cols))
	for i, t := range g.cells {
		buf[8+i] = byte(t)
	}
	return xxhash.Sum64(buf)
}

// String renders the grid one row per line, Empty as '.'.
func (g *Grid) String() string {
	var sb strings.Builder
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			t := g.cells[r*g.cols+c]
			if t == Empty {
				sb.WriteByte('.')
				continue
			}
			fmt.Fprintf(&sb, "%d", t)
		}
	}
	return sb.String()
}
