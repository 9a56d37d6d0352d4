package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyGravityKeepsColumnOrder(t *testing.T) {
	g := FromRows([][]TileType{
		{1, Empty, 3},
		{Empty, 2, Empty},
		{4, Empty, 5},
		{Empty, Empty, 2},
	})
	moved := ApplyGravity(g)

	want := FromRows([][]TileType{
		{Empty, Empty, Empty},
		{Empty, Empty, 3},
		{1, Empty, 5},
		{4, 2, 2},
	})
	assert.True(t, want.Equal(g), "got\n%s", g)
	assert.Equal(t, 4, moved)
}

func TestApplyGravityOnFullBoardIsNoop(t *testing.T) {
	g := singleClearBoard()
	before := g.Clone()
	assert.Zero(t, ApplyGravity(g))
	assert.True(t, before.Equal(g))
}

func TestBlastArea(t *testing.T) {
	g := NewGrid(8, 6)

	centre := BlastArea(g, P(3, 3))
	assert.Equal(t, []Pos{
		P(2, 2), P(2, 3), P(2, 4),
		P(3, 2), P(3, 3), P(3, 4),
		P(4, 2), P(4, 3), P(4, 4),
	}, centre)

	assert.Equal(t, []Pos{P(0, 0), P(0, 1), P(1, 0), P(1, 1)}, BlastArea(g, P(0, 0)))
	assert.Len(t, BlastArea(g, P(7, 3)), 6)
	assert.Len(t, BlastArea(g, P(4, 5)), 6)
}

func TestClear(t *testing.T) {
	g := singleClearBoard()
	Clear(g, BlastArea(g, P(3, 3)))
	assert.Equal(t, 9, g.CountEmpty())
	assert.Equal(t, Empty, g.Get(P(2, 2)))
	assert.Equal(t, Empty, g.Get(P(4, 4)))
	assert.Equal(t, TileType(4), g.Get(P(5, 3)))
}
