package session

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

type scriptedSource struct {
	vals     []int
	next     int
	fallback engine.Source
}

func newScriptedSource(vals ...int) *scriptedSource {
	return &scriptedSource{vals: vals, fallback: engine.NewSeededSource(77)}
}

func (s *scriptedSource) IntN(n int) int {
	if s.next < len(s.vals) {
		v := s.vals[s.next] % n
		s.next++
		return v
	}
	return s.fallback.IntN(n)
}

// singleClearBoard: swapping (2,3) and (2,4) lines up three 1s in column 3.
func singleClearBoard() *engine.Grid {
	return engine.FromRows([][]engine.TileType{
		{3, 2, 4, 1, 1, 5},
		{1, 3, 5, 1, 5, 2},
		{1, 1, 4, 4, 1, 2},
		{5, 4, 1, 5, 1, 5},
		{1, 5, 5, 4, 2, 1},
		{5, 2, 3, 4, 2, 5},
		{1, 5, 3, 5, 1, 5},
		{5, 2, 1, 5, 1, 1},
	})
}

// comboBoard: swapping (0,0) and (0,1) clears three 4s; refilling with 1s
// clears the top row again.
func comboBoard() *engine.Grid {
	return engine.FromRows([][]engine.TileType{
		{4, 5, 4, 4, 5, 5},
		{2, 2, 5, 4, 5, 2},
		{1, 4, 3, 2, 1, 5},
		{1, 5, 4, 4, 5, 2},
		{5, 1, 5, 1, 1, 2},
		{2, 5, 1, 4, 3, 4},
		{5, 2, 5, 2, 3, 4},
		{1, 1, 4, 3, 4, 5},
	})
}

// startedSession wraps board in a running session using the classic config.
func startedSession(t *testing.T, board *engine.Grid, src engine.Source, policy UndoPolicy) *Session {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Undo = policy
	s, err := NewWithGrid(cfg, board, WithSource(src))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	return s
}
