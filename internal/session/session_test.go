package session

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

var single = UndoPolicy{Kind: UndoSingleSnapshot}

func TestNewDealsPlayableBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 1234
	s, err := New(cfg)
	require.NoError(t, err)

	board := s.Board()
	assert.Equal(t, 8, board.Rows())
	assert.Equal(t, 6, board.Cols())
	assert.False(t, engine.HasMatch(board))
	assert.True(t, engine.HasAnyMove(board))

	st := s.State()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.False(t, st.Active)
	assert.Equal(t, 100, st.TimeLeft)
	assert.Zero(t, st.Score)
	assert.Nil(t, st.Selected)
	assert.True(t, st.Tools.Undo.Available)
	assert.True(t, st.Tools.ForceSwap.Available)
	assert.True(t, st.Tools.Explode.Available)
}

func TestSameSeedSameBoard(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 99
	a, err := New(cfg)
	require.NoError(t, err)
	b, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, a.Grid(), b.Grid())
}

func TestIntentsRequireStart(t *testing.T) {
	s, err := NewWithGrid(DefaultConfig(), singleClearBoard(), WithSource(newScriptedSource()))
	require.NoError(t, err)

	_, err = s.SelectTile(engine.P(0, 0))
	assert.ErrorIs(t, err, ErrNotActive)
	_, err = s.ArmTool(ToolExplode)
	assert.ErrorIs(t, err, ErrNotActive)
	_, err = s.UseUndo()
	assert.ErrorIs(t, err, ErrNotActive)
	assert.False(t, s.Tick())
	assert.Equal(t, 100, s.State().TimeLeft)
}

func TestSelectTileOutOfBounds(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	before := s.State()

	_, err := s.SelectTile(engine.P(8, 0))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.SelectTile(engine.P(0, -1))
	assert.ErrorIs(t, err, ErrOutOfBounds)
	_, err = s.Swap(engine.P(0, 5), engine.P(0, 6))
	assert.ErrorIs(t, err, ErrOutOfBounds)

	assert.Equal(t, before, s.State())
}

func TestSelectionStateMachine(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)

	out, err := s.SelectTile(engine.P(4, 2))
	require.NoError(t, err)
	assert.Equal(t, OutcomeSelected, out.Kind)
	assert.Equal(t, PhaseTileSelected, s.State().Phase)
	require.NotNil(t, s.State().Selected)
	assert.Equal(t, engine.P(4, 2), *s.State().Selected)

	out, err = s.SelectTile(engine.P(4, 2))
	require.NoError(t, err)
	assert.Equal(t, OutcomeDeselected, out.Kind)
	assert.Equal(t, PhaseIdle, s.State().Phase)
	assert.Nil(t, s.State().Selected)

	_, err = s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)
	out, err = s.SelectTile(engine.P(5, 5))
	require.NoError(t, err)
	assert.Equal(t, OutcomeReselected, out.Kind)
	assert.Equal(t, PhaseTileSelected, s.State().Phase)
	assert.Equal(t, engine.P(5, 5), *s.State().Selected)
	assert.Equal(t, singleClearBoard().Matrix(), s.Grid())
}

func TestSwapScoresSingleRun(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(0, 0, 1), single)

	_, err := s.SelectTile(engine.P(2, 3))
	require.NoError(t, err)
	out, err := s.SelectTile(engine.P(2, 4))
	require.NoError(t, err)

	require.Equal(t, OutcomeCommitted, out.Kind)
	assert.False(t, out.Forced)
	assert.Equal(t, 3, out.Report.TotalRemoved)
	assert.Equal(t, 30, out.ScoreGain())
	assert.Equal(t, []engine.Pos{engine.P(0, 3), engine.P(1, 3), engine.P(2, 3)}, out.Report.Steps[0].Removed)

	st := s.State()
	assert.Equal(t, 30, st.Score)
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.Nil(t, st.Selected)
	assert.Equal(t, 1, st.Moves)
	assert.Equal(t, 1, st.UndoDepth)
	assert.Zero(t, st.ComboStreak)
	assert.Equal(t, 1, st.LastCombo)

	grid := s.Grid()
	assert.Equal(t, engine.TileType(1), grid[0][3])
	assert.Equal(t, engine.TileType(1), grid[1][3])
	assert.Equal(t, engine.TileType(2), grid[2][3])
	assert.Equal(t, engine.TileType(4), grid[2][4])
	assert.Equal(t, engine.TileType(5), grid[3][3], "cells below the run stay put")
}

func TestSwapWithoutMatchIsRejected(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	hash := s.Board().Hash()

	_, err := s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)
	out, err := s.SelectTile(engine.P(0, 1))
	require.NoError(t, err)

	assert.Equal(t, OutcomeRejected, out.Kind)
	assert.Equal(t, hash, s.Board().Hash())
	st := s.State()
	assert.Zero(t, st.Score)
	assert.Zero(t, st.Moves)
	assert.Zero(t, st.UndoDepth)
	assert.Nil(t, st.Selected)
	assert.Equal(t, PhaseIdle, st.Phase)
}

func TestSwapNonAdjacentLeavesEverythingUnchanged(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	_, err := s.SelectTile(engine.P(6, 0))
	require.NoError(t, err)
	before := s.State()
	hash := s.Board().Hash()

	out, err := s.Swap(engine.P(2, 3), engine.P(2, 5))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out.Kind)
	assert.Equal(t, before, s.State())
	assert.Equal(t, hash, s.Board().Hash())
}

func TestComboChain(t *testing.T) {
	s := startedSession(t, comboBoard(), newScriptedSource(0, 0, 0, 0, 0, 1), single)

	out, err := s.Swap(engine.P(0, 0), engine.P(0, 1))
	require.NoError(t, err)
	require.Equal(t, OutcomeCommitted, out.Kind)
	require.Equal(t, 2, out.Report.CascadeDepth())
	assert.Equal(t, 30, out.Report.Steps[0].Gain)
	assert.Equal(t, 35, out.Report.Steps[1].Gain)

	st := s.State()
	assert.Equal(t, 65, st.Score)
	assert.Equal(t, 2, st.LastCombo)
	assert.Zero(t, st.ComboStreak)
}

func TestUndoSingleSnapshotRestores(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(0, 0, 1), single)
	before := s.Board()

	_, err := s.Swap(engine.P(2, 3), engine.P(2, 4))
	require.NoError(t, err)
	require.Equal(t, 30, s.State().Score)

	restored, err := s.UseUndo()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.True(t, before.Equal(s.Board()))

	st := s.State()
	assert.Zero(t, st.Score)
	assert.Zero(t, st.ComboStreak)
	assert.False(t, st.Tools.Undo.Available)
	assert.Zero(t, st.UndoDepth)

	_, err = s.UseUndo()
	assert.ErrorIs(t, err, ErrToolUnavailable)
}

func TestUndoSingleSnapshotConsumedWithoutSnapshot(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	hash := s.Board().Hash()

	restored, err := s.UseUndo()
	require.NoError(t, err)
	assert.False(t, restored)
	assert.False(t, s.State().Tools.Undo.Available)
	assert.Equal(t, hash, s.Board().Hash())

	// A later move cannot be undone any more.
	_, err = s.Swap(engine.P(2, 3), engine.P(2, 4))
	require.NoError(t, err)
	_, err = s.UseUndo()
	assert.ErrorIs(t, err, ErrToolUnavailable)
}

func TestUndoSingleSnapshotKeepsOnlyLatest(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 5
	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	playHint(t, s)
	afterFirst := s.Board()
	firstScore := s.State().Score
	playHint(t, s)

	restored, err := s.UseUndo()
	require.NoError(t, err)
	require.True(t, restored)
	assert.True(t, afterFirst.Equal(s.Board()))
	assert.Equal(t, firstScore, s.State().Score)
}

func TestUndoHistoryStack(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Seed = 21
	cfg.Undo = UndoPolicy{Kind: UndoHistoryStack, Depth: 2}
	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	assert.False(t, s.State().Tools.Undo.Available, "nothing to undo yet")
	_, err = s.UseUndo()
	assert.ErrorIs(t, err, ErrToolUnavailable)

	var boards []*engine.Grid
	var scores []int
	for range 3 {
		boards = append(boards, s.Board())
		scores = append(scores, s.State().Score)
		playHint(t, s)
	}
	assert.Equal(t, 2, s.State().UndoDepth, "oldest snapshot dropped")
	assert.True(t, s.State().Tools.Undo.Available)

	for i := 2; i >= 1; i-- {
		restored, err := s.UseUndo()
		require.NoError(t, err)
		require.True(t, restored)
		assert.True(t, boards[i].Equal(s.Board()))
		assert.Equal(t, scores[i], s.State().Score)
	}

	_, err = s.UseUndo()
	assert.ErrorIs(t, err, ErrToolUnavailable)
	assert.False(t, s.State().Tools.Undo.Available)
}

func TestArmToolToggles(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)

	armed, err := s.ArmTool(ToolForceSwap)
	require.NoError(t, err)
	assert.True(t, armed)
	assert.True(t, s.State().Tools.ForceSwap.Armed)

	armed, err = s.ArmTool(ToolExplode)
	require.NoError(t, err)
	assert.True(t, armed)
	tools := s.State().Tools
	assert.True(t, tools.Explode.Armed)
	assert.False(t, tools.ForceSwap.Armed, "arming one tool disarms the other")

	armed, err = s.ArmTool(ToolExplode)
	require.NoError(t, err)
	assert.False(t, armed)
	_, ok := s.State().Tools.Armed()
	assert.False(t, ok)

	_, err = s.ArmTool(ToolUndo)
	assert.ErrorIs(t, err, ErrInvalidTool)
}

func TestForceSwapBypassesMatchRule(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)

	_, err := s.ArmTool(ToolForceSwap)
	require.NoError(t, err)
	_, err = s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)
	out, err := s.SelectTile(engine.P(0, 1))
	require.NoError(t, err)

	require.Equal(t, OutcomeCommitted, out.Kind)
	assert.True(t, out.Forced)
	assert.Zero(t, out.Report.TotalRemoved)
	assert.False(t, out.Report.Reshuffled)

	grid := s.Grid()
	assert.Equal(t, engine.TileType(2), grid[0][0])
	assert.Equal(t, engine.TileType(3), grid[0][1])

	st := s.State()
	assert.False(t, st.Tools.ForceSwap.Available)
	assert.False(t, st.Tools.ForceSwap.Armed)
	assert.Equal(t, 1, st.UndoDepth)

	_, err = s.ArmTool(ToolForceSwap)
	assert.ErrorIs(t, err, ErrToolUnavailable)

	// The next swap is validated normally again.
	out, err = s.Swap(engine.P(0, 0), engine.P(0, 1))
	require.NoError(t, err)
	assert.Equal(t, OutcomeRejected, out.Kind)
}

func TestForceSwapStaysArmedAfterRejectedSelection(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	_, err := s.ArmTool(ToolForceSwap)
	require.NoError(t, err)

	_, err = s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)
	_, err = s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)

	assert.True(t, s.State().Tools.ForceSwap.Armed)
	assert.True(t, s.State().Tools.ForceSwap.Available)
}

func TestExplodeClearsBlock(t *testing.T) {
	s := startedSession(t, singleClearBoard(), engine.NewSeededSource(8), single)
	before := s.Board()

	_, err := s.SelectTile(engine.P(0, 0))
	require.NoError(t, err)
	_, err = s.ArmTool(ToolExplode)
	require.NoError(t, err)

	out, err := s.SelectTile(engine.P(3, 3))
	require.NoError(t, err)
	require.Equal(t, OutcomeExploded, out.Kind)

	var want []engine.Pos
	for r := 2; r <= 4; r++ {
		for c := 2; c <= 4; c++ {
			want = append(want, engine.P(r, c))
		}
	}
	assert.Equal(t, want, out.Cleared)
	assert.True(t, out.Report.Settled)

	board := s.Board()
	assert.Zero(t, board.CountEmpty())
	assert.False(t, engine.HasMatch(board))
	assert.True(t, engine.HasAnyMove(board))

	st := s.State()
	assert.Nil(t, st.Selected)
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.False(t, st.Tools.Explode.Available)
	assert.Equal(t, out.ScoreGain(), st.Score)

	restored, err := s.UseUndo()
	require.NoError(t, err)
	assert.True(t, restored)
	assert.True(t, before.Equal(s.Board()))
}

func TestExplodeClipsAtCorner(t *testing.T) {
	s := startedSession(t, singleClearBoard(), engine.NewSeededSource(8), single)
	_, err := s.ArmTool(ToolExplode)
	require.NoError(t, err)

	out, err := s.SelectTile(engine.P(7, 5))
	require.NoError(t, err)
	assert.Len(t, out.Cleared, 4)
}

func TestTickEndsGame(t *testing.T) {
	cfg := DefaultConfig()
	cfg.InitialTime = 3
	cfg.Seed = 4
	s, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, s.Start())

	assert.False(t, s.Tick())
	assert.False(t, s.Tick())
	assert.True(t, s.Tick())
	assert.False(t, s.Tick(), "already over")

	st := s.State()
	assert.Equal(t, PhaseGameOver, st.Phase)
	assert.False(t, st.Active)
	assert.Zero(t, st.TimeLeft)

	_, err = s.SelectTile(engine.P(0, 0))
	assert.ErrorIs(t, err, ErrGameOver)
	_, err = s.ArmTool(ToolForceSwap)
	assert.ErrorIs(t, err, ErrGameOver)
	assert.ErrorIs(t, s.Start(), ErrGameOver)

	s.Reset()
	st = s.State()
	assert.Equal(t, PhaseIdle, st.Phase)
	assert.False(t, st.Active)
	assert.Equal(t, 3, st.TimeLeft)
	require.NoError(t, s.Start())
}

func TestRestartStartsFreshGame(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(0, 0, 1), single)
	_, err := s.Swap(engine.P(2, 3), engine.P(2, 4))
	require.NoError(t, err)
	_, err = s.UseUndo()
	require.NoError(t, err)
	s.End()

	s.Restart()
	st := s.State()
	assert.True(t, st.Active)
	assert.Zero(t, st.Score)
	assert.Zero(t, st.Moves)
	assert.True(t, st.Tools.Undo.Available)
	assert.Equal(t, PhaseIdle, st.Phase)
}

func TestScoreNeverDecreasesWithoutUndo(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		cfg := DefaultConfig()
		cfg.Seed = seed
		s, err := New(cfg)
		require.NoError(t, err)
		require.NoError(t, s.Start())

		last := 0
		for range 25 {
			playHint(t, s)
			score := s.State().Score
			require.GreaterOrEqual(t, score, last+3*cfg.MatchScore)
			last = score
		}
	}
}

func TestErrorsWrapSentinels(t *testing.T) {
	s := startedSession(t, singleClearBoard(), newScriptedSource(), single)
	_, err := s.SelectTile(engine.P(9, 9))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	assert.Contains(t, err.Error(), "(9,9)")
}

// playHint commits the first legal move on the board.
func playHint(t *testing.T, s *Session) {
	t.Helper()
	m, ok := s.Hint()
	require.True(t, ok)
	out, err := s.Swap(m.A, m.B)
	require.NoError(t, err)
	require.Equal(t, OutcomeCommitted, out.Kind)
}
