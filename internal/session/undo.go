package session

import "github.com/vovakirdan/tui-match3/internal/engine"

// snapshot is the restorable part of a session.
type snapshot struct {
	grid        *engine.Grid
	score       int
	comboStreak int
}

// undoStore keeps snapshots according to an UndoPolicy.
type undoStore interface {
	push(s snapshot)
	pop() (snapshot, bool)
	len() int
	reset()
}

func newUndoStore(p UndoPolicy) undoStore {
	if p.Kind == UndoHistoryStack {
		return &historyStack{depth: p.Depth}
	}
	return &singleSnapshot{}
}

// singleSnapshot remembers only the most recent move.
type singleSnapshot struct {
	snap *snapshot
}

func (s *singleSnapshot) push(snap snapshot) { s.snap = &snap }

func (s *singleSnapshot) pop() (snapshot, bool) {
	if s.snap == nil {
		return snapshot{}, false
	}
	snap := *s.snap
	s.snap = nil
	return snap, true
}

func (s *singleSnapshot) len() int {
	if s.snap == nil {
		return 0
	}
	return 1
}

func (s *singleSnapshot) reset() { s.snap = nil }

// historyStack keeps the last depth snapshots, dropping the oldest.
type historyStack struct {
	depth int
	snaps []snapshot
}

func (h *historyStack) push(snap snapshot) {
	h.snaps = append(h.snaps, snap)
	if len(h.snaps) > h.depth {
		h.snaps = h.snaps[len(h.snaps)-h.depth:]
	}
}

func (h *historyStack) pop() (snapshot, bool) {
	if len(h.snaps) == 0 {
		return snapshot{}, false
	}
	last := h.snaps[len(h.snaps)-1]
	h.snaps = h.snaps[:len(h.snaps)-1]
	return last, true
}

func (h *historyStack) len() int { return len(h.snaps) }

func (h *historyStack) reset() { h.snaps = h.snaps[:0] }
