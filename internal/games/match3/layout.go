package match3

import (
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
)

const (
	cellW     = 3 // "[●]"
	hudRows   = 3 // title, stats, blank
	footRows  = 3 // blank, tools, message
	minWidth  = 42
	borderPad = 1
)

// layout places the board box on screen.
type layout struct {
	board core.Rect // includes the border
	hudY  int
	footY int
	fits  bool
}

func newLayout(screenW, screenH, rows, cols int) layout {
	boardW := cols*cellW + 2*borderPad
	boardH := rows + 2*borderPad
	totalH := hudRows + boardH + footRows

	l := layout{
		fits: screenW >= max(boardW, minWidth) && screenH >= totalH,
	}
	top := max(0, (screenH-totalH)/2)
	l.hudY = top
	l.board = core.NewRect((screenW-boardW)/2, top+hudRows, boardW, boardH)
	l.footY = l.board.Bottom()
	return l
}

// cellOrigin returns the screen position of the left bracket of a tile.
func (l layout) cellOrigin(p engine.Pos) (x, y int) {
	inner := l.board.Inset(borderPad)
	return inner.X + p.Col*cellW, inner.Y + p.Row
}

// tileAt maps a screen coordinate to the tile drawn there.
func (l layout) tileAt(x, y int) (engine.Pos, bool) {
	inner := l.board.Inset(borderPad)
	if !inner.Contains(x, y) {
		return engine.Pos{}, false
	}
	return engine.P(y-inner.Y, (x-inner.X)/cellW), true
}
