package match3

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/session"
)

// glyphs is indexed by tile type minus one; colour also tells types apart.
var glyphs = []rune{'●', '▲', '■', '◆', '★', '♥', '♣', '✚'}

func glyph(t engine.TileType) rune {
	if t.IsEmpty() {
		return '·'
	}
	return glyphs[(int(t)-1)%len(glyphs)]
}

// Render draws the game into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	st := g.sess.State()
	g.renderHUD(dst, st)
	g.renderBoard(dst, st)
	g.renderFooter(dst, st)
	g.renderOverlay(dst, st)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorGray)
}

func (g *Game) renderHUD(dst *core.Screen, st session.State) {
	b := g.layout.board
	dst.DrawTextCentered(g.layout.hudY, g.Title(), core.ColorBrightWhite)

	score := fmt.Sprintf("Score %d", st.Score)
	dst.DrawTextColor(b.X, g.layout.hudY+1, score, core.ColorYellow)

	clock := core.ColorGreen
	if st.TimeLeft <= 10 {
		clock = core.ColorRed
	}
	timer := fmt.Sprintf("Time %3d", st.TimeLeft)
	dst.DrawTextColor(b.Right()-len(timer), g.layout.hudY+1, timer, clock)
}

func (g *Game) renderBoard(dst *core.Screen, st session.State) {
	dst.DrawBox(g.layout.board, core.ColorGray)

	hinted := map[engine.Pos]bool{}
	if g.hint != nil {
		hinted[g.hint.A] = true
		hinted[g.hint.B] = true
	}

	grid := g.sess.Grid()
	for r, row := range grid {
		for c, t := range row {
			p := engine.P(r, c)
			x, y := g.layout.cellOrigin(p)

			left, right := ' ', ' '
			frame := core.ColorDefault
			switch {
			case st.Selected != nil && *st.Selected == p:
				left, right, frame = '<', '>', core.ColorBrightWhite
			case p == g.cursor && st.Active:
				left, right, frame = '[', ']', core.ColorBrightWhite
			case hinted[p]:
				left, right, frame = '(', ')', core.ColorCyan
			}

			dst.SetCell(x, y, core.Cell{Rune: left, Color: frame})
			dst.SetCell(x+1, y, core.Cell{Rune: glyph(t), Color: core.TileColor(int(t))})
			dst.SetCell(x+2, y, core.Cell{Rune: right, Color: frame})
		}
	}
}

func (g *Game) renderFooter(dst *core.Screen, st session.State) {
	y := g.layout.footY + 1
	dst.DrawTextCentered(y, g.toolBar(st), core.ColorWhite)

	if g.message != "" {
		dst.DrawTextCentered(y+1, g.message, core.ColorBrightWhite)
	}
}

// toolBar renders e.g. "Undo:1  Force:ARMED  Explode:-".
func (g *Game) toolBar(st session.State) string {
	undo := "-"
	switch {
	case g.variant == VariantClassic:
		undo = fmt.Sprint(st.UndoDepth)
	case st.Tools.Undo.Available:
		undo = "1"
	}

	parts := []string{
		"[u]ndo:" + undo,
		"[f]orce:" + toolLabel(st.Tools.ForceSwap),
		"[e]xplode:" + toolLabel(st.Tools.Explode),
		fmt.Sprintf("moves:%d", st.Moves),
	}
	return strings.Join(parts, "  ")
}

func toolLabel(ts session.ToolState) string {
	switch {
	case ts.Armed:
		return "ARMED"
	case ts.Available:
		return "1"
	default:
		return "-"
	}
}

func (g *Game) renderOverlay(dst *core.Screen, st session.State) {
	b := g.layout.board
	mid := b.Y + b.H/2

	switch {
	case st.Phase == session.PhaseGameOver:
		dst.DrawTextCentered(mid-1, " GAME OVER ", core.ColorRed)
		dst.DrawTextCentered(mid, fmt.Sprintf(" Final score %d ", st.Score), core.ColorYellow)
		dst.DrawTextCentered(mid+1, " r restart  b menu ", core.ColorGray)
	case !st.Active:
		dst.DrawTextCentered(mid, " Press ENTER to start ", core.ColorBrightWhite)
	case g.paused:
		dst.DrawTextCentered(mid, " PAUSED ", core.ColorYellow)
	}
}
