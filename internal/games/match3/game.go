// Package match3 adapts a match-3 session to the arcade game interface: it
// owns the cursor, turns actions into intents, runs the one-second countdown
// from simulation ticks and draws the board.
package match3

import (
	"errors"
	"fmt"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/engine"
	"github.com/vovakirdan/tui-match3/internal/registry"
	"github.com/vovakirdan/tui-match3/internal/session"
)

// Variant selects the undo rules.
type Variant string

const (
	// VariantSingle allows one undo per game.
	VariantSingle Variant = "match3"
	// VariantClassic keeps an undo history of the configured depth.
	VariantClassic Variant = "match3_classic"
)

// Seconds a hint or status message stays on screen.
const (
	hintSeconds    = 3
	messageSeconds = 2
)

var (
	settingsMu sync.RWMutex
	settings   = config.DefaultMatch3Config()
	logger     *log.Logger
)

// SetConfig replaces the settings used by games created afterwards. Call it
// once at startup, before any game is Reset.
func SetConfig(cfg config.Match3Config) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settings = cfg
}

// Config returns the settings new games will use.
func Config() config.Match3Config {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	return settings
}

// SetLogger routes session debug events to l.
func SetLogger(l *log.Logger) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	logger = l
}

// Game is one match-3 round driven by the arcade platform.
type Game struct {
	variant Variant
	sess    *session.Session
	tick    uint64

	cursor    engine.Pos
	ticksPerS int
	subTick   int

	hint      *engine.Move
	hintTicks int

	message      string
	messageTicks int

	maxCombo int
	paused   bool

	screenW  int
	screenH  int
	layout   layout
	tooSmall bool
}

// New creates a game of the given variant. Reset must be called before use.
func New(v Variant) *Game {
	return &Game{variant: v}
}

func init() {
	registry.Register(string(VariantSingle), func() registry.Game {
		return New(VariantSingle)
	})
	registry.Register(string(VariantClassic), func() registry.Game {
		return New(VariantClassic)
	})
}

// ID returns the variant identifier.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Match-3 (Undo History)"
	}
	return "Match-3"
}

// Description is shown in game listings.
func (g *Game) Description() string {
	if g.variant == VariantClassic {
		return "Swap tiles against the clock; undo walks back through recent moves"
	}
	return "Swap tiles against the clock with one undo, one force swap and one explosion"
}

// sessionConfig builds the session settings for this variant.
func (g *Game) sessionConfig(seed int64) session.Config {
	cfg := Config().ToSessionConfig(seed)
	if g.variant == VariantClassic {
		cfg.Undo.Kind = session.UndoHistoryStack
	} else {
		cfg.Undo = session.UndoPolicy{Kind: session.UndoSingleSnapshot}
	}
	return cfg
}

// Reset deals a new board. The game waits for Start before the clock runs.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	settingsMu.RLock()
	l := logger
	settingsMu.RUnlock()

	sc := g.sessionConfig(cfg.Seed)
	sess, err := session.New(sc, session.WithLogger(l))
	if err != nil {
		// A bad config file should not make the game unplayable.
		var verr session.ValidationError
		if errors.As(err, &verr) && l != nil {
			l.Warn("invalid match3 config, using defaults", "code", verr.Code, "err", verr.Message)
		}
		fallback := session.DefaultConfig()
		fallback.Undo = session.UndoPolicy{Kind: sc.Undo.Kind}
		fallback.Seed = cfg.Seed
		sess, _ = session.New(fallback, session.WithLogger(l))
		g.flash(fmt.Sprintf("config ignored: %v", err))
	} else {
		g.message, g.messageTicks = "", 0
	}

	g.sess = sess
	g.tick = 0
	g.cursor = engine.P(0, 0)
	g.ticksPerS = cfg.TickRate
	if g.ticksPerS <= 0 {
		g.ticksPerS = core.DefaultConfig().TickRate
	}
	g.subTick = 0
	g.hint, g.hintTicks = nil, 0
	g.maxCombo = 0
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)
}

// Resize re-lays the board for a new terminal size without touching the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	if g.sess == nil {
		return
	}
	sc := g.sess.Config()
	g.layout = newLayout(w, h, sc.Rows, sc.Cols)
	g.tooSmall = !g.layout.fits
}

// Step advances one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.decay()

	if g.tooSmall {
		return g.result()
	}

	st := g.sess.State()
	if st.Phase == session.PhaseGameOver {
		return g.result()
	}

	if !st.Active {
		if in.Has(core.ActionStart) || in.Has(core.ActionSelect) || len(in.Clicks) > 0 {
			if err := g.sess.Start(); err == nil {
				g.flash("Go!")
			}
		}
		return g.result()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return g.result()
	}

	g.handleInput(in)
	g.countdown()
	return g.result()
}

func (g *Game) handleInput(in core.InputFrame) {
	sc := g.sess.Config()
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row = core.Wrap(g.cursor.Row-1, sc.Rows)
	case in.Has(core.ActionDown):
		g.cursor.Row = core.Wrap(g.cursor.Row+1, sc.Rows)
	case in.Has(core.ActionLeft):
		g.cursor.Col = core.Wrap(g.cursor.Col-1, sc.Cols)
	case in.Has(core.ActionRight):
		g.cursor.Col = core.Wrap(g.cursor.Col+1, sc.Cols)
	}

	if in.Has(core.ActionForceSwap) {
		g.arm(session.ToolForceSwap)
	}
	if in.Has(core.ActionExplode) {
		g.arm(session.ToolExplode)
	}
	if in.Has(core.ActionUndo) {
		g.undo()
	}
	if in.Has(core.ActionHint) {
		g.showHint()
	}

	for _, c := range in.Clicks {
		if p, ok := g.layout.tileAt(c.X, c.Y); ok {
			g.cursor = p
			g.selectTile(p)
		}
	}
	if in.Has(core.ActionSelect) {
		g.selectTile(g.cursor)
	}
}

func (g *Game) selectTile(p engine.Pos) {
	out, err := g.sess.SelectTile(p)
	if err != nil {
		return
	}

	switch out.Kind {
	case session.OutcomeRejected:
		g.flash("No match")
	case session.OutcomeCommitted, session.OutcomeExploded:
		g.hint, g.hintTicks = nil, 0
		combo := out.Report.MaxCombo()
		g.maxCombo = max(g.maxCombo, combo)
		switch {
		case out.Report.Reshuffled:
			g.flash("No moves left, reshuffled")
		case combo > 1:
			g.flash(fmt.Sprintf("Combo x%d! +%d", combo, out.ScoreGain()))
		case out.ScoreGain() > 0:
			g.flash(fmt.Sprintf("+%d", out.ScoreGain()))
		case out.Forced:
			g.flash("Forced swap")
		}
	}
}

func (g *Game) arm(t session.Tool) {
	armed, err := g.sess.ArmTool(t)
	switch {
	case errors.Is(err, session.ErrToolUnavailable):
		g.flash(t.String() + " already used")
	case err != nil:
		return
	case armed:
		g.flash(t.String() + " armed")
	default:
		g.flash(t.String() + " cancelled")
	}
}

func (g *Game) undo() {
	restored, err := g.sess.UseUndo()
	switch {
	case errors.Is(err, session.ErrToolUnavailable):
		g.flash("Nothing to undo")
	case err != nil:
		return
	case restored:
		g.hint, g.hintTicks = nil, 0
		g.flash("Move undone")
	default:
		g.flash("Undo spent, nothing to restore")
	}
}

func (g *Game) showHint() {
	m, ok := g.sess.Hint()
	if !ok {
		return
	}
	g.hint = &m
	g.hintTicks = hintSeconds * g.ticksPerS
}

// countdown takes one second off the clock every ticksPerS ticks.
func (g *Game) countdown() {
	g.subTick++
	if g.subTick < g.ticksPerS {
		return
	}
	g.subTick = 0
	if g.sess.Tick() {
		g.hint, g.hintTicks = nil, 0
		g.flash("Time's up!")
	}
}

func (g *Game) decay() {
	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}
	if g.messageTicks > 0 {
		g.messageTicks--
		if g.messageTicks == 0 {
			g.message = ""
		}
	}
}

func (g *Game) flash(msg string) {
	g.message = msg
	ticks := g.ticksPerS
	if ticks <= 0 {
		ticks = core.DefaultConfig().TickRate
	}
	g.messageTicks = messageSeconds * ticks
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Message: g.message}
}

// State returns the platform-level summary.
func (g *Game) State() core.GameState {
	st := g.sess.State()
	return core.GameState{
		Score:    st.Score,
		GameOver: st.Phase == session.PhaseGameOver,
		Paused:   g.paused || g.tooSmall,
		Started:  st.Active || st.Phase == session.PhaseGameOver,
		TimeLeft: st.TimeLeft,
	}
}

// MatchStats reports totals for the score table.
func (g *Game) MatchStats() (moves, maxCombo int) {
	return g.sess.State().Moves, g.maxCombo
}

// Session exposes the underlying session, mainly for tests and tools.
func (g *Game) Session() *session.Session {
	return g.sess
}
