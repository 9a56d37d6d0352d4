package session

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-match3/internal/engine"
)

// Session is one game in progress. It is not safe for concurrent use; each
// intent runs its whole cascade before returning.
type Session struct {
	cfg      Config
	src      engine.Source
	grid     *engine.Grid
	resolver *engine.Resolver
	undo     undoStore
	logger   *log.Logger

	phase       Phase
	active      bool
	score       int
	comboStreak int
	lastCombo   int
	timeLeft    int
	moves       int
	reshuffles  int
	selected    *engine.Pos
	tools       Tools
}

// Option customises a Session.
type Option func(*Session)

// WithLogger sets the logger used for debug events.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithSource overrides the random source. Without it the session uses
// engine.SourceFor(cfg.Seed).
func WithSource(src engine.Source) Option {
	return func(s *Session) {
		if src != nil {
			s.src = src
		}
	}
}

// New creates an idle session with a freshly dealt board. Call Start before
// sending intents.
func New(cfg Config, opts ...Option) (*Session, error) {
	s, err := build(cfg, opts)
	if err != nil {
		return nil, err
	}
	s.reset(nil)
	return s, nil
}

// NewWithGrid creates a session around an existing board instead of dealing
// one. The board is copied and its dimensions override cfg.Rows and cfg.Cols.
func NewWithGrid(cfg Config, g *engine.Grid, opts ...Option) (*Session, error) {
	cfg.Rows, cfg.Cols = g.Rows(), g.Cols()
	s, err := build(cfg, opts)
	if err != nil {
		return nil, err
	}
	s.reset(g)
	return s, nil
}

func build(cfg Config, opts []Option) (*Session, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("session: invalid config: %w", err)
	}

	s := &Session{
		cfg:    cfg,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.src == nil {
		s.src = engine.SourceFor(cfg.Seed)
	}
	s.resolver = engine.NewResolver(s.src, cfg.TypeCount, engine.Scoring{
		MatchScore: cfg.MatchScore,
		ComboBonus: cfg.ComboBonus,
	})
	s.undo = newUndoStore(cfg.Undo)
	return s, nil
}

// reset clears all progress. A nil board deals a fresh one.
func (s *Session) reset(board *engine.Grid) {
	s.grid = engine.NewGrid(s.cfg.Rows, s.cfg.Cols)
	if board != nil {
		s.grid.CopyFrom(board)
	} else {
		engine.Reshuffle(s.grid, s.src, s.cfg.TypeCount)
	}
	s.undo.reset()
	s.phase = PhaseIdle
	s.active = false
	s.score = 0
	s.comboStreak = 0
	s.lastCombo = 0
	s.timeLeft = s.cfg.InitialTime
	s.moves = 0
	s.reshuffles = 0
	s.selected = nil
	s.tools = newTools()
}

// Config returns the effective configuration.
func (s *Session) Config() Config {
	return s.cfg
}

// Start activates the countdown and accepts intents.
func (s *Session) Start() error {
	if s.phase == PhaseGameOver {
		return ErrGameOver
	}
	if !s.active {
		s.active = true
		s.logger.Debug("session started", "rows", s.cfg.Rows, "cols", s.cfg.Cols, "types", s.cfg.TypeCount)
	}
	return nil
}

// Reset deals a new board and clears score, tools, timer and undo history.
// The session is left idle until Start.
func (s *Session) Reset() {
	s.reset(nil)
}

// Restart resets and immediately starts a new game.
func (s *Session) Restart() {
	s.reset(nil)
	s.active = true
}

// End finishes the game. Further intents return ErrGameOver until Reset.
func (s *Session) End() {
	if s.phase == PhaseGameOver {
		return
	}
	s.phase = PhaseGameOver
	s.active = false
	s.selected = nil
	s.tools.disarmAll()
	s.logger.Debug("game over", "score", s.score, "moves", s.moves)
}

// Tick consumes one second of the countdown. Returns true when this tick
// ended the game.
func (s *Session) Tick() bool {
	if !s.active || s.phase == PhaseGameOver {
		return false
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		s.End()
		return true
	}
	return false
}

func (s *Session) ready() error {
	if s.phase == PhaseGameOver {
		return ErrGameOver
	}
	if !s.active {
		return ErrNotActive
	}
	return nil
}

func (s *Session) checkBounds(p engine.Pos) error {
	if !s.grid.InBounds(p) {
		return fmt.Errorf("%w: %s on %dx%d board", ErrOutOfBounds, p, s.cfg.Rows, s.cfg.Cols)
	}
	return nil
}

// SelectTile feeds a tile click into the state machine. With Explode armed
// the tile is the blast centre. Otherwise the first click selects, clicking
// the selection again clears it, a non-adjacent click moves the selection and
// an adjacent click attempts the swap.
func (s *Session) SelectTile(p engine.Pos) (Outcome, error) {
	if err := s.ready(); err != nil {
		return Outcome{}, err
	}
	if err := s.checkBounds(p); err != nil {
		return Outcome{}, err
	}

	if s.tools.Explode.Armed {
		return s.explode(p), nil
	}

	if s.selected == nil {
		sel := p
		s.selected = &sel
		s.phase = PhaseTileSelected
		return Outcome{Kind: OutcomeSelected, From: p, To: p}, nil
	}

	from := *s.selected
	switch {
	case from == p:
		s.selected = nil
		s.phase = PhaseIdle
		return Outcome{Kind: OutcomeDeselected, From: from, To: p}, nil
	case !from.Adjacent(p):
		sel := p
		s.selected = &sel
		return Outcome{Kind: OutcomeReselected, From: from, To: p}, nil
	}

	out := s.swap(from, p)
	s.selected = nil
	s.phase = PhaseIdle
	return out, nil
}

// Swap attempts to exchange two tiles directly, bypassing selection. A
// non-adjacent pair is rejected without touching the board or the state.
func (s *Session) Swap(a, b engine.Pos) (Outcome, error) {
	if err := s.ready(); err != nil {
		return Outcome{}, err
	}
	if err := s.checkBounds(a); err != nil {
		return Outcome{}, err
	}
	if err := s.checkBounds(b); err != nil {
		return Outcome{}, err
	}
	if !a.Adjacent(b) {
		return Outcome{Kind: OutcomeRejected, From: a, To: b}, nil
	}

	out := s.swap(a, b)
	s.selected = nil
	s.phase = PhaseIdle
	return out, nil
}

// swap runs an adjacent swap through validation and the cascade. The undo
// snapshot is taken before the swap and kept only if the move commits.
func (s *Session) swap(a, b engine.Pos) Outcome {
	s.phase = PhaseResolving
	snap := s.capture()

	forced := s.tools.ForceSwap.Armed
	if forced {
		s.grid.Swap(a, b)
	} else if !engine.AttemptSwap(s.grid, a, b) {
		s.logger.Debug("swap rejected", "from", a, "to", b)
		return Outcome{Kind: OutcomeRejected, From: a, To: b}
	}

	s.undo.push(snap)
	rep := s.resolver.Resolve(s.grid)
	s.apply(rep)
	s.moves++
	if forced {
		s.tools.consume(ToolForceSwap)
	}

	s.logger.Debug("move committed",
		"from", a, "to", b,
		"forced", forced,
		"removed", rep.TotalRemoved,
		"depth", rep.CascadeDepth(),
		"gain", rep.ScoreGain,
	)
	return Outcome{Kind: OutcomeCommitted, From: a, To: b, Forced: forced, Report: rep}
}

func (s *Session) explode(center engine.Pos) Outcome {
	s.phase = PhaseResolving
	s.undo.push(s.capture())

	cleared := engine.BlastArea(s.grid, center)
	engine.Clear(s.grid, cleared)
	rep := s.resolver.Resolve(s.grid)
	s.apply(rep)
	s.tools.consume(ToolExplode)
	s.selected = nil
	s.phase = PhaseIdle

	s.logger.Debug("explosion", "center", center, "cleared", len(cleared), "gain", rep.ScoreGain)
	return Outcome{Kind: OutcomeExploded, From: center, To: center, Cleared: cleared, Report: rep}
}

// apply folds a cascade report into the score. The combo streak climbs with
// each cascade level and drops back to zero once the chain is stable.
func (s *Session) apply(rep engine.Report) {
	s.comboStreak = rep.MaxCombo()
	s.score += rep.ScoreGain
	s.lastCombo = s.comboStreak
	s.comboStreak = 0
	if rep.Reshuffled {
		s.reshuffles++
		s.logger.Debug("board reshuffled", "attempts", rep.ReshuffleAttempts)
	}
}

func (s *Session) capture() snapshot {
	return snapshot{
		grid:        s.grid.Clone(),
		score:       s.score,
		comboStreak: s.comboStreak,
	}
}

func (s *Session) restore(snap snapshot) {
	s.grid.CopyFrom(snap.grid)
	s.score = snap.score
	s.comboStreak = snap.comboStreak
}

// ArmTool toggles ForceSwap or Explode. Arming one disarms any other.
// Returns whether the tool is armed afterwards.
func (s *Session) ArmTool(kind Tool) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	if kind == ToolUndo {
		return false, fmt.Errorf("%w: undo runs immediately, use UseUndo", ErrInvalidTool)
	}
	st := s.tools.get(kind)
	if st == nil {
		return false, fmt.Errorf("%w: %d", ErrInvalidTool, kind)
	}
	if !st.Available {
		return false, fmt.Errorf("%w: %s", ErrToolUnavailable, kind)
	}
	if st.Armed {
		st.Armed = false
		return false, nil
	}
	s.tools.disarmAll()
	st.Armed = true
	return true, nil
}

// UseUndo restores the most recent snapshot. Under UndoSingleSnapshot the
// power-up is spent even when there was nothing to restore; under
// UndoHistoryStack it works while snapshots remain. Returns whether the board
// was restored.
func (s *Session) UseUndo() (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}

	if s.cfg.Undo.Kind == UndoHistoryStack {
		snap, ok := s.undo.pop()
		if !ok {
			return false, fmt.Errorf("%w: undo history is empty", ErrToolUnavailable)
		}
		s.clearIntent()
		s.restore(snap)
		s.logger.Debug("undo", "remaining", s.undo.len())
		return true, nil
	}

	if !s.tools.Undo.Available {
		return false, fmt.Errorf("%w: %s", ErrToolUnavailable, ToolUndo)
	}
	s.clearIntent()
	snap, ok := s.undo.pop()
	if ok {
		s.restore(snap)
	}
	s.tools.consume(ToolUndo)
	s.logger.Debug("undo", "restored", ok)
	return ok, nil
}

// clearIntent drops any pending selection or armed tool.
func (s *Session) clearIntent() {
	s.tools.disarmAll()
	s.selected = nil
	s.phase = PhaseIdle
}

// Hint returns a legal swap on the current board.
func (s *Session) Hint() (engine.Move, bool) {
	return engine.FindMove(s.grid)
}

// Grid returns a copy of the board.
func (s *Session) Grid() [][]engine.TileType {
	return s.grid.Matrix()
}

// Board returns a copy of the board as a Grid.
func (s *Session) Board() *engine.Grid {
	return s.grid.Clone()
}

// State returns a snapshot of the session for rendering.
func (s *Session) State() State {
	st := State{
		Phase:       s.phase,
		Active:      s.active,
		Score:       s.score,
		ComboStreak: s.comboStreak,
		LastCombo:   s.lastCombo,
		TimeLeft:    s.timeLeft,
		Moves:       s.moves,
		Reshuffles:  s.reshuffles,
		Tools:       s.tools,
		UndoDepth:   s.undo.len(),
	}
	if s.selected != nil {
		sel := *s.selected
		st.Selected = &sel
	}
	if s.cfg.Undo.Kind == UndoHistoryStack {
		st.Tools.Undo.Available = st.UndoDepth > 0
	}
	return st
}
