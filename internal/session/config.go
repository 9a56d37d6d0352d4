// Package session drives one match-3 game: it owns the board and score,
// turns player intents (tile selection, power-ups, undo) into engine calls and
// tracks the countdown. Sessions are plain values with no shared state, so any
// number can run side by side.
package session

import "fmt"

// UndoKind selects how undo snapshots are kept.
type UndoKind string

const (
	// UndoSingleSnapshot keeps only the latest snapshot and allows one undo
	// per session. Pressing undo spends the power-up even with nothing to
	// restore.
	UndoSingleSnapshot UndoKind = "single"
	// UndoHistoryStack keeps up to Depth snapshots and may be used as long
	// as one remains.
	UndoHistoryStack UndoKind = "stack"
)

// DefaultUndoDepth is the history depth used when none is configured.
const DefaultUndoDepth = 10

// UndoPolicy configures undo behaviour.
type UndoPolicy struct {
	Kind  UndoKind
	Depth int // only used by UndoHistoryStack
}

// Config holds session parameters.
type Config struct {
	Rows        int
	Cols        int
	TypeCount   int
	InitialTime int // seconds on the countdown
	MatchScore  int
	ComboBonus  int
	Undo        UndoPolicy
	Seed        int64 // 0 picks a non-reproducible source
}

// DefaultConfig returns the classic 8x6 board with five tile types.
func DefaultConfig() Config {
	return Config{
		Rows:        8,
		Cols:        6,
		TypeCount:   5,
		InitialTime: 100,
		MatchScore:  10,
		ComboBonus:  5,
		Undo:        UndoPolicy{Kind: UndoSingleSnapshot},
	}
}

// ValidationError describes a rejected configuration.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate checks that the configuration can produce a playable board.
// Boards need at least 3x3 cells and three tile types so that generation can
// always avoid pre-made matches.
func (c Config) Validate() error {
	if c.Rows < 3 || c.Cols < 3 {
		return ValidationError{
			Code:    "INVALID_SIZE",
			Message: fmt.Sprintf("board must be at least 3x3, got %dx%d", c.Rows, c.Cols),
		}
	}
	if c.TypeCount < 3 || c.TypeCount > 255 {
		return ValidationError{
			Code:    "INVALID_TYPE_COUNT",
			Message: fmt.Sprintf("type count must be between 3 and 255, got %d", c.TypeCount),
		}
	}
	if c.InitialTime <= 0 {
		return ValidationError{
			Code:    "INVALID_TIME",
			Message: fmt.Sprintf("initial time must be positive, got %d", c.InitialTime),
		}
	}
	if c.MatchScore < 0 || c.ComboBonus < 0 {
		return ValidationError{
			Code:    "INVALID_SCORE",
			Message: fmt.Sprintf("scores must be non-negative, got match=%d combo=%d", c.MatchScore, c.ComboBonus),
		}
	}
	switch c.Undo.Kind {
	case UndoSingleSnapshot, "":
	case UndoHistoryStack:
		if c.Undo.Depth < 0 {
			return ValidationError{
				Code:    "INVALID_UNDO_DEPTH",
				Message: fmt.Sprintf("undo depth must be positive, got %d", c.Undo.Depth),
			}
		}
	default:
		return ValidationError{
			Code:    "INVALID_UNDO_POLICY",
			Message: fmt.Sprintf("unknown undo policy %q", c.Undo.Kind),
		}
	}
	return nil
}

// withDefaults fills zero-valued optional fields.
func (c Config) withDefaults() Config {
	if c.Undo.Kind == "" {
		c.Undo.Kind = UndoSingleSnapshot
	}
	if c.Undo.Kind == UndoHistoryStack && c.Undo.Depth == 0 {
		c.Undo.Depth = DefaultUndoDepth
	}
	return c
}
