package session

import "errors"

var (
	// ErrOutOfBounds is returned for positions outside the board.
	ErrOutOfBounds = errors.New("session: position out of bounds")
	// ErrToolUnavailable is returned when a power-up was already spent.
	ErrToolUnavailable = errors.New("session: tool unavailable")
	// ErrInvalidTool is returned for tools that cannot be armed.
	ErrInvalidTool = errors.New("session: invalid tool")
	// ErrNotActive is returned for intents sent before Start.
	ErrNotActive = errors.New("session: not started")
	// ErrGameOver is returned for intents sent after the game ended.
	ErrGameOver = errors.New("session: game over")
	// ErrSessionNotFound is returned by Manager lookups.
	ErrSessionNotFound = errors.New("session: not found")
)
