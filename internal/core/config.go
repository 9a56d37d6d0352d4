package core

// RuntimeConfig is handed to a game on every Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // 0 asks the game for a non-reproducible board
}

// DefaultConfig returns an 80x24 screen at 30 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// GameState is the summary the platform needs after every tick.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool
	Started  bool
	TimeLeft int // seconds, for games with a countdown
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Message is a short status line for the front end ("Combo x3!"), or
	// empty when nothing noteworthy happened.
	Message string
}
