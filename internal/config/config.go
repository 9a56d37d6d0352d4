// Package config loads the match-3 settings from YAML and turns them into a
// session configuration.
package config

import "github.com/vovakirdan/tui-match3/internal/session"

// Match3Config is the on-disk shape of configs/match3.yaml.
type Match3Config struct {
	Board       BoardConfig       `yaml:"board"`
	Scoring     ScoringConfig     `yaml:"scoring"`
	Timer       TimerConfig       `yaml:"timer"`
	Undo        UndoConfig        `yaml:"undo"`
	Leaderboard LeaderboardConfig `yaml:"leaderboard"`
}

// BoardConfig sets the grid size and number of tile kinds.
type BoardConfig struct {
	Rows  int `yaml:"rows"`
	Cols  int `yaml:"cols"`
	Types int `yaml:"types"`
}

// ScoringConfig sets points per tile and per extra cascade level.
type ScoringConfig struct {
	MatchScore int `yaml:"match_score"`
	ComboBonus int `yaml:"combo_bonus"`
}

// TimerConfig sets the countdown.
type TimerConfig struct {
	InitialTime int `yaml:"initial_time"` // seconds
}

// UndoConfig selects the undo behaviour. Policy is "single" or "stack".
type UndoConfig struct {
	Policy string `yaml:"policy"`
	Depth  int    `yaml:"depth"`
}

// LeaderboardConfig sets how many scores the scoreboard shows.
type LeaderboardConfig struct {
	Size int `yaml:"size"`
}

// ToSessionConfig converts the file settings into a session.Config. The
// result still goes through session validation when a session is built.
func (c Match3Config) ToSessionConfig(seed int64) session.Config {
	return session.Config{
		Rows:        c.Board.Rows,
		Cols:        c.Board.Cols,
		TypeCount:   c.Board.Types,
		InitialTime: c.Timer.InitialTime,
		MatchScore:  c.Scoring.MatchScore,
		ComboBonus:  c.Scoring.ComboBonus,
		Undo: session.UndoPolicy{
			Kind:  session.UndoKind(c.Undo.Policy),
			Depth: c.Undo.Depth,
		},
		Seed: seed,
	}
}
