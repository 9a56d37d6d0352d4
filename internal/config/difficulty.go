package config

import "fmt"

// DifficultyPreset is a named adjustment applied on top of the loaded file.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // use the file as-is
)

// ParsePreset validates a preset name. An empty name means fixed.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyFixed, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (use easy, normal, hard or fixed)", s)
	}
}

// ApplyMatch3Preset adjusts tile variety and time. Fewer tile kinds make
// matches and cascades more likely.
func ApplyMatch3Preset(cfg *Match3Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Board.Types = 4
		cfg.Timer.InitialTime = 150
	case DifficultyNormal:
		cfg.Board.Types = 5
		cfg.Timer.InitialTime = 100
	case DifficultyHard:
		cfg.Board.Types = 6
		cfg.Timer.InitialTime = 75
	}
}
