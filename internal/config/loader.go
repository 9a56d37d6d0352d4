package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const match3File = "match3.yaml"

// LoadMatch3 loads the match-3 configuration.
// Search order: customPath -> ~/.arcade/configs/match3.yaml ->
// ./configs/match3.yaml -> embedded default -> DefaultMatch3Config.
// Only an explicit customPath that cannot be read or parsed is an error;
// broken files further down the chain are skipped.
func LoadMatch3(customPath string) (Match3Config, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseMatch3(data)
		if err != nil {
			return Match3Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath(match3File), filepath.Join("configs", match3File)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if cfg, err := parseMatch3(data); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := parseMatch3(defaultMatch3YAML); err == nil {
		return cfg, nil
	}
	return DefaultMatch3Config(), nil
}

// parseMatch3 decodes data over the defaults, so a partial file only
// overrides the keys it sets.
func parseMatch3(data []byte) (Match3Config, error) {
	cfg := DefaultMatch3Config()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Match3Config{}, err
	}
	if cfg.Leaderboard.Size <= 0 {
		cfg.Leaderboard.Size = DefaultLeaderboardSize
	}
	return cfg, nil
}

// userConfigPath returns ~/.arcade/configs/<name>, or "" when the home
// directory is unknown.
func userConfigPath(name string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", name)
}
