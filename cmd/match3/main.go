// match3 is a terminal match-3 puzzle: swap neighbouring tiles to line up
// three or more of a kind before the clock runs out.
//
// Usage:
//
//	match3 list                 - List available variants
//	match3 play [variant]       - Play a variant (default: match3)
//	match3 menu                 - Pick a variant interactively
//	match3 scores <variant>     - Show the leaderboard
//	match3 serve                - Start SSH server for remote play
//	match3 simulate             - Auto-play many games and print statistics
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 30)
//	--seed <value>       - Set RNG seed for reproducible boards
//	--db <path>          - Set database path (default: ~/.arcade/match3.db)
//	--config <path>      - Load settings from a YAML file
//	--difficulty <name>  - easy, normal, hard or fixed
//	--debug              - Write debug logs
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/storage"
)

// debugLogFile receives debug output while a full-screen program owns the
// terminal.
const debugLogFile = "match3-debug.log"

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagDebug      bool

	// gameConfig is the loaded and preset-adjusted configuration.
	gameConfig config.Match3Config
	logger     *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "match3",
	Short: "Match-3 - a tile-swapping puzzle for your terminal",
	Long: `Match-3 is a terminal puzzle game. Swap neighbouring tiles to line up
three or more of the same kind. Cleared tiles fall and refill, and each
chain reaction earns a combo bonus.

Available commands:
  list      - Show all variants
  play      - Play a variant directly
  menu      - Interactive variant picker
  scores    - View the leaderboard
  serve     - Start SSH server for remote play
  simulate  - Auto-play games and report statistics

Examples:
  match3 play
  match3 play match3_classic --difficulty hard
  match3 menu
  match3 serve --ssh :2222
  match3 simulate --games 500 --workers 8`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom match3 config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simulateCmd)
}

// setup loads the game configuration and installs it for every command.
func setup(_ *cobra.Command, _ []string) error {
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}

	cfg, err := config.LoadMatch3(flagConfig)
	if err != nil {
		return err
	}
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	config.ApplyMatch3Preset(&cfg, preset)

	gameConfig = cfg
	match3.SetConfig(cfg)
	logger.Debug("config loaded",
		"rows", cfg.Board.Rows,
		"cols", cfg.Board.Cols,
		"types", cfg.Board.Types,
		"time", cfg.Timer.InitialTime,
		"difficulty", preset,
	)
	return nil
}

// tuiLogger returns a logger safe to use while the alternate screen is
// active: debug output goes to a file, everything else is dropped. The
// returned closer must be called when the program exits.
func tuiLogger() (*log.Logger, func()) {
	if !flagDebug {
		return log.New(io.Discard), func() {}
	}

	f, err := os.OpenFile(debugLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		logger.Warn("could not open debug log", "error", err)
		return log.New(io.Discard), func() {}
	}
	l := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "match3",
		Level:           log.DebugLevel,
	})
	return l, func() { f.Close() }
}

// openStore opens the scores database. A failure is reported and play
// continues without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}
