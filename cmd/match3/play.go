package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-match3/internal/core"
	"github.com/vovakirdan/tui-match3/internal/games/match3"
	"github.com/vovakirdan/tui-match3/internal/platform/tui"
	"github.com/vovakirdan/tui-match3/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the given variant (match3 if omitted).

Controls:
  Arrows/WASD/HJKL  - Move cursor
  Enter/Space       - Select tile (starts the clock)
  Mouse click       - Select tile
  U                 - Undo
  F                 - Arm force swap
  E                 - Arm explode
  ?/I               - Show a hint
  P                 - Pause
  R                 - Restart (after game over)
  Esc/B             - Back
  Q/Ctrl+C          - Quit

Difficulty options:
  easy   - 4 tile kinds, 150 seconds
  normal - 5 tile kinds, 100 seconds
  hard   - 6 tile kinds, 75 seconds
  fixed  - Use the config file as-is

Examples:
  match3 play
  match3 play match3_classic
  match3 play --difficulty easy
  match3 play --config ./my-match3.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

// terminalConfig builds the runtime config from the current terminal size.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := string(match3.VariantSingle)
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'match3 list' to see available variants.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	tl, closeLog := tuiLogger()
	match3.SetLogger(tl)

	store := openStore()
	_, runErr := tui.Run(game, store, terminalConfig(), os.Getenv("USER"))

	if store != nil {
		store.Close()
	}
	closeLog()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
