package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/sim"
)

var (
	flagSimGames   int
	flagSimMoves   int
	flagSimWorkers int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Auto-play games and report statistics",
	Long: `Play many games without a screen, always taking the first legal move,
and print score and cascade statistics for the current config.

Runs with the same --seed always produce the same numbers, whatever the
worker count.

Examples:
  match3 simulate
  match3 simulate --games 1000 --moves 50 --workers 8
  match3 simulate --difficulty hard --seed 7`,
	Run: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagSimGames, "games", 100, "Number of games to play")
	simulateCmd.Flags().IntVar(&flagSimMoves, "moves", 30, "Moves per game")
	simulateCmd.Flags().IntVar(&flagSimWorkers, "workers", 0, "Parallel workers (0 = one per CPU)")
}

func runSimulate(_ *cobra.Command, _ []string) {
	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	stats, err := sim.Run(ctx, sim.Options{
		Games:   flagSimGames,
		Moves:   flagSimMoves,
		Workers: flagSimWorkers,
		Seed:    seed,
		Config:  gameConfig.ToSessionConfig(seed),
		Logger:  logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Simulated %d games (%d moves) in %s, seed %d\n",
		stats.Games, stats.Moves, time.Since(start).Round(time.Millisecond), seed)
	fmt.Println()
	fmt.Printf("  Average score     %10.1f\n", stats.AvgScore())
	fmt.Printf("  Best score        %10d\n", stats.MaxScore)
	fmt.Printf("  Deepest cascade   %10d\n", stats.MaxCascadeDepth)
	fmt.Printf("  Reshuffles        %10d\n", stats.Reshuffles)
	fmt.Printf("  Stuck games       %10d\n", stats.Stuck)
	fmt.Println()
	fmt.Println("  Cascade depth histogram")

	peak := 0
	for _, n := range stats.DepthHistogram {
		peak = max(peak, n)
	}
	for _, depth := range stats.Depths() {
		n := stats.DepthHistogram[depth]
		bar := strings.Repeat("#", max(1, n*40/max(peak, 1)))
		fmt.Printf("  %3d  %7d  %s\n", depth, n, bar)
	}
}
