package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-match3/internal/registry"
)

var (
	flagClearScores bool
	flagStats       bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [variant]",
	Short: "Show the leaderboard for a variant",
	Long: `Display the top scores for the given variant. The number of entries
comes from leaderboard.size in the config (5 by default).

Examples:
  match3 scores match3
  match3 scores match3_classic
  match3 scores --stats
  match3 scores match3 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all scores for the variant")
	scoresCmd.Flags().BoolVar(&flagStats, "stats", false, "Show totals for every variant")
}

func runScores(_ *cobra.Command, args []string) {
	if flagStats {
		runStats()
		return
	}
	if len(args) != 1 {
		fmt.Fprintln(os.Stderr, "Error: a variant is required unless --stats is given")
		os.Exit(1)
	}

	gameID := args[0]
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

	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearScores(gameID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing scores: %v\n", err)
			return
		}
		fmt.Printf("Scores for %s cleared.\n", game.Title())
		return
	}

	scores, err := store.TopScores(gameID, gameConfig.Leaderboard.Size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		return
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'match3 play %s' to set the first high score!\n", gameID)
		return
	}

	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "Rank", "Player", "Score", "Moves", "Combo", "Date")
	fmt.Printf("  %-4s  %-12s  %-8s  %-5s  %-5s  %s\n", "----", "------", "-----", "-----", "-----", "----")
	for i, e := range scores {
		player := e.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-4d  %-12s  %-8d  %-5d  x%-4d  %s\n",
			i+1, player, e.Score, e.Moves, e.MaxCombo, e.CreatedAt.Format("2006-01-02 15:04"))
	}
}

func runStats() {
	store := openStore()
	if store == nil {
		os.Exit(1)
	}
	defer store.Close()

	all, err := store.GetAllGamesStats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		return
	}
	if len(all) == 0 {
		fmt.Println("No games played yet.")
		return
	}

	ids := make([]string, 0, len(all))
	for id := range all {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("  %-16s  %6s  %8s  %8s  %7s  %5s  %s\n", "Variant", "Games", "Best", "Average", "Moves", "Combo", "Last played")
	for _, id := range ids {
		st := all[id]
		fmt.Printf("  %-16s  %6d  %8d  %8.1f  %7d  x%-4d  %s\n",
			id, st.GamesCount, st.HighScore, st.AvgScore, st.TotalMoves, st.BestCombo,
			st.LastPlayed.Format("2006-01-02 15:04"))
	}
}
