package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/platform/tui"
	"github.com/vovakirdan/lane-runner/internal/storage"
)

var (
	flagPlain  bool
	flagLimit  int
	flagRecent bool
	flagClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show run history",
	Long: `Browse the best runs for each difficulty.

Without --plain this opens an interactive scoreboard; tab and the arrow
keys switch difficulty. With --plain the top runs for --difficulty are
printed and the command exits.

Examples:
  lanerunner scores
  lanerunner scores --plain --difficulty hard
  lanerunner scores --plain --recent
  lanerunner scores --clear --difficulty easy`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print a table instead of opening the scoreboard")
	scoresCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of runs to print with --plain")
	scoresCmd.Flags().BoolVar(&flagRecent, "recent", false, "With --plain, list the latest runs of every difficulty")
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the runs recorded for --difficulty")
}

func runScores(_ *cobra.Command, _ []string) {
	preset, ok := config.ParsePreset(flagDifficulty)
	if !ok {
		fail("unknown difficulty %q", flagDifficulty)
	}

	// Open run history
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fail("opening run database: %v", err)
	}
	defer store.Close()

	switch {
	case flagClear:
		if err := store.ClearRuns(preset); err != nil {
			fail("clearing runs: %v", err)
		}
		fmt.Printf("Cleared %s runs.\n", preset)
	case flagPlain:
		printRuns(store, preset)
	default:
		width, height, sizeErr := term.GetSize(int(os.Stdout.Fd()))
		if sizeErr != nil {
			width, height = 80, 24
		}
		if err := tui.RunScoreboard(store, preset, width, height); err != nil {
			fail("scoreboard: %v", err)
		}
	}
}

func printRuns(store *storage.Store, preset config.DifficultyPreset) {
	var (
		runs []storage.RunEntry
		err  error
	)
	if flagRecent {
		runs, err = store.RecentRuns(flagLimit)
		fmt.Println("Recent Runs")
	} else {
		runs, err = store.TopRuns(preset, flagLimit)
		fmt.Printf("Best Runs - %s\n", preset)
	}
	if err != nil {
		fail("retrieving runs: %v", err)
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'lanerunner play' to set the first one!")
		return
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-10s  %s\n", "Rank", "Level", "Score", "Coins", "Distance", "Date")
	fmt.Printf("  %-4s  %-8s  %-8s  %-6s  %-10s  %s\n", "----", "-----", "-----", "-----", "--------", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-8s  %-8d  %-6d  %-10s  %s\n",
			i+1, r.Difficulty, r.Score, r.Coins,
			fmt.Sprintf("%.0fm", r.Distance/100),
			r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if flagRecent {
		return
	}
	if stats, err := store.GetStats(preset); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("  %d runs, average score %.0f, %d coins collected\n", stats.Runs, stats.AvgScore, stats.TotalCoins)
	}
}
