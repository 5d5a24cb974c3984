// lanerunner is a three-lane endless runner for the terminal.
//
// Usage:
//
//	lanerunner play          - Play in this terminal
//	lanerunner serve         - Start SSH server for remote play
//	lanerunner scores        - Browse run history
//	lanerunner simulate      - Run the simulation headless and print a summary
//	lanerunner themes        - List the stage palettes
//	lanerunner config        - Print the effective configuration
//
// Global flags:
//
//	--config <path>       - Runner config YAML (layered over defaults)
//	--difficulty <name>   - easy, normal, hard or fixed
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible runs
//	--db <path>           - Set database path (default: ~/.lanerunner/runs.db)
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lanerunner",
	Short: "Lane Runner - an endless three-lane runner in your terminal",
	Long: `Lane Runner puts you behind the wheel of a truck on a three-lane road.
Dodge cones, barriers and rocks, smash crates, collect coins and see how
far you get as the road speeds up and the stages change around you.

Available commands:
  play      - Play in this terminal
  serve     - Start SSH server for remote play
  scores    - Browse run history per difficulty
  simulate  - Run the simulation headless
  themes    - List stage palettes
  config    - Print the effective configuration

Examples:
  lanerunner play
  lanerunner play --difficulty hard
  lanerunner serve --ssh :2222
  lanerunner scores --plain
  lanerunner simulate --ticks 3600 --seed 42`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom runner config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "normal", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lanerunner/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(themesCmd)
	rootCmd.AddCommand(configCmd)
}
