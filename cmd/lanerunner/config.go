package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective runner configuration",
	Long: `Prints the configuration a run would use, after layering --config over
the defaults and applying --difficulty. The output is valid YAML and can be
saved as ~/.lanerunner/configs/runner.yaml as a starting point.

Examples:
  lanerunner config
  lanerunner config --difficulty hard
  lanerunner config --defaults > runner.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults instead")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	cfg, _, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}
	if err := cfg.Validate(); err != nil {
		fail("%v", err)
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		fail("encoding config: %v", err)
	}
	os.Stdout.Write(out)
}
