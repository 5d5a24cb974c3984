package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/core"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the stage palettes",
	Long: `Shows every stage in order with the distance it starts at and a
swatch of each palette color. Stages after the last one keep its palette.`,
	Args: cobra.NoArgs,
	Run:  runThemes,
}

func runThemes(_ *cobra.Command, _ []string) {
	rules, cfg, _, err := loadRules()
	if err != nil {
		fail("%v", err)
	}

	nameStyle := lipgloss.NewStyle().Bold(true).Width(12)
	for i, th := range rules.Themes() {
		start := float64(i) * cfg.StageLength
		fmt.Printf("%s from %dm\n", nameStyle.Render(th.Name), int(start/100))

		colors := []struct {
			label string
			c     core.Color
		}{
			{"sky", th.Sky},
			{"sky bottom", th.SkyBottom},
			{"ground", th.Ground},
			{"road", th.Road},
			{"stripe", th.Stripe},
			{"obstacle", th.Obstacle},
			{"details", th.Details},
			{"scenery", th.Scenery},
		}
		for _, col := range colors {
			swatch := lipgloss.NewStyle().Background(lipgloss.Color(col.c.Hex())).Render("    ")
			fmt.Printf("  %s %-10s %s\n", swatch, col.label, col.c.Hex())
		}
		fmt.Println()
	}
}
