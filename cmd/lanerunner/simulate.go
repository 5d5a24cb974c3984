package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/lane-runner/internal/core"
	"github.com/vovakirdan/lane-runner/internal/runner"
	"github.com/vovakirdan/lane-runner/internal/session"
)

var (
	flagTicks     int
	flagPolicy    string
	flagLookahead float64
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the simulation headless and print a summary",
	Long: `Play one run without a terminal and print the result as YAML.

The run uses the same rules, seed and session handling as the game, so a
given --seed and --policy always produce the same summary.

Policies:
  cruise - No input at all
  gas    - Hold gas the whole run
  brake  - Hold brake the whole run
  dodge  - Hold gas and change lane away from obstacles ahead

Examples:
  lanerunner simulate --seed 42
  lanerunner simulate --policy dodge --ticks 36000
  lanerunner simulate --difficulty hard --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 3600, "Maximum ticks to simulate")
	simulateCmd.Flags().StringVar(&flagPolicy, "policy", "dodge", "Input policy: cruise, gas, brake, dodge")
	simulateCmd.Flags().Float64Var(&flagLookahead, "lookahead", 400, "World units the dodge policy looks ahead")
}

// simSummary is the YAML report of a headless run.
type simSummary struct {
	Seed       int64          `yaml:"seed"`
	Difficulty string         `yaml:"difficulty"`
	Policy     string         `yaml:"policy"`
	Ticks      int            `yaml:"ticks"`
	State      string         `yaml:"state"`
	Lives      int            `yaml:"lives"`
	Score      int            `yaml:"score"`
	Coins      int            `yaml:"coins"`
	Distance   float64        `yaml:"distance"`
	Speed      float64        `yaml:"speed"`
	Stage      int            `yaml:"stage"`
	StageName  string         `yaml:"stage_name"`
	Lane       string         `yaml:"lane"`
	Events     map[string]int `yaml:"events"`
}

// policy decides the held controls for the next tick.
type policy func(snap runner.Snapshot) core.Controls

func parsePolicy(name string, lookahead float64) (policy, error) {
	switch name {
	case "cruise":
		return func(runner.Snapshot) core.Controls { return core.Controls{} }, nil
	case "gas":
		return func(runner.Snapshot) core.Controls { return core.Controls{Gas: true} }, nil
	case "brake":
		return func(runner.Snapshot) core.Controls { return core.Controls{Brake: true} }, nil
	case "dodge":
		return func(snap runner.Snapshot) core.Controls { return dodge(snap, lookahead) }, nil
	default:
		return nil, fmt.Errorf("unknown policy %q (want cruise, gas, brake or dodge)", name)
	}
}

// dodge holds gas and steers toward the nearest lane with no obstacle
// within lookahead of the player's front edge.
func dodge(snap runner.Snapshot, lookahead float64) core.Controls {
	c := core.Controls{Gas: true}

	front := 0.0
	for _, sp := range snap.Sprites {
		if sp.Kind == runner.SpritePlayer {
			front = sp.Box.X + sp.Box.W
			break
		}
	}

	var blocked [runner.LaneCount]bool
	for _, sp := range snap.Sprites {
		if sp.Kind != runner.SpriteObstacle || !sp.Lane.Valid() {
			continue
		}
		if sp.Box.X+sp.Box.W >= front-sp.Box.W && sp.Box.X <= front+lookahead {
			blocked[sp.Lane] = true
		}
	}
	if !snap.Lane.Valid() || !blocked[snap.Lane] {
		return c
	}

	for _, step := range []runner.Lane{-1, 1} {
		next := snap.Lane + step
		if next.Valid() && !blocked[next] {
			if step < 0 {
				c.Up = true
			} else {
				c.Down = true
			}
			return c
		}
	}
	// Every lane is blocked: brake and hope for a crate.
	c.Gas = false
	c.Brake = true
	return c
}

func runSimulate(_ *cobra.Command, _ []string) {
	rules, _, preset, err := loadRules()
	if err != nil {
		fail("%v", err)
	}
	pol, err := parsePolicy(flagPolicy, flagLookahead)
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, "simulate")

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	ctrl := session.NewController(rules, session.Options{
		Logger:     logger,
		Difficulty: preset,
		Seed:       seed,
	})
	ctrl.Start()

	summary := simSummary{
		Seed:       seed,
		Difficulty: string(preset),
		Policy:     flagPolicy,
		Events:     make(map[string]int),
	}

	var edges core.EdgeDetector
	for summary.Ticks < flagTicks && ctrl.State() == session.StatePlaying {
		snap, _ := ctrl.Snapshot()
		events := ctrl.Update(edges.Poll(pol(snap)))
		summary.Ticks++

		for _, ev := range events {
			summary.Events[ev.Kind.String()]++
			logger.Debug("event", "tick", summary.Ticks, "kind", ev.Kind, "obstacle", ev.Obstacle)
		}
	}

	snap, _ := ctrl.Snapshot()
	summary.State = ctrl.State().String()
	summary.Lives = ctrl.Lives()
	summary.Score = snap.Score
	summary.Coins = snap.Coins
	summary.Distance = snap.Distance
	summary.Speed = snap.Speed
	summary.Stage = snap.Stage
	summary.StageName = snap.StageName
	summary.Lane = snap.Lane.String()

	out, err := yaml.Marshal(summary)
	if err != nil {
		fail("encoding summary: %v", err)
	}
	os.Stdout.Write(out)
}
