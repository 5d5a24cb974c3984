// Package runner implements the lane runner simulation: player motion,
// pattern spawning, collision resolution, palette blending, particles and
// background scenery, advanced one fixed tick at a time.
//
// The package performs no I/O. Configuration problems are rejected once by
// Compile; after that no operation can fail.
package runner

import (
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Rules is a validated, pre-parsed configuration shared by every session.
// It is read-only after Compile.
type Rules struct {
	cfg     config.RunnerConfig
	themes  []Theme
	weights map[string][]kindWeight // keyed by theme name

	coinColor    core.Color
	crateDebris  core.Color
	barrelDebris core.Color
	smokeColor   core.Color
	sparkleColor core.Color
}

type kindWeight struct {
	kind   ObstacleKind
	weight float64
}

// Compile validates cfg and parses its colors and weight tables.
func Compile(cfg config.RunnerConfig) (*Rules, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	r := &Rules{
		cfg:     cfg,
		weights: make(map[string][]kindWeight, len(cfg.Themes)),
	}

	var err error
	parse := func(hex string) core.Color {
		c, perr := core.ParseHex(hex)
		if perr != nil && err == nil {
			err = perr
		}
		return c
	}

	for _, tc := range cfg.Themes {
		r.themes = append(r.themes, Theme{
			Name:      tc.Name,
			Sky:       parse(tc.Sky),
			SkyBottom: parse(tc.SkyBottom),
			Ground:    parse(tc.Ground),
			Road:      parse(tc.Road),
			Stripe:    parse(tc.Stripe),
			Obstacle:  parse(tc.Obstacle),
			Details:   parse(tc.Details),
			Scenery:   parse(tc.Scenery),
		})

		// Fixed kind order keeps the draw stable regardless of map iteration.
		var table []kindWeight
		for _, kind := range obstacleKinds {
			if w := tc.Weights[kind.String()]; w > 0 {
				table = append(table, kindWeight{kind: kind, weight: w})
			}
		}
		r.weights[tc.Name] = table
	}

	r.coinColor = parse(cfg.Spawner.CoinColor)
	r.crateDebris = parse(cfg.Spawner.CrateDebris)
	r.barrelDebris = parse(cfg.Spawner.BarrelDebris)
	r.smokeColor = parse(cfg.Particles.SmokeColor)
	r.sparkleColor = parse(cfg.Particles.SparkleColor)

	if err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}
	return r, nil
}

// MustCompile is like Compile but panics on an invalid configuration.
func MustCompile(cfg config.RunnerConfig) *Rules {
	r, err := Compile(cfg)
	if err != nil {
		panic(err)
	}
	return r
}

// Config returns the configuration the rules were compiled from.
func (r *Rules) Config() config.RunnerConfig {
	return r.cfg
}

// Themes returns the stage palettes in stage order.
func (r *Rules) Themes() []Theme {
	out := make([]Theme, len(r.themes))
	copy(out, r.themes)
	return out
}

// laneTop returns the world y of a lane's upper edge.
func (r *Rules) laneTop(l Lane) float64 {
	return r.cfg.World.LaneStartY + float64(l)*r.cfg.World.LaneHeight
}

// laneCenter returns the world y of a lane's midline.
func (r *Rules) laneCenter(l Lane) float64 {
	return r.laneTop(l) + r.cfg.World.LaneHeight/2
}

// debrisColor returns the burst color for a destructible obstacle.
func (r *Rules) debrisColor(k ObstacleKind) core.Color {
	if k == ObstacleBarrel {
		return r.barrelDebris
	}
	return r.crateDebris
}
