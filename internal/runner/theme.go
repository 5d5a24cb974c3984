package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Theme is a stage palette.
type Theme struct {
	Name      string
	Sky       core.Color
	SkyBottom core.Color
	Ground    core.Color
	Road      core.Color
	Stripe    core.Color
	Obstacle  core.Color
	Details   core.Color
	Scenery   core.Color
}

// Blend returns t moved the given fraction toward target, channel by channel.
// The name is kept: a blended palette still belongs to the stage it started in.
func (t Theme) Blend(target Theme, amount float64) Theme {
	return Theme{
		Name:      t.Name,
		Sky:       t.Sky.Lerp(target.Sky, amount),
		SkyBottom: t.SkyBottom.Lerp(target.SkyBottom, amount),
		Ground:    t.Ground.Lerp(target.Ground, amount),
		Road:      t.Road.Lerp(target.Road, amount),
		Stripe:    t.Stripe.Lerp(target.Stripe, amount),
		Obstacle:  t.Obstacle.Lerp(target.Obstacle, amount),
		Details:   t.Details.Lerp(target.Details, amount),
		Scenery:   t.Scenery.Lerp(target.Scenery, amount),
	}
}

// ThemeBlender owns the current palette and drifts it toward the
// palette of the stage the player is in.
type ThemeBlender struct {
	themes      []Theme
	stageLength float64
	rate        float64
	current     Theme
}

func newThemeBlender(r *Rules) ThemeBlender {
	return ThemeBlender{
		themes:      r.themes,
		stageLength: r.cfg.StageLength,
		rate:        r.cfg.BlendRate,
		current:     r.themes[0],
	}
}

// StageIndex returns the stage for a distance, wrapping through the themes.
func (b *ThemeBlender) StageIndex(distance float64) int {
	stage := int(math.Floor(distance / b.stageLength))
	return stage % len(b.themes)
}

// Target returns the palette the current one is moving toward.
func (b *ThemeBlender) Target(distance float64) Theme {
	return b.themes[b.StageIndex(distance)]
}

// Current returns the blended palette.
func (b *ThemeBlender) Current() Theme {
	return b.current
}

func (b *ThemeBlender) update(distance float64) {
	b.current = b.current.Blend(b.Target(distance), b.rate)
}
