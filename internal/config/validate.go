package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// ObstacleKinds lists the obstacle names accepted in obstacle_weights.
var ObstacleKinds = []string{"cone", "barrier", "rock", "crate", "barrel"}

// Validate reports every problem with the configuration at once.
// It is meant to run at startup; a validated config is never rechecked mid-run.
func (c RunnerConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("config: "+format, args...))
	}

	w := c.World
	if w.Width <= 0 || w.Height <= 0 {
		add("world size must be positive, got %vx%v", w.Width, w.Height)
	}
	if w.LaneHeight <= 0 {
		add("lane_height must be positive, got %v", w.LaneHeight)
	}
	if w.PlayerWidth <= 0 || w.PlayerHeight <= 0 {
		add("player size must be positive, got %vx%v", w.PlayerWidth, w.PlayerHeight)
	}
	if w.DespawnMargin < 0 {
		add("despawn_margin must not be negative, got %v", w.DespawnMargin)
	}

	p := c.Physics
	if p.MaxSpeed <= 0 {
		add("max_speed must be positive, got %v", p.MaxSpeed)
	}
	if p.InitialSpeed <= 0 || p.InitialSpeed > p.MaxSpeed {
		add("initial_speed must be in (0, max_speed], got %v", p.InitialSpeed)
	}
	if p.Acceleration < 0 {
		add("acceleration must not be negative, got %v", p.Acceleration)
	}
	for name, rate := range map[string]float64{
		"lane_switch_rate": p.LaneSwitchRate,
		"speed_ease":       p.SpeedEase,
		"tilt_ease":        p.TiltEase,
		"theme_blend_rate": c.BlendRate,
	} {
		if rate <= 0 || rate > 1 {
			add("%s must be in (0, 1], got %v", name, rate)
		}
	}
	if p.GasMultiplier <= 0 || p.BrakeMultiplier <= 0 {
		add("gas and brake multipliers must be positive")
	}

	s := c.Spawner
	prev := 0.0
	for _, t := range s.Thresholds {
		if t <= prev || t >= 1 {
			add("pattern_thresholds must be strictly increasing within (0, 1), got %v", s.Thresholds)
			break
		}
		prev = t
	}
	if s.CoinLineMin < 1 || s.CoinLineMax < s.CoinLineMin {
		add("coin line range must satisfy 1 <= min <= max, got %d..%d", s.CoinLineMin, s.CoinLineMax)
	}
	if s.ObstacleSize <= 0 || s.CoinSize <= 0 {
		add("entity sizes must be positive")
	}
	if s.Gap < 0 || s.SafeZone < 0 {
		add("safe_zone and gap must not be negative")
	}
	for name, v := range map[string]float64{
		"coin_spacing":   s.CoinSpacing,
		"single_length":  s.SingleLength,
		"coin_line_tail": s.CoinLineTail,
		"gate_length":    s.GateLength,
		"slalom_length":  s.SlalomLength,
	} {
		if v < 0 {
			add("%s must not be negative, got %v", name, v)
		}
	}
	for _, hex := range []string{s.CoinColor, s.CrateDebris, s.BarrelDebris, c.Particles.SmokeColor, c.Particles.SparkleColor} {
		if _, err := core.ParseHex(hex); err != nil {
			errs = append(errs, err)
		}
	}

	if c.Collision.Invincibility <= 0 {
		add("invincibility_ticks must be positive, got %d", c.Collision.Invincibility)
	}
	col := c.Collision
	if col.EntityInset < 0 {
		add("entity_inset must not be negative, got %v", col.EntityInset)
	}
	if 2*col.EntityInset >= min(s.ObstacleSize, s.CoinSize) {
		add("entity_inset %v leaves no hitbox for %vx%v entities", col.EntityInset, s.ObstacleSize, s.CoinSize)
	}
	if col.PlayerInsetLeft < 0 || col.PlayerInsetRight < 0 || col.PlayerInsetTop < 0 || col.PlayerInsetBottom < 0 {
		add("player insets must not be negative")
	}
	if col.PlayerInsetLeft+col.PlayerInsetRight >= w.PlayerWidth {
		add("player_inset_left + player_inset_right must be below player_width %v", w.PlayerWidth)
	}
	if col.PlayerInsetTop+col.PlayerInsetBottom >= w.PlayerHeight {
		add("player_inset_top + player_inset_bottom must be below player_height %v", w.PlayerHeight)
	}

	pc := c.Particles
	if pc.ExhaustInterval <= 0 {
		add("exhaust_interval must be positive, got %d", pc.ExhaustInterval)
	}
	if pc.Decay <= 0 || pc.Decay > 1 {
		add("particle decay must be in (0, 1], got %v", pc.Decay)
	}
	if pc.MaxParticles <= 0 {
		add("max_particles must be positive, got %d", pc.MaxParticles)
	}
	if pc.DebrisCount < 0 || pc.SparkleCount < 0 {
		add("debris_count and sparkle_count must not be negative")
	}

	if c.Scenery.Parallax <= 0 || c.Scenery.Parallax > 1 {
		add("scenery parallax must be in (0, 1], got %v", c.Scenery.Parallax)
	}
	for name, chance := range map[string]float64{
		"house_chance": c.Scenery.HouseChance,
		"car_chance":   c.Scenery.CarChance,
	} {
		if chance < 0 || chance > 1 {
			add("%s must be in [0, 1], got %v", name, chance)
		}
	}

	if c.StageLength <= 0 {
		add("stage_length must be positive, got %v", c.StageLength)
	}
	if len(c.Themes) == 0 {
		add("at least one theme is required")
	}
	seen := make(map[string]bool, len(c.Themes))
	for i, t := range c.Themes {
		if t.Name == "" {
			add("theme %d has no name", i)
		} else if seen[t.Name] {
			add("duplicate theme %q", t.Name)
		}
		seen[t.Name] = true
		for _, hex := range []string{t.Sky, t.SkyBottom, t.Ground, t.Road, t.Stripe, t.Obstacle, t.Details, t.Scenery} {
			if _, err := core.ParseHex(hex); err != nil {
				errs = append(errs, fmt.Errorf("config: theme %q: %w", t.Name, err))
			}
		}
		sum := 0.0
		for kind, weight := range t.Weights {
			if !knownKind(kind) {
				add("theme %q: unknown obstacle kind %q", t.Name, kind)
			}
			if weight < 0 {
				add("theme %q: negative weight for %s", t.Name, kind)
			}
			sum += weight
		}
		if sum <= 0 {
			add("theme %q: obstacle weights must sum to a positive value", t.Name)
		}
	}

	if c.Session.Lives <= 0 {
		add("lives must be positive, got %d", c.Session.Lives)
	}
	if c.Session.StartLockTicks < 0 || c.Session.TransitionLockTicks < 0 {
		add("input lock ticks must not be negative")
	}

	return errors.Join(errs...)
}

func knownKind(name string) bool {
	for _, k := range ObstacleKinds {
		if k == name {
			return true
		}
	}
	return false
}
