package runner

import (
	"math"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Player is the truck: its lane, smoothed position, speed and progress.
// Y is the top of the player's box, easing toward the lane's top edge.
type Player struct {
	Lane       Lane
	Y          float64
	Speed      float64
	Distance   float64
	Coins      int
	Tilt       float64
	Bounce     float64
	Invincible int // Ticks until damage can apply again

	frame int // Bounce phase
}

func newPlayer(r *Rules) Player {
	return Player{
		Lane:  LaneMiddle,
		Y:     r.laneTop(LaneMiddle),
		Speed: r.cfg.Physics.InitialSpeed,
	}
}

// Score is derived from distance and coins; it is never stored.
func (p *Player) Score() int {
	return int(math.Floor(p.Distance/10)) + p.Coins*50
}

// Box returns the nominal bounding box at the given left edge.
func (p *Player) Box(x, w, h float64) core.Rect {
	return core.NewRect(x, p.Y, w, h)
}

// update advances movement, speed and the invincibility countdown by one tick.
func (p *Player) update(in core.InputSnapshot, r *Rules) {
	ph := r.cfg.Physics

	// Lane switching; up wins when both fire.
	if in.Up && p.Lane > LaneTop {
		p.Lane--
	} else if in.Down && p.Lane < LaneBottom {
		p.Lane++
	}

	target := r.laneTop(p.Lane)
	prevY := p.Y
	p.Y += (target - p.Y) * ph.LaneSwitchRate

	dy := p.Y - prevY
	p.Tilt += (dy*ph.TiltFactor - p.Tilt) * ph.TiltEase

	p.Bounce = math.Sin(float64(p.frame)*ph.BounceFrequency) * ph.BounceAmplitude
	p.frame++

	if p.Invincible > 0 {
		p.Invincible--
	}

	p.Speed += (p.targetSpeed(in, ph) - p.Speed) * ph.SpeedEase
	p.Distance += p.Speed
}

// targetSpeed ramps with distance up to the cap, then applies the held
// multipliers in order. Holding both nets gas*brake.
func (p *Player) targetSpeed(in core.InputSnapshot, ph config.PhysicsConfig) float64 {
	target := math.Min(ph.MaxSpeed, ph.InitialSpeed+p.Distance*ph.Acceleration)
	if in.Gas {
		target *= ph.GasMultiplier
	}
	if in.Brake {
		target *= ph.BrakeMultiplier
	}
	return target
}

// takeDamage starts the invincibility window. It returns false, changing
// nothing, if a window is already running.
func (p *Player) takeDamage(window int) bool {
	if p.Invincible > 0 {
		return false
	}
	p.Invincible = window
	return true
}
