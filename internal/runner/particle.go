package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// Particle is a short-lived visual effect with no gameplay weight.
type Particle struct {
	Pos     core.Vec
	Vel     core.Vec
	Life    int
	MaxLife int
	Size    float64
	Color   core.Color
	Alpha   float64
}

const (
	smokeLife   = 40
	debrisLife  = 60
	sparkleLife = 30
	smokeAlpha  = 0.5
)

// ParticleSystem owns every live particle and the exhaust emitter.
type ParticleSystem struct {
	particles []Particle
	rng       *rand.Rand
	rules     *Rules

	exhaustIn int // Ticks until the next exhaust puff
}

func newParticleSystem(r *Rules, seed int64) ParticleSystem {
	return ParticleSystem{
		particles: make([]Particle, 0, 64),
		rng:       rand.New(rand.NewSource(seed)),
		rules:     r,
	}
}

// Particles returns the live particles. The slice is owned by the system.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// add appends a particle, dropping the oldest once the cap is reached.
func (ps *ParticleSystem) add(p Particle) {
	if limit := ps.rules.cfg.Particles.MaxParticles; len(ps.particles) >= limit {
		copy(ps.particles, ps.particles[1:])
		ps.particles = ps.particles[:len(ps.particles)-1]
	}
	ps.particles = append(ps.particles, p)
}

// exhaust ticks the exhaust countdown and emits a smoke puff when it runs out.
func (ps *ParticleSystem) exhaust(at core.Vec) {
	if ps.exhaustIn > 0 {
		ps.exhaustIn--
		return
	}
	ps.exhaustIn = ps.rules.cfg.Particles.ExhaustInterval - 1

	r := ps.rng
	ps.add(Particle{
		Pos:     at,
		Vel:     core.Vec{X: -4 - r.Float64()*3, Y: -1 - r.Float64()*1.5},
		Life:    smokeLife,
		MaxLife: smokeLife,
		Size:    8 + r.Float64()*8,
		Color:   ps.rules.smokeColor,
		Alpha:   smokeAlpha,
	})
}

// Debris emits a burst flung outward and backward from a broken obstacle.
func (ps *ParticleSystem) Debris(at core.Vec, color core.Color) {
	r := ps.rng
	for i := 0; i < ps.rules.cfg.Particles.DebrisCount; i++ {
		ps.add(Particle{
			Pos:     at,
			Vel:     core.Vec{X: (r.Float64()-0.5)*10 - 5, Y: (r.Float64() - 1) * 10},
			Life:    debrisLife,
			MaxLife: debrisLife,
			Size:    5 + r.Float64()*8,
			Color:   color,
			Alpha:   1,
		})
	}
}

// Sparkle emits a small gold burst for a collected coin.
func (ps *ParticleSystem) Sparkle(at core.Vec) {
	r := ps.rng
	for i := 0; i < ps.rules.cfg.Particles.SparkleCount; i++ {
		ps.add(Particle{
			Pos:     at,
			Vel:     core.Vec{X: (r.Float64() - 0.5) * 5, Y: (r.Float64() - 0.5) * 5},
			Life:    sparkleLife,
			MaxLife: sparkleLife,
			Size:    3 + r.Float64()*4,
			Color:   ps.rules.sparkleColor,
			Alpha:   1,
		})
	}
}

// update integrates and ages every particle, then drops the expired ones.
func (ps *ParticleSystem) update() {
	decay := ps.rules.cfg.Particles.Decay
	live := ps.particles[:0]
	for _, p := range ps.particles {
		p.Pos.X += p.Vel.X
		p.Pos.Y += p.Vel.Y
		p.Life--
		p.Size *= decay
		if p.Life > 0 {
			live = append(live, p)
		}
	}
	ps.particles = live
}
