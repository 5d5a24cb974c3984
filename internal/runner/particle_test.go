package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/config"
	"github.com/vovakirdan/lane-runner/internal/core"
)

func TestExhaustInterval(t *testing.T) {
	r := testRules(t)
	ps := newParticleSystem(r, 1)

	var fired []int
	for tick := 0; tick < 16; tick++ {
		before := len(ps.particles)
		ps.exhaust(core.Vec{X: 305, Y: 415})
		if len(ps.particles) > before {
			fired = append(fired, tick)
		}
	}

	want := []int{0, 5, 10, 15}
	if len(fired) != len(want) {
		t.Fatalf("exhaust fired on ticks %v, expected %v", fired, want)
	}
	for i := range want {
		if fired[i] != want[i] {
			t.Fatalf("exhaust fired on ticks %v, expected %v", fired, want)
		}
	}
}

func TestSmokeParticle(t *testing.T) {
	r := testRules(t)
	ps := newParticleSystem(r, 1)
	ps.exhaust(core.Vec{X: 305, Y: 415})

	p := ps.particles[0]
	if p.Life != 40 || p.MaxLife != 40 {
		t.Errorf("smoke life = %d/%d, expected 40", p.Life, p.MaxLife)
	}
	if p.Vel.X > -4 || p.Vel.X < -7 {
		t.Errorf("smoke vx = %v, expected in [-7, -4]", p.Vel.X)
	}
	if p.Vel.Y > -1 || p.Vel.Y < -2.5 {
		t.Errorf("smoke vy = %v, expected in [-2.5, -1]", p.Vel.Y)
	}
	if p.Size < 8 || p.Size > 16 {
		t.Errorf("smoke size = %v", p.Size)
	}
	if p.Alpha != 0.5 {
		t.Errorf("smoke alpha = %v, expected 0.5", p.Alpha)
	}
}

func TestBursts(t *testing.T) {
	r := testRules(t)
	ps := newParticleSystem(r, 1)

	ps.Debris(core.Vec{X: 100, Y: 100}, r.crateDebris)
	if len(ps.particles) != 8 {
		t.Fatalf("debris burst = %d particles, expected 8", len(ps.particles))
	}
	for _, p := range ps.particles {
		if p.Life != 60 || p.Color != r.crateDebris {
			t.Errorf("bad debris particle %+v", p)
		}
		if p.Vel.X < -10 || p.Vel.X > 0 || p.Vel.Y > 0 {
			t.Errorf("debris should fly backward and up, vel %+v", p.Vel)
		}
	}

	ps.Sparkle(core.Vec{X: 100, Y: 100})
	if len(ps.particles) != 18 {
		t.Fatalf("after sparkle: %d particles, expected 18", len(ps.particles))
	}
	for _, p := range ps.particles[8:] {
		if p.Life != 30 || p.Color != r.sparkleColor {
			t.Errorf("bad sparkle particle %+v", p)
		}
		if math.Abs(p.Vel.X) > 2.5 || math.Abs(p.Vel.Y) > 2.5 {
			t.Errorf("sparkle velocity too large: %+v", p.Vel)
		}
	}
}

func TestParticleUpdate(t *testing.T) {
	r := testRules(t)
	ps := newParticleSystem(r, 1)
	ps.particles = append(ps.particles,
		Particle{Pos: core.Vec{X: 10, Y: 10}, Vel: core.Vec{X: 1, Y: -2}, Life: 2, MaxLife: 2, Size: 10},
		Particle{Pos: core.Vec{X: 0, Y: 0}, Vel: core.Vec{X: 0, Y: 0}, Life: 1, MaxLife: 1, Size: 4},
	)

	ps.update()
	if len(ps.particles) != 1 {
		t.Fatalf("expired particle should be removed, %d left", len(ps.particles))
	}
	p := ps.particles[0]
	if p.Pos != (core.Vec{X: 11, Y: 8}) {
		t.Errorf("Pos = %+v, expected {11 8}", p.Pos)
	}
	if p.Life != 1 {
		t.Errorf("Life = %d, expected 1", p.Life)
	}
	if math.Abs(p.Size-9.5) > 1e-9 {
		t.Errorf("Size = %v, expected 9.5", p.Size)
	}

	ps.update()
	if len(ps.particles) != 0 {
		t.Error("particle should expire when life reaches 0")
	}
}

func TestParticleCapDropsOldest(t *testing.T) {
	cfg := config.DefaultRunnerConfig()
	cfg.Particles.MaxParticles = 10
	r := MustCompile(cfg)
	ps := newParticleSystem(r, 1)

	ps.Debris(core.Vec{}, r.crateDebris) // 8
	ps.Sparkle(core.Vec{X: 1, Y: 1})     // 10 more
	if len(ps.particles) != 10 {
		t.Fatalf("particles = %d, expected cap 10", len(ps.particles))
	}
	for _, p := range ps.particles {
		if p.Color != r.sparkleColor {
			t.Fatal("oldest particles should be dropped first")
		}
	}
}
