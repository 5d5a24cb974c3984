package runner

import (
	"github.com/vovakirdan/lane-runner/internal/core"
)

// Offsets of the exhaust pipe from the player's box origin.
const (
	exhaustOffsetX = 125
	exhaustOffsetY = -25
)

// StepResult is the outcome of one tick.
type StepResult struct {
	Events []Event
	Paused bool // The tick was short-circuited by a pause request
}

// Simulation is one run. It owns all mutable run state; a new run is a new
// Simulation, never a partial reset.
type Simulation struct {
	rules *Rules

	player    Player
	themes    ThemeBlender
	particles ParticleSystem
	scenery   SceneryGenerator
	spawner   Spawner
	collision CollisionEngine
	entities  []Entity

	tick int
}

// New starts a run. Every component draws from its own stream derived from
// seed, so equal seeds and inputs replay the same run.
func New(r *Rules, seed int64) *Simulation {
	s := &Simulation{
		rules:     r,
		player:    newPlayer(r),
		themes:    newThemeBlender(r),
		particles: newParticleSystem(r, seed+1),
		spawner:   newSpawner(r, seed+2),
		collision: CollisionEngine{rules: r},
		entities:  make([]Entity, 0, 32),
	}
	s.scenery = newSceneryGenerator(r, seed+3, s.themes.Current())
	return s
}

// Step advances the run by one tick.
func (s *Simulation) Step(in core.InputSnapshot) StepResult {
	if in.Pause {
		return StepResult{
			Events: []Event{{Kind: EventPauseRequested}},
			Paused: true,
		}
	}

	var events []Event
	p := &s.player

	p.update(in, s.rules)

	s.themes.update(p.Distance)
	theme := s.themes.Current()

	s.particles.exhaust(core.Vec{
		X: s.rules.cfg.World.PlayerX + exhaustOffsetX,
		Y: p.Y + exhaustOffsetY + p.Bounce,
	})
	s.particles.update()

	s.scenery.update(p.Speed, theme)

	stage := s.themes.Target(p.Distance).Name
	s.entities = s.spawner.update(s.entities, p.Distance, theme, stage)

	s.entities, events = s.collision.resolve(s.entities, p, theme, &s.particles, events)

	s.tick++
	return StepResult{Events: events}
}

// PlaceObstacle puts an obstacle on the road at world x, outside any pattern.
func (s *Simulation) PlaceObstacle(kind ObstacleKind, lane Lane, x float64) *Obstacle {
	size := s.rules.cfg.Spawner.ObstacleSize
	o := &Obstacle{
		Body: Body{X: x, Y: s.rules.laneCenter(lane), W: size, H: size, Lane: lane, Color: s.Theme().Obstacle},
		Kind: kind,
	}
	s.entities = append(s.entities, o)
	return o
}

// PlaceCoin puts a coin on the road at world x, outside any pattern.
func (s *Simulation) PlaceCoin(lane Lane, x float64) *Coin {
	size := s.rules.cfg.Spawner.CoinSize
	c := &Coin{Body: Body{X: x, Y: s.rules.laneCenter(lane), W: size, H: size, Lane: lane, Color: s.rules.coinColor}}
	s.entities = append(s.entities, c)
	return c
}

// HoldSpawns stops pattern spawning until the player reaches distance.
func (s *Simulation) HoldSpawns(distance float64) {
	s.spawner.next = distance
}

// Player returns a copy of the player state.
func (s *Simulation) Player() Player {
	return s.player
}

// Tick returns the number of ticks simulated, excluding paused ones.
func (s *Simulation) Tick() int {
	return s.tick
}

// Theme returns the current blended palette.
func (s *Simulation) Theme() Theme {
	return s.themes.Current()
}

// Stage returns the index of the stage the player is in.
func (s *Simulation) Stage() int {
	return s.themes.StageIndex(s.player.Distance)
}

// Rules returns the rules the run was started with.
func (s *Simulation) Rules() *Rules {
	return s.rules
}
