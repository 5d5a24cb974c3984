package runner

import (
	"math"
	"sort"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// SpriteKind distinguishes the drawable foreground entities.
type SpriteKind int

const (
	SpritePlayer SpriteKind = iota
	SpriteCoin
	SpriteObstacle
)

// Sprite is one foreground entity as the renderer sees it.
type Sprite struct {
	Kind     SpriteKind
	Obstacle ObstacleKind // SpriteObstacle only
	Box      core.Rect    // Nominal world box
	Lane     Lane
	Color    core.Color
	Depth    float64 // Draw order, ascending
}

// Snapshot is the read-only state a renderer draws from.
type Snapshot struct {
	Tick      int
	Sprites   []Sprite // Sorted by depth
	Particles []Particle
	Scenery   []Scenery
	Theme     Theme
	Stage     int
	StageName string

	Score      int
	Coins      int
	Distance   float64
	Speed      float64
	Lane       Lane
	Tilt       float64
	Bounce     float64
	Invincible int

	StripeOffset float64 // Lane dash phase in world units
	SpeedLines   bool
	World        WorldSize
}

// WorldSize describes the playfield geometry a renderer projects from.
type WorldSize struct {
	Width, Height float64
	LaneStartY    float64
	LaneHeight    float64
}

const (
	speedLineFactor = 0.7 // Fraction of max speed that turns on speed lines
	stripePeriod    = 120 // Lane dash plus gap, world units
)

// Snapshot copies the renderable state. Destroyed obstacles are left out.
func (s *Simulation) Snapshot() Snapshot {
	cfg := s.rules.cfg
	p := &s.player

	sprites := make([]Sprite, 0, len(s.entities)+1)
	sprites = append(sprites, Sprite{
		Kind:  SpritePlayer,
		Box:   p.Box(cfg.World.PlayerX, cfg.World.PlayerWidth, cfg.World.PlayerHeight),
		Lane:  p.Lane,
		Depth: p.Y,
	})
	for _, e := range s.entities {
		b := e.body()
		sp := Sprite{Box: b.Box(), Lane: b.Lane, Color: b.Color, Depth: b.Y}
		switch e := e.(type) {
		case *Coin:
			sp.Kind = SpriteCoin
		case *Obstacle:
			if e.Destroyed {
				continue
			}
			sp.Kind = SpriteObstacle
			sp.Obstacle = e.Kind
		}
		sprites = append(sprites, sp)
	}
	sort.SliceStable(sprites, func(i, j int) bool {
		return sprites[i].Depth < sprites[j].Depth
	})

	particles := make([]Particle, len(s.particles.Particles()))
	copy(particles, s.particles.Particles())
	scenery := make([]Scenery, len(s.scenery.Items()))
	copy(scenery, s.scenery.Items())

	stage := s.Stage()
	return Snapshot{
		Tick:      s.tick,
		Sprites:   sprites,
		Particles: particles,
		Scenery:   scenery,
		Theme:     s.themes.Current(),
		Stage:     stage,
		StageName: s.rules.themes[stage].Name,

		Score:      p.Score(),
		Coins:      p.Coins,
		Distance:   p.Distance,
		Speed:      p.Speed,
		Lane:       p.Lane,
		Tilt:       p.Tilt,
		Bounce:     p.Bounce,
		Invincible: p.Invincible,

		StripeOffset: math.Mod(p.Distance, stripePeriod),
		SpeedLines:   p.Speed > cfg.Physics.MaxSpeed*speedLineFactor,
		World: WorldSize{
			Width:      cfg.World.Width,
			Height:     cfg.World.Height,
			LaneStartY: cfg.World.LaneStartY,
			LaneHeight: cfg.World.LaneHeight,
		},
	}
}
