package runner

import (
	"math/rand"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// SceneryKind is the type of a background decoration.
type SceneryKind int

const (
	SceneryHouse SceneryKind = iota
	SceneryTree
	SceneryCar
	SceneryMailbox
)

func (k SceneryKind) String() string {
	switch k {
	case SceneryHouse:
		return "house"
	case SceneryTree:
		return "tree"
	case SceneryCar:
		return "car"
	case SceneryMailbox:
		return "mailbox"
	default:
		return "unknown"
	}
}

// SceneryDetail carries the kind-specific look of a decoration.
type SceneryDetail struct {
	Roof      core.Color // House
	Door      core.Color // House
	HasGarage bool       // House
}

// Scenery is a background decoration. X is the left edge and Y the top,
// both in world units. It is never collided with.
type Scenery struct {
	Kind   SceneryKind
	X, Y   float64
	W, H   float64
	Color  core.Color
	Detail SceneryDetail
}

var (
	wallColors = []core.Color{
		core.MustHex("#fab1a0"), core.MustHex("#ffeaa7"), core.MustHex("#dfe6e9"),
		core.MustHex("#a29bfe"), core.MustHex("#fd79a8"), core.MustHex("#81ecec"),
	}
	roofColors = []core.Color{
		core.MustHex("#d63031"), core.MustHex("#2d3436"), core.MustHex("#6c5ce7"), core.MustHex("#e17055"),
	}
	doorColors = []core.Color{
		core.MustHex("#6d4c41"), core.MustHex("#0984e3"), core.MustHex("#00b894"),
	}
	carColors = []core.Color{
		core.MustHex("#e74c3c"), core.MustHex("#3498db"), core.MustHex("#f1c40f"), core.MustHex("#ecf0f1"),
	}
)

const (
	garageWidth   = 60
	carWidth      = 70
	carHeight     = 32
	mailboxWidth  = 12
	mailboxHeight = 30
)

// SceneryGenerator streams decorations along the horizon, scrolling at a
// fraction of the road speed.
type SceneryGenerator struct {
	items     []Scenery
	rng       *rand.Rand
	rules     *Rules
	countdown float64 // World units of parallax travel until the next spawn
}

func newSceneryGenerator(r *Rules, seed int64, theme Theme) SceneryGenerator {
	g := SceneryGenerator{
		items: make([]Scenery, 0, 32),
		rng:   rand.New(rand.NewSource(seed)),
		rules: r,
	}

	// Line the horizon so the first frame is not empty, then wait until the
	// last of it has scrolled clear of the spawn point.
	w := r.cfg.World
	x := 0.0
	for x < w.Width {
		x += g.spawn(x, theme)
	}
	g.countdown = x - (w.Width + w.SpawnOffset)
	return g
}

// Items returns the live decorations. The slice is owned by the generator.
func (g *SceneryGenerator) Items() []Scenery {
	return g.items
}

// update scrolls decorations, drops those off-screen and spawns new ones.
func (g *SceneryGenerator) update(speed float64, theme Theme) {
	w := g.rules.cfg.World
	step := speed * g.rules.cfg.Scenery.Parallax

	live := g.items[:0]
	for _, s := range g.items {
		s.X -= step
		if s.X+s.W >= -w.DespawnMargin {
			live = append(live, s)
		}
	}
	g.items = live

	g.countdown -= step
	if g.countdown <= 0 {
		g.countdown = g.spawn(w.Width+w.SpawnOffset, theme)
	}
}

// spawn places a house cluster or a tree at x and returns the distance to
// wait before the next one.
func (g *SceneryGenerator) spawn(x float64, theme Theme) float64 {
	if g.rng.Float64() < g.rules.cfg.Scenery.HouseChance {
		return g.spawnHouse(x, theme) + 80 + g.rng.Float64()*160
	}
	return g.spawnTree(x, theme) + 40 + g.rng.Float64()*100
}

func (g *SceneryGenerator) spawnHouse(x float64, theme Theme) float64 {
	r := g.rng
	base := g.rules.cfg.World.LaneStartY

	w := 140 + r.Float64()*80
	h := 90 + r.Float64()*50
	garage := r.Float64() < 0.4
	g.items = append(g.items, Scenery{
		Kind:  SceneryHouse,
		X:     x,
		Y:     base - h,
		W:     w,
		H:     h,
		Color: pick(r, wallColors),
		Detail: SceneryDetail{
			Roof:      pick(r, roofColors),
			Door:      pick(r, doorColors),
			HasGarage: garage,
		},
	})
	width := w

	if garage {
		width += garageWidth
		if r.Float64() < g.rules.cfg.Scenery.CarChance {
			g.items = append(g.items, Scenery{
				Kind:  SceneryCar,
				X:     x + w - 5,
				Y:     base - carHeight,
				W:     carWidth,
				H:     carHeight,
				Color: pick(r, carColors),
			})
		}
	}

	g.items = append(g.items, Scenery{
		Kind:  SceneryMailbox,
		X:     x + width + 10,
		Y:     base - mailboxHeight,
		W:     mailboxWidth,
		H:     mailboxHeight,
		Color: theme.Scenery,
	})
	return width + 10 + mailboxWidth
}

func (g *SceneryGenerator) spawnTree(x float64, theme Theme) float64 {
	r := g.rng
	w := 40 + r.Float64()*30
	h := 70 + r.Float64()*60
	g.items = append(g.items, Scenery{
		Kind:  SceneryTree,
		X:     x,
		Y:     g.rules.cfg.World.LaneStartY - h,
		W:     w,
		H:     h,
		Color: theme.Details,
	})
	return w
}

func pick(r *rand.Rand, colors []core.Color) core.Color {
	return colors[r.Intn(len(colors))]
}
