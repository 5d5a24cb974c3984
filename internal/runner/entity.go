package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// Lane is one of the three horizontal tracks.
type Lane int

const (
	LaneTop Lane = iota
	LaneMiddle
	LaneBottom
)

// LaneCount is the number of lanes.
const LaneCount = 3

// Valid reports whether l is one of the three lanes.
func (l Lane) Valid() bool {
	return l >= LaneTop && l <= LaneBottom
}

func (l Lane) String() string {
	switch l {
	case LaneTop:
		return "top"
	case LaneMiddle:
		return "middle"
	case LaneBottom:
		return "bottom"
	default:
		return "invalid"
	}
}

// ObstacleKind is the obstacle subtype.
type ObstacleKind int

const (
	ObstacleCone ObstacleKind = iota
	ObstacleBarrier
	ObstacleRock
	ObstacleCrate
	ObstacleBarrel
)

var obstacleKinds = []ObstacleKind{ObstacleCone, ObstacleBarrier, ObstacleRock, ObstacleCrate, ObstacleBarrel}

func (k ObstacleKind) String() string {
	switch k {
	case ObstacleCone:
		return "cone"
	case ObstacleBarrier:
		return "barrier"
	case ObstacleRock:
		return "rock"
	case ObstacleCrate:
		return "crate"
	case ObstacleBarrel:
		return "barrel"
	default:
		return "unknown"
	}
}

// Destructible reports whether the obstacle breaks when hit.
func (k ObstacleKind) Destructible() bool {
	return k == ObstacleCrate || k == ObstacleBarrel
}

// Body is the geometry shared by every spawned entity.
// X is the left edge and Y the vertical center, both in world units.
type Body struct {
	X, Y  float64
	W, H  float64
	Lane  Lane
	Color core.Color
}

// Box returns the nominal bounding box.
func (b Body) Box() core.Rect {
	return core.NewRect(b.X, b.Y-b.H/2, b.W, b.H)
}

// Coin is a collectible. It is removed the tick it is collected.
type Coin struct {
	Body
}

// Obstacle blocks a lane. Destructible kinds are flagged Destroyed on impact
// and stay in the list, inert, until they scroll off.
type Obstacle struct {
	Body
	Kind      ObstacleKind
	Destroyed bool
}

// Entity is either a *Coin or an *Obstacle.
type Entity interface {
	body() *Body
}

func (c *Coin) body() *Body     { return &c.Body }
func (o *Obstacle) body() *Body { return &o.Body }
