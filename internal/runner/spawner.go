package runner

import (
	"math/rand"
)

// Pattern is a pre-shaped cluster of coins and obstacles.
type Pattern int

const (
	PatternSingle   Pattern = iota // One obstacle in a random lane
	PatternCoinLine                // A row of coins in one lane
	PatternGate                    // Coins in one safe lane, obstacles in the others
	PatternSlalom                  // Coins that switch lanes, then an obstacle in the lane left behind
)

func (p Pattern) String() string {
	switch p {
	case PatternSingle:
		return "single"
	case PatternCoinLine:
		return "coinLine"
	case PatternGate:
		return "gate"
	case PatternSlalom:
		return "slalom"
	default:
		return "unknown"
	}
}

// Spawner places patterns ahead of the player once enough distance has
// been covered since the last one.
type Spawner struct {
	rng   *rand.Rand
	rules *Rules
	next  float64 // Distance at which the next pattern spawns

	// Per-spawn context
	out    []Entity
	theme  Theme
	weight []kindWeight
}

func newSpawner(r *Rules, seed int64) Spawner {
	return Spawner{
		rng:   rand.New(rand.NewSource(seed)),
		rules: r,
		next:  r.cfg.Spawner.SafeZone,
	}
}

// NextSpawn returns the distance that triggers the next pattern.
func (s *Spawner) NextSpawn() float64 {
	return s.next
}

// update appends a new pattern to entities if the gate is open.
// current colors new obstacles; stage picks the obstacle weight table.
func (s *Spawner) update(entities []Entity, distance float64, current Theme, stage string) []Entity {
	if distance < s.next {
		return entities
	}

	t := s.rules.cfg.Spawner.Thresholds
	roll := s.rng.Float64()
	pattern := PatternSlalom
	switch {
	case roll < t[0]:
		pattern = PatternSingle
	case roll < t[1]:
		pattern = PatternCoinLine
	case roll < t[2]:
		pattern = PatternGate
	}

	entities, length := s.spawn(entities, pattern, current, stage)
	s.next = distance + length + s.rules.cfg.Spawner.Gap
	return entities
}

// spawn emits one pattern and returns its horizontal length.
func (s *Spawner) spawn(entities []Entity, p Pattern, current Theme, stage string) ([]Entity, float64) {
	s.out = entities
	s.theme = current
	s.weight = s.rules.weights[stage]
	defer func() { s.out = nil }()

	sc := s.rules.cfg.Spawner
	var length float64

	switch p {
	case PatternSingle:
		s.obstacle(0, s.randomLane())
		length = sc.SingleLength

	case PatternCoinLine:
		lane := s.randomLane()
		count := sc.CoinLineMin + s.rng.Intn(sc.CoinLineMax-sc.CoinLineMin+1)
		length = s.coinLine(lane, count)

	case PatternGate:
		safe := s.randomLane()
		for l := LaneTop; l <= LaneBottom; l++ {
			if l == safe {
				s.coin(0, l)
				s.coin(sc.CoinSpacing, l)
				s.coin(2*sc.CoinSpacing, l)
			} else {
				s.obstacle(50, l)
			}
		}
		length = sc.GateLength

	case PatternSlalom:
		start := s.randomLane()
		s.coin(0, start)
		s.coin(80, start)

		next := LaneMiddle
		if start == LaneMiddle {
			next = LaneTop
			if s.rng.Float64() > 0.5 {
				next = LaneBottom
			}
		}
		s.coin(200, next)
		s.coin(280, next)

		s.obstacle(300, start)
		length = sc.SlalomLength
	}

	return s.out, length
}

// coinLine places count coins in a lane and returns the pattern length.
func (s *Spawner) coinLine(lane Lane, count int) float64 {
	spacing := s.rules.cfg.Spawner.CoinSpacing
	for i := 0; i < count; i++ {
		s.coin(float64(i)*spacing, lane)
	}
	return float64(count)*spacing + s.rules.cfg.Spawner.CoinLineTail
}

func (s *Spawner) randomLane() Lane {
	return Lane(s.rng.Intn(LaneCount))
}

func (s *Spawner) spawnX() float64 {
	w := s.rules.cfg.World
	return w.Width + w.SpawnOffset
}

func (s *Spawner) coin(offset float64, lane Lane) {
	size := s.rules.cfg.Spawner.CoinSize
	s.out = append(s.out, &Coin{Body: Body{
		X:     s.spawnX() + offset,
		Y:     s.rules.laneCenter(lane),
		W:     size,
		H:     size,
		Lane:  lane,
		Color: s.rules.coinColor,
	}})
}

func (s *Spawner) obstacle(offset float64, lane Lane) {
	size := s.rules.cfg.Spawner.ObstacleSize
	s.out = append(s.out, &Obstacle{
		Body: Body{
			X:     s.spawnX() + offset,
			Y:     s.rules.laneCenter(lane),
			W:     size,
			H:     size,
			Lane:  lane,
			Color: s.theme.Obstacle,
		},
		Kind: s.pickKind(),
	})
}

// pickKind draws an obstacle kind from the stage's weight table.
func (s *Spawner) pickKind() ObstacleKind {
	total := 0.0
	for _, kw := range s.weight {
		total += kw.weight
	}
	if total <= 0 {
		return ObstacleBarrier
	}

	roll := s.rng.Float64() * total
	for _, kw := range s.weight {
		if roll < kw.weight {
			return kw.kind
		}
		roll -= kw.weight
	}
	return s.weight[len(s.weight)-1].kind
}
