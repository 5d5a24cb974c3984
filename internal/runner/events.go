package runner

import "github.com/vovakirdan/lane-runner/internal/core"

// EventKind identifies something the session layer may react to.
type EventKind int

const (
	EventLifeLost EventKind = iota
	EventCoinCollected
	EventObstacleHit
	EventObstacleDestroyed
	EventPauseRequested
)

func (k EventKind) String() string {
	switch k {
	case EventLifeLost:
		return "lifeLost"
	case EventCoinCollected:
		return "coinCollected"
	case EventObstacleHit:
		return "obstacleHit"
	case EventObstacleDestroyed:
		return "obstacleDestroyed"
	case EventPauseRequested:
		return "pauseRequested"
	default:
		return "unknown"
	}
}

// Event is emitted during a step. Pos is meaningful only when HasPos is set;
// Obstacle only for hit and destroyed events.
type Event struct {
	Kind     EventKind
	Pos      core.Vec
	HasPos   bool
	Obstacle ObstacleKind
}

func eventAt(kind EventKind, pos core.Vec) Event {
	return Event{Kind: kind, Pos: pos, HasPos: true}
}
