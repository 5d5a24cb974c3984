package runner

import (
	"math"
	"testing"

	"github.com/vovakirdan/lane-runner/internal/core"
)

// quietSim returns a simulation whose spawner never fires, so tests control
// every entity on the road.
func quietSim(t *testing.T) *Simulation {
	t.Helper()
	s := New(testRules(t), 1)
	s.HoldSpawns(math.Inf(1))
	return s
}

func countEvents(events []Event, kind EventKind) int {
	n := 0
	for _, e := range events {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

func obstacleAt(s *Simulation, x float64, lane Lane, kind ObstacleKind) *Obstacle {
	return s.PlaceObstacle(kind, lane, x)
}

func TestHitboxes(t *testing.T) {
	s := quietSim(t)
	p := s.Player()

	got := s.collision.PlayerHitbox(&p)
	want := core.NewRect(205, 475, 150, 50)
	if got != want {
		t.Errorf("PlayerHitbox = %+v, expected %+v", got, want)
	}

	coin := &Coin{Body: Body{X: 300, Y: 500, W: 50, H: 50}}
	if got := s.collision.Hitbox(coin); got != core.NewRect(315, 490, 20, 20) {
		t.Errorf("coin Hitbox = %+v", got)
	}
}

func TestCoinLineCollectedWithoutDamage(t *testing.T) {
	s := quietSim(t)
	s.spawner.out = s.entities
	s.spawner.coinLine(LaneMiddle, 7)
	s.entities = s.spawner.out

	var events []Event
	for i := 0; i < 600; i++ {
		events = append(events, s.Step(core.InputSnapshot{}).Events...)
	}

	if s.player.Coins != 7 {
		t.Errorf("Coins = %d, expected 7", s.player.Coins)
	}
	if n := countEvents(events, EventCoinCollected); n != 7 {
		t.Errorf("coin events = %d, expected 7", n)
	}
	if n := countEvents(events, EventLifeLost); n != 0 {
		t.Errorf("life lost events = %d, expected 0", n)
	}
	if len(s.entities) != 0 {
		t.Errorf("collected coins should be gone, %d entities left", len(s.entities))
	}
	for _, e := range events {
		if e.Kind == EventCoinCollected && !e.HasPos {
			t.Error("coin events should carry a position")
		}
	}
}

func TestCoinInOtherLaneIsMissed(t *testing.T) {
	s := quietSim(t)
	s.spawner.out = s.entities
	s.spawner.coinLine(LaneTop, 5)
	s.entities = s.spawner.out

	for i := 0; i < 600; i++ {
		s.Step(core.InputSnapshot{})
	}
	if s.player.Coins != 0 {
		t.Errorf("coins in another lane should be missed, got %d", s.player.Coins)
	}
}

func TestHardObstacleDamageWindow(t *testing.T) {
	s := quietSim(t)
	obstacleAt(s, 230, LaneMiddle, ObstacleCone)

	res := s.Step(core.InputSnapshot{})
	if n := countEvents(res.Events, EventLifeLost); n != 1 {
		t.Fatalf("first overlap: %d life lost events, expected 1", n)
	}
	if n := countEvents(res.Events, EventObstacleHit); n != 1 {
		t.Errorf("first overlap: %d hit events, expected 1", n)
	}
	if s.player.Invincible != 180 {
		t.Fatalf("Invincible = %d right after damage, expected 180", s.player.Invincible)
	}

	res = s.Step(core.InputSnapshot{})
	if n := countEvents(res.Events, EventLifeLost); n != 0 {
		t.Errorf("second overlapping tick produced %d life lost events", n)
	}
	if s.player.Invincible != 179 {
		t.Errorf("Invincible = %d, expected 179", s.player.Invincible)
	}
	if len(s.entities) != 1 {
		t.Error("hard obstacles stay on the road after a hit")
	}
}

func TestDestructibleObstacle(t *testing.T) {
	s := quietSim(t)
	crate := obstacleAt(s, 230, LaneMiddle, ObstacleCrate)
	s.player.Invincible = 50

	res := s.Step(core.InputSnapshot{})
	if !crate.Destroyed {
		t.Fatal("crate should be destroyed on impact")
	}
	if n := countEvents(res.Events, EventObstacleDestroyed); n != 1 {
		t.Errorf("destroyed events = %d, expected 1", n)
	}
	if n := countEvents(res.Events, EventLifeLost); n != 0 {
		t.Error("no damage while invincible")
	}
	if len(s.particles.Particles()) < 8 {
		t.Errorf("expected a debris burst, got %d particles", len(s.particles.Particles()))
	}

	// Still overlapping once invincibility runs out: destroyed means inert.
	s.player.Invincible = 0
	for i := 0; i < 5; i++ {
		res = s.Step(core.InputSnapshot{})
		if len(res.Events) != 0 {
			t.Fatalf("destroyed crate produced events: %+v", res.Events)
		}
	}
	if len(s.entities) != 1 {
		t.Error("destroyed obstacles stay until they scroll off")
	}
}

func TestDestructibleHitAlsoDamages(t *testing.T) {
	s := quietSim(t)
	obstacleAt(s, 230, LaneMiddle, ObstacleBarrel)

	res := s.Step(core.InputSnapshot{})
	if countEvents(res.Events, EventObstacleDestroyed) != 1 || countEvents(res.Events, EventLifeLost) != 1 {
		t.Errorf("barrel hit without invincibility should destroy and damage, got %+v", res.Events)
	}
	for _, e := range res.Events {
		if e.Kind == EventObstacleDestroyed && e.Obstacle != ObstacleBarrel {
			t.Errorf("destroyed event kind = %s", e.Obstacle)
		}
	}
}

func TestTwoObstaclesOneDamage(t *testing.T) {
	s := quietSim(t)
	obstacleAt(s, 230, LaneMiddle, ObstacleCone)
	obstacleAt(s, 260, LaneMiddle, ObstacleRock)

	res := s.Step(core.InputSnapshot{})
	if n := countEvents(res.Events, EventLifeLost); n != 1 {
		t.Errorf("simultaneous overlaps should cost one life, got %d", n)
	}
}

func TestEntitiesScrollAndDespawn(t *testing.T) {
	s := quietSim(t)
	far := obstacleAt(s, -150, LaneTop, ObstacleCone)
	obstacleAt(s, -199, LaneTop, ObstacleCone)

	s.Step(core.InputSnapshot{})
	speed := s.player.Speed
	if math.Abs(far.X-(-150-speed)) > 1e-9 {
		t.Errorf("entity should scroll by the player speed, x = %v", far.X)
	}
	if len(s.entities) != 1 || s.entities[0] != Entity(far) {
		t.Errorf("entity past the margin should be removed, %d left", len(s.entities))
	}
}

func TestBarrierTracksTheme(t *testing.T) {
	s := quietSim(t)
	barrier := obstacleAt(s, 1000, LaneTop, ObstacleBarrier)
	cone := obstacleAt(s, 1100, LaneTop, ObstacleCone)
	spawnColor := cone.Color

	// Jump into the next stage so the palette starts drifting.
	s.player.Distance = s.rules.cfg.StageLength
	for i := 0; i < 20; i++ {
		s.Step(core.InputSnapshot{})
	}

	if barrier.Color != s.Theme().Obstacle {
		t.Error("barrier should be re-tinted to the blended obstacle color")
	}
	if cone.Color != spawnColor {
		t.Error("cone should keep its spawn color")
	}
	if barrier.Color == spawnColor {
		t.Error("theme should have drifted")
	}
}
