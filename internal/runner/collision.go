package runner

import (
	"github.com/vovakirdan/lane-runner/internal/core"
)

// CollisionEngine scrolls entities, resolves player overlaps and removes
// whatever was collected or has left the field.
type CollisionEngine struct {
	rules *Rules
}

// PlayerHitbox returns the forgiving collision box for a player.
func (c CollisionEngine) PlayerHitbox(p *Player) core.Rect {
	w, col := c.rules.cfg.World, c.rules.cfg.Collision
	return p.Box(w.PlayerX, w.PlayerWidth, w.PlayerHeight).
		Inset(col.PlayerInsetLeft, col.PlayerInsetRight, col.PlayerInsetTop, col.PlayerInsetBottom)
}

// Hitbox returns the forgiving collision box for an entity.
func (c CollisionEngine) Hitbox(e Entity) core.Rect {
	in := c.rules.cfg.Collision.EntityInset
	return e.body().Box().Inset(in, in, in, in)
}

// resolve processes every live entity exactly once. Removal is deferred to
// a compaction pass so no entity is visited twice or skipped.
func (c CollisionEngine) resolve(entities []Entity, p *Player, theme Theme, fx *ParticleSystem, events []Event) ([]Entity, []Event) {
	player := c.PlayerHitbox(p)
	margin := c.rules.cfg.World.DespawnMargin
	window := c.rules.cfg.Collision.Invincibility

	removed := make([]bool, len(entities))
	for i, e := range entities {
		b := e.body()
		b.X -= p.Speed

		switch e := e.(type) {
		case *Coin:
			if player.Intersects(c.Hitbox(e)) {
				p.Coins++
				at := core.Vec{X: b.X + b.W/2, Y: b.Y}
				fx.Sparkle(at)
				events = append(events, eventAt(EventCoinCollected, at))
				removed[i] = true
				continue
			}

		case *Obstacle:
			if e.Kind == ObstacleBarrier {
				b.Color = theme.Obstacle
			}
			if e.Destroyed || !player.Intersects(c.Hitbox(e)) {
				break
			}
			at := core.Vec{X: b.X + b.W/2, Y: b.Y}
			if e.Kind.Destructible() {
				e.Destroyed = true
				fx.Debris(at, c.rules.debrisColor(e.Kind))
				ev := eventAt(EventObstacleDestroyed, at)
				ev.Obstacle = e.Kind
				events = append(events, ev)
			}
			if p.takeDamage(window) {
				hit := eventAt(EventObstacleHit, at)
				hit.Obstacle = e.Kind
				events = append(events, hit, eventAt(EventLifeLost, at))
			}
		}

		if b.X < -margin {
			removed[i] = true
		}
	}

	live := entities[:0]
	for i, e := range entities {
		if !removed[i] {
			live = append(live, e)
		}
	}
	// Release references held past the new length.
	for i := len(live); i < len(entities); i++ {
		entities[i] = nil
	}
	return live, events
}
