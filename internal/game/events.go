package game

import (
	"github.com/refexa/darkmatter/internal/collision"
	"github.com/refexa/darkmatter/internal/entity"
)

// EventKind names one observable simulation event.
type EventKind int

const (
	// EventShipHit fires when the ship takes damage from any source.
	EventShipHit EventKind = iota
	// EventDepletion fires once per dark matter cycle when the pool hits zero.
	EventDepletion
	// EventEntityDestroyed fires when a hazard or projectile is removed by combat.
	EventEntityDestroyed
	// EventPickup fires when the ship collects a bottle.
	EventPickup
	// EventFireRejected fires when a shot is refused for lack of dark matter.
	EventFireRejected
	// EventLevelWon fires on the tick the finish line is crossed funded.
	EventLevelWon
	// EventLevelLost fires on the tick a hit lands with both pools empty.
	EventLevelLost
)

func (k EventKind) String() string {
	switch k {
	case EventShipHit:
		return "ship_hit"
	case EventDepletion:
		return "depletion"
	case EventEntityDestroyed:
		return "entity_destroyed"
	case EventPickup:
		return "pickup"
	case EventFireRejected:
		return "fire_rejected"
	case EventLevelWon:
		return "level_won"
	case EventLevelLost:
		return "level_lost"
	}
	return "unknown"
}

// Event is one simulation event from the most recent tick.
type Event struct {
	Kind   EventKind
	Entity entity.ID
	Role   entity.Role
	Amount float64
}

// translate appends game events derived from one resolved contact.
func (g *Game) translate(ev collision.Event) {
	other := ev.Object
	role := ev.ObjectRole

	switch ev.Effect {
	case collision.EffectShipHazard, collision.EffectShipEnemyProjectile, collision.EffectShipWall:
		paid := ev.Outcome.Absorbed + ev.Outcome.Drained + ev.Outcome.Unpaid
		g.emit(Event{Kind: EventShipHit, Entity: other, Role: role, Amount: paid})
		if ev.Outcome.Depleted {
			g.emit(Event{Kind: EventDepletion})
		}
	case collision.EffectShipBluePickup, collision.EffectShipRedPickup:
		g.emit(Event{Kind: EventPickup, Entity: other, Role: role, Amount: ev.Amount})
		if ev.Depleted {
			g.emit(Event{Kind: EventDepletion})
		}
	}
	if ev.Destroyed && role.IsHazard() {
		g.emit(Event{Kind: EventEntityDestroyed, Entity: other, Role: role})
	}
}

func (g *Game) emit(ev Event) {
	g.events = append(g.events, ev)
}
