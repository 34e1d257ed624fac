package collision

import (
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/ledger"
)

// Event records one applied contact effect for the game layer.
type Event struct {
	Effect      Effect
	Subject     entity.ID // The ship or the projectile
	Object      entity.ID // The other party
	ObjectRole  entity.Role
	SubjectRole entity.Role

	// Ship damage accounting, valid for the ship-damaging effects.
	Outcome ledger.DamageOutcome

	// Resource transfer for pickups: the amount actually moved.
	Amount   float64
	Depleted bool

	// Destroyed reports that the object was despawned by this event.
	Destroyed bool
}

// Resolver applies table effects to overlapping pairs. Entities consumed by
// an earlier pair in the same tick are skipped, so a projectile overlapping
// two targets at once spends itself on exactly one of them.
type Resolver struct {
	table *Table

	// Hazard roles that are destroyed by ramming the ship.
	destructible map[entity.Role]bool
}

// NewResolver builds a resolver over the given table. destructible lists
// hazard roles removed on ship contact; nil means no hazard is.
func NewResolver(table *Table, destructible map[entity.Role]bool) (*Resolver, error) {
	if err := table.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{table: table, destructible: destructible}, nil
}

// Resolve walks the sorted pair list and applies each effect against the
// registry and the ledger. Pairs whose members were despawned by an earlier
// effect this tick resolve to nothing.
func (r *Resolver) Resolve(pairs []entity.Pair, reg *entity.Registry, led *ledger.Ledger) ([]Event, error) {
	var events []Event
	for _, pair := range pairs {
		a, b := reg.Get(pair.A), reg.Get(pair.B)
		if a == nil || b == nil {
			continue
		}
		ev, applied, err := r.apply(a, b, reg, led)
		if err != nil {
			return events, err
		}
		if applied {
			events = append(events, ev)
		}
	}
	return events, nil
}

func (r *Resolver) apply(a, b *entity.Entity, reg *entity.Registry, led *ledger.Ledger) (Event, bool, error) {
	effect := r.table.Lookup(a.Role, b.Role)
	if effect == EffectNone {
		return Event{}, false, nil
	}

	subject, object := orient(effect, a, b)
	ev := Event{
		Effect:      effect,
		Subject:     subject.ID,
		Object:      object.ID,
		SubjectRole: subject.Role,
		ObjectRole:  object.Role,
	}

	switch effect {
	case EffectShipHazard:
		out, err := led.ApplyShipDamage(object.Damage)
		if err != nil {
			return ev, false, err
		}
		ev.Outcome = out
		if r.destructible[object.Role] {
			reg.Despawn(object.ID)
			ev.Destroyed = true
		}

	case EffectShipEnemyProjectile:
		out, err := led.ApplyShipDamage(object.Damage)
		if err != nil {
			return ev, false, err
		}
		ev.Outcome = out
		reg.Despawn(object.ID)
		ev.Destroyed = true

	case EffectShipBluePickup:
		if err := led.Credit(object.Amount); err != nil {
			return ev, false, err
		}
		ev.Amount = object.Amount
		reg.Despawn(object.ID)
		ev.Destroyed = true

	case EffectShipRedPickup:
		removed, depleted, err := led.Debit(object.Amount)
		if err != nil {
			return ev, false, err
		}
		ev.Amount = removed
		ev.Depleted = depleted
		reg.Despawn(object.ID)
		ev.Destroyed = true

	case EffectShipWall:
		out, err := led.ApplyShipDamage(object.Damage)
		if err != nil {
			return ev, false, err
		}
		ev.Outcome = out
		pushOut(subject, object)

	case EffectHazardFriendlyProjectile:
		object.Health -= subject.Damage
		reg.Despawn(subject.ID)
		if object.Health <= 0 {
			reg.Despawn(object.ID)
			ev.Destroyed = true
		}

	case EffectProjectileWall:
		reg.Despawn(subject.ID)
	}

	return ev, true, nil
}

// orient picks the subject for an effect: the ship for ship effects, the
// projectile otherwise.
func orient(effect Effect, a, b *entity.Entity) (subject, object *entity.Entity) {
	switch effect {
	case EffectShipHazard, EffectShipEnemyProjectile, EffectShipBluePickup,
		EffectShipRedPickup, EffectShipWall:
		if a.Role == entity.RoleShip {
			return a, b
		}
		return b, a
	default:
		if a.Role.IsProjectile() {
			return a, b
		}
		return b, a
	}
}

// pushOut moves the ship to the nearest point outside the wall rectangle.
// Penetration is resolved along the single axis with the smallest overlap,
// so walls feel solid without trapping the ship in a corner.
func pushOut(ship, wall *entity.Entity) {
	rect := wall.Hitbox.Rect(wall.Pos)
	radius := ship.Hitbox.Radius

	left := ship.Pos.X + radius - rect.X
	right := rect.Right() - (ship.Pos.X - radius)
	up := ship.Pos.Y + radius - rect.Y
	down := rect.Bottom() - (ship.Pos.Y - radius)

	best := left
	dx, dy := -left, 0.0
	if right < best {
		best, dx, dy = right, right, 0
	}
	if up < best {
		best, dx, dy = up, 0, -up
	}
	if down < best {
		dx, dy = 0, down
	}
	ship.Pos = ship.Pos.Add(core.V(dx, dy))
}
