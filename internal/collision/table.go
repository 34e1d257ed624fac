// Package collision classifies and resolves entity overlaps. A declarative
// role-pair table decides what each contact means; the resolver applies the
// effects against the registry and the resource ledger in a deterministic
// order.
package collision

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/entity"
)

// Effect is the semantic meaning of one overlapping role pair.
type Effect int

const (
	// EffectNone marks a contact the simulation ignores.
	EffectNone Effect = iota
	// EffectShipHazard damages the ship by the hazard's contact damage.
	EffectShipHazard
	// EffectShipEnemyProjectile damages the ship and consumes the projectile.
	EffectShipEnemyProjectile
	// EffectShipBluePickup credits dark matter and consumes the pickup.
	EffectShipBluePickup
	// EffectShipRedPickup debits dark matter and consumes the pickup.
	EffectShipRedPickup
	// EffectShipWall damages the ship and pushes it out of the wall.
	EffectShipWall
	// EffectHazardFriendlyProjectile damages the hazard and consumes the
	// projectile.
	EffectHazardFriendlyProjectile
	// EffectProjectileWall consumes the projectile.
	EffectProjectileWall
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "none"
	case EffectShipHazard:
		return "ship_hazard"
	case EffectShipEnemyProjectile:
		return "ship_enemy_projectile"
	case EffectShipBluePickup:
		return "ship_blue_pickup"
	case EffectShipRedPickup:
		return "ship_red_pickup"
	case EffectShipWall:
		return "ship_wall"
	case EffectHazardFriendlyProjectile:
		return "hazard_friendly_projectile"
	case EffectProjectileWall:
		return "projectile_wall"
	}
	return "unknown"
}

// Table maps every unordered role pair to exactly one effect. Lookups are
// symmetric. The zero table is invalid; use NewTable.
type Table struct {
	effects  [][]Effect
	assigned [][]bool
}

// NewTable builds the full interaction table. Every role pair is assigned
// explicitly so Validate can prove exhaustiveness.
func NewTable() *Table {
	n := entity.RoleCount()
	t := &Table{
		effects:  make([][]Effect, n),
		assigned: make([][]bool, n),
	}
	for i := range t.effects {
		t.effects[i] = make([]Effect, n)
		t.assigned[i] = make([]bool, n)
	}

	roles := entity.AllRoles()
	for _, a := range roles {
		for _, b := range roles {
			t.set(a, b, classify(a, b))
		}
	}
	return t
}

// classify derives the effect for one role pair. Pair order does not matter.
func classify(a, b entity.Role) Effect {
	// Normalize so the ship, then projectiles, come first.
	if b == entity.RoleShip || (a != entity.RoleShip && b.IsProjectile() && !a.IsProjectile()) {
		a, b = b, a
	}

	switch {
	case a == entity.RoleShip && b.IsHazard():
		return EffectShipHazard
	case a == entity.RoleShip && b.IsEnemyProjectile():
		return EffectShipEnemyProjectile
	case a == entity.RoleShip && b == entity.RoleBlueBottle:
		return EffectShipBluePickup
	case a == entity.RoleShip && b == entity.RoleRedBottle:
		return EffectShipRedPickup
	case a == entity.RoleShip && b == entity.RoleWall:
		return EffectShipWall
	case a.IsFriendlyProjectile() && b.IsHazard():
		return EffectHazardFriendlyProjectile
	case a.IsProjectile() && b == entity.RoleWall:
		return EffectProjectileWall
	}
	return EffectNone
}

func (t *Table) set(a, b entity.Role, e Effect) {
	t.effects[a][b] = e
	t.effects[b][a] = e
	t.assigned[a][b] = true
	t.assigned[b][a] = true
}

// Lookup returns the effect for a role pair in either order.
func (t *Table) Lookup(a, b entity.Role) Effect {
	return t.effects[a][b]
}

// Validate reports the first role pair without an explicit assignment or a
// symmetry violation. A valid table classifies every pair.
func (t *Table) Validate() error {
	roles := entity.AllRoles()
	for _, a := range roles {
		for _, b := range roles {
			if !t.assigned[a][b] {
				return fmt.Errorf("collision: pair %s/%s has no table entry", a, b)
			}
			if t.effects[a][b] != t.effects[b][a] {
				return fmt.Errorf("collision: pair %s/%s is asymmetric", a, b)
			}
		}
	}
	return nil
}
