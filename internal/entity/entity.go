// Package entity owns the set of live simulation entities and their
// spatial and kinematic state. Entities are tagged-variant records: a role
// enum plus role-specific payload fields, dispatched by the collision
// resolver through a data-driven interaction table rather than by virtual
// calls.
package entity

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/core"
)

// ID uniquely identifies an entity within one registry. IDs are dense and
// monotonic; the deterministic overlap sort relies on that.
type ID int64

// Role tags what an entity is. The interaction table is keyed by role pairs
// and must be exhaustive over all declared roles.
type Role int

const (
	RoleShip Role = iota

	// Hazards
	RoleDroid
	RoleRefexa
	RoleGummbumm
	RoleGoat
	RoleAntimatterJet
	RoleSnakeSegment

	// Pickups
	RoleBlueBottle // Credits dark matter (BKB)
	RoleRedBottle  // Debits dark matter (RKB)

	// Projectiles
	RoleFriendlyBullet
	RoleFriendlyLaser
	RoleEnemyBullet
	RoleEnemyLaser

	RoleWall

	roleCount
)

// AllRoles lists every declared role, in enum order.
func AllRoles() []Role {
	roles := make([]Role, 0, roleCount)
	for r := Role(0); r < roleCount; r++ {
		roles = append(roles, r)
	}
	return roles
}

// RoleCount returns the number of declared roles.
func RoleCount() int { return int(roleCount) }

var roleNames = map[Role]string{
	RoleShip:           "ship",
	RoleDroid:          "droid",
	RoleRefexa:         "refexa",
	RoleGummbumm:       "gummbumm",
	RoleGoat:           "goat",
	RoleAntimatterJet:  "antimatter_jet",
	RoleSnakeSegment:   "snake_segment",
	RoleBlueBottle:     "blue_bottle",
	RoleRedBottle:      "red_bottle",
	RoleFriendlyBullet: "friendly_bullet",
	RoleFriendlyLaser:  "friendly_laser",
	RoleEnemyBullet:    "enemy_bullet",
	RoleEnemyLaser:     "enemy_laser",
	RoleWall:           "wall",
}

// String returns the config-file spelling of the role.
func (r Role) String() string {
	if name, ok := roleNames[r]; ok {
		return name
	}
	return fmt.Sprintf("role(%d)", int(r))
}

// ParseRole maps a config-file spelling back to a role.
func ParseRole(name string) (Role, bool) {
	for r, n := range roleNames {
		if n == name {
			return r, true
		}
	}
	return 0, false
}

// IsHazard reports whether the role is an enemy hazard.
func (r Role) IsHazard() bool {
	switch r {
	case RoleDroid, RoleRefexa, RoleGummbumm, RoleGoat, RoleAntimatterJet, RoleSnakeSegment:
		return true
	}
	return false
}

// IsPickup reports whether the role is a floating pickup.
func (r Role) IsPickup() bool {
	return r == RoleBlueBottle || r == RoleRedBottle
}

// IsProjectile reports whether the role is any projectile.
func (r Role) IsProjectile() bool {
	return r.IsFriendlyProjectile() || r.IsEnemyProjectile()
}

// IsFriendlyProjectile reports whether the role is a ship-fired projectile.
func (r Role) IsFriendlyProjectile() bool {
	return r == RoleFriendlyBullet || r == RoleFriendlyLaser
}

// IsEnemyProjectile reports whether the role is a hazard-fired projectile.
func (r Role) IsEnemyProjectile() bool {
	return r == RoleEnemyBullet || r == RoleEnemyLaser
}

// HitboxKind selects the hitbox shape.
type HitboxKind int

const (
	HitboxCircle HitboxKind = iota
	HitboxRect
)

// Hitbox is a circular or axis-aligned rectangular collision shape,
// centered on the entity position.
type Hitbox struct {
	Kind   HitboxKind
	Radius float64 // Circle
	W, H   float64 // Rect
}

// CircleBox returns a circular hitbox.
func CircleBox(radius float64) Hitbox {
	return Hitbox{Kind: HitboxCircle, Radius: radius}
}

// RectBox returns a rectangular hitbox.
func RectBox(w, h float64) Hitbox {
	return Hitbox{Kind: HitboxRect, W: w, H: h}
}

// Rect returns the hitbox as a world-space rectangle centered at pos.
func (h Hitbox) Rect(pos core.Vec2) core.Rect {
	if h.Kind == HitboxCircle {
		return core.NewRect(pos.X-h.Radius, pos.Y-h.Radius, 2*h.Radius, 2*h.Radius)
	}
	return core.NewRect(pos.X-h.W/2, pos.Y-h.H/2, h.W, h.H)
}

// Overlaps reports whether two hitboxes at the given positions intersect.
func Overlaps(aPos core.Vec2, a Hitbox, bPos core.Vec2, b Hitbox) bool {
	switch {
	case a.Kind == HitboxCircle && b.Kind == HitboxCircle:
		return core.CirclesOverlap(aPos, a.Radius, bPos, b.Radius)
	case a.Kind == HitboxCircle:
		return core.CircleRectOverlap(aPos, a.Radius, b.Rect(bPos))
	case b.Kind == HitboxCircle:
		return core.CircleRectOverlap(bPos, b.Radius, a.Rect(aPos))
	default:
		return a.Rect(aPos).Intersects(b.Rect(bPos))
	}
}

// Pattern selects a hazard movement behavior.
type Pattern int

const (
	PatternNone  Pattern = iota
	PatternDrift         // Constant velocity
	PatternWeave         // Sine sweep on the vertical axis
	PatternChase         // Homes toward the ship's vertical position
)

// ParsePattern maps a config-file spelling to a pattern.
func ParsePattern(name string) (Pattern, bool) {
	switch name {
	case "", "none":
		return PatternNone, true
	case "drift":
		return PatternDrift, true
	case "weave":
		return PatternWeave, true
	case "chase":
		return PatternChase, true
	}
	return PatternNone, false
}

// Entity is one live simulation record. Role-specific payload fields are
// meaningful only for the matching role class and zero otherwise.
type Entity struct {
	ID     ID
	Role   Role
	Pos    core.Vec2
	Vel    core.Vec2
	Hitbox Hitbox
	Alive  bool

	// Projectile payload
	Owner  ID
	Damage float64 // Also: hazard contact damage

	// Pickup payload
	Amount float64 // Restore (blue) or drain (red)

	// Hazard payload
	Health        float64
	FireInterval  float64
	FireCountdown float64
	Projectile    Role // What the hazard fires
	Pattern       Pattern
	PatternPhase  float64
	PatternOrigin float64 // Anchor row for weave
	Activated     bool    // Hazards act only once inside the view
}

// Spec describes an entity to spawn. The registry assigns the ID and sets
// the alive flag.
type Spec struct {
	Role   Role
	Pos    core.Vec2
	Vel    core.Vec2
	Hitbox Hitbox

	Owner        ID
	Damage       float64
	Amount       float64
	Health       float64
	FireInterval float64
	Projectile   Role
	Pattern      Pattern
}
