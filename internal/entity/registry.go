package entity

import (
	"sort"
)

// Pair is an unordered overlapping entity pair, stored with A < B so the
// resolver's application order is stable and reproducible.
type Pair struct {
	A, B ID
}

// Registry exclusively owns entity records. An entity whose alive flag is
// cleared stops participating in queries immediately and its record is
// removed by Sweep before the next tick begins; despawn is idempotent and
// there is no resurrection.
type Registry struct {
	nextID   ID
	ordered  []*Entity // Spawn order, which equals ID order
	index    map[ID]*Entity
	shipID   ID
	hasShip  bool
	deadDirt bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		nextID: 1,
		index:  make(map[ID]*Entity),
	}
}

// Spawn adds an entity from the spec and returns its id.
func (r *Registry) Spawn(spec Spec) ID {
	e := &Entity{
		ID:            r.nextID,
		Role:          spec.Role,
		Pos:           spec.Pos,
		Vel:           spec.Vel,
		Hitbox:        spec.Hitbox,
		Alive:         true,
		Owner:         spec.Owner,
		Damage:        spec.Damage,
		Amount:        spec.Amount,
		Health:        spec.Health,
		FireInterval:  spec.FireInterval,
		FireCountdown: spec.FireInterval,
		Projectile:    spec.Projectile,
		Pattern:       spec.Pattern,
		PatternOrigin: spec.Pos.Y,
	}
	r.nextID++
	r.ordered = append(r.ordered, e)
	r.index[e.ID] = e
	if e.Role == RoleShip {
		r.shipID = e.ID
		r.hasShip = true
	}
	return e.ID
}

// Despawn clears the alive flag. Despawning an unknown or already-dead id
// is a no-op, not an error.
func (r *Registry) Despawn(id ID) {
	e, ok := r.index[id]
	if !ok || !e.Alive {
		return
	}
	e.Alive = false
	r.deadDirt = true
	if e.Role == RoleShip && r.shipID == id {
		r.hasShip = false
	}
}

// Get returns the live entity with the given id, or nil if it does not
// exist or is no longer alive.
func (r *Registry) Get(id ID) *Entity {
	e, ok := r.index[id]
	if !ok || !e.Alive {
		return nil
	}
	return e
}

// Ship returns the single ship entity, or nil if it has been destroyed.
func (r *Registry) Ship() *Entity {
	if !r.hasShip {
		return nil
	}
	return r.Get(r.shipID)
}

// ForEachAlive visits every live entity in spawn order. The predicate may
// be nil to visit all.
func (r *Registry) ForEachAlive(pred func(*Entity) bool, fn func(*Entity)) {
	for _, e := range r.ordered {
		if !e.Alive {
			continue
		}
		if pred != nil && !pred(e) {
			continue
		}
		fn(e)
	}
}

// AliveCount returns the number of live entities.
func (r *Registry) AliveCount() int {
	n := 0
	for _, e := range r.ordered {
		if e.Alive {
			n++
		}
	}
	return n
}

// Advance moves every live entity by its velocity: pos += vel * dt.
// Runs before collision queries each tick.
func (r *Registry) Advance(dt float64) {
	for _, e := range r.ordered {
		if !e.Alive {
			continue
		}
		e.Pos = e.Pos.Add(e.Vel.Scale(dt))
	}
}

// CullOutOfBounds despawns entities behind the camera or beyond the
// forward margin to bound memory. The ship is exempt: it is clamped, not
// culled. Walls are static level geometry and go only once their full
// extent is behind the margin; the camera never scrolls back to them.
func (r *Registry) CullOutOfBounds(minX, maxX float64) {
	for _, e := range r.ordered {
		if !e.Alive || e.Role == RoleShip {
			continue
		}
		if e.Role == RoleWall {
			if e.Pos.X+e.Hitbox.W/2 < minX {
				r.Despawn(e.ID)
			}
			continue
		}
		if e.Pos.X < minX || e.Pos.X > maxX {
			r.Despawn(e.ID)
		}
	}
}

// Sweep removes dead records. Called at the end of every tick so a dead
// entity never participates in the next tick's queries.
func (r *Registry) Sweep() {
	if !r.deadDirt {
		return
	}
	kept := r.ordered[:0]
	for _, e := range r.ordered {
		if e.Alive {
			kept = append(kept, e)
		} else {
			delete(r.index, e.ID)
		}
	}
	r.ordered = kept
	r.deadDirt = false
}

// QueryOverlaps returns every unordered pair of live entities whose
// hitboxes intersect, sorted by (lower id, higher id). Detection does not
// depend on registration order; the sort only fixes the tie-break order
// required for reproducible effect application.
func (r *Registry) QueryOverlaps() []Pair {
	var pairs []Pair
	n := len(r.ordered)
	for i := 0; i < n; i++ {
		a := r.ordered[i]
		if !a.Alive {
			continue
		}
		for j := i + 1; j < n; j++ {
			b := r.ordered[j]
			if !b.Alive {
				continue
			}
			// Static geometry never collides with itself.
			if a.Role == RoleWall && b.Role == RoleWall {
				continue
			}
			if Overlaps(a.Pos, a.Hitbox, b.Pos, b.Hitbox) {
				lo, hi := a.ID, b.ID
				if lo > hi {
					lo, hi = hi, lo
				}
				pairs = append(pairs, Pair{A: lo, B: hi})
			}
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].A != pairs[j].A {
			return pairs[i].A < pairs[j].A
		}
		return pairs[i].B < pairs[j].B
	})
	return pairs
}

// Clear removes every entity. Used on level restart.
func (r *Registry) Clear() {
	r.ordered = r.ordered[:0]
	r.index = make(map[ID]*Entity)
	r.hasShip = false
	r.deadDirt = false
}
