package entity

import (
	"testing"

	"github.com/refexa/darkmatter/internal/core"
)

func TestSpawnAssignsMonotonicIDs(t *testing.T) {
	r := NewRegistry()

	id1 := r.Spawn(Spec{Role: RoleDroid, Hitbox: CircleBox(5)})
	id2 := r.Spawn(Spec{Role: RoleDroid, Hitbox: CircleBox(5)})
	id3 := r.Spawn(Spec{Role: RoleBlueBottle, Hitbox: CircleBox(5)})

	if !(id1 < id2 && id2 < id3) {
		t.Errorf("ids not monotonic: %d %d %d", id1, id2, id3)
	}
}

func TestDespawnIdempotent(t *testing.T) {
	r := NewRegistry()
	id := r.Spawn(Spec{Role: RoleDroid, Hitbox: CircleBox(5)})

	r.Despawn(id)
	if r.Get(id) != nil {
		t.Fatal("despawned entity still visible")
	}

	// Double despawn and unknown id are no-ops.
	r.Despawn(id)
	r.Despawn(ID(9999))

	if r.AliveCount() != 0 {
		t.Errorf("alive count = %d, want 0", r.AliveCount())
	}
}

func TestDeadEntityRemovedBySweep(t *testing.T) {
	r := NewRegistry()
	id := r.Spawn(Spec{Role: RoleDroid, Hitbox: CircleBox(5)})
	keep := r.Spawn(Spec{Role: RoleRefexa, Hitbox: CircleBox(5)})

	r.Despawn(id)
	r.Sweep()

	if len(r.ordered) != 1 || r.ordered[0].ID != keep {
		t.Errorf("sweep kept wrong records: %d entries", len(r.ordered))
	}
	if _, ok := r.index[id]; ok {
		t.Error("sweep left dead id in index")
	}
}

func TestAdvanceMovesAliveOnly(t *testing.T) {
	r := NewRegistry()
	moving := r.Spawn(Spec{Role: RoleEnemyBullet, Pos: core.V(0, 0), Vel: core.V(10, -4), Hitbox: CircleBox(2)})
	dead := r.Spawn(Spec{Role: RoleEnemyBullet, Pos: core.V(0, 0), Vel: core.V(10, 0), Hitbox: CircleBox(2)})
	r.Despawn(dead)

	r.Advance(0.5)

	e := r.Get(moving)
	if e.Pos.X != 5 || e.Pos.Y != -2 {
		t.Errorf("pos = %+v, want (5, -2)", e.Pos)
	}
}

func TestQueryOverlapsSortedAndOrderIndependent(t *testing.T) {
	// Build two registries with the same entities in different spawn
	// orders and check the overlap sets match after id normalization.
	mk := func(order []core.Vec2) map[[2]core.Vec2]bool {
		r := NewRegistry()
		for _, p := range order {
			r.Spawn(Spec{Role: RoleDroid, Pos: p, Hitbox: CircleBox(10)})
		}
		set := make(map[[2]core.Vec2]bool)
		for _, pair := range r.QueryOverlaps() {
			a, b := r.Get(pair.A), r.Get(pair.B)
			set[[2]core.Vec2{a.Pos, b.Pos}] = true
			set[[2]core.Vec2{b.Pos, a.Pos}] = true
		}
		return set
	}

	p1, p2, p3 := core.V(0, 0), core.V(5, 0), core.V(100, 0)
	set1 := mk([]core.Vec2{p1, p2, p3})
	set2 := mk([]core.Vec2{p3, p2, p1})

	if len(set1) != len(set2) {
		t.Fatalf("overlap sets differ in size: %d vs %d", len(set1), len(set2))
	}
	for k := range set1 {
		if !set2[k] {
			t.Errorf("pair %v missing from reordered registry", k)
		}
	}
}

func TestQueryOverlapsPairOrdering(t *testing.T) {
	r := NewRegistry()
	// Three mutually overlapping circles.
	r.Spawn(Spec{Role: RoleDroid, Pos: core.V(0, 0), Hitbox: CircleBox(10)})
	r.Spawn(Spec{Role: RoleDroid, Pos: core.V(1, 0), Hitbox: CircleBox(10)})
	r.Spawn(Spec{Role: RoleDroid, Pos: core.V(2, 0), Hitbox: CircleBox(10)})

	pairs := r.QueryOverlaps()
	if len(pairs) != 3 {
		t.Fatalf("pair count = %d, want 3", len(pairs))
	}
	for i, p := range pairs {
		if p.A >= p.B {
			t.Errorf("pair %d not normalized: %v", i, p)
		}
		if i > 0 {
			prev := pairs[i-1]
			if p.A < prev.A || (p.A == prev.A && p.B < prev.B) {
				t.Errorf("pairs not sorted at %d: %v after %v", i, p, prev)
			}
		}
	}
}

func TestDeadEntitiesExcludedFromQueries(t *testing.T) {
	r := NewRegistry()
	a := r.Spawn(Spec{Role: RoleDroid, Pos: core.V(0, 0), Hitbox: CircleBox(10)})
	r.Spawn(Spec{Role: RoleDroid, Pos: core.V(5, 0), Hitbox: CircleBox(10)})

	r.Despawn(a)
	if pairs := r.QueryOverlaps(); len(pairs) != 0 {
		t.Errorf("dead entity appeared in overlap query: %v", pairs)
	}
}

func TestCullOutOfBounds(t *testing.T) {
	r := NewRegistry()
	ship := r.Spawn(Spec{Role: RoleShip, Pos: core.V(-500, 0), Hitbox: CircleBox(10)})
	wallGone := r.Spawn(Spec{Role: RoleWall, Pos: core.V(-500, 0), Hitbox: RectBox(50, 10)})
	// Straddles the margin: center behind, right edge at x=20.
	wallEdge := r.Spawn(Spec{Role: RoleWall, Pos: core.V(-30, 0), Hitbox: RectBox(100, 10)})
	wallAhead := r.Spawn(Spec{Role: RoleWall, Pos: core.V(5000, 0), Hitbox: RectBox(50, 10)})
	behind := r.Spawn(Spec{Role: RoleDroid, Pos: core.V(-500, 0), Hitbox: CircleBox(10)})
	ahead := r.Spawn(Spec{Role: RoleEnemyBullet, Pos: core.V(5000, 0), Hitbox: CircleBox(2)})
	inside := r.Spawn(Spec{Role: RoleDroid, Pos: core.V(100, 0), Hitbox: CircleBox(10)})

	r.CullOutOfBounds(0, 1000)

	if r.Get(ship) == nil {
		t.Error("ship must never be culled")
	}
	if r.Get(wallGone) != nil {
		t.Error("wall fully behind the camera survived culling")
	}
	if r.Get(wallEdge) == nil {
		t.Error("wall straddling the rear margin was culled")
	}
	if r.Get(wallAhead) == nil {
		t.Error("wall ahead of the camera was culled before being reached")
	}
	if r.Get(behind) != nil {
		t.Error("entity behind the camera survived culling")
	}
	if r.Get(ahead) != nil {
		t.Error("entity beyond the forward margin survived culling")
	}
	if r.Get(inside) == nil {
		t.Error("in-bounds entity was culled")
	}
}

func TestCircleRectOverlap(t *testing.T) {
	wall := RectBox(100, 10)
	wallPos := core.V(50, 0)

	tests := []struct {
		name string
		pos  core.Vec2
		rad  float64
		want bool
	}{
		{"center hit", core.V(50, 0), 5, true},
		{"edge graze", core.V(50, 9), 5, true},
		{"clear above", core.V(50, 20), 5, false},
		{"corner hit", core.V(102, 7), 5, true},
		{"corner miss", core.V(106, 10), 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Overlaps(tc.pos, CircleBox(tc.rad), wallPos, wall)
			if got != tc.want {
				t.Errorf("Overlaps() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestParseRoleRoundTrip(t *testing.T) {
	for _, r := range AllRoles() {
		parsed, ok := ParseRole(r.String())
		if !ok || parsed != r {
			t.Errorf("ParseRole(%q) = %v, %v", r.String(), parsed, ok)
		}
	}
	if _, ok := ParseRole("grue"); ok {
		t.Error("ParseRole accepted an unknown role")
	}
}
