package collision

import (
	"testing"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/ledger"
)

func newLedger(t *testing.T, dm, shield float64) *ledger.Ledger {
	t.Helper()
	led, err := ledger.New(ledger.Config{
		DarkMatterMax:     100,
		DarkMatterInitial: dm,
		ShieldMax:         20,
		ShieldInitial:     shield,
	})
	if err != nil {
		t.Fatalf("ledger.New: %v", err)
	}
	return led
}

func newResolver(t *testing.T, destructible map[entity.Role]bool) *Resolver {
	t.Helper()
	r, err := NewResolver(NewTable(), destructible)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestTableExhaustive(t *testing.T) {
	if err := NewTable().Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestTableClassification(t *testing.T) {
	table := NewTable()

	tests := []struct {
		a, b entity.Role
		want Effect
	}{
		{entity.RoleShip, entity.RoleDroid, EffectShipHazard},
		{entity.RoleGoat, entity.RoleShip, EffectShipHazard},
		{entity.RoleShip, entity.RoleEnemyBullet, EffectShipEnemyProjectile},
		{entity.RoleEnemyLaser, entity.RoleShip, EffectShipEnemyProjectile},
		{entity.RoleShip, entity.RoleBlueBottle, EffectShipBluePickup},
		{entity.RoleShip, entity.RoleRedBottle, EffectShipRedPickup},
		{entity.RoleShip, entity.RoleWall, EffectShipWall},
		{entity.RoleFriendlyBullet, entity.RoleRefexa, EffectHazardFriendlyProjectile},
		{entity.RoleSnakeSegment, entity.RoleFriendlyLaser, EffectHazardFriendlyProjectile},
		{entity.RoleFriendlyBullet, entity.RoleWall, EffectProjectileWall},
		{entity.RoleWall, entity.RoleEnemyBullet, EffectProjectileWall},
		{entity.RoleShip, entity.RoleFriendlyBullet, EffectNone},
		{entity.RoleDroid, entity.RoleDroid, EffectNone},
		{entity.RoleBlueBottle, entity.RoleGummbumm, EffectNone},
		{entity.RoleEnemyBullet, entity.RoleFriendlyBullet, EffectNone},
	}

	for _, tc := range tests {
		if got := table.Lookup(tc.a, tc.b); got != tc.want {
			t.Errorf("Lookup(%s, %s) = %s, want %s", tc.a, tc.b, got, tc.want)
		}
		if got := table.Lookup(tc.b, tc.a); got != tc.want {
			t.Errorf("Lookup(%s, %s) = %s, want %s (symmetry)", tc.b, tc.a, got, tc.want)
		}
	}
}

func TestHazardContactDamagesShip(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, nil)

	reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})
	hazard := reg.Spawn(entity.Spec{Role: entity.RoleDroid, Pos: core.V(3, 0), Hitbox: entity.CircleBox(5), Damage: 8})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("event count = %d, want 1", len(events))
	}
	ev := events[0]
	if ev.Effect != EffectShipHazard || ev.Outcome.Absorbed != 8 {
		t.Errorf("event = %+v, want ship_hazard absorbing 8", ev)
	}
	if led.Shield() != 12 {
		t.Errorf("shield = %g, want 12", led.Shield())
	}
	if reg.Get(hazard) == nil {
		t.Error("non-destructible hazard removed by contact")
	}
}

func TestContactDestructibleHazard(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, map[entity.Role]bool{entity.RoleAntimatterJet: true})

	reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})
	jet := reg.Spawn(entity.Spec{Role: entity.RoleAntimatterJet, Pos: core.V(3, 0), Hitbox: entity.CircleBox(5), Damage: 3})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 || !events[0].Destroyed {
		t.Fatalf("events = %+v, want one destroying event", events)
	}
	if reg.Get(jet) != nil {
		t.Error("destructible hazard survived ship contact")
	}
}

func TestEnemyProjectileConsumedOnHit(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, nil)

	reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})
	shot := reg.Spawn(entity.Spec{Role: entity.RoleEnemyBullet, Pos: core.V(2, 0), Hitbox: entity.CircleBox(1), Damage: 4})

	if _, err := res.Resolve(reg.QueryOverlaps(), reg, led); err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if reg.Get(shot) != nil {
		t.Error("enemy projectile survived its hit")
	}
	if led.Shield() != 16 {
		t.Errorf("shield = %g, want 16", led.Shield())
	}
}

func TestPickups(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 50, 20)
	res := newResolver(t, nil)

	reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})
	blue := reg.Spawn(entity.Spec{Role: entity.RoleBlueBottle, Pos: core.V(2, 0), Hitbox: entity.CircleBox(2), Amount: 25})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 || events[0].Effect != EffectShipBluePickup {
		t.Fatalf("events = %+v, want one blue pickup", events)
	}
	if led.DarkMatter() != 75 {
		t.Errorf("dark matter = %g, want 75", led.DarkMatter())
	}
	if reg.Get(blue) != nil {
		t.Error("collected pickup still alive")
	}

	red := reg.Spawn(entity.Spec{Role: entity.RoleRedBottle, Pos: core.V(2, 0), Hitbox: entity.CircleBox(2), Amount: 30})
	events, err = res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 || events[0].Effect != EffectShipRedPickup || events[0].Amount != 30 {
		t.Fatalf("events = %+v, want one red pickup draining 30", events)
	}
	if led.DarkMatter() != 45 {
		t.Errorf("dark matter = %g, want 45", led.DarkMatter())
	}
	if reg.Get(red) != nil {
		t.Error("collected pickup still alive")
	}
}

func TestRedPickupDepletionSignal(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 10, 0)
	res := newResolver(t, nil)

	reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})
	reg.Spawn(entity.Spec{Role: entity.RoleRedBottle, Pos: core.V(2, 0), Hitbox: entity.CircleBox(2), Amount: 30})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if !events[0].Depleted {
		t.Error("drain to zero did not raise the depletion signal")
	}
	if events[0].Amount != 10 {
		t.Errorf("drained = %g, want clamped 10", events[0].Amount)
	}
}

func TestWallContactPushesShipOut(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, nil)

	// Wall spans x [0,100], y [10,20]. Ship sits just inside the top edge.
	ship := reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(50, 8), Hitbox: entity.CircleBox(4)})
	wall := reg.Spawn(entity.Spec{Role: entity.RoleWall, Pos: core.V(50, 15), Hitbox: entity.RectBox(100, 10), Damage: 2})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 || events[0].Effect != EffectShipWall {
		t.Fatalf("events = %+v, want one wall contact", events)
	}
	if led.Shield() != 18 {
		t.Errorf("shield = %g, want 18", led.Shield())
	}

	s, w := reg.Get(ship), reg.Get(wall)
	if s == nil || w == nil {
		t.Fatal("ship or wall despawned by wall contact")
	}
	if entity.Overlaps(s.Pos, s.Hitbox, w.Pos, w.Hitbox) {
		t.Errorf("ship still inside wall after push-out, pos %+v", s.Pos)
	}
	if s.Pos.Y >= 8 {
		t.Errorf("ship pushed the wrong way, y = %g", s.Pos.Y)
	}
}

func TestFriendlyProjectileDamagesHazard(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, nil)

	hazard := reg.Spawn(entity.Spec{Role: entity.RoleRefexa, Pos: core.V(0, 0), Hitbox: entity.CircleBox(6), Health: 5})
	shot := reg.Spawn(entity.Spec{Role: entity.RoleFriendlyBullet, Pos: core.V(3, 0), Hitbox: entity.CircleBox(1), Damage: 2})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(events) != 1 || events[0].Destroyed {
		t.Fatalf("events = %+v, want one non-destroying hit", events)
	}
	if reg.Get(shot) != nil {
		t.Error("projectile survived its hit")
	}
	if h := reg.Get(hazard); h == nil || h.Health != 3 {
		t.Errorf("hazard health wrong after hit: %+v", h)
	}
}

func TestProjectileSpentOnSingleTarget(t *testing.T) {
	// One friendly projectile overlapping two adjacent hazards must damage
	// exactly one of them, whichever pair resolves first.
	reg := entity.NewRegistry()
	led := newLedger(t, 100, 20)
	res := newResolver(t, nil)

	h1 := reg.Spawn(entity.Spec{Role: entity.RoleDroid, Pos: core.V(-3, 0), Hitbox: entity.CircleBox(5), Health: 10})
	h2 := reg.Spawn(entity.Spec{Role: entity.RoleDroid, Pos: core.V(3, 0), Hitbox: entity.CircleBox(5), Health: 10})
	reg.Spawn(entity.Spec{Role: entity.RoleFriendlyBullet, Pos: core.V(0, 0), Hitbox: entity.CircleBox(1), Damage: 4})

	events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	hits := 0
	for _, ev := range events {
		if ev.Effect == EffectHazardFriendlyProjectile {
			hits++
		}
	}
	if hits != 1 {
		t.Fatalf("projectile hit %d hazards, want exactly 1", hits)
	}

	total := reg.Get(h1).Health + reg.Get(h2).Health
	if total != 16 {
		t.Errorf("combined hazard health = %g, want 16", total)
	}
}

func TestLethalHitSequence(t *testing.T) {
	reg := entity.NewRegistry()
	led := newLedger(t, 20, 0)
	res := newResolver(t, nil)

	ship := reg.Spawn(entity.Spec{Role: entity.RoleShip, Pos: core.V(0, 0), Hitbox: entity.CircleBox(5)})

	hit := func() Event {
		t.Helper()
		shot := reg.Spawn(entity.Spec{Role: entity.RoleEnemyBullet, Pos: core.V(2, 0), Hitbox: entity.CircleBox(1), Damage: 15})
		events, err := res.Resolve(reg.QueryOverlaps(), reg, led)
		if err != nil {
			t.Fatalf("Resolve: %v", err)
		}
		if len(events) != 1 {
			t.Fatalf("event count = %d, want 1", len(events))
		}
		reg.Despawn(shot)
		reg.Sweep()
		return events[0]
	}

	first := hit()
	if first.Outcome.Lethal || first.Outcome.Depleted {
		t.Errorf("first hit: %+v, want neither depleted nor lethal", first.Outcome)
	}

	second := hit()
	if !second.Outcome.Depleted || second.Outcome.Lethal {
		t.Errorf("second hit: %+v, want depleted and not lethal", second.Outcome)
	}

	third := hit()
	if !third.Outcome.Lethal {
		t.Errorf("third hit: %+v, want lethal", third.Outcome)
	}
	if reg.Get(ship) == nil {
		t.Error("resolver must not despawn the ship")
	}
}
