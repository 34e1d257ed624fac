package scroll

import (
	"math/rand"
	"testing"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
)

func newController(t *testing.T) *Controller {
	t.Helper()
	c, err := NewController(Config{
		Width:       800,
		Height:      240,
		AdvanceRate: 60,
		SpawnLead:   40,
		CullMargin:  120,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestAdvanceIsMonotonic(t *testing.T) {
	c := newController(t)
	prev := c.S()
	for i := 0; i < 300; i++ {
		c.Advance(1.0 / 60)
		if c.S() < prev {
			t.Fatalf("scroll moved backward at tick %d: %g -> %g", i, prev, c.S())
		}
		prev = c.S()
	}
	if c.S() <= 0 {
		t.Error("camera never advanced")
	}
}

func TestHoldPinsCamera(t *testing.T) {
	c := newController(t)
	c.Advance(1)
	s := c.S()

	c.Hold()
	c.Advance(1)
	if c.S() != s {
		t.Errorf("held camera advanced: %g -> %g", s, c.S())
	}

	c.Release()
	c.Advance(1)
	if c.S() <= s {
		t.Error("released camera did not resume")
	}
}

func TestClampShipInvariant(t *testing.T) {
	c := newController(t)
	c.Advance(10) // s = 600

	rng := rand.New(rand.NewSource(7))
	ship := &entity.Entity{Role: entity.RoleShip, Hitbox: entity.CircleBox(6), Alive: true}

	for i := 0; i < 1000; i++ {
		ship.Pos = core.V(rng.Float64()*4000-1000, rng.Float64()*1000-400)
		c.ClampShip(ship, 1.0/60, true)

		r := ship.Hitbox.Radius
		if ship.Pos.X < c.Left()+r || ship.Pos.X > c.Right()-r {
			t.Fatalf("ship X %g escaped [%g, %g]", ship.Pos.X, c.Left()+r, c.Right()-r)
		}
		if ship.Pos.Y < r || ship.Pos.Y > c.Height()-r {
			t.Fatalf("ship Y %g escaped [%g, %g]", ship.Pos.Y, r, c.Height()-r)
		}
	}
}

func TestHandsOffShipRidesTheScroll(t *testing.T) {
	c := newController(t)
	ship := &entity.Entity{Role: entity.RoleShip, Pos: core.V(400, 120), Hitbox: entity.CircleBox(6), Alive: true}

	dt := 1.0 / 60
	for i := 0; i < 600; i++ {
		c.Advance(dt)
		c.ClampShip(ship, dt, false)
	}

	// With no input the ship keeps its offset from the left edge instead
	// of being shoved along by it.
	offset := ship.Pos.X - c.Left()
	if offset < 399 || offset > 401 {
		t.Errorf("hands-off ship offset drifted to %g, want ~400", offset)
	}
}

func TestLeftEdgePushesLaggingShip(t *testing.T) {
	c := newController(t)
	ship := &entity.Entity{Role: entity.RoleShip, Pos: core.V(6, 120), Hitbox: entity.CircleBox(6), Alive: true}

	dt := 1.0 / 60
	for i := 0; i < 120; i++ {
		c.Advance(dt)
		// Player holds backward, so drift does not apply, and the edge
		// catches up.
		c.ClampShip(ship, dt, true)
	}

	if ship.Pos.X != c.Left()+6 {
		t.Errorf("lagging ship at %g, want pinned to left edge %g", ship.Pos.X, c.Left()+6)
	}
}

func TestReset(t *testing.T) {
	c := newController(t)
	c.Advance(5)
	c.Hold()

	c.Reset(1200)
	if c.S() != 1200 || c.Held() {
		t.Errorf("reset state: s=%g held=%v", c.S(), c.Held())
	}
}

func TestConfigValidation(t *testing.T) {
	bad := []Config{
		{Width: 0, Height: 240},
		{Width: 800, Height: -1},
		{Width: 800, Height: 240, AdvanceRate: -5},
		{Width: 800, Height: 240, CullMargin: -1},
	}
	for i, cfg := range bad {
		if err := cfg.Validate(); err == nil {
			t.Errorf("config %d accepted: %+v", i, cfg)
		}
	}
}
