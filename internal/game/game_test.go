package game

import (
	"math"
	"testing"

	"github.com/refexa/darkmatter/internal/config"
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/level"
)

func testConfig() config.GameConfig {
	cfg := config.DefaultGameConfig()
	cfg.Box.AdvanceRate = 0
	cfg.Ledger.RegenAmount = 0
	cfg.Ledger.RegenInterval = 0
	return cfg
}

func quietLevel() level.Level {
	return level.Level{
		ID:    1,
		Name:  "quiet",
		World: level.World{Height: 240},
		Segments: []level.Segment{
			{Length: 3000, RequiredDarkMatter: 0},
		},
	}
}

func newGame(t *testing.T, cfg config.GameConfig, lv level.Level) *Game {
	t.Helper()
	g, err := New(cfg, []level.Level{lv})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1})
	if g.Err() != nil {
		t.Fatalf("Reset: %v", g.Err())
	}
	return g
}

func step(g *Game) core.StepResult {
	return g.Step(core.NewInputFrame())
}

func hasEvent(events []Event, kind EventKind) bool {
	for _, ev := range events {
		if ev.Kind == kind {
			return true
		}
	}
	return false
}

func TestQuietRunHoldsResources(t *testing.T) {
	g := newGame(t, testConfig(), quietLevel())

	for i := 0; i < 120; i++ {
		step(g)
	}
	snap := g.Snapshot()
	if snap.DarkMatter != 100 || snap.Shield != 20 {
		t.Errorf("resources drifted with nothing happening: %+v", snap)
	}
	if snap.State != level.StateRunning {
		t.Errorf("state = %v, want running", snap.State)
	}
}

func TestShieldRegenFeedsOnDarkMatter(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.ShieldInitial = 10
	cfg.Ledger.RegenAmount = 1
	cfg.Ledger.RegenInterval = 0.5
	g := newGame(t, cfg, quietLevel())

	for i := 0; i < 60; i++ {
		step(g)
	}
	snap := g.Snapshot()
	if snap.Shield != 12 {
		t.Errorf("shield = %g after 1s, want 12", snap.Shield)
	}
	if snap.DarkMatter != 98 {
		t.Errorf("dark matter = %g after 1s, want 98", snap.DarkMatter)
	}
}

func TestWeaponFireCostsDarkMatter(t *testing.T) {
	g := newGame(t, testConfig(), quietLevel())

	in := core.NewInputFrame()
	in.Fire = true
	in.Weapon = core.WeaponBullet
	g.Step(in)

	snap := g.Snapshot()
	if math.Abs(snap.DarkMatter-99.9) > 1e-9 {
		t.Errorf("dark matter = %g after one shot, want 99.9", snap.DarkMatter)
	}
	if snap.Alive != 2 {
		t.Errorf("alive = %d, want ship plus projectile", snap.Alive)
	}
}

func TestWeaponCooldownLimitsRate(t *testing.T) {
	g := newGame(t, testConfig(), quietLevel())

	in := core.NewInputFrame()
	in.Fire = true
	// Cooldown 0.12s spans 8 ticks at 60 Hz; 3 held ticks fire once.
	for i := 0; i < 3; i++ {
		g.Step(in)
	}
	if snap := g.Snapshot(); snap.Alive != 2 {
		t.Errorf("alive = %d, want exactly one projectile during cooldown", snap.Alive)
	}
}

func TestWeaponFireEmptyingPoolReportsDepletion(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.DarkMatterInitial = cfg.Weapons.Laser.Cost
	g := newGame(t, cfg, quietLevel())

	in := core.NewInputFrame()
	in.Fire = true
	in.Weapon = core.WeaponLaser
	g.Step(in)

	snap := g.Snapshot()
	if snap.DarkMatter != 0 {
		t.Fatalf("dark matter = %g after the funded shot, want 0", snap.DarkMatter)
	}
	if snap.Alive != 2 {
		t.Errorf("alive = %d, funded shot should still spawn", snap.Alive)
	}
	if !hasEvent(g.Events(), EventDepletion) {
		t.Errorf("shot that emptied the pool raised no depletion: %v", g.Events())
	}
	if snap.State != level.StateRunning {
		t.Errorf("state = %v, depletion by firing is not a loss", snap.State)
	}
}

func TestFireRefusedAtZeroDarkMatter(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.DarkMatterInitial = 0.05
	g := newGame(t, cfg, quietLevel())

	in := core.NewInputFrame()
	in.Fire = true
	g.Step(in)

	if !hasEvent(g.Events(), EventFireRejected) {
		t.Error("underfunded shot was not refused")
	}
	snap := g.Snapshot()
	if snap.Alive != 1 {
		t.Errorf("alive = %d, refused shot spawned a projectile", snap.Alive)
	}
	if snap.DarkMatter != 0.05 {
		t.Errorf("dark matter = %g, refused shot charged anyway", snap.DarkMatter)
	}
}

// ramShip plants an enemy bullet on the ship and advances one tick.
func ramShip(t *testing.T, g *Game, damage float64) []Event {
	t.Helper()
	ship := g.reg.Ship()
	if ship == nil {
		t.Fatal("no ship")
	}
	g.reg.Spawn(entity.Spec{
		Role:   entity.RoleEnemyBullet,
		Pos:    ship.Pos,
		Hitbox: entity.CircleBox(2),
		Damage: damage,
	})
	step(g)
	return g.Events()
}

func TestDepletionThenLethalHit(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.ShieldInitial = 0
	cfg.Ledger.DarkMatterInitial = 20
	g := newGame(t, cfg, quietLevel())

	// First hit drains half the pool; no depletion, no loss.
	events := ramShip(t, g, 15)
	if !hasEvent(events, EventShipHit) || hasEvent(events, EventDepletion) {
		t.Errorf("first hit events: %+v", events)
	}
	if snap := g.Snapshot(); snap.DarkMatter != 5 {
		t.Errorf("dark matter = %g after first hit, want 5", snap.DarkMatter)
	}

	// Second hit empties the pool: depletion fires once, run continues.
	events = ramShip(t, g, 15)
	if !hasEvent(events, EventDepletion) {
		t.Errorf("second hit did not signal depletion: %+v", events)
	}
	if hasEvent(events, EventLevelLost) {
		t.Error("depleting hit ended the run early")
	}
	if g.Snapshot().State != level.StateRunning {
		t.Error("run ended on the depleting hit")
	}

	// Third hit lands with both pools empty: the run is lost and the ship
	// is destroyed.
	events = ramShip(t, g, 15)
	if !hasEvent(events, EventLevelLost) {
		t.Errorf("hit on empty pools did not lose: %+v", events)
	}
	shipDestroyed := false
	for _, ev := range events {
		if ev.Kind == EventEntityDestroyed && ev.Role == entity.RoleShip {
			shipDestroyed = true
		}
	}
	if !shipDestroyed {
		t.Errorf("lost run did not destroy the ship: %+v", events)
	}
	if g.reg.Ship() != nil {
		t.Error("ship still in the registry after the run was lost")
	}
	if g.Snapshot().State != level.StateLost {
		t.Errorf("state = %v, want lost", g.Snapshot().State)
	}
	if !g.State().GameOver {
		t.Error("platform state not game over after loss")
	}
}

func TestRedBottleDrainDoesNotLose(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.ShieldInitial = 0
	cfg.Ledger.DarkMatterInitial = 20
	g := newGame(t, cfg, quietLevel())

	ship := g.reg.Ship()
	g.reg.Spawn(entity.Spec{
		Role:   entity.RoleRedBottle,
		Pos:    ship.Pos,
		Hitbox: entity.CircleBox(6),
		Amount: 30,
	})
	step(g)

	events := g.Events()
	if !hasEvent(events, EventPickup) || !hasEvent(events, EventDepletion) {
		t.Errorf("drain to zero events: %+v", events)
	}
	// A drain is not a hit, so an emptied ship is still flying.
	if g.Snapshot().State != level.StateRunning {
		t.Errorf("state = %v after drain, want running", g.Snapshot().State)
	}
}

func TestFinishHeldThenFundedWins(t *testing.T) {
	cfg := testConfig()
	cfg.Box.AdvanceRate = 600
	cfg.Ledger.DarkMatterInitial = 40
	lv := quietLevel()
	lv.Segments = []level.Segment{{Length: 1000, RequiredDarkMatter: 50}}
	g := newGame(t, cfg, lv)

	for i := 0; i < 120 && !g.Snapshot().Held; i++ {
		step(g)
	}
	snap := g.Snapshot()
	if !snap.Held || snap.State != level.StateRunning {
		t.Fatalf("camera not held at underfunded finish: %+v", snap)
	}
	heldS := snap.ScrollS

	// The box must stay pinned while underfunded.
	step(g)
	if g.Snapshot().ScrollS != heldS {
		t.Error("held camera kept scrolling")
	}

	// Funding the ledger releases the win.
	if err := g.led.Credit(20); err != nil {
		t.Fatalf("Credit: %v", err)
	}
	step(g)
	if !hasEvent(g.Events(), EventLevelWon) {
		t.Errorf("funded finish did not win: %+v", g.Events())
	}
	if g.Snapshot().State != level.StateWon {
		t.Errorf("state = %v, want won", g.Snapshot().State)
	}
}

func TestRestartReinitializesRun(t *testing.T) {
	cfg := testConfig()
	cfg.Ledger.ShieldInitial = 0
	cfg.Ledger.DarkMatterInitial = 10
	g := newGame(t, cfg, quietLevel())

	ramShip(t, g, 10)
	ramShip(t, g, 10)
	if g.Snapshot().State != level.StateLost {
		t.Fatal("setup: run not lost")
	}

	in := core.NewInputFrame()
	in.Set(core.ActionRestart)
	g.Step(in)

	snap := g.Snapshot()
	if snap.State != level.StateRunning || snap.DarkMatter != 10 || snap.Tick != 0 {
		t.Errorf("restart state: %+v", snap)
	}
	if snap.Alive != 1 {
		t.Errorf("alive = %d after restart, want just the ship", snap.Alive)
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newGame(t, testConfig(), quietLevel())
	step(g)

	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)
	if !g.State().Paused {
		t.Fatal("pause action ignored")
	}

	before := g.Snapshot()
	for i := 0; i < 30; i++ {
		step(g)
	}
	if g.Snapshot() != before {
		t.Error("paused simulation kept running")
	}

	g.Step(in)
	if g.State().Paused {
		t.Error("second pause action did not resume")
	}
}

func TestSkipToSegment(t *testing.T) {
	lv := quietLevel()
	lv.Segments = []level.Segment{
		{Length: 1000},
		{Length: 1000},
		{Length: 500, RequiredDarkMatter: 10},
	}
	g := newGame(t, testConfig(), lv)

	if err := g.SkipToSegment(2); err != nil {
		t.Fatalf("SkipToSegment: %v", err)
	}
	snap := g.Snapshot()
	if snap.ScrollS != 2000 || snap.Segment != 2 {
		t.Errorf("skip landed at %+v", snap)
	}
	if snap.DarkMatter != 100 {
		t.Errorf("skip did not reset the ledger: %g", snap.DarkMatter)
	}

	if err := g.SkipToSegment(9); err == nil {
		t.Error("out-of-range segment accepted")
	}
}

func TestDeterministicReplay(t *testing.T) {
	lv := level.Level{
		ID:    7,
		Name:  "replay",
		World: level.World{Height: 240},
		Segments: []level.Segment{
			{Length: 2000, Spawns: []level.SpawnEntry{
				{Type: "droid", Count: 5},
				{Type: "refexa", Count: 3},
				{Type: "blue_bottle", Count: 2},
			}},
		},
	}
	cfg := config.DefaultGameConfig()

	run := func() []Snapshot {
		g, err := New(cfg, []level.Level{lv})
		if err != nil {
			t.Fatalf("New: %v", err)
		}
		g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 99})

		var snaps []Snapshot
		for i := 0; i < 600; i++ {
			in := core.NewInputFrame()
			if i%7 == 0 {
				in.Move.Y = 1
			}
			if i%11 == 0 {
				in.Fire = true
			}
			g.Step(in)
			if i%60 == 59 {
				snaps = append(snaps, g.Snapshot())
			}
		}
		return snaps
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("replay diverged at checkpoint %d:\n%+v\n%+v", i, a[i], b[i])
		}
	}
}

func TestHazardsActivateInsideViewOnly(t *testing.T) {
	cfg := testConfig()
	g := newGame(t, cfg, quietLevel())

	// One hazard well beyond the right edge, one inside the view.
	far := g.reg.Spawn(entity.Spec{
		Role: entity.RoleDroid, Pos: core.V(g.cam.Right()+500, 120),
		Hitbox: entity.CircleBox(8), Health: 2, Pattern: entity.PatternDrift,
	})
	near := g.reg.Spawn(entity.Spec{
		Role: entity.RoleDroid, Pos: core.V(g.cam.Right()-100, 120),
		Hitbox: entity.CircleBox(8), Health: 2, Pattern: entity.PatternDrift,
	})

	step(g)

	if e := g.reg.Get(far); e == nil || e.Activated {
		t.Error("hazard beyond the view activated")
	}
	if e := g.reg.Get(near); e == nil || !e.Activated {
		t.Error("hazard inside the view did not activate")
	}
}

func TestRenderProducesHUD(t *testing.T) {
	g := newGame(t, testConfig(), quietLevel())
	step(g)

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	row := dst.Row(0)
	if len(row) == 0 || row[1] != 'D' {
		t.Errorf("HUD row missing: %q", row)
	}
}
