// Package game implements the campaign mode: a horizontally scrolling run
// through segmented levels where dark matter is health, ammo, and shield
// fuel at once. The simulation is a fixed-tick pipeline over the entity
// registry, the resource ledger, the collision resolver, the camera box,
// and the level progression machine.
package game

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/refexa/darkmatter/internal/collision"
	"github.com/refexa/darkmatter/internal/config"
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/ledger"
	"github.com/refexa/darkmatter/internal/level"
	"github.com/refexa/darkmatter/internal/registry"
	"github.com/refexa/darkmatter/internal/scroll"
)

func init() {
	registry.Register("campaign", func() registry.Game {
		cfg, err := config.Load(configPath)
		if err != nil {
			cfg = config.DefaultGameConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPreset(&cfg, difficultyPreset)
		}
		levels, err := level.Load(levelsDir)
		if err != nil || len(levels) == 0 {
			return &Game{cfg: cfg, loadErr: fmt.Errorf("no levels available: %w", err)}
		}
		g, err := New(cfg, levels)
		if err != nil {
			return &Game{cfg: cfg, loadErr: err}
		}
		return g
	})
}

// configPath stores the custom config path set via CLI
var configPath string
var levelsDir string
var difficultyPreset config.DifficultyPreset

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLevelsDir sets a custom directory to load level files from.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetDifficultyPreset sets the difficulty preset applied on creation.
func SetDifficultyPreset(preset config.DifficultyPreset) {
	difficultyPreset = preset
}

var startSegment int
var startLevel int

// SetStartSegment sets the segment index every reset starts from.
// 0 means the level beginning.
func SetStartSegment(i int) {
	startSegment = i
}

// SetStartLevel sets the index of the level every reset starts from.
func SetStartLevel(i int) {
	startLevel = i
}

// Game is the campaign simulation. It implements registry.Game.
type Game struct {
	cfg    config.GameConfig
	rt     core.RuntimeConfig
	levels []level.Level

	levelIdx int
	loadErr  error

	led  *ledger.Ledger
	reg  *entity.Registry
	cam  *scroll.Controller
	mach *level.Machine
	res  *collision.Resolver
	rng  *rand.Rand

	weapons  weaponSet
	spawnSeq int

	paused bool
	ticks  int
	events []Event
}

// New builds a campaign over the given levels. The configuration and every
// level are validated up front.
func New(cfg config.GameConfig, levels []level.Level) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("game: no levels")
	}
	for _, lv := range levels {
		if err := lv.Validate(); err != nil {
			return nil, err
		}
	}
	res, err := collision.NewResolver(collision.NewTable(), cfg.Destructible())
	if err != nil {
		return nil, err
	}
	return &Game{cfg: cfg, levels: levels, res: res}, nil
}

// ID returns the unique identifier for this mode.
func (g *Game) ID() string {
	return "campaign"
}

// Title returns the display name for this mode.
func (g *Game) Title() string {
	return "Dark Matter Keeper"
}

// Err reports a construction failure on instances built by the registry
// factory. A healthy game returns nil.
func (g *Game) Err() error { return g.loadErr }

// Level returns the active level.
func (g *Game) Level() level.Level {
	return g.levels[g.levelIdx]
}

// Reset initializes or restarts the campaign at its starting level.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rt = cfg
	if len(g.levels) == 0 {
		return
	}
	g.levelIdx = 0
	if startLevel > 0 && startLevel < len(g.levels) {
		g.levelIdx = startLevel
	}
	lv := g.levels[g.levelIdx]
	startS := 0.0
	if startSegment > 0 && startSegment < len(lv.Segments) {
		startS = lv.SegmentStart(startSegment)
	}
	g.startLevel(startS)
}

// startLevel wires up a fresh run of level index idx at scroll position
// startS.
func (g *Game) startLevel(startS float64) {
	lv := g.levels[g.levelIdx]

	seed := g.rt.Seed
	if seed == 0 {
		seed = int64(lv.ID)
	}
	g.rng = rand.New(rand.NewSource(seed))

	led, err := ledger.New(g.cfg.Ledger)
	if err != nil {
		g.loadErr = err
		return
	}
	cam, err := scroll.NewController(g.cfg.Box)
	if err != nil {
		g.loadErr = err
		return
	}
	mach, err := level.NewMachine(lv, seed)
	if err != nil {
		g.loadErr = err
		return
	}

	g.led = led
	g.cam = cam
	g.mach = mach
	g.reg = entity.NewRegistry()
	g.weapons = weaponSet{}
	g.spawnSeq = 0
	g.paused = false
	g.ticks = 0
	g.events = nil

	cam.Reset(startS)
	if startS > 0 {
		seg := mach.SegmentIndex(startS)
		if s, err := mach.SkipToSegment(seg); err == nil {
			cam.Reset(s)
		}
	}

	g.reg.Spawn(entity.Spec{
		Role:   entity.RoleShip,
		Pos:    core.V(cam.Left()+g.cfg.Box.Width*0.15, g.cfg.Box.Height/2),
		Hitbox: entity.CircleBox(g.cfg.Ship.Radius),
	})
}

// SkipToSegment restarts the current level at the given segment. Intended
// for headless runs and debugging.
func (g *Game) SkipToSegment(i int) error {
	if i < 0 || i >= len(g.levels[g.levelIdx].Segments) {
		return fmt.Errorf("game: segment %d out of range", i)
	}
	g.startLevel(g.levels[g.levelIdx].SegmentStart(i))
	return nil
}

// dt returns the fixed tick duration in seconds.
func (g *Game) dt() float64 {
	if g.rt.TickRate <= 0 {
		return 1.0 / 60
	}
	return 1.0 / float64(g.rt.TickRate)
}

// Step advances the simulation by one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.events = nil
	if g.loadErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.handleRestart()
		return core.StepResult{State: g.State()}
	}
	if g.mach.State() != level.StateRunning {
		return core.StepResult{State: g.State()}
	}
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	dt := g.dt()
	g.ticks++

	// Release spawns due ahead of the right edge.
	g.mach.Update(g.cam.SpawnX(), g.spawnPoint, g.spawnWall)

	// Player steering and weapons.
	playerX := g.steerShip(in)
	g.updateWeapons(in, dt)

	// Hazard behaviors: activation, movement patterns, cannon fire.
	g.updateHazards(dt)

	// Kinematics, then contacts from the advanced positions.
	g.reg.Advance(dt)
	resolved, err := g.res.Resolve(g.reg.QueryOverlaps(), g.reg, g.led)
	if err != nil {
		g.loadErr = err
		return core.StepResult{State: g.State()}
	}
	lethal := false
	for _, ev := range resolved {
		g.translate(ev)
		if ev.Outcome.Lethal {
			lethal = true
		}
	}
	if lethal {
		g.mach.MarkLost()
		if ship := g.reg.Ship(); ship != nil {
			g.emit(Event{Kind: EventEntityDestroyed, Entity: ship.ID, Role: ship.Role})
			g.reg.Despawn(ship.ID)
		}
		g.emit(Event{Kind: EventLevelLost})
	}

	// Shield regeneration feeds on dark matter.
	if _, depleted := g.led.Regen(dt); depleted {
		g.emit(Event{Kind: EventDepletion})
	}

	// Win rule, then camera motion under the hold decision.
	state, hold := g.mach.Evaluate(g.cam.Right(), g.led.DarkMatter())
	if state == level.StateWon {
		g.emit(Event{Kind: EventLevelWon})
	}
	if hold {
		g.cam.Hold()
	} else {
		g.cam.Release()
	}
	g.cam.Advance(dt)
	g.cam.ClampShip(g.reg.Ship(), dt, playerX)

	minX, maxX := g.cam.CullBounds()
	g.reg.CullOutOfBounds(minX, maxX)
	g.reg.Sweep()

	return core.StepResult{State: g.State()}
}

// handleRestart restarts after game over: a won level advances to the next
// one, a lost or mid-run level starts over.
func (g *Game) handleRestart() {
	if g.mach.State() == level.StateWon && g.levelIdx+1 < len(g.levels) {
		g.levelIdx++
	}
	g.startLevel(0)
}

// steerShip applies movement input to the ship velocity and reports whether
// the player gave horizontal input.
func (g *Game) steerShip(in core.InputFrame) bool {
	ship := g.reg.Ship()
	if ship == nil {
		return false
	}

	switch {
	case in.Move.X > 0:
		ship.Vel.X = g.cfg.Ship.SpeedForward
	case in.Move.X < 0:
		ship.Vel.X = -g.cfg.Ship.SpeedBackward
	default:
		ship.Vel.X = 0
	}
	switch {
	case in.Move.Y > 0:
		ship.Vel.Y = g.cfg.Ship.SpeedY
	case in.Move.Y < 0:
		ship.Vel.Y = -g.cfg.Ship.SpeedY
	default:
		ship.Vel.Y = 0
	}
	return in.Move.X != 0
}

// spawnPoint materializes one scheduled spawn at the lead edge.
func (g *Game) spawnPoint(p level.SpawnPoint) {
	world := g.levels[g.levelIdx].World
	y := p.YFrac * world.Height
	x := math.Max(p.S, g.cam.SpawnX())
	g.spawnSeq++

	switch {
	case p.Role.IsHazard():
		hc, ok := g.cfg.Hazard(p.Role)
		if !ok {
			return
		}
		proj := entity.Role(0)
		if hc.Projectile != "" {
			proj, _ = entity.ParseRole(hc.Projectile)
		}
		pattern, _ := entity.ParsePattern(hc.Pattern)
		id := g.reg.Spawn(entity.Spec{
			Role:         p.Role,
			Pos:          core.V(x, y),
			Hitbox:       entity.CircleBox(hc.Radius),
			Damage:       hc.ContactDamage,
			Health:       hc.Health,
			FireInterval: hc.FireInterval,
			Projectile:   proj,
			Pattern:      pattern,
		})
		// Stagger weave phases so clustered segments trail each other
		// like a chain instead of moving in lockstep.
		if p.Role == entity.RoleSnakeSegment {
			if e := g.reg.Get(id); e != nil {
				e.PatternPhase = float64(g.spawnSeq) * 0.25
			}
		}
	case p.Role == entity.RoleBlueBottle:
		g.reg.Spawn(entity.Spec{
			Role:   p.Role,
			Pos:    core.V(x, y),
			Hitbox: entity.CircleBox(g.cfg.Pickups.Radius),
			Amount: g.cfg.Pickups.BlueAmount,
		})
	case p.Role == entity.RoleRedBottle:
		g.reg.Spawn(entity.Spec{
			Role:   p.Role,
			Pos:    core.V(x, y),
			Hitbox: entity.CircleBox(g.cfg.Pickups.Radius),
			Amount: g.cfg.Pickups.RedAmount,
		})
	}
}

// spawnWall materializes one wall rectangle.
func (g *Game) spawnWall(w level.WallSpawn) {
	g.reg.Spawn(entity.Spec{
		Role:   entity.RoleWall,
		Pos:    w.Rect.Center(),
		Hitbox: entity.RectBox(w.Rect.W, w.Rect.H),
		Damage: g.cfg.Walls.ContactDamage,
	})
}

// Events returns the events raised by the most recent Step call.
func (g *Game) Events() []Event {
	return g.events
}

// Ticks returns the number of simulated ticks of the current run.
func (g *Game) Ticks() int { return g.ticks }

// Outcome returns the progression state of the current run.
func (g *Game) Outcome() level.State {
	if g.mach == nil {
		return level.StateRunning
	}
	return g.mach.State()
}

// State returns the platform-level game state. Score tracks the remaining
// dark matter.
func (g *Game) State() core.GameState {
	var score int
	if g.led != nil {
		score = int(math.Round(g.led.DarkMatter()))
	}
	over := g.loadErr != nil || (g.mach != nil && g.mach.State() != level.StateRunning)
	return core.GameState{
		Score:    score,
		GameOver: over,
		Paused:   g.paused,
	}
}
