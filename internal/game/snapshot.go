package game

import "github.com/refexa/darkmatter/internal/level"

// Snapshot captures the complete simulation state for determinism testing
// and headless inspection.
type Snapshot struct {
	Tick       int
	LevelID    int
	Segment    int
	State      level.State
	Held       bool
	ScrollS    float64
	DarkMatter float64
	Shield     float64
	ShipX      float64
	ShipY      float64
	Alive      int
}

// Snapshot returns the current simulation snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:    g.ticks,
		LevelID: g.levels[g.levelIdx].ID,
	}
	if g.mach == nil {
		return snap
	}

	snap.Segment = g.mach.SegmentIndex(g.cam.S())
	snap.State = g.mach.State()
	snap.Held = g.cam.Held()
	snap.ScrollS = g.cam.S()
	snap.DarkMatter = g.led.DarkMatter()
	snap.Shield = g.led.Shield()
	snap.Alive = g.reg.AliveCount()
	if ship := g.reg.Ship(); ship != nil {
		snap.ShipX = ship.Pos.X
		snap.ShipY = ship.Pos.Y
	}
	return snap
}
