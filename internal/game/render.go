package game

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/level"
)

// Glyphs per role.
var roleGlyphs = map[entity.Role]core.Cell{
	entity.RoleShip:           {Rune: '▶', Color: core.ColorCyan},
	entity.RoleDroid:          {Rune: 'Ω', Color: core.ColorRed},
	entity.RoleRefexa:         {Rune: 'Ψ', Color: core.ColorMagenta},
	entity.RoleGummbumm:       {Rune: 'Θ', Color: core.ColorYellow},
	entity.RoleGoat:           {Rune: 'Ж', Color: core.ColorRed},
	entity.RoleAntimatterJet:  {Rune: '»', Color: core.ColorBrightRed},
	entity.RoleSnakeSegment:   {Rune: 'o', Color: core.ColorGreen},
	entity.RoleBlueBottle:     {Rune: '♦', Color: core.ColorBrightBlue},
	entity.RoleRedBottle:      {Rune: '♦', Color: core.ColorBrightRed},
	entity.RoleFriendlyBullet: {Rune: '-', Color: core.ColorWhite},
	entity.RoleFriendlyLaser:  {Rune: '=', Color: core.ColorBrightCyan},
	entity.RoleEnemyBullet:    {Rune: '·', Color: core.ColorYellow},
	entity.RoleEnemyLaser:     {Rune: '~', Color: core.ColorBrightYellow},
}

// Render draws the current simulation state to the screen. The top row is
// the HUD, the bottom row the status line; the world box maps onto the rows
// between them.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.loadErr != nil {
		dst.DrawTextCentered(dst.Height()/2, "failed to start: "+g.loadErr.Error())
		return
	}
	if g.mach == nil {
		dst.DrawTextCentered(dst.Height()/2, "press any key")
		return
	}

	top := 1
	worldRows := dst.Height() - 2
	if worldRows < 1 {
		return
	}
	sx := float64(dst.Width()) / g.cfg.Box.Width
	sy := float64(worldRows) / g.cfg.Box.Height

	// Walls first so actors draw over them.
	g.reg.ForEachAlive(func(e *entity.Entity) bool {
		return e.Role == entity.RoleWall
	}, func(e *entity.Entity) {
		r := e.Hitbox.Rect(e.Pos)
		x0 := int((r.X - g.cam.Left()) * sx)
		y0 := top + int(r.Y*sy)
		w := core.Max(1, int(r.W*sx))
		h := core.Max(1, int(r.H*sy))
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				dst.SetCell(x, y, core.Cell{Rune: '█', Color: core.ColorGray})
			}
		}
	})

	g.reg.ForEachAlive(func(e *entity.Entity) bool {
		return e.Role != entity.RoleWall
	}, func(e *entity.Entity) {
		cell, ok := roleGlyphs[e.Role]
		if !ok {
			cell = core.Cell{Rune: '?', Color: core.ColorWhite}
		}
		x := int((e.Pos.X - g.cam.Left()) * sx)
		y := top + int(e.Pos.Y*sy)
		dst.SetCell(x, y, cell)
	})

	g.drawHUD(dst)
	g.drawStatus(dst)
}

// drawHUD draws the resource readout on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" DM %5.1f/%.0f  SH %4.1f/%.0f  %s ",
		g.led.DarkMatter(), g.led.DarkMatterMax(),
		g.led.Shield(), g.led.ShieldMax(),
		g.levels[g.levelIdx].Name)
	dst.DrawTextColored(0, 0, hud, core.ColorBrightWhite)

	if g.led.Depleted() {
		dst.DrawTextColored(dst.Width()-10, 0, "DEPLETED", core.ColorBrightRed)
	}
}

// drawStatus draws the bottom status line and any end-of-run banner.
func (g *Game) drawStatus(dst *core.Screen) {
	y := dst.Height() - 1
	seg := g.mach.SegmentIndex(g.cam.S())
	status := fmt.Sprintf(" segment %d/%d ", seg+1, len(g.levels[g.levelIdx].Segments))
	dst.DrawText(0, y, status)

	switch g.mach.State() {
	case level.StateWon:
		dst.DrawTextCentered(dst.Height()/2, "LEVEL CLEAR - press R")
	case level.StateLost:
		dst.DrawTextCentered(dst.Height()/2, "SHIP LOST - press R")
	default:
		if g.cam.Held() {
			need := g.levels[g.levelIdx].FinishRequirement()
			msg := fmt.Sprintf("need %.0f dark matter to finish", need)
			dst.DrawTextColored((dst.Width()-len(msg))/2, dst.Height()/2, msg, core.ColorBrightYellow)
		}
		if g.paused {
			dst.DrawTextCentered(dst.Height()/2, "PAUSED")
		}
	}
}
