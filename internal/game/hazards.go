package game

import (
	"math"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
)

// Weave motion shape shared by every weaving hazard.
const (
	weaveAmplitude = 35.0
	weaveFrequency = 0.5 // Full cycles per second
)

// updateHazards runs hazard behaviors for one tick: activation at the view
// edge, movement patterns, and cannon fire. Hazards outside the view hold
// still and hold their fire.
func (g *Game) updateHazards(dt float64) {
	ship := g.reg.Ship()

	g.reg.ForEachAlive(func(e *entity.Entity) bool {
		return e.Role.IsHazard()
	}, func(e *entity.Entity) {
		if !e.Activated {
			if e.Pos.X > g.cam.Right()+e.Hitbox.Radius {
				return
			}
			e.Activated = true
		}

		hc, ok := g.cfg.Hazard(e.Role)
		if !ok {
			return
		}

		g.steerHazard(e, hc.Speed, dt, ship)

		if e.Projectile != 0 && e.FireInterval > 0 {
			e.FireCountdown -= dt
			if e.FireCountdown <= 0 {
				e.FireCountdown += e.FireInterval
				g.fireHazard(e, ship)
			}
		}
	})
}

// steerHazard applies the hazard's movement pattern. All hazards sweep left
// relative to the scroll; the pattern shapes the vertical component.
func (g *Game) steerHazard(e *entity.Entity, speed, dt float64, ship *entity.Entity) {
	switch e.Pattern {
	case entity.PatternDrift:
		e.Vel = core.V(-speed, 0)
	case entity.PatternWeave:
		e.PatternPhase += dt
		omega := 2 * math.Pi * weaveFrequency
		e.Vel = core.V(-speed, weaveAmplitude*omega*math.Cos(omega*e.PatternPhase))
	case entity.PatternChase:
		vy := 0.0
		if ship != nil {
			dy := ship.Pos.Y - e.Pos.Y
			if math.Abs(dy) > 1 {
				vy = speed * sign(dy)
			}
		}
		e.Vel = core.V(-speed, vy)
	default:
		e.Vel = core.Vec2{}
	}
}

// fireHazard spawns one enemy projectile. Gummbumms lead their shots at the
// ship; every other cannon fires straight down the scroll.
func (g *Game) fireHazard(e *entity.Entity, ship *entity.Entity) {
	var shot core.Vec2
	sc := g.cfg.Shots.Bullet
	if e.Projectile == entity.RoleEnemyLaser {
		sc = g.cfg.Shots.Laser
	}

	if e.Role == entity.RoleGummbumm && ship != nil {
		dir := ship.Pos.Sub(e.Pos).Normalized()
		if dir.IsZero() {
			dir = core.V(-1, 0)
		}
		shot = dir.Scale(sc.Speed)
	} else {
		shot = core.V(-sc.Speed, 0)
	}

	g.reg.Spawn(entity.Spec{
		Role:   e.Projectile,
		Pos:    core.V(e.Pos.X-e.Hitbox.Radius-sc.Radius, e.Pos.Y),
		Vel:    shot,
		Hitbox: entity.CircleBox(sc.Radius),
		Owner:  e.ID,
		Damage: sc.Damage,
	})
}

func sign(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
