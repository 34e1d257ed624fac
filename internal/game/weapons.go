package game

import (
	"github.com/refexa/darkmatter/internal/config"
	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
)

// weaponSet tracks per-weapon cooldowns.
type weaponSet struct {
	bullet float64
	laser  float64
}

func (w *weaponSet) tick(dt float64) {
	if w.bullet > 0 {
		w.bullet -= dt
	}
	if w.laser > 0 {
		w.laser -= dt
	}
}

func (w *weaponSet) ready(sel core.Weapon) bool {
	if sel == core.WeaponLaser {
		return w.laser <= 0
	}
	return w.bullet <= 0
}

func (w *weaponSet) arm(sel core.Weapon, cooldown float64) {
	if sel == core.WeaponLaser {
		w.laser = cooldown
	} else {
		w.bullet = cooldown
	}
}

// updateWeapons counts down cooldowns and fires the selected weapon while
// the trigger is held. A shot the ledger cannot fund is refused whole; no
// partial payment, no projectile.
func (g *Game) updateWeapons(in core.InputFrame, dt float64) {
	g.weapons.tick(dt)

	if !in.Fire {
		return
	}
	ship := g.reg.Ship()
	if ship == nil || !g.weapons.ready(in.Weapon) {
		return
	}

	var wc config.WeaponConfig
	var role entity.Role
	if in.Weapon == core.WeaponLaser {
		wc, role = g.cfg.Weapons.Laser, entity.RoleFriendlyLaser
	} else {
		wc, role = g.cfg.Weapons.Bullet, entity.RoleFriendlyBullet
	}

	paid, depleted, err := g.led.CostWeaponFire(wc.Cost)
	if err != nil {
		g.loadErr = err
		return
	}
	if !paid {
		g.emit(Event{Kind: EventFireRejected, Amount: wc.Cost})
		return
	}
	if depleted {
		g.emit(Event{Kind: EventDepletion, Amount: wc.Cost})
	}

	g.weapons.arm(in.Weapon, wc.Cooldown)
	muzzle := core.V(ship.Pos.X+ship.Hitbox.Radius+wc.Radius, ship.Pos.Y)
	g.reg.Spawn(entity.Spec{
		Role:   role,
		Pos:    muzzle,
		Vel:    core.V(wc.Speed, 0),
		Hitbox: entity.CircleBox(wc.Radius),
		Owner:  ship.ID,
		Damage: wc.Damage,
	})
}
