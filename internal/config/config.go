// Package config provides YAML-based configuration loading and difficulty
// presets for the simulation.
package config

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/entity"
	"github.com/refexa/darkmatter/internal/ledger"
	"github.com/refexa/darkmatter/internal/scroll"
)

// GameConfig contains all tunable parameters of the simulation.
type GameConfig struct {
	Ledger  ledger.Config           `yaml:"ledger"`
	Box     scroll.Config           `yaml:"box"`
	Ship    ShipConfig              `yaml:"ship"`
	Weapons WeaponsConfig           `yaml:"weapons"`
	Walls   WallConfig              `yaml:"walls"`
	Hazards map[string]HazardConfig `yaml:"hazards"`
	Shots   ShotsConfig             `yaml:"enemy_projectiles"`
	Pickups PickupsConfig           `yaml:"pickups"`
}

// ShipConfig defines the player ship.
type ShipConfig struct {
	Radius        float64 `yaml:"radius"`
	SpeedForward  float64 `yaml:"speed_forward"`
	SpeedBackward float64 `yaml:"speed_backward"`
	SpeedY        float64 `yaml:"speed_y"`
}

// WeaponsConfig defines the two player weapons.
type WeaponsConfig struct {
	Bullet WeaponConfig `yaml:"bullet"`
	Laser  WeaponConfig `yaml:"laser"`
}

// WeaponConfig defines one player weapon. Cost is debited from dark matter
// per shot; a shot the ship cannot pay for is refused outright.
type WeaponConfig struct {
	Cost     float64 `yaml:"cost"`
	Damage   float64 `yaml:"damage"`
	Speed    float64 `yaml:"speed"`
	Radius   float64 `yaml:"radius"`
	Cooldown float64 `yaml:"cooldown"`
}

// WallConfig defines wall contact behavior.
type WallConfig struct {
	ContactDamage float64 `yaml:"contact_damage"`
}

// HazardConfig defines one hazard type, keyed by role name in the YAML map.
type HazardConfig struct {
	Health              float64 `yaml:"health"`
	ContactDamage       float64 `yaml:"contact_damage"`
	Radius              float64 `yaml:"radius"`
	Speed               float64 `yaml:"speed"`
	FireInterval        float64 `yaml:"fire_interval"`
	Projectile          string  `yaml:"projectile"`
	Pattern             string  `yaml:"pattern"`
	ContactDestructible bool    `yaml:"contact_destructible"`
}

// ShotsConfig defines enemy projectiles by kind.
type ShotsConfig struct {
	Bullet ShotConfig `yaml:"bullet"`
	Laser  ShotConfig `yaml:"laser"`
}

// ShotConfig defines one enemy projectile kind.
type ShotConfig struct {
	Damage float64 `yaml:"damage"`
	Speed  float64 `yaml:"speed"`
	Radius float64 `yaml:"radius"`
}

// PickupsConfig defines the resource bottles.
type PickupsConfig struct {
	Radius     float64 `yaml:"radius"`
	BlueAmount float64 `yaml:"blue_amount"`
	RedAmount  float64 `yaml:"red_amount"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a flag value to a preset.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(name), nil
	}
	return "", fmt.Errorf("unknown difficulty %q (easy|normal|hard|fixed)", name)
}

// Validate checks the full config before a simulation starts.
func (c GameConfig) Validate() error {
	if err := c.Ledger.Validate(); err != nil {
		return err
	}
	if err := c.Box.Validate(); err != nil {
		return err
	}
	if c.Ship.Radius <= 0 {
		return fmt.Errorf("config: ship radius must be positive, got %g", c.Ship.Radius)
	}
	if c.Ship.SpeedForward <= 0 || c.Ship.SpeedBackward <= 0 || c.Ship.SpeedY <= 0 {
		return fmt.Errorf("config: ship speeds must be positive")
	}
	for name, w := range map[string]WeaponConfig{"bullet": c.Weapons.Bullet, "laser": c.Weapons.Laser} {
		if w.Cost < 0 || w.Damage <= 0 || w.Speed <= 0 || w.Radius <= 0 || w.Cooldown < 0 {
			return fmt.Errorf("config: weapon %s is malformed: %+v", name, w)
		}
	}
	if c.Walls.ContactDamage < 0 {
		return fmt.Errorf("config: wall contact_damage must not be negative, got %g", c.Walls.ContactDamage)
	}
	for name, h := range c.Hazards {
		role, ok := entity.ParseRole(name)
		if !ok || !role.IsHazard() {
			return fmt.Errorf("config: %q is not a hazard role", name)
		}
		if h.Health <= 0 || h.Radius <= 0 || h.ContactDamage < 0 || h.FireInterval < 0 {
			return fmt.Errorf("config: hazard %s is malformed: %+v", name, h)
		}
		if h.Projectile != "" {
			proj, ok := entity.ParseRole(h.Projectile)
			if !ok || !proj.IsEnemyProjectile() {
				return fmt.Errorf("config: hazard %s fires non-projectile %q", name, h.Projectile)
			}
			if h.FireInterval <= 0 {
				return fmt.Errorf("config: hazard %s has a projectile but no fire_interval", name)
			}
		}
		if _, ok := entity.ParsePattern(h.Pattern); !ok {
			return fmt.Errorf("config: hazard %s has unknown pattern %q", name, h.Pattern)
		}
	}
	for name, s := range map[string]ShotConfig{"bullet": c.Shots.Bullet, "laser": c.Shots.Laser} {
		if s.Damage <= 0 || s.Speed <= 0 || s.Radius <= 0 {
			return fmt.Errorf("config: enemy %s shot is malformed: %+v", name, s)
		}
	}
	if c.Pickups.Radius <= 0 || c.Pickups.BlueAmount <= 0 || c.Pickups.RedAmount <= 0 {
		return fmt.Errorf("config: pickups are malformed: %+v", c.Pickups)
	}
	return nil
}

// Hazard returns the config for one hazard role.
func (c GameConfig) Hazard(role entity.Role) (HazardConfig, bool) {
	h, ok := c.Hazards[role.String()]
	return h, ok
}

// Destructible lists the hazard roles removed on ship contact, in the form
// the collision resolver consumes.
func (c GameConfig) Destructible() map[entity.Role]bool {
	out := make(map[entity.Role]bool)
	for name, h := range c.Hazards {
		if h.ContactDestructible {
			if role, ok := entity.ParseRole(name); ok {
				out[role] = true
			}
		}
	}
	return out
}
