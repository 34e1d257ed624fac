package config

import (
	_ "embed"

	"github.com/refexa/darkmatter/internal/ledger"
	"github.com/refexa/darkmatter/internal/scroll"
)

//go:embed defaults/darkmatter.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte { return defaultYAML }

// DefaultGameConfig returns the hardcoded default configuration, used when
// even the embedded YAML cannot be parsed.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Ledger: ledger.Config{
			DarkMatterMax:     100,
			DarkMatterInitial: 100,
			ShieldMax:         20,
			ShieldInitial:     20,
			RegenAmount:       1.0,
			RegenInterval:     0.5,
		},
		Box: scroll.Config{
			Width:       800,
			Height:      240,
			AdvanceRate: 60,
			SpawnLead:   40,
			CullMargin:  120,
		},
		Ship: ShipConfig{
			Radius:        6,
			SpeedForward:  240,
			SpeedBackward: 144,
			SpeedY:        240,
		},
		Weapons: WeaponsConfig{
			Bullet: WeaponConfig{Cost: 0.1, Damage: 1, Speed: 420, Radius: 2, Cooldown: 0.12},
			Laser:  WeaponConfig{Cost: 2.0, Damage: 4, Speed: 700, Radius: 2, Cooldown: 0.5},
		},
		Walls: WallConfig{ContactDamage: 0.5},
		Hazards: map[string]HazardConfig{
			"droid":          {Health: 2, ContactDamage: 4, Radius: 8, Speed: 30, Pattern: "drift"},
			"refexa":         {Health: 5, ContactDamage: 6, Radius: 10, FireInterval: 1.6, Projectile: "enemy_bullet", Pattern: "weave"},
			"gummbumm":       {Health: 4, ContactDamage: 5, Radius: 9, FireInterval: 2.0, Projectile: "enemy_laser", Pattern: "drift"},
			"goat":           {Health: 3, ContactDamage: 5, Radius: 9, Speed: 60, Pattern: "chase"},
			"antimatter_jet": {Health: 1, ContactDamage: 3, Radius: 6, Speed: 120, Pattern: "drift", ContactDestructible: true},
			"snake_segment":  {Health: 1, ContactDamage: 2, Radius: 5, Speed: 45, Pattern: "weave", ContactDestructible: true},
		},
		Shots: ShotsConfig{
			Bullet: ShotConfig{Damage: 3, Speed: 180, Radius: 2},
			Laser:  ShotConfig{Damage: 5, Speed: 300, Radius: 2},
		},
		Pickups: PickupsConfig{Radius: 6, BlueAmount: 20, RedAmount: 30},
	}
}
