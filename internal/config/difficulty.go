package config

// ApplyPreset scales the config for a named difficulty. "fixed" leaves the
// file values untouched.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Ledger.RegenInterval *= 0.5
		scaleHazards(cfg, 0.75, 1.5)
		cfg.Pickups.BlueAmount *= 1.25
	case DifficultyHard:
		cfg.Ledger.ShieldInitial = cfg.Ledger.ShieldMax * 0.5
		scaleHazards(cfg, 1.5, 0.75)
		cfg.Pickups.RedAmount *= 1.25
	case DifficultyNormal, DifficultyFixed:
	}
}

// scaleHazards multiplies contact damage and divides fire rate across every
// hazard type.
func scaleHazards(cfg *GameConfig, damageMul, intervalMul float64) {
	for name, h := range cfg.Hazards {
		h.ContactDamage *= damageMul
		h.FireInterval *= intervalMul
		cfg.Hazards[name] = h
	}
	cfg.Shots.Bullet.Damage *= damageMul
	cfg.Shots.Laser.Damage *= damageMul
	cfg.Walls.ContactDamage *= damageMul
}
