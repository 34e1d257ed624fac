// Package ledger owns the player's two bounded resources: dark matter and
// shield. Dark matter is health, ammo currency, and shield fuel at once;
// every mutation goes through the debit/credit contract and is clamped to
// [0, max]. The ledger raises a one-shot depletion signal on each transition
// of dark matter from positive to zero.
package ledger

import (
	"errors"
	"fmt"
)

// ErrNegativeAmount is returned when a caller passes a negative amount to
// any ledger operation. Negative amounts are contract violations, never
// silently sign-flipped.
var ErrNegativeAmount = errors.New("ledger: negative amount")

// Config holds the static ledger parameters for a level.
type Config struct {
	DarkMatterMax     float64 `yaml:"dark_matter_max"`
	DarkMatterInitial float64 `yaml:"dark_matter_initial"`
	ShieldMax         float64 `yaml:"shield_max"`
	ShieldInitial     float64 `yaml:"shield_initial"`

	// Shield regeneration transfers dark matter into shield 1:1.
	RegenAmount   float64 `yaml:"regen_amount"`
	RegenInterval float64 `yaml:"regen_interval"`
}

// Validate rejects malformed configs before any tick runs.
func (c Config) Validate() error {
	if c.DarkMatterMax <= 0 {
		return fmt.Errorf("ledger: dark_matter_max must be positive, got %g", c.DarkMatterMax)
	}
	if c.ShieldMax < 0 {
		return fmt.Errorf("ledger: shield_max must not be negative, got %g", c.ShieldMax)
	}
	if c.DarkMatterInitial < 0 || c.DarkMatterInitial > c.DarkMatterMax {
		return fmt.Errorf("ledger: dark_matter_initial %g outside [0, %g]", c.DarkMatterInitial, c.DarkMatterMax)
	}
	if c.ShieldInitial < 0 || c.ShieldInitial > c.ShieldMax {
		return fmt.Errorf("ledger: shield_initial %g outside [0, %g]", c.ShieldInitial, c.ShieldMax)
	}
	if c.RegenAmount < 0 || c.RegenInterval < 0 {
		return fmt.Errorf("ledger: regeneration parameters must not be negative")
	}
	return nil
}

// Ledger is the resource ledger for one simulation. It is not safe for
// concurrent use; the simulation mutates it only within its single-threaded
// tick pass.
type Ledger struct {
	cfg Config

	darkMatter float64
	shield     float64

	regenCountdown float64
}

// DamageOutcome describes how one ship-damaging hit was paid for.
// Absorbed + Drained + Unpaid always equals the requested damage.
type DamageOutcome struct {
	Absorbed float64 // Absorbed by the shield
	Drained  float64 // Debited from dark matter
	Unpaid   float64 // Could not be paid from either pool
	Depleted bool    // Dark matter crossed >0 -> 0 during this hit
	Lethal   bool    // Hit landed with both pools already empty
}

// New creates a ledger with the configured initial values.
func New(cfg Config) (*Ledger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Ledger{
		cfg:            cfg,
		darkMatter:     cfg.DarkMatterInitial,
		shield:         cfg.ShieldInitial,
		regenCountdown: cfg.RegenInterval,
	}, nil
}

// Reset restores the configured initial values. Used on level restart.
func (l *Ledger) Reset() {
	l.darkMatter = l.cfg.DarkMatterInitial
	l.shield = l.cfg.ShieldInitial
	l.regenCountdown = l.cfg.RegenInterval
}

// DarkMatter returns the current dark matter value.
func (l *Ledger) DarkMatter() float64 { return l.darkMatter }

// DarkMatterMax returns the configured dark matter ceiling.
func (l *Ledger) DarkMatterMax() float64 { return l.cfg.DarkMatterMax }

// Shield returns the current shield value.
func (l *Ledger) Shield() float64 { return l.shield }

// ShieldMax returns the configured shield ceiling.
func (l *Ledger) ShieldMax() float64 { return l.cfg.ShieldMax }

// Depleted reports whether dark matter is currently exhausted.
func (l *Ledger) Depleted() bool { return l.darkMatter == 0 }

// Debit subtracts amount from dark matter, clamped at zero. It returns the
// amount actually removed (less than requested on insufficient funds) and a
// depleted flag that is true exactly once per transition from positive to
// zero; repeated debits while already at zero do not re-raise it.
func (l *Ledger) Debit(amount float64) (removed float64, depleted bool, err error) {
	if amount < 0 {
		return 0, false, ErrNegativeAmount
	}
	pre := l.darkMatter
	l.darkMatter -= amount
	if l.darkMatter < 0 {
		l.darkMatter = 0
	}
	removed = pre - l.darkMatter
	depleted = pre > 0 && l.darkMatter == 0
	return removed, depleted, nil
}

// Credit adds amount to dark matter, clamped at the maximum. No event.
func (l *Ledger) Credit(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	l.darkMatter += amount
	if l.darkMatter > l.cfg.DarkMatterMax {
		l.darkMatter = l.cfg.DarkMatterMax
	}
	return nil
}

// DamageShield subtracts amount from the shield, clamped at zero, and
// returns the unabsorbed remainder. The caller must convert the remainder
// into a dark matter debit of equal magnitude; ApplyShipDamage does both in
// one call.
func (l *Ledger) DamageShield(amount float64) (unabsorbed float64, err error) {
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	absorbed := amount
	if absorbed > l.shield {
		absorbed = l.shield
	}
	l.shield -= absorbed
	return amount - absorbed, nil
}

// ApplyShipDamage routes one hit through the shield and debits any
// unabsorbed remainder from dark matter in the same call, so the two pools
// never desynchronize within a tick. A hit that lands while both pools are
// already empty is lethal.
func (l *Ledger) ApplyShipDamage(amount float64) (DamageOutcome, error) {
	if amount < 0 {
		return DamageOutcome{}, ErrNegativeAmount
	}

	lethal := amount > 0 && l.shield == 0 && l.darkMatter == 0

	unabsorbed, err := l.DamageShield(amount)
	if err != nil {
		return DamageOutcome{}, err
	}
	out := DamageOutcome{
		Absorbed: amount - unabsorbed,
		Lethal:   lethal,
	}
	if unabsorbed > 0 {
		removed, depleted, derr := l.Debit(unabsorbed)
		if derr != nil {
			return DamageOutcome{}, derr
		}
		out.Drained = removed
		out.Unpaid = unabsorbed - removed
		out.Depleted = depleted
	}
	return out, nil
}

// CostWeaponFire debits the full amount or nothing: firing never goes into
// resource debt. Returns paid=false when the full amount cannot be covered;
// a shot that spends the last of the pool reports depleted like any other
// debit.
func (l *Ledger) CostWeaponFire(amount float64) (paid, depleted bool, err error) {
	if amount < 0 {
		return false, false, ErrNegativeAmount
	}
	if l.darkMatter < amount {
		return false, false, nil
	}
	_, depleted, err = l.Debit(amount)
	return err == nil, depleted, err
}

// Regen advances the shield regeneration countdown. When it fires and the
// shield needs healing, the configured amount moves from dark matter to
// shield 1:1; regeneration never runs the dark matter pool below the full
// transfer amount mid-transfer, but may exhaust it exactly. Returns the
// transferred amount and whether the transfer depleted dark matter.
func (l *Ledger) Regen(dt float64) (transferred float64, depleted bool) {
	if l.cfg.RegenAmount == 0 || l.cfg.RegenInterval == 0 {
		return 0, false
	}
	l.regenCountdown -= dt
	if l.regenCountdown > 0 {
		return 0, false
	}
	if l.shield < l.cfg.ShieldMax && l.darkMatter >= l.cfg.RegenAmount {
		l.shield += l.cfg.RegenAmount
		if l.shield > l.cfg.ShieldMax {
			l.shield = l.cfg.ShieldMax
		}
		_, depleted, _ = l.Debit(l.cfg.RegenAmount)
		transferred = l.cfg.RegenAmount
		l.regenCountdown += l.cfg.RegenInterval
	} else {
		l.regenCountdown = l.cfg.RegenInterval
	}
	return transferred, depleted
}

// Snapshot is a read-only copy of the ledger for the HUD and for the
// outcome surface returned to the driving harness.
type Snapshot struct {
	DarkMatter    float64
	DarkMatterMax float64
	Shield        float64
	ShieldMax     float64
}

// Snapshot returns the current ledger values.
func (l *Ledger) Snapshot() Snapshot {
	return Snapshot{
		DarkMatter:    l.darkMatter,
		DarkMatterMax: l.cfg.DarkMatterMax,
		Shield:        l.shield,
		ShieldMax:     l.cfg.ShieldMax,
	}
}
