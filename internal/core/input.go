package core

// Weapon identifies the ship's selected weapon.
type Weapon int

const (
	WeaponBullet Weapon = iota // Cheap, short cooldown
	WeaponLaser                // Expensive, fast, high damage
)

// String returns a human-readable name for the weapon.
func (w Weapon) String() string {
	switch w {
	case WeaponBullet:
		return "Bullet"
	case WeaponLaser:
		return "Laser"
	default:
		return "Unknown"
	}
}

// Action represents a semantic meta action, abstracted from physical key
// presses. Continuous intent (movement, fire) lives in InputFrame fields.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Escape - pause/unpause the level
	ActionRestart        // R key - restart level after win/lose
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the normalized per-tick player intent: a movement vector,
// the fire trigger, the selected weapon, and any meta actions triggered
// during this frame. This is the only input surface the simulation sees.
type InputFrame struct {
	// Move is the movement intent; each component is in [-1, 1].
	Move Vec2

	// Fire is true while the fire trigger is held.
	Fire bool

	// Weapon is the currently selected weapon.
	Weapon Weapon

	// Actions maps meta actions to whether they were triggered this frame.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks a meta action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has checks if a meta action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// Clear resets the frame for the next tick. The weapon selection is sticky;
// everything else is transient.
func (f *InputFrame) Clear() {
	f.Move = Vec2{}
	f.Fire = false
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	c := InputFrame{
		Move:    f.Move,
		Fire:    f.Fire,
		Weapon:  f.Weapon,
		Actions: make(map[Action]bool, len(f.Actions)),
	}
	for k, v := range f.Actions {
		c.Actions[k] = v
	}
	return c
}
