// Package scroll owns the forward-marching camera. The camera is a bounding
// box of fixed size whose left edge only ever moves forward; the ship is
// clamped inside it and drifts along with it when the player gives no
// horizontal input.
package scroll

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/entity"
)

// Config holds the static camera parameters.
type Config struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	AdvanceRate float64 `yaml:"advance_rate"`

	// SpawnLead is how far beyond the right edge scheduled spawns appear.
	SpawnLead float64 `yaml:"spawn_lead"`
	// CullMargin is how far outside the box entities survive before removal.
	CullMargin float64 `yaml:"cull_margin"`
}

// Validate rejects malformed camera configs.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("scroll: box dimensions must be positive, got %gx%g", c.Width, c.Height)
	}
	if c.AdvanceRate < 0 {
		return fmt.Errorf("scroll: advance_rate must not be negative, got %g", c.AdvanceRate)
	}
	if c.SpawnLead < 0 || c.CullMargin < 0 {
		return fmt.Errorf("scroll: spawn_lead and cull_margin must not be negative")
	}
	return nil
}

// Controller advances the camera and keeps the ship inside the box.
// It is not safe for concurrent use.
type Controller struct {
	cfg  Config
	s    float64
	held bool
}

// NewController builds a camera starting at scroll position zero.
func NewController(cfg Config) (*Controller, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Controller{cfg: cfg}, nil
}

// S returns the scroll position, the world X of the box's left edge.
func (c *Controller) S() float64 { return c.s }

// Left and Right bound the visible world span.
func (c *Controller) Left() float64  { return c.s }
func (c *Controller) Right() float64 { return c.s + c.cfg.Width }

// Height returns the vertical extent of the box.
func (c *Controller) Height() float64 { return c.cfg.Height }

// SpawnX returns the world X where scheduled entities enter.
func (c *Controller) SpawnX() float64 { return c.Right() + c.cfg.SpawnLead }

// CullBounds returns the world X span outside which entities are removed.
func (c *Controller) CullBounds() (minX, maxX float64) {
	return c.s - c.cfg.CullMargin, c.Right() + c.cfg.CullMargin
}

// Hold pins the camera in place. Used at the finish line while the
// dark-matter requirement is unmet.
func (c *Controller) Hold() { c.held = true }

// Release resumes forward motion.
func (c *Controller) Release() { c.held = false }

// Held reports whether the camera is pinned.
func (c *Controller) Held() bool { return c.held }

// Advance moves the camera forward by one tick. The scroll position never
// decreases; a held camera stays put.
func (c *Controller) Advance(dt float64) {
	if c.held || dt <= 0 {
		return
	}
	c.s += c.cfg.AdvanceRate * dt
}

// ClampShip forces the ship inside the box. When the player gave no
// horizontal input the ship first drifts forward at the camera rate, so a
// hands-off ship rides the scroll instead of being dragged by the left edge.
func (c *Controller) ClampShip(ship *entity.Entity, dt float64, playerX bool) {
	if ship == nil {
		return
	}
	if !playerX && !c.held && dt > 0 {
		ship.Pos.X += c.cfg.AdvanceRate * dt
	}

	r := ship.Hitbox.Radius
	if ship.Pos.X < c.s+r {
		ship.Pos.X = c.s + r
	}
	if ship.Pos.X > c.Right()-r {
		ship.Pos.X = c.Right() - r
	}
	if ship.Pos.Y < r {
		ship.Pos.Y = r
	}
	if ship.Pos.Y > c.cfg.Height-r {
		ship.Pos.Y = c.cfg.Height - r
	}
}

// Reset returns the camera to the given scroll position and releases any
// hold. Used on restart and segment skips.
func (c *Controller) Reset(s float64) {
	c.s = s
	c.held = false
}
