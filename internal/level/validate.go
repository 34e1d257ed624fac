package level

import (
	"fmt"

	"github.com/refexa/darkmatter/internal/entity"
)

// ValidationError contains details about a level validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs fail-fast validation of a level before it is scheduled.
// Checks:
//   - World height and every segment length are positive
//   - Every spawn type names a spawnable role with a legal distribution
//   - Dark matter requirements and wall rectangles are well formed
func (l Level) Validate() error {
	if l.ID < 0 {
		return ValidationError{
			Code:    "BAD_ID",
			Message: fmt.Sprintf("level id must not be negative, got %d", l.ID),
		}
	}
	if l.World.Height <= 0 {
		return ValidationError{
			Code:    "BAD_WORLD",
			Message: fmt.Sprintf("world height must be positive, got %g", l.World.Height),
		}
	}
	if len(l.Segments) == 0 {
		return ValidationError{
			Code:    "NO_SEGMENTS",
			Message: fmt.Sprintf("level %d has no segments", l.ID),
		}
	}

	for i, seg := range l.Segments {
		if seg.Length <= 0 {
			return ValidationError{
				Code:    "BAD_LENGTH",
				Message: fmt.Sprintf("segment %d length must be positive, got %g", i, seg.Length),
			}
		}
		if seg.RequiredDarkMatter < 0 {
			return ValidationError{
				Code:    "BAD_REQUIREMENT",
				Message: fmt.Sprintf("segment %d requirement must not be negative, got %g", i, seg.RequiredDarkMatter),
			}
		}
		for j, sp := range seg.Spawns {
			role, ok := entity.ParseRole(sp.Type)
			if !ok || !(role.IsHazard() || role.IsPickup()) {
				return ValidationError{
					Code:    "BAD_SPAWN_TYPE",
					Message: fmt.Sprintf("segment %d spawn %d: %q is not spawnable", i, j, sp.Type),
				}
			}
			if sp.Count <= 0 {
				return ValidationError{
					Code:    "BAD_SPAWN_COUNT",
					Message: fmt.Sprintf("segment %d spawn %d: count must be positive, got %d", i, j, sp.Count),
				}
			}
			switch sp.Distribution {
			case "", "even", "cluster":
			default:
				return ValidationError{
					Code:    "BAD_DISTRIBUTION",
					Message: fmt.Sprintf("segment %d spawn %d: unknown distribution %q", i, j, sp.Distribution),
				}
			}
		}
		for j, w := range seg.Walls {
			if w.W <= 0 || w.H <= 0 {
				return ValidationError{
					Code:    "BAD_WALL",
					Message: fmt.Sprintf("segment %d wall %d: dimensions must be positive, got %gx%g", i, j, w.W, w.H),
				}
			}
			if w.X < 0 || w.X > seg.Length {
				return ValidationError{
					Code:    "BAD_WALL",
					Message: fmt.Sprintf("segment %d wall %d: x %g outside segment", i, j, w.X),
				}
			}
		}
	}
	return nil
}
