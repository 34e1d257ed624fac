package level

import (
	"math/rand"
	"sort"

	"github.com/refexa/darkmatter/internal/core"
	"github.com/refexa/darkmatter/internal/entity"
)

// SpawnPoint is one scheduled entity entry, keyed by the scroll position at
// which it becomes due.
type SpawnPoint struct {
	S       float64
	Role    entity.Role
	YFrac   float64 // Fraction of world height, deterministic per seed
	Segment int
}

// WallSpawn is one wall rectangle in world coordinates, due at scroll S.
type WallSpawn struct {
	S    float64
	Rect core.Rect
}

// Schedule is a level expanded into flat, sorted spawn lists. Building it is
// deterministic for a given level and seed.
type Schedule struct {
	Points []SpawnPoint
	Walls  []WallSpawn
}

// Build expands a level into its spawn schedule.
//
// Difficulty is cumulative: the effective spawn table of segment N holds, for
// each hazard type named in any segment up to N, the most recent entry for
// that type. Pickups apply only to their own segment.
func Build(lv Level, seed int64) (Schedule, error) {
	if err := lv.Validate(); err != nil {
		return Schedule{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	var sched Schedule

	// Most recent hazard entry per role, carried across segments.
	inherited := make(map[entity.Role]SpawnEntry)

	for i, seg := range lv.Segments {
		start := lv.SegmentStart(i)

		for _, sp := range seg.Spawns {
			role, _ := entity.ParseRole(sp.Type)
			if role.IsHazard() {
				inherited[role] = sp
			}
		}

		// Effective table: inherited hazards plus this segment's pickups,
		// walked in role order so expansion is independent of map order.
		for _, role := range entity.AllRoles() {
			if entry, ok := inherited[role]; ok {
				expand(&sched, rng, role, entry, start, seg.Length, i)
			}
		}
		for _, sp := range seg.Spawns {
			role, _ := entity.ParseRole(sp.Type)
			if role.IsPickup() {
				expand(&sched, rng, role, sp, start, seg.Length, i)
			}
		}

		for _, w := range seg.Walls {
			sched.Walls = append(sched.Walls, WallSpawn{
				S:    start + w.X,
				Rect: core.NewRect(start+w.X, w.Y, w.W, w.H),
			})
		}
	}

	sort.SliceStable(sched.Points, func(a, b int) bool {
		return sched.Points[a].S < sched.Points[b].S
	})
	sort.SliceStable(sched.Walls, func(a, b int) bool {
		return sched.Walls[a].S < sched.Walls[b].S
	})
	return sched, nil
}

// expand lays out one spawn entry's points across a segment.
func expand(sched *Schedule, rng *rand.Rand, role entity.Role, entry SpawnEntry, start, length float64, segment int) {
	for k := 0; k < entry.Count; k++ {
		var offset float64
		switch entry.Distribution {
		case "cluster":
			// Grouped just inside the segment entry.
			spacing := length * 0.05
			offset = spacing * float64(k+1)
		default: // even
			offset = length * float64(k+1) / float64(entry.Count+1)
		}
		sched.Points = append(sched.Points, SpawnPoint{
			S:       start + offset,
			Role:    role,
			YFrac:   0.1 + 0.8*rng.Float64(),
			Segment: segment,
		})
	}
}
