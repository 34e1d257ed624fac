// Package level defines level data, the spawn schedule derived from it, and
// the progression machine that walks a level as the camera scrolls.
package level

// Level is one playable campaign level, a run of segments laid end to end
// along the scroll axis.
type Level struct {
	ID       int       `yaml:"id"`
	Name     string    `yaml:"name"`
	World    World     `yaml:"world"`
	Segments []Segment `yaml:"segments"`
}

// World holds level-wide geometry.
type World struct {
	Height float64 `yaml:"height"`
}

// Segment is one stretch of a level. Its spawn entries are distributed over
// its length; hazard entries also carry forward into later segments until a
// later segment overrides that hazard type.
type Segment struct {
	Length             float64      `yaml:"length"`
	RequiredDarkMatter float64      `yaml:"required_dark_matter"`
	Spawns             []SpawnEntry `yaml:"spawns"`
	Walls              []WallEntry  `yaml:"walls"`
}

// SpawnEntry asks for count entities of one type within a segment.
type SpawnEntry struct {
	Type         string `yaml:"type"`
	Count        int    `yaml:"count"`
	Distribution string `yaml:"distribution"` // "even" (default) or "cluster"
}

// WallEntry is a static wall rectangle in segment-local coordinates.
// X is the offset from the segment start; Y is the top edge.
type WallEntry struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Length returns the total scroll distance of the level.
func (l Level) Length() float64 {
	var total float64
	for _, seg := range l.Segments {
		total += seg.Length
	}
	return total
}

// SegmentStart returns the scroll position where segment i begins.
func (l Level) SegmentStart(i int) float64 {
	var s float64
	for j := 0; j < i && j < len(l.Segments); j++ {
		s += l.Segments[j].Length
	}
	return s
}

// FinishRequirement is the dark matter the ship must hold to cross the
// finish line, taken from the last segment.
func (l Level) FinishRequirement() float64 {
	if len(l.Segments) == 0 {
		return 0
	}
	return l.Segments[len(l.Segments)-1].RequiredDarkMatter
}
