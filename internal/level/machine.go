package level

import "fmt"

// State is the progression state of one level run.
type State int

const (
	StateRunning State = iota
	StateWon
	StateLost
)

func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	}
	return "unknown"
}

// Machine walks a level as the camera scrolls: it releases due spawn points,
// tracks the active segment, and decides the win condition at the finish
// line. Losing is reported to the machine by the combat layer.
type Machine struct {
	lv    Level
	seed  int64
	sched Schedule

	cursor     int
	wallCursor int
	state      State
}

// NewMachine builds and schedules a progression machine for one level.
func NewMachine(lv Level, seed int64) (*Machine, error) {
	sched, err := Build(lv, seed)
	if err != nil {
		return nil, err
	}
	return &Machine{lv: lv, seed: seed, sched: sched}, nil
}

// Level returns the underlying level data.
func (m *Machine) Level() Level { return m.lv }

// State returns the current progression state.
func (m *Machine) State() State { return m.state }

// FinishS is the scroll position of the finish line.
func (m *Machine) FinishS() float64 { return m.lv.Length() }

// SegmentIndex returns the segment containing scroll position s, clamped to
// the last segment past the finish.
func (m *Machine) SegmentIndex(s float64) int {
	var start float64
	for i, seg := range m.lv.Segments {
		if s < start+seg.Length {
			return i
		}
		start += seg.Length
	}
	return len(m.lv.Segments) - 1
}

// Update releases every spawn point and wall due at or before spawnX, in
// schedule order. It does nothing once the run has ended.
func (m *Machine) Update(spawnX float64, emit func(SpawnPoint), emitWall func(WallSpawn)) {
	if m.state != StateRunning {
		return
	}
	for m.cursor < len(m.sched.Points) && m.sched.Points[m.cursor].S <= spawnX {
		emit(m.sched.Points[m.cursor])
		m.cursor++
	}
	for m.wallCursor < len(m.sched.Walls) && m.sched.Walls[m.wallCursor].S <= spawnX {
		emitWall(m.sched.Walls[m.wallCursor])
		m.wallCursor++
	}
}

// Evaluate applies the win rule. Reaching the finish wins only while holding
// at least the finish requirement of dark matter; otherwise the camera must
// hold at the line until the requirement is met. Returns the state and
// whether the camera should hold.
func (m *Machine) Evaluate(camRight, darkMatter float64) (State, bool) {
	if m.state != StateRunning {
		return m.state, false
	}
	if camRight < m.FinishS() {
		return m.state, false
	}
	if darkMatter >= m.lv.FinishRequirement() {
		m.state = StateWon
		return m.state, false
	}
	return m.state, true
}

// MarkLost ends the run as a loss. A finished run is never demoted.
func (m *Machine) MarkLost() {
	if m.state == StateRunning {
		m.state = StateLost
	}
}

// Restart rewinds the machine to the start of the level.
func (m *Machine) Restart() {
	m.cursor = 0
	m.wallCursor = 0
	m.state = StateRunning
}

// SkipToSegment rewinds or fast-forwards the machine so the run resumes at
// the start of segment i, and returns that scroll position.
func (m *Machine) SkipToSegment(i int) (float64, error) {
	if i < 0 || i >= len(m.lv.Segments) {
		return 0, fmt.Errorf("level: segment %d out of range [0, %d)", i, len(m.lv.Segments))
	}
	start := m.lv.SegmentStart(i)
	m.state = StateRunning

	m.cursor = 0
	for m.cursor < len(m.sched.Points) && m.sched.Points[m.cursor].S < start {
		m.cursor++
	}
	m.wallCursor = 0
	for m.wallCursor < len(m.sched.Walls) && m.sched.Walls[m.wallCursor].S < start {
		m.wallCursor++
	}
	return start, nil
}
