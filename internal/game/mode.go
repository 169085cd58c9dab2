package game

// Mode is the global pursuer-behavior phase.
type Mode int

const (
	// ModeScatter sends ghosts toward their fixed corners.
	ModeScatter Mode = iota
	// ModeChase sends ghosts after their personality targets.
	ModeChase
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeScatter:
		return "scatter"
	case ModeChase:
		return "chase"
	default:
		return "unknown"
	}
}

// ModeScheduler alternates the global scatter/chase phases on a fixed,
// repeating cycle. It references no entity; ghosts outside the frightened,
// eaten and in-house states adopt its phase every tick.
type ModeScheduler struct {
	mode    Mode
	elapsed int
}

// Advance moves the scheduler forward one tick, flipping phase when the
// current one has run its duration.
func (s *ModeScheduler) Advance() {
	s.elapsed++
	switch s.mode {
	case ModeScatter:
		if s.elapsed > ScatterTicks {
			s.mode = ModeChase
			s.elapsed = 0
		}
	case ModeChase:
		if s.elapsed > ChaseTicks {
			s.mode = ModeScatter
			s.elapsed = 0
		}
	}
}

// Phase returns the current phase.
func (s *ModeScheduler) Phase() Mode {
	return s.mode
}

// Elapsed returns the tick count spent in the current phase.
func (s *ModeScheduler) Elapsed() int {
	return s.elapsed
}

// Reset returns the scheduler to the start of a scatter phase.
func (s *ModeScheduler) Reset() {
	s.mode = ModeScatter
	s.elapsed = 0
}
