package state

// Phase represents where the match is in its lifecycle
type Phase int

const (
	PhasePlaying Phase = iota
	PhasePaused
	PhaseQuarterBreak
	PhaseFullTime
)

// String returns the string representation of the phase
func (p Phase) String() string {
	switch p {
	case PhasePlaying:
		return "Playing"
	case PhasePaused:
		return "Paused"
	case PhaseQuarterBreak:
		return "QuarterBreak"
	case PhaseFullTime:
		return "FullTime"
	default:
		return "Unknown"
	}
}

// Running reports whether the simulation advances in this phase
func (p Phase) Running() bool {
	return p == PhasePlaying
}
