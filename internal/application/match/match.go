package match

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/younwookim/striker/internal/application/state"
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// EventKind names a match event
type EventKind string

const (
	EventGoal         EventKind = "goal"
	EventQuarterEnd   EventKind = "quarter_end"
	EventQuarterStart EventKind = "quarter_start"
	EventFullTime     EventKind = "full_time"
)

// Event is emitted on goals and quarter boundaries
type Event struct {
	Kind    EventKind
	Team    entity.Team // scorer, goals only
	Score   Score
	Quarter int
	Frame   uint64
}

// Score is the running tally
type Score struct {
	Home int
	Away int
}

// For returns the goals scored by one side
func (s Score) For(t entity.Team) int {
	if t == entity.TeamHome {
		return s.Home
	}
	return s.Away
}

func (s Score) String() string {
	return fmt.Sprintf("%d - %d", s.Home, s.Away)
}

// Match owns the score, the quarter clock and the phase
type Match struct {
	rules         *config.RulesConfig
	framerate     int
	quarterFrames int
	breakFrames   int

	phase     state.Phase
	resume    state.Phase
	score     Score
	quarter   int
	remaining int
	breakLeft int
	elapsed   uint64

	goals metric.Int64Counter

	// OnEvent is called synchronously for every event
	OnEvent func(Event)
}

// New creates a match at the start of the first quarter.
// Uses the global OTel meter for the goal counter.
func New(rules *config.RulesConfig, framerate int) (*Match, error) {
	goals, err := meter().Int64Counter(
		"match.goals",
		metric.WithDescription("Total goals scored"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating goal counter: %w", err)
	}

	m := &Match{
		rules:         rules,
		framerate:     framerate,
		quarterFrames: toFrames(rules.QuarterSeconds, framerate, 1),
		breakFrames:   toFrames(rules.BreakSeconds, framerate, 0),
		goals:         goals,
	}
	m.start()
	return m, nil
}

func toFrames(seconds float64, framerate, floor int) int {
	n := int(math.Round(seconds * float64(framerate)))
	if n < floor {
		return floor
	}
	return n
}

func (m *Match) start() {
	m.phase = state.PhasePlaying
	m.resume = state.PhasePlaying
	m.score = Score{}
	m.quarter = 1
	m.remaining = m.quarterFrames
	m.breakLeft = 0
}

// Phase returns the current phase
func (m *Match) Phase() state.Phase { return m.phase }

// Score returns the current score
func (m *Match) Score() Score { return m.score }

// Quarter returns the 1-based quarter number
func (m *Match) Quarter() int { return m.quarter }

// Remaining returns the time left on the quarter clock
func (m *Match) Remaining() time.Duration {
	return time.Duration(m.remaining) * time.Second / time.Duration(m.framerate)
}

// TogglePause freezes or resumes the clock. Full time cannot be paused.
func (m *Match) TogglePause() {
	switch m.phase {
	case state.PhaseFullTime:
	case state.PhasePaused:
		m.phase = m.resume
	default:
		m.resume = m.phase
		m.phase = state.PhasePaused
	}
}

// Restart begins a new match from the first quarter
func (m *Match) Restart() {
	m.start()
	m.emit(Event{Kind: EventQuarterStart})
}

// Goal credits the scorer. Ignored outside open play.
func (m *Match) Goal(scorer entity.Team) {
	if m.phase != state.PhasePlaying {
		return
	}
	if scorer == entity.TeamHome {
		m.score.Home++
	} else {
		m.score.Away++
	}
	m.goals.Add(context.Background(), 1, metric.WithAttributes(attribute.String("team", scorer.String())))
	m.emit(Event{Kind: EventGoal, Team: scorer})
}

// Tick advances the clock by one frame. It returns true when a quarter has
// just ended and the pitch should go back to kickoff.
func (m *Match) Tick() bool {
	switch m.phase {
	case state.PhasePlaying:
		m.elapsed++
		m.remaining--
		if m.remaining > 0 {
			return false
		}
		m.remaining = 0
		m.emit(Event{Kind: EventQuarterEnd})
		if m.quarter >= m.rules.Quarters {
			m.phase = state.PhaseFullTime
			m.emit(Event{Kind: EventFullTime})
			return false
		}
		m.phase = state.PhaseQuarterBreak
		m.breakLeft = m.breakFrames
		return true

	case state.PhaseQuarterBreak:
		m.elapsed++
		m.breakLeft--
		if m.breakLeft > 0 {
			return false
		}
		m.quarter++
		m.remaining = m.quarterFrames
		m.phase = state.PhasePlaying
		m.emit(Event{Kind: EventQuarterStart})
	}
	return false
}

func (m *Match) emit(e Event) {
	if m.OnEvent == nil {
		return
	}
	e.Score = m.score
	e.Quarter = m.quarter
	e.Frame = m.elapsed
	m.OnEvent(e)
}
