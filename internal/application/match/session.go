package match

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/younwookim/striker/internal/application/system"
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// Session drives one match: the simulation, its state and the rules around it.
// Both the interactive scene and headless replay advance through a Session so
// a recording plays back exactly as it was played.
type Session struct {
	sim   *system.Simulation
	match *Match
	state *entity.MatchState

	kicks metric.Int64Counter
}

// NewSession creates a session at kickoff. rng feeds AI kick variance.
func NewSession(cfg *config.MatchConfig, rng system.Rand) (*Session, error) {
	m, err := New(&cfg.Match, cfg.Display.Framerate)
	if err != nil {
		return nil, err
	}

	kicks, err := meter().Int64Counter(
		"match.kicks",
		metric.WithDescription("Total kicks taken"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating kick counter: %w", err)
	}

	sim := system.NewSimulation(cfg, rng)
	return &Session{
		sim:   sim,
		match: m,
		state: sim.NewMatch(),
		kicks: kicks,
	}, nil
}

// Simulation returns the underlying simulation, for wiring callbacks
func (s *Session) Simulation() *system.Simulation { return s.sim }

// Match returns the rules tracker
func (s *Session) Match() *Match { return s.match }

// State returns the live match state
func (s *Session) State() *entity.MatchState { return s.state }

// Advance runs one host frame. The simulation only steps during open play;
// the clock runs in open play and during quarter breaks.
func (s *Session) Advance(in system.InputState) system.StepResult {
	var res system.StepResult
	if s.match.Phase().Running() {
		res = s.sim.Step(s.state, in)
		for _, k := range res.Kicks {
			s.kicks.Add(context.Background(), 1, metric.WithAttributes(attribute.String("team", k.Team.String())))
		}
		if res.Goal != nil {
			s.match.Goal(res.Goal.Scorer)
		}
	}

	if s.match.Tick() {
		s.sim.Reset(s.state)
	}
	return res
}

// TogglePause freezes or resumes play
func (s *Session) TogglePause() {
	s.match.TogglePause()
}

// Restart starts a fresh match from kickoff
func (s *Session) Restart() {
	s.state = s.sim.NewMatch()
	s.match.Restart()
}
