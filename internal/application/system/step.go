package system

import (
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// UserTeam is the side driven by the local input device
const UserTeam = entity.TeamHome

// GoalEvent is raised in the frame a goal is detected
type GoalEvent struct {
	Scorer entity.Team
	Frame  uint64
}

// StepResult reports what happened during one frame
type StepResult struct {
	Goal  *GoalEvent
	Kicks []KickEvent
}

// Simulation sequences one frame: selection, user input, AI, movement, physics
type Simulation struct {
	config   *config.MatchConfig
	setup    entity.Setup
	selector *Selector
	mapper   *InputMapper
	ai       *AISystem
	physics  *PhysicsSystem

	// Callbacks, invoked synchronously at the end of Step
	OnGoal func(GoalEvent)
	OnKick func(KickEvent)
}

// NewSimulation creates a simulation from config. rng feeds kick variance;
// pass a seeded *rand.Rand for reproducible matches.
func NewSimulation(cfg *config.MatchConfig, rng Rand) *Simulation {
	setup := LoadSetup(cfg)
	return &Simulation{
		config:   cfg,
		setup:    setup,
		selector: NewSelector(UserTeam, cfg.Control.Hysteresis),
		mapper:   NewInputMapper(&cfg.Control),
		ai:       NewAISystem(cfg, setup.Pitch, rng),
		physics:  NewPhysicsSystem(cfg, setup.Pitch),
	}
}

// Setup returns the kickoff setup
func (s *Simulation) Setup() entity.Setup {
	return s.setup
}

// Pitch returns the match geometry
func (s *Simulation) Pitch() *entity.Pitch {
	return s.setup.Pitch
}

// NewMatch returns a fresh kickoff state
func (s *Simulation) NewMatch() *entity.MatchState {
	return entity.Kickoff(s.setup)
}

// Reset returns every entity to the kickoff layout
func (s *Simulation) Reset(st *entity.MatchState) {
	st.Reset(s.setup)
}

// Step advances the state by one frame
func (s *Simulation) Step(st *entity.MatchState, in InputState) StepResult {
	var result StepResult
	st.Frame++

	for _, p := range st.Players {
		p.TickCooldown()
	}

	st.ActiveID = s.selector.Select(st)
	cmd := s.mapper.Map(in)

	headings := make([]entity.Vec2, len(st.Players))
	for i, p := range st.Players {
		if p.ID != st.ActiveID {
			continue
		}
		headings[i] = cmd.Move
		if ev, ok := s.userKick(p, st.Ball, cmd); ok {
			result.Kicks = append(result.Kicks, ev)
		}
	}

	// AI sees the ball after the user's kick
	for i, p := range st.Players {
		if p.ID == st.ActiveID {
			continue
		}
		intent := s.ai.Decide(p, st)
		headings[i] = intent.Heading()
		if k, ok := intent.(KickIntent); ok {
			result.Kicks = append(result.Kicks, ApplyKick(p, st.Ball, k.Dir, k.Power, k.Cooldown))
		}
	}

	s.physics.MovePlayers(st, headings)

	if scorer, scored := s.physics.UpdateBall(st.Ball); scored {
		result.Goal = &GoalEvent{Scorer: scorer, Frame: st.Frame}
		s.Reset(st)
	} else {
		s.physics.ResolveContacts(st)
	}

	s.notify(result)
	return result
}

// userKick strikes the ball along the held direction, or straight at the
// opposing goal when nothing is held
func (s *Simulation) userKick(p *entity.Player, ball *entity.Ball, cmd Command) (KickEvent, bool) {
	if !cmd.Kick || !p.CanKick() || !InKickRange(p, ball, s.config.Physics.KickSlop) {
		return KickEvent{}, false
	}

	dir := cmd.Move
	if dir.IsZero() {
		dir = p.Team.Forward()
	}
	return ApplyKick(p, ball, dir, p.KickPower, s.config.Cooldowns.User), true
}

func (s *Simulation) notify(result StepResult) {
	if s.OnKick != nil {
		for _, k := range result.Kicks {
			s.OnKick(k)
		}
	}
	if s.OnGoal != nil && result.Goal != nil {
		s.OnGoal(*result.Goal)
	}
}
