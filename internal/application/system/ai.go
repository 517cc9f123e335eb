package system

import (
	"math"

	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// Rand is the random source used for kick variance. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Formation depth as a fraction of pitch width from the player's own goal line:
// base + shift * (how far the ball is toward the opponent's goal).
const (
	defenderDepthBase  = 0.15
	defenderDepthShift = 0.30
	forwardDepthBase   = 0.35
	forwardDepthShift  = 0.40
)

// AISystem decides movement and kicks for every player the user is not controlling
type AISystem struct {
	ai        *config.AIConfig
	cooldowns *config.CooldownConfig
	pitch     *entity.Pitch
	kickSlop  float64
	rng       Rand
}

// NewAISystem creates a new AI system. rng drives kick variance only.
func NewAISystem(cfg *config.MatchConfig, pitch *entity.Pitch, rng Rand) *AISystem {
	return &AISystem{
		ai:        &cfg.AI,
		cooldowns: &cfg.Cooldowns,
		pitch:     pitch,
		kickSlop:  cfg.Physics.KickSlop,
		rng:       rng,
	}
}

// Decide returns the player's intent for this frame
func (s *AISystem) Decide(p *entity.Player, st *entity.MatchState) Intent {
	if p.Role == entity.RoleGoalkeeper {
		return s.decideKeeper(p, st.Ball)
	}
	return s.decideOutfield(p, st)
}

func (s *AISystem) decideKeeper(p *entity.Player, ball *entity.Ball) Intent {
	if p.Pos.Dist(ball.Pos) > s.ai.KeeperCloseRange {
		mid := s.pitch.MidY()
		target := entity.Vec2{
			X: s.pitch.OwnGoalX(p.Team) + p.Team.AttackDir()*s.ai.KeeperLineOffset,
			Y: clampFloat(ball.Pos.Y, mid-s.ai.KeeperBand, mid+s.ai.KeeperBand),
		}
		return s.moveTo(p, target)
	}

	toBall := p.Pos.Direction(ball.Pos)
	if InKickRange(p, ball, s.kickSlop) && p.CanKick() {
		return KickIntent{
			Dir:      p.Team.Forward().Rotate(s.variance(s.ai.ClearVariance)),
			Power:    p.KickPower,
			Cooldown: s.cooldowns.Goalkeeper,
			Move:     toBall,
		}
	}
	return ChaseIntent{Dir: toBall}
}

func (s *AISystem) decideOutfield(p *entity.Player, st *entity.MatchState) Intent {
	ball := st.Ball
	activeRange := s.ai.DefenderRange
	if p.Role == entity.RoleForward {
		activeRange = s.ai.ForwardRange
	}

	if p.Pos.Dist(ball.Pos) > activeRange || st.HasPossession(p.Team) {
		return s.moveTo(p, s.FormationTarget(p, ball.Pos))
	}

	if !InKickRange(p, ball, s.kickSlop) || !p.CanKick() {
		return ChaseIntent{Dir: p.Pos.Direction(ball.Pos)}
	}

	goal := s.pitch.TargetGoal(p.Team)
	toGoal := p.Pos.Direction(goal)
	if math.Abs(goal.X-p.Pos.X) <= s.ai.ShootDistance {
		return KickIntent{
			Dir:      toGoal.Rotate(s.variance(s.ai.ShotVariance)),
			Power:    p.KickPower * s.ai.ShotPowerScale,
			Cooldown: s.cooldowns.Forward,
			Move:     toGoal,
		}
	}
	return DribbleIntent{Dir: toGoal}
}

// FormationTarget is where an outfield player waits when not contesting the ball.
// Depth follows the ball's progress up the pitch; players alternate above and
// below the halfway line by id parity and lean toward the ball's height.
func (s *AISystem) FormationTarget(p *entity.Player, ball entity.Vec2) entity.Vec2 {
	w := s.pitch.Width
	progress := ball.X / w
	if p.Team == entity.TeamAway {
		progress = 1 - progress
	}

	var depth float64
	switch p.Role {
	case entity.RoleForward:
		depth = forwardDepthBase + forwardDepthShift*progress
	default:
		depth = defenderDepthBase + defenderDepthShift*progress
	}

	x := depth * w
	if p.Team == entity.TeamAway {
		x = w - x
	}

	offset := s.ai.FormationSpread
	if p.ID%2 == 0 {
		offset = -offset
	}
	y := s.pitch.MidY() + offset
	y += (ball.Y - y) * s.ai.FormationPull

	return s.pitch.Clamp(entity.Vec2{X: x, Y: y}, p.Radius)
}

func (s *AISystem) moveTo(p *entity.Player, target entity.Vec2) Intent {
	if p.Pos.Dist(target) <= s.ai.HoldRadius {
		return HoldIntent{}
	}
	return ReturnIntent{Target: target, Dir: p.Pos.Direction(target)}
}

// variance returns a uniform angle in [-spread, spread)
func (s *AISystem) variance(spread float64) float64 {
	return (s.rng.Float64()*2 - 1) * spread
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
