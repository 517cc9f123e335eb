package system

import (
	"math"

	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// PhysicsSystem integrates movement and resolves walls, goals and ball contact
type PhysicsSystem struct {
	config    *config.PhysicsConfig
	pitch     *entity.Pitch
	laneDepth float64
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg *config.MatchConfig, pitch *entity.Pitch) *PhysicsSystem {
	return &PhysicsSystem{
		config:    &cfg.Physics,
		pitch:     pitch,
		laneDepth: cfg.AI.KeeperLaneDepth,
	}
}

// MovePlayers applies each player's heading and integrates its position.
// headings is indexed like st.Players.
func (s *PhysicsSystem) MovePlayers(st *entity.MatchState, headings []entity.Vec2) {
	for i, p := range st.Players {
		var dir entity.Vec2
		if i < len(headings) {
			dir = headings[i]
		}
		s.movePlayer(p, dir)
	}
}

// movePlayer accelerates along dir, decays by friction, caps speed, then clamps to the pitch
func (s *PhysicsSystem) movePlayer(p *entity.Player, dir entity.Vec2) {
	p.Vel = p.Vel.Add(dir.Scale(p.MaxSpeed * s.config.AccelWeight))
	p.Vel = p.Vel.Scale(s.config.PlayerFriction)
	p.Vel = p.Vel.ClampLen(p.MaxSpeed)

	p.Pos = s.pitch.Clamp(p.Pos.Add(p.Vel), p.Radius)

	if p.Role == entity.RoleGoalkeeper {
		s.clampToLane(p)
	}
}

// clampToLane keeps a goalkeeper within laneDepth of its own goal line
func (s *PhysicsSystem) clampToLane(p *entity.Player) {
	if s.laneDepth <= p.Radius {
		return
	}
	if p.Team == entity.TeamHome {
		p.Pos.X = clampFloat(p.Pos.X, p.Radius, s.laneDepth)
	} else {
		p.Pos.X = clampFloat(p.Pos.X, s.pitch.Width-s.laneDepth, s.pitch.Width-p.Radius)
	}
}

// UpdateBall applies friction, integrates and resolves the four edges.
// It returns the scoring team when the ball crosses a goal line inside the mouth.
func (s *PhysicsSystem) UpdateBall(b *entity.Ball) (scorer entity.Team, scored bool) {
	b.Vel = b.Vel.Scale(s.config.BallFriction)
	b.Pos = b.Pos.Add(b.Vel)

	r := b.Radius
	bounce := s.config.WallBounce

	// Top and bottom are always walls
	if b.Pos.Y < r {
		b.Pos.Y = r
		b.Vel.Y = math.Abs(b.Vel.Y) * bounce
	} else if b.Pos.Y > s.pitch.Height-r {
		b.Pos.Y = s.pitch.Height - r
		b.Vel.Y = -math.Abs(b.Vel.Y) * bounce
	}

	inMouth := s.pitch.InGoalMouth(b.Pos.Y, s.config.GoalTolerance)

	// Left edge: the away side scores here
	if b.Pos.X < r {
		if inMouth {
			if b.Pos.X < 0 {
				return entity.TeamAway, true
			}
		} else {
			b.Pos.X = r
			b.Vel.X = math.Abs(b.Vel.X) * bounce
		}
	}

	// Right edge: the home side scores here
	if b.Pos.X > s.pitch.Width-r {
		if inMouth {
			if b.Pos.X > s.pitch.Width {
				return entity.TeamHome, true
			}
		} else {
			b.Pos.X = s.pitch.Width - r
			b.Vel.X = -math.Abs(b.Vel.X) * bounce
		}
	}

	return 0, false
}

// ResolveContacts pushes the ball away from every overlapping player and
// assigns ownership according to the configured tie-break
func (s *PhysicsSystem) ResolveContacts(st *entity.MatchState) {
	ball := st.Ball

	var owner *entity.Player
	ownerDist := math.Inf(1)

	for _, p := range st.Players {
		if !p.Touching(&ball.Body) {
			continue
		}
		d := p.Pos.Dist(ball.Pos)

		n := ball.Pos.Sub(p.Pos).Normalize()
		if n.IsZero() {
			n = p.Team.Forward()
		}
		ball.Vel = ball.Vel.Add(n.Scale(s.config.ContactImpulse))

		switch s.config.OwnershipTieBreak {
		case config.TieBreakLast:
			owner = p
		default:
			// strict less: equal distances keep the earlier player
			if d < ownerDist {
				owner, ownerDist = p, d
			}
		}
	}

	if owner != nil {
		ball.Owner = owner.ID
	}
}
