package system

import "github.com/younwookim/striker/internal/domain/entity"

// KickEvent reports a kick to fire-and-forget listeners such as audio
type KickEvent struct {
	PlayerID entity.EntityID
	Team     entity.Team
	Power    float64
}

// InKickRange reports whether the ball is close enough for p to strike it
func InKickRange(p *entity.Player, ball *entity.Ball, slop float64) bool {
	return p.Pos.Dist(ball.Pos) <= p.Radius+ball.Radius+slop
}

// ApplyKick adds a kick of the given power along dir to the ball, clears the
// ball's owner and starts the kicker's cooldown. The caller checks range and cooldown.
func ApplyKick(p *entity.Player, ball *entity.Ball, dir entity.Vec2, power float64, cooldown int) KickEvent {
	ball.Vel = ball.Vel.Add(dir.Normalize().Scale(power))
	ball.Owner = entity.NoOwner
	p.Cooldown = cooldown
	return KickEvent{PlayerID: p.ID, Team: p.Team, Power: power}
}
