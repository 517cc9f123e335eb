package system

import (
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// LoadSetup converts a MatchConfig into the pitch and role stats used at kickoff.
// Keepers and defenders run at base speed, forwards at sprint speed.
func LoadSetup(cfg *config.MatchConfig) entity.Setup {
	pitch := &entity.Pitch{
		Width:     cfg.Pitch.Width,
		Height:    cfg.Pitch.Height,
		GoalWidth: cfg.Pitch.GoalWidth,
	}

	base := entity.RoleStats{
		MaxSpeed:  cfg.Players.BaseSpeed,
		KickPower: cfg.Players.KickPower,
		Radius:    cfg.Players.Radius,
		Mass:      cfg.Players.Mass,
	}
	forward := base
	forward.MaxSpeed = cfg.Players.SprintSpeed

	return entity.Setup{
		Pitch: pitch,
		Roles: map[entity.Role]entity.RoleStats{
			entity.RoleGoalkeeper: base,
			entity.RoleDefender:   base,
			entity.RoleForward:    forward,
		},
		BallRadius: cfg.Ball.Radius,
		BallMass:   cfg.Ball.Mass,
	}
}
