package entity

// RoleStats holds the derived values a player gets from its role
type RoleStats struct {
	MaxSpeed  float64
	KickPower float64
	Radius    float64
	Mass      float64
}

// Player is one of the ten outfield or goalkeeping players
type Player struct {
	Body

	ID     EntityID
	Number int
	Team   Team
	Role   Role

	MaxSpeed  float64
	KickPower float64

	// Cooldown counts frames until the player may kick again.
	Cooldown int
}

// NewPlayer creates a player at rest at the spawn point with stats taken from its role
func NewPlayer(id EntityID, team Team, role Role, number int, spawn Vec2, stats RoleStats) *Player {
	return &Player{
		Body: Body{
			Pos:    spawn,
			Radius: stats.Radius,
			Mass:   stats.Mass,
		},
		ID:        id,
		Number:    number,
		Team:      team,
		Role:      role,
		MaxSpeed:  stats.MaxSpeed,
		KickPower: stats.KickPower,
	}
}

// CanKick returns true when the cooldown has fully elapsed
func (p *Player) CanKick() bool {
	return p.Cooldown == 0
}

// TickCooldown decrements the kick cooldown, never below zero
func (p *Player) TickCooldown() {
	if p.Cooldown > 0 {
		p.Cooldown--
	}
	if p.Cooldown < 0 {
		p.Cooldown = 0
	}
}
