package entity

// EntityID is a stable per-match identifier for a player. 0 means "no entity".
type EntityID uint32

// NoOwner is the ball owner value when no player has touched it
const NoOwner EntityID = 0

// Team identifies one of the two sides
type Team int

const (
	// TeamHome defends the left goal and is controlled by the user
	TeamHome Team = iota
	// TeamAway defends the right goal
	TeamAway
)

// String returns the display name of the team
func (t Team) String() string {
	switch t {
	case TeamHome:
		return "Home"
	case TeamAway:
		return "Away"
	default:
		return "Unknown"
	}
}

// Opponent returns the other team
func (t Team) Opponent() Team {
	if t == TeamHome {
		return TeamAway
	}
	return TeamHome
}

// AttackDir returns +1 for a team attacking toward increasing X, -1 otherwise
func (t Team) AttackDir() float64 {
	if t == TeamHome {
		return 1
	}
	return -1
}

// Forward returns the unit vector pointing at the opposing goal
func (t Team) Forward() Vec2 {
	return Vec2{X: t.AttackDir()}
}

// Role is a player's tactical position
type Role int

const (
	RoleGoalkeeper Role = iota
	RoleDefender
	RoleForward
)

// String returns the string representation of the role
func (r Role) String() string {
	switch r {
	case RoleGoalkeeper:
		return "Goalkeeper"
	case RoleDefender:
		return "Defender"
	case RoleForward:
		return "Forward"
	default:
		return "Unknown"
	}
}

// PlayersPerTeam is fixed at five-a-side
const PlayersPerTeam = 5
