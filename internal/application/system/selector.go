package system

import (
	"math"

	"github.com/younwookim/striker/internal/domain/entity"
)

// Selector picks which of the user's players receives input each frame
type Selector struct {
	team       entity.Team
	hysteresis float64
}

// NewSelector creates a selector for the user's team.
// A teammate must be closer to the ball than the active player by more
// than hysteresis pixels to take control.
func NewSelector(team entity.Team, hysteresis float64) *Selector {
	return &Selector{team: team, hysteresis: hysteresis}
}

// Select returns the id that should be active this frame
func (s *Selector) Select(st *entity.MatchState) entity.EntityID {
	var closest *entity.Player
	closestDist := math.Inf(1)
	for _, p := range st.TeamPlayers(s.team) {
		d := p.Pos.Dist(st.Ball.Pos)
		if d < closestDist {
			closest, closestDist = p, d
		}
	}
	if closest == nil {
		return st.ActiveID
	}

	active := st.Active()
	if active == nil || active.Team != s.team {
		// stale id: fall back to whoever is nearest
		return closest.ID
	}

	activeDist := active.Pos.Dist(st.Ball.Pos)
	if closest.ID != active.ID && activeDist-closestDist > s.hysteresis {
		return closest.ID
	}
	return active.ID
}
