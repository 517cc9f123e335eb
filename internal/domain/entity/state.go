package entity

// Setup is everything needed to lay out a kickoff
type Setup struct {
	Pitch      *Pitch
	Roles      map[Role]RoleStats
	BallRadius float64
	BallMass   float64
}

// slot is a spawn point expressed as fractions of the pitch, for the home side
type slot struct {
	role   Role
	number int
	fx, fy float64
}

// kickoffSlots lists the home formation: one keeper, two defenders, two forwards.
// The away side is the mirror image.
var kickoffSlots = [PlayersPerTeam]slot{
	{RoleGoalkeeper, 1, 0.04, 0.50},
	{RoleDefender, 2, 0.22, 0.32},
	{RoleDefender, 3, 0.22, 0.68},
	{RoleForward, 4, 0.40, 0.38},
	{RoleForward, 5, 0.40, 0.62},
}

// KickoffActiveID is the home forward given control at every kickoff
const KickoffActiveID EntityID = 4

// MatchState is the complete mutable simulation state for one frame
type MatchState struct {
	Players  []*Player
	Ball     *Ball
	ActiveID EntityID
	Frame    uint64
}

// Kickoff builds a fresh state with every entity at its starting spot
func Kickoff(setup Setup) *MatchState {
	players := make([]*Player, 0, 2*PlayersPerTeam)
	id := EntityID(1)
	for _, team := range []Team{TeamHome, TeamAway} {
		for _, s := range kickoffSlots {
			players = append(players, NewPlayer(id, team, s.role, s.number, SpawnPoint(setup.Pitch, team, s.fx, s.fy), setup.Roles[s.role]))
			id++
		}
	}

	return &MatchState{
		Players:  players,
		Ball:     NewBall(setup.Pitch, setup.BallRadius, setup.BallMass),
		ActiveID: KickoffActiveID,
	}
}

// Reset puts every entity back to the kickoff layout. The frame counter survives.
func (s *MatchState) Reset(setup Setup) {
	frame := s.Frame
	*s = *Kickoff(setup)
	s.Frame = frame
}

// SpawnPoint converts a home-side fractional spot to pitch coordinates for the team
func SpawnPoint(pitch *Pitch, team Team, fx, fy float64) Vec2 {
	x := fx * pitch.Width
	if team == TeamAway {
		x = pitch.Width - x
	}
	return Vec2{x, fy * pitch.Height}
}

// Player returns the player with the given id, or nil
func (s *MatchState) Player(id EntityID) *Player {
	for _, p := range s.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Active returns the user-controlled player, or nil if the id is stale
func (s *MatchState) Active() *Player {
	return s.Player(s.ActiveID)
}

// TeamPlayers returns the players of one side in roster order
func (s *MatchState) TeamPlayers(t Team) []*Player {
	out := make([]*Player, 0, PlayersPerTeam)
	for _, p := range s.Players {
		if p.Team == t {
			out = append(out, p)
		}
	}
	return out
}

// HasPossession reports whether the ball's owner plays for the team
func (s *MatchState) HasPossession(t Team) bool {
	if !s.Ball.Owned() {
		return false
	}
	owner := s.Player(s.Ball.Owner)
	return owner != nil && owner.Team == t
}
