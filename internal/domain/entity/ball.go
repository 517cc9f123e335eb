package entity

// Ball is the match ball. Owner is advisory: the last player to touch it.
type Ball struct {
	Body
	Owner EntityID
}

// NewBall creates a ball at rest on the centre spot with no owner
func NewBall(pitch *Pitch, radius, mass float64) *Ball {
	return &Ball{
		Body: Body{
			Pos:    pitch.Center(),
			Radius: radius,
			Mass:   mass,
		},
		Owner: NoOwner,
	}
}

// Owned returns true if some player owns the ball
func (b *Ball) Owned() bool {
	return b.Owner != NoOwner
}
