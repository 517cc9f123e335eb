package entity

// Body is the physical shape shared by players and the ball.
// Position and velocity are in pixels and pixels per frame.
type Body struct {
	Pos    Vec2
	Vel    Vec2
	Radius float64
	Mass   float64 // reserved for impulse weighting; physics does not read it yet
}

// Speed returns the magnitude of the velocity
func (b *Body) Speed() float64 {
	return b.Vel.Len()
}

// Touching reports whether two bodies overlap
func (b *Body) Touching(o *Body) bool {
	return b.Pos.Dist(o.Pos) < b.Radius+o.Radius
}
