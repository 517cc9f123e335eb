package entity

// Pitch is the immutable match geometry. Goal mouths sit at mid-height on
// both vertical edges.
type Pitch struct {
	Width     float64
	Height    float64
	GoalWidth float64
}

// Center returns the centre spot
func (p *Pitch) Center() Vec2 {
	return Vec2{p.Width / 2, p.Height / 2}
}

// MidY returns the vertical centre line
func (p *Pitch) MidY() float64 {
	return p.Height / 2
}

// GoalTop returns the upper post Y coordinate
func (p *Pitch) GoalTop() float64 {
	return p.MidY() - p.GoalWidth/2
}

// GoalBottom returns the lower post Y coordinate
func (p *Pitch) GoalBottom() float64 {
	return p.MidY() + p.GoalWidth/2
}

// InGoalMouth reports whether y is strictly inside the goal band widened by tolerance
func (p *Pitch) InGoalMouth(y, tolerance float64) bool {
	return y > p.GoalTop()-tolerance && y < p.GoalBottom()+tolerance
}

// OwnGoalX returns the X coordinate of the goal line the team defends
func (p *Pitch) OwnGoalX(t Team) float64 {
	if t == TeamHome {
		return 0
	}
	return p.Width
}

// TargetGoal returns the centre of the goal the team attacks
func (p *Pitch) TargetGoal(t Team) Vec2 {
	return Vec2{p.OwnGoalX(t.Opponent()), p.MidY()}
}

// Clamp keeps a circle of the given radius fully inside the pitch
func (p *Pitch) Clamp(pos Vec2, radius float64) Vec2 {
	return Vec2{
		X: clamp(pos.X, radius, p.Width-radius),
		Y: clamp(pos.Y, radius, p.Height-radius),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
