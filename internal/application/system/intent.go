package system

import "github.com/younwookim/striker/internal/domain/entity"

// Intent is what a computer-controlled player decides to do this frame
type Intent interface {
	// Heading is the unit movement direction, zero to stand still
	Heading() entity.Vec2
	isIntent()
}

// ChaseIntent runs straight at the ball
type ChaseIntent struct {
	Dir entity.Vec2
}

func (i ChaseIntent) Heading() entity.Vec2 { return i.Dir }
func (ChaseIntent) isIntent() {}

// DribbleIntent carries the ball toward the opposing goal without kicking
type DribbleIntent struct {
	Dir entity.Vec2
}

func (i DribbleIntent) Heading() entity.Vec2 { return i.Dir }
func (DribbleIntent) isIntent() {}

// ReturnIntent heads back to a formation or goal-line spot
type ReturnIntent struct {
	Target entity.Vec2
	Dir    entity.Vec2
}

func (i ReturnIntent) Heading() entity.Vec2 { return i.Dir }
func (ReturnIntent) isIntent() {}

// KickIntent strikes the ball along Dir while still moving along Move
type KickIntent struct {
	Dir      entity.Vec2
	Power    float64
	Cooldown int // frames
	Move     entity.Vec2
}

func (i KickIntent) Heading() entity.Vec2 { return i.Move }
func (KickIntent) isIntent() {}

// HoldIntent stands still, already in position
type HoldIntent struct{}

func (HoldIntent) Heading() entity.Vec2 { return entity.Vec2{} }
func (HoldIntent) isIntent() {}
