// Package scene defines the screens the frame loop can show.
package scene

import "github.com/hajimehoshi/ebiten/v2"

// Scene is one screen of the game (the match itself, a results card).
//
// The loop calls Update exactly once per fixed simulation frame and Draw once
// per rendered frame. Returning a non-nil Scene from Update switches screens.
type Scene interface {
	// Update advances the scene by one frame.
	// A non-nil error stops the game.
	Update() (next Scene, err error)

	// Draw renders the scene.
	Draw(screen *ebiten.Image)

	// OnEnter runs every time the scene becomes current.
	OnEnter()

	// OnExit runs when the scene is replaced or the game shuts down.
	OnExit()
}
