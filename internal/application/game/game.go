// Package game drives the current Scene from ebiten's fixed-rate loop.
package game

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/striker/internal/application/scene"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	frames  uint64
}

// New creates a Game showing initialScene. OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
	}
	g.current.OnEnter()
	return g
}

// Update advances the current scene one frame and applies any transition.
func (g *Game) Update() error {
	next, err := g.current.Update()
	if err != nil {
		return err
	}
	g.frames++

	if next != nil {
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// Draw renders the current scene.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the logical screen size regardless of window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// Frames returns how many updates completed without error
func (g *Game) Frames() uint64 {
	return g.frames
}

// Close runs OnExit on the current scene
func (g *Game) Close() {
	g.current.OnExit()
}
