package playing

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/striker/internal/application/system"
)

// readInput samples the keyboard and touch screen for this frame. It also
// reports the pause and restart edges, which never reach the simulation.
func (p *Playing) readInput() (in system.InputState, pause, restart bool) {
	in = system.InputState{
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft) || ebiten.IsKeyPressed(ebiten.KeyA),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight) || ebiten.IsKeyPressed(ebiten.KeyD),
		Kick:  inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyK),
	}

	var touches []touchPoint
	for _, id := range ebiten.AppendTouchIDs(nil) {
		x, y := ebiten.TouchPosition(id)
		touches = append(touches, touchPoint{id: id, x: x, y: y})
	}
	active, dx, dy, tap := p.stick.update(touches, inpututil.AppendJustPressedTouchIDs(nil))
	in.JoystickActive = active
	in.JoystickX = dx
	in.JoystickY = dy
	in.Kick = in.Kick || tap

	pause = inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP)
	restart = inpututil.IsKeyJustPressed(ebiten.KeyEnter) || in.Kick
	return in, pause, restart
}

type touchPoint struct {
	id   ebiten.TouchID
	x, y int
}

// touchStick is a floating virtual joystick. A touch that starts left of
// splitX anchors the stick where it lands; a touch that starts right of it
// is a kick.
type touchStick struct {
	splitX int

	active           bool
	id               ebiten.TouchID
	originX, originY int
	x, y             int
}

// update consumes the current touches and the IDs that began this frame.
// It returns the stick offset from its origin in pixels.
func (s *touchStick) update(touches []touchPoint, started []ebiten.TouchID) (active bool, dx, dy float64, kick bool) {
	if s.active {
		s.active = false
		for _, t := range touches {
			if t.id == s.id {
				s.active = true
				s.x, s.y = t.x, t.y
				break
			}
		}
	}

	for _, id := range started {
		for _, t := range touches {
			if t.id != id {
				continue
			}
			switch {
			case t.x >= s.splitX:
				kick = true
			case !s.active:
				s.active = true
				s.id = id
				s.originX, s.originY = t.x, t.y
				s.x, s.y = t.x, t.y
			}
		}
	}

	if !s.active {
		return false, 0, 0, kick
	}
	return true, float64(s.x - s.originX), float64(s.y - s.originY), kick
}
