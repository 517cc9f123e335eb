package system

import (
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// InputState holds the raw held signals for one frame, from any device.
// Keyboard arrows/WASD set the four booleans; a virtual joystick reports
// its offset from the touch origin in pixels.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
	Kick  bool

	JoystickActive bool
	JoystickX      float64
	JoystickY      float64
}

// Command is the device-agnostic result of mapping an InputState
type Command struct {
	Move entity.Vec2 // unit length or zero
	Kick bool
}

// InputMapper turns held signals into a movement direction and an action flag
type InputMapper struct {
	config *config.ControlConfig
}

// NewInputMapper creates a new input mapper
func NewInputMapper(cfg *config.ControlConfig) *InputMapper {
	return &InputMapper{config: cfg}
}

// Map converts raw input into a Command. It keeps no state between frames.
func (m *InputMapper) Map(in InputState) Command {
	held := m.mergeJoystick(in)

	var dir entity.Vec2
	if held.Left {
		dir.X--
	}
	if held.Right {
		dir.X++
	}
	if held.Up {
		dir.Y--
	}
	if held.Down {
		dir.Y++
	}

	return Command{
		Move: dir.Normalize(),
		Kick: in.Kick,
	}
}

// mergeJoystick clamps the stick offset to its radius and thresholds each
// axis into the same four booleans the keyboard produces
func (m *InputMapper) mergeJoystick(in InputState) InputState {
	if !in.JoystickActive {
		return in
	}

	radius := m.config.JoystickRadius
	offset := entity.Vec2{X: in.JoystickX, Y: in.JoystickY}.ClampLen(radius)
	threshold := m.config.JoystickThreshold * radius

	if offset.X < -threshold {
		in.Left = true
	}
	if offset.X > threshold {
		in.Right = true
	}
	if offset.Y < -threshold {
		in.Up = true
	}
	if offset.Y > threshold {
		in.Down = true
	}
	return in
}
