package replay

import "github.com/younwookim/striker/internal/application/system"

// FormatVersion is written into every recording
const FormatVersion = "1.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int     `json:"f"`            // Frame number
	L  bool    `json:"l,omitempty"`  // Left
	R  bool    `json:"r,omitempty"`  // Right
	U  bool    `json:"u,omitempty"`  // Up
	D  bool    `json:"d,omitempty"`  // Down
	K  bool    `json:"k,omitempty"`  // Kick
	JA bool    `json:"ja,omitempty"` // JoystickActive
	JX float64 `json:"jx,omitempty"` // JoystickX
	JY float64 `json:"jy,omitempty"` // JoystickY
}

// NewFrameInput captures one frame of device input
func NewFrameInput(frame int, in system.InputState) FrameInput {
	return FrameInput{
		F:  frame,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		K:  in.Kick,
		JA: in.JoystickActive,
		JX: in.JoystickX,
		JY: in.JoystickY,
	}
}

// Input converts the recorded frame back into simulation input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:           fi.L,
		Right:          fi.R,
		Up:             fi.U,
		Down:           fi.D,
		Kick:           fi.K,
		JoystickActive: fi.JA,
		JoystickX:      fi.JX,
		JoystickY:      fi.JY,
	}
}

// ReplayData contains all data needed to replay a match
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}
