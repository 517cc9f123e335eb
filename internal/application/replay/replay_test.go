package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/striker/internal/application/system"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

func TestFrameInput_RoundTripsInput(t *testing.T) {
	in := system.InputState{
		Up:             true,
		Left:           true,
		Kick:           true,
		JoystickActive: true,
		JoystickX:      -12.5,
		JoystickY:      40,
	}

	fi := NewFrameInput(7, in)

	assert.Equal(t, 7, fi.F)
	assert.Equal(t, in, fi.Input())
}

func TestReplayer_GetInput(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, K: true},
			{F: 2, JA: true, JX: 30, JY: -10},
		},
	}

	replayer := NewReplayer(data)

	// Frame 0
	input, ok := replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Left)
	assert.False(t, input.Right)

	// Frame 1
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.Right)
	assert.True(t, input.Kick)

	// Frame 2
	input, ok = replayer.GetInput()
	require.True(t, ok)
	assert.True(t, input.JoystickActive)
	assert.Equal(t, 30.0, input.JoystickX)
	assert.Equal(t, -10.0, input.JoystickY)
	assert.True(t, replayer.Done())

	// End of frames
	_, ok = replayer.GetInput()
	assert.False(t, ok)
}

func TestReplayer_CurrentFrame(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(5, 1))

	assert.Equal(t, 0, replayer.CurrentFrame())

	replayer.GetInput()
	assert.Equal(t, 1, replayer.CurrentFrame())

	replayer.GetInput()
	replayer.GetInput()
	assert.Equal(t, 3, replayer.CurrentFrame())
	assert.Equal(t, 5, replayer.TotalFrames())
}

func TestReplayer_Seed(t *testing.T) {
	replayer := NewReplayer(ReplayData{Seed: 99999})

	assert.Equal(t, int64(99999), replayer.Seed())
}

func TestReplayer_Reset(t *testing.T) {
	replayer := NewReplayer(CreateTestReplayData(3, 1))

	// Advance to end
	for !replayer.Done() {
		replayer.GetInput()
	}
	_, ok := replayer.GetInput()
	assert.False(t, ok)

	// Reset
	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())

	// Should be able to read again
	input, ok := replayer.GetInput()
	assert.True(t, ok)
	assert.True(t, input.Kick, "frame 0 kicks")
}

func TestLoadReplay(t *testing.T) {
	dir := t.TempDir()

	t.Run("reads a saved recording", func(t *testing.T) {
		want := CreateTestReplayData(10, 5)
		raw, err := json.Marshal(want)
		require.NoError(t, err)
		path := filepath.Join(dir, "ok.json")
		require.NoError(t, os.WriteFile(path, raw, 0o644))

		got, err := LoadReplay(path)

		require.NoError(t, err)
		assert.Equal(t, want, *got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadReplay(filepath.Join(dir, "nope.json"))
		assert.Error(t, err)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{frames"), 0o644))

		_, err := LoadReplay(path)
		assert.ErrorContains(t, err, "failed to decode replay")
	})
}

func TestRunner(t *testing.T) {
	runner := NewRunner(config.Default(), zerolog.Nop())

	t.Run("empty recording", func(t *testing.T) {
		_, err := runner.Run(ReplayData{Seed: 1})
		assert.ErrorIs(t, err, ErrNoFrames)
	})

	t.Run("same recording same result", func(t *testing.T) {
		data := CreateTestReplayData(1200, 77)

		a, err := runner.Run(data)
		require.NoError(t, err)
		b, err := runner.Run(data)
		require.NoError(t, err)

		assert.Equal(t, 1200, a.Frames)
		assert.Equal(t, uint64(1200), a.Final.Frame)
		assert.Equal(t, a, b)
	})

	t.Run("short quarters reach full time", func(t *testing.T) {
		cfg := config.Default()
		cfg.Match.QuarterSeconds = 1
		cfg.Match.BreakSeconds = 0.5

		// 4 x 60 frames of play plus 3 x 30 frames of break
		res, err := NewRunner(cfg, zerolog.Nop()).Run(CreateTestReplayData(400, 3))

		require.NoError(t, err)
		assert.Equal(t, "FullTime", res.Phase.String())
		assert.Equal(t, uint64(240), res.Final.Frame)
	})
}
