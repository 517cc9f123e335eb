package config

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadMatch(t *testing.T) {
	loader := NewLoader("../../../cmd/game/configs")

	cfg, err := loader.LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 1000, cfg.Display.ScreenWidth)
	assert.Equal(t, 60, cfg.Display.Framerate)
	assert.Equal(t, 1000.0, cfg.Pitch.Width)
	assert.Equal(t, 600.0, cfg.Pitch.Height)
	assert.Equal(t, 160.0, cfg.Pitch.GoalWidth)
	assert.Equal(t, 0.985, cfg.Physics.BallFriction)
	assert.Equal(t, TieBreakNearest, cfg.Physics.OwnershipTieBreak)
	assert.Equal(t, 45, cfg.Cooldowns.Goalkeeper)
	assert.Equal(t, 1.1, cfg.AI.ShotPowerScale)
	assert.Equal(t, 4, cfg.Match.Quarters)
	assert.False(t, cfg.Commentary.Enabled)
}

func TestLoader_DefaultsFillMissingKeys(t *testing.T) {
	fsys := fstest.MapFS{
		"match.json": {Data: []byte(`{"pitch": {"width": 800}}`)},
	}

	cfg, err := NewFSLoader(fsys, "mem").LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 800.0, cfg.Pitch.Width)
	assert.Equal(t, 600.0, cfg.Pitch.Height, "default height")
	assert.Equal(t, 30.0, cfg.Control.Hysteresis)
	assert.Equal(t, 15, cfg.Cooldowns.User)
}

func TestLoader_EnvOverride(t *testing.T) {
	t.Setenv("STRIKER_PHYSICS_BALLFRICTION", "0.9")
	t.Setenv("STRIKER_COOLDOWNS_USER", "3")

	cfg, err := NewLoader("../../../cmd/game/configs").LoadMatch()
	require.NoError(t, err)

	assert.Equal(t, 0.9, cfg.Physics.BallFriction)
	assert.Equal(t, 3, cfg.Cooldowns.User)
}

func TestLoader_MissingFile(t *testing.T) {
	_, err := NewFSLoader(fstest.MapFS{}, "mem").LoadMatch()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "match.json")
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte(`{"pitch": `))
	require.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000.0, cfg.Pitch.Width)
	assert.Equal(t, 3.6, cfg.Players.SprintSpeed)
}

func TestMatchConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *MatchConfig)
	}{
		{"zero width", func(c *MatchConfig) { c.Pitch.Width = 0 }},
		{"goal wider than pitch", func(c *MatchConfig) { c.Pitch.GoalWidth = 700 }},
		{"zero ball radius", func(c *MatchConfig) { c.Ball.Radius = 0 }},
		{"friction above one", func(c *MatchConfig) { c.Physics.BallFriction = 1.2 }},
		{"negative bounce", func(c *MatchConfig) { c.Physics.WallBounce = -0.1 }},
		{"negative cooldown", func(c *MatchConfig) { c.Cooldowns.Forward = -1 }},
		{"no quarters", func(c *MatchConfig) { c.Match.Quarters = 0 }},
		{"unknown tie-break", func(c *MatchConfig) { c.Physics.OwnershipTieBreak = "random" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
