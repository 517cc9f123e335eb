package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is wrapped by every validation failure
var ErrInvalidConfig = errors.New("invalid config")

// EnvPrefix is prepended to environment overrides, e.g. STRIKER_PHYSICS_BALLFRICTION
const EnvPrefix = "STRIKER"

// Tie-break policies for simultaneous ball contact
const (
	TieBreakNearest = "nearest"
	TieBreakLast    = "last"
)

// Loader loads match configuration using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadMatch loads match.json on top of the built-in defaults,
// then applies STRIKER_* environment overrides and validates the result.
func (l *Loader) LoadMatch() (*MatchConfig, error) {
	data, err := fs.ReadFile(l.fsys, "match.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read match.json: %w", err)
	}
	return Parse(data)
}

// Parse decodes a match.json document
func Parse(data []byte) (*MatchConfig, error) {
	v := newViper()
	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to parse match.json: %w", err)
	}

	var cfg MatchConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode match.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without reading any file
func Default() *MatchConfig {
	v := newViper()
	var cfg MatchConfig
	// defaults are static and always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetConfigType("json")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logLevel", "info")

	v.SetDefault("display.screenWidth", 1000)
	v.SetDefault("display.screenHeight", 640)
	v.SetDefault("display.hudHeight", 40)
	v.SetDefault("display.scale", 1)
	v.SetDefault("display.framerate", 60)

	v.SetDefault("pitch.width", 1000.0)
	v.SetDefault("pitch.height", 600.0)
	v.SetDefault("pitch.goalWidth", 160.0)

	v.SetDefault("players.baseSpeed", 3.0)
	v.SetDefault("players.sprintSpeed", 3.6)
	v.SetDefault("players.kickPower", 9.0)
	v.SetDefault("players.radius", 14.0)
	v.SetDefault("players.mass", 1.0)

	v.SetDefault("ball.radius", 8.0)
	v.SetDefault("ball.mass", 0.45)

	v.SetDefault("physics.playerFriction", 0.86)
	v.SetDefault("physics.ballFriction", 0.985)
	v.SetDefault("physics.accelWeight", 0.35)
	v.SetDefault("physics.wallBounce", 0.7)
	v.SetDefault("physics.contactImpulse", 1.2)
	v.SetDefault("physics.kickSlop", 4.0)
	v.SetDefault("physics.goalTolerance", 4.0)
	v.SetDefault("physics.ownershipTieBreak", TieBreakNearest)

	v.SetDefault("control.hysteresis", 30.0)
	v.SetDefault("control.joystickRadius", 50.0)
	v.SetDefault("control.joystickThreshold", 0.35)

	v.SetDefault("cooldowns.user", 15)
	v.SetDefault("cooldowns.forward", 30)
	v.SetDefault("cooldowns.goalkeeper", 45)

	v.SetDefault("ai.keeperCloseRange", 120.0)
	v.SetDefault("ai.keeperBand", 70.0)
	v.SetDefault("ai.keeperLineOffset", 24.0)
	v.SetDefault("ai.keeperLaneDepth", 160.0)
	v.SetDefault("ai.defenderRange", 180.0)
	v.SetDefault("ai.forwardRange", 320.0)
	v.SetDefault("ai.shootDistance", 320.0)
	v.SetDefault("ai.shotPowerScale", 1.1)
	v.SetDefault("ai.shotVariance", 0.15)
	v.SetDefault("ai.clearVariance", 0.35)
	v.SetDefault("ai.formationSpread", 90.0)
	v.SetDefault("ai.formationPull", 0.3)
	v.SetDefault("ai.holdRadius", 4.0)

	v.SetDefault("match.quarters", 4)
	v.SetDefault("match.quarterSeconds", 90.0)
	v.SetDefault("match.breakSeconds", 3.0)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.sampleRate", 44100)
	v.SetDefault("audio.volume", 0.6)

	v.SetDefault("commentary.enabled", false)
	v.SetDefault("commentary.endpoint", "")
	v.SetDefault("commentary.apiKey", "")
	v.SetDefault("commentary.timeoutSeconds", 8.0)
	v.SetDefault("commentary.queueSize", 8)
	v.SetDefault("commentary.cacheSize", 64)
}

// Validate rejects tunings the simulation cannot run with
func (c *MatchConfig) Validate() error {
	switch {
	case c.Pitch.Width <= 0 || c.Pitch.Height <= 0:
		return fmt.Errorf("%w: pitch must have positive size", ErrInvalidConfig)
	case c.Pitch.GoalWidth <= 0 || c.Pitch.GoalWidth >= c.Pitch.Height:
		return fmt.Errorf("%w: goal width %.1f must be in (0, pitch height)", ErrInvalidConfig, c.Pitch.GoalWidth)
	case c.Players.Radius <= 0 || c.Ball.Radius <= 0:
		return fmt.Errorf("%w: radii must be positive", ErrInvalidConfig)
	case !inUnit(c.Physics.PlayerFriction) || !inUnit(c.Physics.BallFriction):
		return fmt.Errorf("%w: friction must be in (0, 1]", ErrInvalidConfig)
	case c.Physics.WallBounce < 0 || c.Physics.WallBounce > 1:
		return fmt.Errorf("%w: wall bounce must be in [0, 1]", ErrInvalidConfig)
	case c.Players.BaseSpeed <= 0 || c.Players.SprintSpeed <= 0:
		return fmt.Errorf("%w: player speeds must be positive", ErrInvalidConfig)
	case c.Cooldowns.User < 0 || c.Cooldowns.Forward < 0 || c.Cooldowns.Goalkeeper < 0:
		return fmt.Errorf("%w: cooldowns must not be negative", ErrInvalidConfig)
	case c.Display.Framerate <= 0:
		return fmt.Errorf("%w: framerate must be positive", ErrInvalidConfig)
	case c.Match.Quarters <= 0 || c.Match.QuarterSeconds <= 0:
		return fmt.Errorf("%w: match needs at least one timed quarter", ErrInvalidConfig)
	}

	switch c.Physics.OwnershipTieBreak {
	case TieBreakNearest, TieBreakLast:
	default:
		return fmt.Errorf("%w: unknown ownership tie-break %q", ErrInvalidConfig, c.Physics.OwnershipTieBreak)
	}
	return nil
}

func inUnit(f float64) bool {
	return f > 0 && f <= 1
}
