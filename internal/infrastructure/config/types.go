package config

// MatchConfig is the root config for match.json
type MatchConfig struct {
	LogLevel   string           `json:"logLevel" mapstructure:"logLevel"`
	Display    DisplayConfig    `json:"display" mapstructure:"display"`
	Pitch      PitchConfig      `json:"pitch" mapstructure:"pitch"`
	Players    PlayersConfig    `json:"players" mapstructure:"players"`
	Ball       BallConfig       `json:"ball" mapstructure:"ball"`
	Physics    PhysicsConfig    `json:"physics" mapstructure:"physics"`
	Control    ControlConfig    `json:"control" mapstructure:"control"`
	Cooldowns  CooldownConfig   `json:"cooldowns" mapstructure:"cooldowns"`
	AI         AIConfig         `json:"ai" mapstructure:"ai"`
	Match      RulesConfig      `json:"match" mapstructure:"match"`
	Audio      AudioConfig      `json:"audio" mapstructure:"audio"`
	Commentary CommentaryConfig `json:"commentary" mapstructure:"commentary"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth" mapstructure:"screenWidth"`
	ScreenHeight int `json:"screenHeight" mapstructure:"screenHeight"`
	HUDHeight    int `json:"hudHeight" mapstructure:"hudHeight"`
	Scale        int `json:"scale" mapstructure:"scale"`
	Framerate    int `json:"framerate" mapstructure:"framerate"`
}

// PitchConfig is the fixed match geometry in pixels
type PitchConfig struct {
	Width     float64 `json:"width" mapstructure:"width"`
	Height    float64 `json:"height" mapstructure:"height"`
	GoalWidth float64 `json:"goalWidth" mapstructure:"goalWidth"`
}

type PlayersConfig struct {
	BaseSpeed   float64 `json:"baseSpeed" mapstructure:"baseSpeed"`     // px/frame, keepers and defenders
	SprintSpeed float64 `json:"sprintSpeed" mapstructure:"sprintSpeed"` // px/frame, forwards
	KickPower   float64 `json:"kickPower" mapstructure:"kickPower"`
	Radius      float64 `json:"radius" mapstructure:"radius"`
	Mass        float64 `json:"mass" mapstructure:"mass"`
}

type BallConfig struct {
	Radius float64 `json:"radius" mapstructure:"radius"`
	Mass   float64 `json:"mass" mapstructure:"mass"`
}

// PhysicsConfig holds per-frame integration and collision tuning
type PhysicsConfig struct {
	PlayerFriction float64 `json:"playerFriction" mapstructure:"playerFriction"` // velocity multiplier per frame
	BallFriction   float64 `json:"ballFriction" mapstructure:"ballFriction"`
	AccelWeight    float64 `json:"accelWeight" mapstructure:"accelWeight"` // fraction of max speed added per frame of input
	WallBounce     float64 `json:"wallBounce" mapstructure:"wallBounce"`
	ContactImpulse float64 `json:"contactImpulse" mapstructure:"contactImpulse"`
	KickSlop       float64 `json:"kickSlop" mapstructure:"kickSlop"`
	GoalTolerance  float64 `json:"goalTolerance" mapstructure:"goalTolerance"`

	// OwnershipTieBreak picks the owner when several players touch the ball
	// in one frame: "nearest" or "last" (iteration order).
	OwnershipTieBreak string `json:"ownershipTieBreak" mapstructure:"ownershipTieBreak"`
}

type ControlConfig struct {
	Hysteresis        float64 `json:"hysteresis" mapstructure:"hysteresis"`               // px a teammate must gain to take control
	JoystickRadius    float64 `json:"joystickRadius" mapstructure:"joystickRadius"`       // max virtual stick displacement, px
	JoystickThreshold float64 `json:"joystickThreshold" mapstructure:"joystickThreshold"` // fraction of radius per axis
}

// CooldownConfig values are in frames
type CooldownConfig struct {
	User       int `json:"user" mapstructure:"user"`
	Forward    int `json:"forward" mapstructure:"forward"`
	Goalkeeper int `json:"goalkeeper" mapstructure:"goalkeeper"`
}

type AIConfig struct {
	KeeperCloseRange float64 `json:"keeperCloseRange" mapstructure:"keeperCloseRange"`
	KeeperBand       float64 `json:"keeperBand" mapstructure:"keeperBand"`
	KeeperLineOffset float64 `json:"keeperLineOffset" mapstructure:"keeperLineOffset"`
	KeeperLaneDepth  float64 `json:"keeperLaneDepth" mapstructure:"keeperLaneDepth"`
	DefenderRange    float64 `json:"defenderRange" mapstructure:"defenderRange"`
	ForwardRange     float64 `json:"forwardRange" mapstructure:"forwardRange"`
	ShootDistance    float64 `json:"shootDistance" mapstructure:"shootDistance"`
	ShotPowerScale   float64 `json:"shotPowerScale" mapstructure:"shotPowerScale"`
	ShotVariance     float64 `json:"shotVariance" mapstructure:"shotVariance"`   // radians, +/-
	ClearVariance    float64 `json:"clearVariance" mapstructure:"clearVariance"` // radians, +/-
	FormationSpread  float64 `json:"formationSpread" mapstructure:"formationSpread"`
	FormationPull    float64 `json:"formationPull" mapstructure:"formationPull"`
	HoldRadius       float64 `json:"holdRadius" mapstructure:"holdRadius"`
}

type RulesConfig struct {
	Quarters       int     `json:"quarters" mapstructure:"quarters"`
	QuarterSeconds float64 `json:"quarterSeconds" mapstructure:"quarterSeconds"`
	BreakSeconds   float64 `json:"breakSeconds" mapstructure:"breakSeconds"`
}

type AudioConfig struct {
	Enabled    bool    `json:"enabled" mapstructure:"enabled"`
	SampleRate int     `json:"sampleRate" mapstructure:"sampleRate"`
	Volume     float64 `json:"volume" mapstructure:"volume"`
}

type CommentaryConfig struct {
	Enabled        bool    `json:"enabled" mapstructure:"enabled"`
	Endpoint       string  `json:"endpoint" mapstructure:"endpoint"`
	APIKey         string  `json:"apiKey" mapstructure:"apiKey"`
	TimeoutSeconds float64 `json:"timeoutSeconds" mapstructure:"timeoutSeconds"`
	QueueSize      int     `json:"queueSize" mapstructure:"queueSize"`
	CacheSize      int     `json:"cacheSize" mapstructure:"cacheSize"`
}
