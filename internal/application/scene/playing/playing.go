// Package playing provides the match scene.
package playing

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/younwookim/striker/internal/application/match"
	"github.com/younwookim/striker/internal/application/scene"
	"github.com/younwookim/striker/internal/application/state"
	"github.com/younwookim/striker/internal/application/system"
	"github.com/younwookim/striker/internal/infrastructure/config"
	"github.com/younwookim/striker/internal/infrastructure/logging"
)

// Sounds plays match effects. Implementations must not block.
type Sounds interface {
	PlayKick(strength float64)
	PlayWhistle(long bool)
}

// Commentator accepts match events for spoken commentary. Implementations
// must not block; a rejected event is simply lost.
type Commentator interface {
	Submit(event, detail string) error
}

// Options configures a Playing scene
type Options struct {
	Seed       int64
	RecordPath string // empty disables recording
	Sounds     Sounds
	Commentary Commentator
	Logger     zerolog.Logger
}

// Playing is the interactive match scene
type Playing struct {
	config  *config.MatchConfig
	session *match.Session
	seed    int64

	screenW int
	screenH int
	view    viewport
	stick   touchStick

	sounds     Sounds
	commentary Commentator
	logger     zerolog.Logger

	// Input recording
	recorder   *Recorder
	recordPath string
}

// New creates a Playing scene at kickoff.
// If opts.RecordPath is not empty, the match is recorded.
func New(cfg *config.MatchConfig, opts Options) (*Playing, error) {
	p := &Playing{
		config:     cfg,
		screenW:    cfg.Display.ScreenWidth,
		screenH:    cfg.Display.ScreenHeight,
		sounds:     opts.Sounds,
		commentary: opts.Commentary,
		recordPath: opts.RecordPath,
		stick:      touchStick{splitX: cfg.Display.ScreenWidth / 2},
	}
	p.logger = logging.WithMatch(opts.Logger, p.matchContext)

	if err := p.start(opts.Seed); err != nil {
		return nil, err
	}
	p.view = newViewport(p.session.Simulation().Pitch(), p.screenW, p.screenH, float64(cfg.Display.HUDHeight))
	return p, nil
}

// start opens a fresh session, and recording, for seed
func (p *Playing) start(seed int64) error {
	session, err := match.NewSession(p.config, rand.New(rand.NewSource(seed)))
	if err != nil {
		return fmt.Errorf("failed to start match: %w", err)
	}
	p.session = session
	p.seed = seed

	maxPower := p.config.Players.KickPower * p.config.AI.ShotPowerScale
	session.Simulation().OnKick = func(k system.KickEvent) {
		if p.sounds != nil {
			p.sounds.PlayKick(k.Power / maxPower)
		}
	}
	session.Match().OnEvent = p.onMatchEvent

	if p.recordPath != "" {
		p.recorder = NewRecorder(seed)
		p.logger.Info().Str("path", p.recordPath).Int64("seed", seed).Msg("recording enabled")
	}
	return nil
}

func (p *Playing) matchContext() (int, string) {
	if p.session == nil {
		return 0, ""
	}
	m := p.session.Match()
	return m.Quarter(), m.Score().String()
}

// Session returns the live match
func (p *Playing) Session() *match.Session {
	return p.session
}

// Seed returns the seed of the current match
func (p *Playing) Seed() int64 {
	return p.seed
}

// Update advances the match one frame (implements scene.Scene)
func (p *Playing) Update() (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) {
		p.saveRecording(false)
	}

	in, pause, restart := p.readInput()
	p.advance(in, pause, restart)
	return nil, nil // nil = stay on this scene
}

// advance applies one frame of already-sampled input
func (p *Playing) advance(in system.InputState, pausePressed, restartPressed bool) {
	switch p.session.Match().Phase() {
	case state.PhaseFullTime:
		if restartPressed {
			p.restart()
		}
		return
	case state.PhasePaused:
		if pausePressed {
			p.session.TogglePause()
		}
		return
	}

	if pausePressed {
		p.session.TogglePause()
		return
	}

	// Paused frames are never recorded, so the recording replays through
	// Session.Advance one to one.
	if p.recorder != nil {
		p.recorder.RecordFrame(in)
	}
	p.session.Advance(in)

	if p.session.Match().Phase() == state.PhaseFullTime {
		p.saveRecording(true)
	}
}

func (p *Playing) onMatchEvent(e match.Event) {
	ev := p.logger.Info().Str("event", string(e.Kind)).Uint64("frame", e.Frame)
	if e.Kind == match.EventGoal {
		ev = ev.Stringer("team", e.Team)
	}
	ev.Msg("match event")

	if p.sounds != nil {
		switch e.Kind {
		case match.EventGoal, match.EventQuarterStart:
			p.sounds.PlayWhistle(false)
		case match.EventQuarterEnd:
			p.sounds.PlayWhistle(true)
		}
	}

	if p.commentary != nil {
		if err := p.commentary.Submit(string(e.Kind), describe(e)); err != nil {
			p.logger.Debug().Err(err).Str("event", string(e.Kind)).Msg("commentary skipped")
		}
	}
}

// describe renders an event as context for a commentary line
func describe(e match.Event) string {
	switch e.Kind {
	case match.EventGoal:
		return fmt.Sprintf("%s scored in quarter %d, score %s", e.Team, e.Quarter, e.Score)
	case match.EventQuarterEnd:
		return fmt.Sprintf("quarter %d ended at %s", e.Quarter, e.Score)
	case match.EventQuarterStart:
		return fmt.Sprintf("quarter %d kicked off at %s", e.Quarter, e.Score)
	case match.EventFullTime:
		return fmt.Sprintf("final score %s", e.Score)
	}
	return e.Score.String()
}

// saveRecording writes the recording to disk. With final set, recording stops
// afterwards.
func (p *Playing) saveRecording(final bool) {
	if p.recorder == nil || !p.recorder.IsRecording() {
		return
	}

	filename := p.recordPath
	if err := p.recorder.Save(filename); err != nil {
		p.logger.Error().Err(err).Str("path", filename).Msg("failed to save recording")
	} else {
		p.logger.Info().Str("path", filename).Int("frames", p.recorder.FrameCount()).Msg("recording saved")
	}
	if final {
		p.recorder.Stop()
	}
}

func (p *Playing) restart() {
	p.saveRecording(true)
	if err := p.start(time.Now().UnixNano()); err != nil {
		p.logger.Error().Err(err).Msg("failed to restart match")
		return
	}
	p.session.Match().Restart()
}

// OnEnter is called when entering this scene
func (p *Playing) OnEnter() {
	p.logger.Info().Int64("seed", p.seed).Msg("kickoff")
}

// OnExit is called when leaving this scene
func (p *Playing) OnExit() {
	p.saveRecording(true)
}
