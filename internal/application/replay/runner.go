package replay

import (
	"fmt"
	"math/rand"

	"github.com/rs/zerolog"

	"github.com/younwookim/striker/internal/application/match"
	"github.com/younwookim/striker/internal/application/state"
	"github.com/younwookim/striker/internal/domain/entity"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// Result summarises a headless replay
type Result struct {
	Score  match.Score
	Frames int
	Kicks  int
	Phase  state.Phase
	Final  *entity.MatchState
}

// Runner re-simulates recordings without a window
type Runner struct {
	config *config.MatchConfig
	logger zerolog.Logger
}

// NewRunner creates a runner for the given tuning
func NewRunner(cfg *config.MatchConfig, logger zerolog.Logger) *Runner {
	return &Runner{config: cfg, logger: logger}
}

// Run plays every recorded frame through a fresh session seeded from the recording
func (r *Runner) Run(data ReplayData) (Result, error) {
	if len(data.Frames) == 0 {
		return Result{}, ErrNoFrames
	}

	session, err := match.NewSession(r.config, rand.New(rand.NewSource(data.Seed)))
	if err != nil {
		return Result{}, fmt.Errorf("failed to start session: %w", err)
	}
	session.Match().OnEvent = func(e match.Event) {
		r.logger.Debug().
			Str("event", string(e.Kind)).
			Int("quarter", e.Quarter).
			Stringer("score", e.Score).
			Uint64("frame", e.Frame).
			Msg("match event")
	}

	var res Result
	replayer := NewReplayer(data)
	for {
		in, ok := replayer.GetInput()
		if !ok {
			break
		}
		step := session.Advance(in)
		res.Kicks += len(step.Kicks)
	}

	res.Score = session.Match().Score()
	res.Frames = replayer.TotalFrames()
	res.Phase = session.Match().Phase()
	res.Final = session.State()
	return res, nil
}
