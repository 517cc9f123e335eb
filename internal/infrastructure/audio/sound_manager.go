// Package audio synthesises and plays match sound effects.
package audio

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"

	"github.com/younwookim/striker/internal/infrastructure/config"
)

const queueSize = 16

// SoundManager plays effects without blocking the frame loop. Every method is
// safe to call before Initialize or after a failed one; it just stays silent.
type SoundManager struct {
	mu          sync.Mutex
	config      *config.AudioConfig
	rate        beep.SampleRate
	mixer       *beep.Mixer
	queue       chan beep.Streamer
	done        chan struct{}
	initialized bool
	logger      zerolog.Logger
}

// NewSoundManager creates a new sound manager
func NewSoundManager(cfg *config.AudioConfig, logger zerolog.Logger) *SoundManager {
	return &SoundManager{
		config: cfg,
		rate:   beep.SampleRate(cfg.SampleRate),
		mixer:  &beep.Mixer{},
		logger: logger,
	}
}

// Initialize opens the speaker. Disabled audio is not an error.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized || !sm.config.Enabled {
		return nil
	}

	if err := speaker.Init(sm.rate, sm.rate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}
	speaker.Play(sm.mixer)

	sm.queue = make(chan beep.Streamer, queueSize)
	sm.done = make(chan struct{})
	go sm.run(sm.queue, sm.done)

	sm.initialized = true
	return nil
}

func (sm *SoundManager) run(queue <-chan beep.Streamer, done chan<- struct{}) {
	defer close(done)
	for s := range queue {
		speaker.Lock()
		sm.mixer.Add(s)
		speaker.Unlock()
	}
}

// Initialized reports whether sounds will actually play
func (sm *SoundManager) Initialized() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized
}

// Cleanup stops playback and releases the worker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	close(sm.queue)
	<-sm.done

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()

	sm.initialized = false
}

// PlayKick plays a kick; strength in [0, 1]
func (sm *SoundManager) PlayKick(strength float64) {
	sm.enqueue("kick", func() beep.Streamer {
		return CreateKickSound(sm.rate, sm.config.Volume, strength)
	})
}

// PlayWhistle blows the whistle, long for the end of a quarter
func (sm *SoundManager) PlayWhistle(long bool) {
	sm.enqueue("whistle", func() beep.Streamer {
		return CreateWhistleSound(sm.rate, sm.config.Volume, long)
	})
}

func (sm *SoundManager) enqueue(name string, build func() beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	select {
	case sm.queue <- build():
	default:
		sm.logger.Debug().Str("sound", name).Msg("sound queue full, dropped")
	}
}
