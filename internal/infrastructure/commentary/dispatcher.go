package commentary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/younwookim/striker/internal/infrastructure/config"
)

// Speaker voices a finished line
type Speaker interface {
	Speak(line string)
}

// LogSpeaker writes lines to the log instead of a speech engine
type LogSpeaker struct {
	logger zerolog.Logger
}

// NewLogSpeaker creates a speaker backed by logger
func NewLogSpeaker(logger zerolog.Logger) *LogSpeaker {
	return &LogSpeaker{logger: logger}
}

// Speak implements Speaker
func (s *LogSpeaker) Speak(line string) {
	s.logger.Info().Str("line", line).Msg("commentary")
}

const defaultTimeout = 8 * time.Second

type request struct {
	event, detail string
}

// Dispatcher generates lines on a background worker behind a bounded queue
type Dispatcher struct {
	gen     Generator
	speaker Speaker
	logger  zerolog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan request
	done   chan struct{}

	// OTEL metrics
	processed metric.Int64Counter
	dropped   metric.Int64Counter
	failed    metric.Int64Counter
}

// NewDispatcher starts the worker. Uses the global OTel meter for metrics
// (no-op if not configured).
func NewDispatcher(gen Generator, speaker Speaker, logger zerolog.Logger, queueSize int, timeout time.Duration) (*Dispatcher, error) {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	d := &Dispatcher{
		gen:     gen,
		speaker: speaker,
		logger:  logger,
		timeout: timeout,
		queue:   make(chan request, queueSize),
		done:    make(chan struct{}),
	}

	m := meter()

	var err error
	d.processed, err = m.Int64Counter(
		"commentary.lines.processed",
		metric.WithDescription("Total lines generated and spoken"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating processed counter: %w", err)
	}

	d.dropped, err = m.Int64Counter(
		"commentary.events.dropped",
		metric.WithDescription("Total events dropped due to full queue"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating dropped counter: %w", err)
	}

	d.failed, err = m.Int64Counter(
		"commentary.lines.failed",
		metric.WithDescription("Total events for which generation failed"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating failed counter: %w", err)
	}

	go d.run()
	return d, nil
}

// FromConfig builds the HTTP-backed pipeline. It returns nil when commentary
// is disabled or has no endpoint.
func FromConfig(cfg *config.CommentaryConfig, logger zerolog.Logger) (*Dispatcher, error) {
	if !cfg.Enabled || cfg.Endpoint == "" {
		return nil, nil
	}

	timeout := time.Duration(cfg.TimeoutSeconds * float64(time.Second))
	gen := NewCachedGenerator(NewHTTPGenerator(cfg.Endpoint, cfg.APIKey, timeout), cfg.CacheSize)
	return NewDispatcher(gen, NewLogSpeaker(logger), logger, cfg.QueueSize, timeout)
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for r := range d.queue {
		attrs := metric.WithAttributes(attribute.String("event", r.event))

		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		line, err := d.gen.Generate(ctx, r.event, r.detail)
		cancel()

		if err != nil {
			d.failed.Add(context.Background(), 1, attrs)
			d.logger.Debug().Err(err).Str("event", r.event).Msg("commentary generation failed")
			continue
		}

		d.speaker.Speak(line)
		d.processed.Add(context.Background(), 1, attrs)
	}
}

// Submit queues an event without blocking
func (d *Dispatcher) Submit(event, detail string) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return ErrUnavailable
	}

	select {
	case d.queue <- request{event, detail}:
		return nil
	default:
		d.dropped.Add(context.Background(), 1, metric.WithAttributes(attribute.String("event", event)))
		return ErrQueueFull
	}
}

// Close stops accepting events and waits for queued ones to finish
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}
