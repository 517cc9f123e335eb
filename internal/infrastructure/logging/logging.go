// Package logging builds the zerolog loggers used across the game.
package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ParseLevel maps a config level name to a zerolog level. Unknown names are info.
func ParseLevel(name string) zerolog.Level {
	switch strings.ToUpper(name) {
	case "TRACE":
		return zerolog.TraceLevel
	case "DEBUG":
		return zerolog.DebugLevel
	case "INFO":
		return zerolog.InfoLevel
	case "WARN":
		return zerolog.WarnLevel
	case "ERROR":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// New creates a console-format logger. When file is non-nil the same lines
// are also written there without colour.
func New(level string, console io.Writer, file io.Writer) zerolog.Logger {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	var out io.Writer = zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.RFC3339,
	}
	if file != nil {
		out = zerolog.MultiLevelWriter(
			out,
			zerolog.ConsoleWriter{
				Out:        file,
				TimeFormat: time.RFC3339,
				NoColor:    true,
			},
		)
	}

	return zerolog.New(out).Level(ParseLevel(level)).With().Timestamp().Logger()
}

// MatchContext reports the live quarter and score for log stamping
type MatchContext func() (quarter int, score string)

// WithMatch stamps every line with the current quarter and score
func WithMatch(logger zerolog.Logger, ctx MatchContext) zerolog.Logger {
	return logger.Hook(zerolog.HookFunc(func(e *zerolog.Event, _ zerolog.Level, _ string) {
		quarter, score := ctx()
		e.Int("quarter", quarter).Str("score", score)
	}))
}
