package main

import (
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"github.com/younwookim/striker/internal/application/game"
	"github.com/younwookim/striker/internal/application/scene/playing"
	"github.com/younwookim/striker/internal/infrastructure/audio"
	"github.com/younwookim/striker/internal/infrastructure/commentary"
	"github.com/younwookim/striker/internal/infrastructure/config"
	"github.com/younwookim/striker/internal/infrastructure/logging"
)

// autoRecord as the -record value picks a timestamped file name
const autoRecord = "auto"

type options struct {
	configDir  string
	record     string
	replayPath string
	seed       int64
	logLevel   string
	logFile    string
}

func parseFlags(args []string) (options, error) {
	var opts options
	fset := flag.NewFlagSet("striker", flag.ContinueOnError)
	fset.StringVar(&opts.configDir, "config", "", "Directory holding match.json (default: built-in)")
	fset.StringVar(&opts.record, "record", "", "Record input to file (e.g., -record replay.json, or -record auto)")
	fset.StringVar(&opts.replayPath, "replay", "", "Re-simulate a recording without a window and print the result")
	fset.Int64Var(&opts.seed, "seed", 0, "Seed for AI randomness (default: current time)")
	fset.StringVar(&opts.logLevel, "log", "", "Log level, overrides logLevel in match.json")
	fset.StringVar(&opts.logFile, "logfile", "", "Also write logs to this file")
	if err := fset.Parse(args); err != nil {
		return options{}, err
	}

	if opts.record == autoRecord {
		opts.record = playing.GenerateFilename()
	}
	if opts.seed == 0 {
		opts.seed = time.Now().UnixNano()
	}
	return opts, nil
}

// loadConfig reads match.json from dir, or from the embedded copy when dir is empty
func loadConfig(dir string) (*config.MatchConfig, error) {
	if dir != "" {
		return config.NewLoader(dir).LoadMatch()
	}

	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs").LoadMatch()
}

// newLogger builds the process logger. The returned closer releases the log file.
func newLogger(level, logFile string) (zerolog.Logger, io.Closer, error) {
	if logFile == "" {
		return logging.New(level, os.Stderr, nil), nopCloser{}, nil
	}

	f, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logging.New(level, os.Stderr, f), f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func run(opts options) error {
	cfg, err := loadConfig(opts.configDir)
	if err != nil {
		return err
	}

	level := cfg.LogLevel
	if opts.logLevel != "" {
		level = opts.logLevel
	}
	logger, closer, err := newLogger(level, opts.logFile)
	if err != nil {
		return err
	}
	defer func() { _ = closer.Close() }()

	if opts.replayPath != "" {
		_, err := runReplay(cfg, opts.replayPath, logger)
		return err
	}

	sounds := audio.NewSoundManager(&cfg.Audio, logger)
	if err := sounds.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing silently")
	}
	defer sounds.Cleanup()

	sceneOpts := playing.Options{
		Seed:       opts.seed,
		RecordPath: opts.record,
		Sounds:     sounds,
		Logger:     logger,
	}

	dispatcher, err := commentary.FromConfig(&cfg.Commentary, logger)
	if err != nil {
		logger.Warn().Err(err).Msg("commentary unavailable")
	}
	if dispatcher != nil {
		defer dispatcher.Close()
		sceneOpts.Commentary = dispatcher
	}

	matchScene, err := playing.New(cfg, sceneOpts)
	if err != nil {
		return err
	}

	display := cfg.Display
	g := game.New(matchScene, display.ScreenWidth, display.ScreenHeight)
	defer g.Close()

	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Striker")
	ebiten.SetTPS(display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}
	logger.Info().Uint64("frames", g.Frames()).Msg("window closed")
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, "striker:", err)
		os.Exit(1)
	}
}
