package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/younwookim/striker/internal/application/replay"
	"github.com/younwookim/striker/internal/infrastructure/config"
)

// runReplay re-simulates a recording headlessly and logs the outcome
func runReplay(cfg *config.MatchConfig, path string, logger zerolog.Logger) (replay.Result, error) {
	data, err := replay.LoadReplay(path)
	if err != nil {
		return replay.Result{}, err
	}
	if data.Version != replay.FormatVersion {
		logger.Warn().Str("version", data.Version).Str("want", replay.FormatVersion).Msg("replay format version differs")
	}

	res, err := replay.NewRunner(cfg, logger).Run(*data)
	if err != nil {
		return replay.Result{}, fmt.Errorf("failed to replay %s: %w", path, err)
	}

	logger.Info().
		Str("path", path).
		Int64("seed", data.Seed).
		Int("frames", res.Frames).
		Int("kicks", res.Kicks).
		Stringer("score", res.Score).
		Stringer("phase", res.Phase).
		Msg("replay finished")
	return res, nil
}
