package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/lox/omahahash/internal/legacy"
	"github.com/lox/omahahash/internal/persist"
	"github.com/lox/omahahash/internal/query"
	"github.com/lox/omahahash/internal/tablebuild"
	"github.com/lox/omahahash/internal/verify"
)

var cli struct {
	Debug     bool   `help:"enable debug logging"`
	Workers   int    `help:"shard the verification sweep across this many workers" default:"1"`
	Out       string `arg:"" help:"output path for the built 9-card hand-ranks table"`
	Reference string `arg:"" optional:"" help:"path to a pre-existing 7-card reference table; enables full verification"`
}

func main() {
	kong.Parse(&cli,
		kong.Name("omahahash"),
		kong.Description("builds and verifies the 9-card Omaha hand-ranks lookup table"),
		kong.UsageOnError(),
	)

	setupLogger(cli.Debug)

	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("build failed")
	}
}

func setupLogger(debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level)
}

func run() error {
	log.Info().Msg("closing the three canonical id automata and linking the array")

	array, stats := tablebuild.Build()
	log.Info().
		Int("flush_suit_ids", stats.FlushSuitIDs).
		Int("flush_rank_ids", stats.FlushRankIDs).
		Int("no_flush_ids", stats.NoFlushIDs).
		Int32("length", stats.Length).
		Msg("table built")

	if err := persist.Write(cli.Out, array); err != nil {
		return fmt.Errorf("write table: %w", err)
	}
	log.Info().Str("path", cli.Out).Msg("table saved")

	if cli.Reference == "" {
		log.Warn().Msg("no reference table given; skipping verification")
		return nil
	}

	old, err := legacy.Load(cli.Reference)
	if err != nil {
		return fmt.Errorf("load reference table: %w", err)
	}

	hr := query.HandRanks(array)
	deck := verify.FullDeck()
	for _, realBoard := range []int{3, 4, 5} {
		log.Info().Int("real_board", realBoard).Msg("sweeping")
		if err := verify.Sweep(hr, old, deck, realBoard, cli.Workers); err != nil {
			return fmt.Errorf("verification failed: %w", err)
		}
	}
	log.Info().Msg("verification passed")
	return nil
}
