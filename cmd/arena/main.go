package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/arena"
	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
)

// arena plays bots of two difficulty tiers against each other and prints the tally.
func main() {
	xTier := flag.String("x", "hard", "difficulty of the X bot (easy, medium, hard)")
	oTier := flag.String("o", "hard", "difficulty of the O bot (easy, medium, hard)")
	games := flag.Int("games", 100, "number of games to play")
	workers := flag.Int("workers", 4, "number of games played in parallel")
	verbose := flag.Bool("v", false, "log every finished game")
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Logger()

	cfg := arena.Config{Games: *games, Workers: *workers}

	var err error
	if cfg.X, err = bot.ParseDifficulty(*xTier); err != nil {
		logger.Fatal().Err(err).Msg("bad -x flag")
	}
	if cfg.O, err = bot.ParseDifficulty(*oTier); err != nil {
		logger.Fatal().Err(err).Msg("bad -o flag")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	logger.Info().Stringer("x", cfg.X).Stringer("o", cfg.O).Int("games", cfg.Games).Msg("starting arena")

	started := time.Now()
	summary, err := arena.Run(ctx, logger, bot.NewEngine(), cfg)
	if err != nil {
		logger.Error().Err(err).Msg("arena interrupted")
	}

	logger.Info().
		Int("x_wins", summary.XWins).
		Int("o_wins", summary.OWins).
		Int("draws", summary.Draws).
		Dur("elapsed", time.Since(started)).
		Msg("arena finished")
}
