package arena

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

var ErrInvalidConfig = errors.New("invalid arena config")

type mover interface {
	ChooseMove(board entity.Board, difficulty bot.Difficulty) int
}

// Config describes a match-up: X always opens.
type Config struct {
	X       bot.Difficulty
	O       bot.Difficulty
	Games   int
	Workers int
}

type Summary struct {
	XWins int `json:"x_wins"`
	OWins int `json:"o_wins"`
	Draws int `json:"draws"`
}

func (that Summary) Total() int {
	return that.XWins + that.OWins + that.Draws
}

type result struct {
	index   int
	outcome entity.Outcome
	board   entity.Board
}

// Run plays cfg.Games games between two bots and tallies the outcomes.
// On cancellation the games finished so far are returned with the context error.
func Run(ctx context.Context, logger zerolog.Logger, engine mover, cfg Config) (Summary, error) {
	if cfg.Games <= 0 {
		return Summary{}, fmt.Errorf("%w: games must be positive", ErrInvalidConfig)
	}

	workers := max(cfg.Workers, 1)

	tasks := make(chan int)
	results := make(chan result)

	var wg sync.WaitGroup
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range tasks {
				board := Play(engine, cfg.X, cfg.O)
				results <- result{index: index, outcome: entity.Evaluate(board), board: board}
			}
		}()
	}

	go func() {
		defer close(tasks)
		for i := range cfg.Games {
			select {
			case tasks <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var summary Summary
	for res := range results {
		switch res.outcome.Winner {
		case entity.PlayerX:
			summary.XWins++
		case entity.PlayerO:
			summary.OWins++
		default:
			summary.Draws++
		}

		logger.Debug().
			Int("game", res.index+1).
			Str("outcome", res.outcome.String()).
			Strs("board", boardStrings(res.board)).
			Msg("game finished")
	}

	if err := ctx.Err(); err != nil {
		return summary, fmt.Errorf("arena stopped after %d games: %w", summary.Total(), err)
	}

	return summary, nil
}

// Play runs one game from an empty board and returns the final position.
func Play(engine mover, xTier, oTier bot.Difficulty) entity.Board {
	board := entity.Board{}

	for !entity.Evaluate(board).IsFinished() {
		mark := board.NextMark()

		tier := xTier
		if mark == entity.PlayerO {
			tier = oTier
		}

		move := engine.ChooseMove(board, tier)
		if move == bot.NoMove {
			break
		}

		board[move] = mark
	}

	return board
}

func boardStrings(board entity.Board) []string {
	cells := make([]string, len(board))
	for i, cell := range board {
		if cell == entity.EmptyCell {
			cells[i] = "."
			continue
		}
		cells[i] = string(cell)
	}

	return cells
}
