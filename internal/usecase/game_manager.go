package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
	"github.com/rocketscienceinc/tictactoe-bot/internal/game"
	"github.com/rocketscienceinc/tictactoe-bot/internal/pkg"
)

var ErrBotHasNoMove = errors.New("bot has no move")

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *game.Game) error
	GetByID(ctx context.Context, id string) (*game.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type mover interface {
	ChooseMoveAs(board entity.Board, difficulty bot.Difficulty, mark entity.Mark) int
}

type Option func(manager *GameManager)

// WithBotDelay makes the bot wait before answering, like a player thinking.
func WithBotDelay(delay time.Duration) Option {
	return func(manager *GameManager) {
		if delay > 0 {
			manager.botDelay = delay
		}
	}
}

type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo
	mover    mover
	botDelay time.Duration
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, mover mover, opts ...Option) *GameManager {
	manager := &GameManager{
		logger: logger.With("component", "game_manager"),

		gameRepo: gameRepo,
		mover:    mover,
	}

	for _, opt := range opts {
		opt(manager)
	}

	return manager
}

func (that *GameManager) CreateGame(ctx context.Context, mode game.Mode, difficulty bot.Difficulty) (*game.Game, error) {
	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("error generating game ID: %w", err)
	}

	newGame := game.NewGame(gameID, mode, difficulty)
	if err = that.gameRepo.CreateOrUpdate(ctx, newGame); err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	that.logger.Info("game created", "gameID", gameID, "mode", mode, "difficulty", difficulty)

	return newGame, nil
}

func (that *GameManager) GetGame(ctx context.Context, id string) (*game.Game, error) {
	existingGame, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return existingGame, nil
}

// MakeTurn - plays cell for whoever is to move and, against the bot, lets the bot answer.
func (that *GameManager) MakeTurn(ctx context.Context, id string, cell int) (*game.Game, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", id)

	existingGame, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if existingGame.IsBotTurn() {
		return existingGame, apperror.ErrNotYourTurn
	}

	if err = existingGame.MakeTurn(existingGame.Turn, cell); err != nil {
		return existingGame, fmt.Errorf("failed to make turn: %w", err)
	}

	log.Debug("player made turn", "cell", cell)

	if existingGame.IsBotTurn() {
		if err = that.makeBotTurn(ctx, existingGame); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	if existingGame.IsFinished() {
		log.Info("game finished", "winner", existingGame.Winner)
	}

	return existingGame, nil
}

func (that *GameManager) makeBotTurn(ctx context.Context, current *game.Game) error {
	log := that.logger.With("method", "makeBotTurn", "gameID", current.ID)

	if that.botDelay > 0 {
		timer := time.NewTimer(that.botDelay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return fmt.Errorf("waiting for bot: %w", ctx.Err())
		case <-timer.C:
		}
	}

	cell := that.mover.ChooseMoveAs(current.Board, current.Difficulty, current.BotMark())
	if cell == bot.NoMove {
		return ErrBotHasNoMove
	}

	if err := current.MakeTurn(current.BotMark(), cell); err != nil {
		return fmt.Errorf("failed to apply bot move %d: %w", cell, err)
	}

	log.Debug("bot made turn", "cell", cell, "difficulty", current.Difficulty)

	return nil
}

func (that *GameManager) ResetGame(ctx context.Context, id string) (*game.Game, error) {
	existingGame, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	existingGame.Reset()
	if err = that.gameRepo.CreateOrUpdate(ctx, existingGame); err != nil {
		return nil, fmt.Errorf("failed to update game: %w", err)
	}

	that.logger.Info("game reset", "gameID", id)

	return existingGame, nil
}

func (that *GameManager) DeleteGame(ctx context.Context, id string) error {
	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.logger.Info("game deleted", "gameID", id)

	return nil
}
