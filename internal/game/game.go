package game

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerTie = "-"
)

type Mode string

const (
	ModeTwoPlayer Mode = "two-player"
	ModeBot       Mode = "bot"
)

func ParseMode(value string) (Mode, error) {
	switch mode := Mode(value); mode {
	case ModeTwoPlayer, ModeBot:
		return mode, nil
	default:
		return "", fmt.Errorf("%w: unknown mode %q", apperror.ErrInvalidInput, value)
	}
}

// Game represents one session: the board, whose turn it is, and how it ended.
// Difficulty only matters in ModeBot and never changes for the session.
type Game struct {
	ID         string         `json:"id"`
	Board      entity.Board   `json:"board"`
	Turn       entity.Mark    `json:"turn"`
	Winner     string         `json:"winner"`
	Status     string         `json:"status"`
	Mode       Mode           `json:"mode"`
	Difficulty bot.Difficulty `json:"difficulty"`
}

// NewGame - starts a session with an empty board and X to move. Against the bot the human is X.
func NewGame(id string, mode Mode, difficulty bot.Difficulty) *Game {
	return &Game{
		ID:         id,
		Board:      entity.Board{},
		Turn:       entity.PlayerX,
		Status:     StatusOngoing,
		Mode:       mode,
		Difficulty: difficulty,
	}
}

func (that *Game) MakeTurn(mark entity.Mark, cell int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if cell < 0 || cell >= len(that.Board) {
		return fmt.Errorf("%w: cell %d", apperror.ErrInvalidCell, cell)
	}

	if that.Turn != mark {
		return apperror.ErrNotYourTurn
	}

	if that.Board[cell] != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	that.Board[cell] = mark
	that.updateState()

	return nil
}

// updateState re-reads the board after a move and either finishes the game or passes the turn.
func (that *Game) updateState() {
	switch outcome := entity.Evaluate(that.Board); outcome.Status {
	case entity.StatusWin:
		that.Winner = string(outcome.Winner)
		that.Status = StatusFinished
		that.Turn = entity.EmptyCell
	case entity.StatusDraw:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = entity.EmptyCell
	default:
		that.Status = StatusOngoing
		that.Turn = that.Turn.Opponent()
	}
}

// Outcome is recomputed from the board.
func (that *Game) Outcome() entity.Outcome {
	return entity.Evaluate(that.Board)
}

func (that *Game) Reset() {
	that.Board = entity.Board{}
	that.Turn = entity.PlayerX
	that.Winner = ""
	that.Status = StatusOngoing
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsWithBot() bool {
	return that.Mode == ModeBot
}

// BotMark is the bot's mark in ModeBot, empty otherwise.
func (that *Game) BotMark() entity.Mark {
	if !that.IsWithBot() {
		return entity.EmptyCell
	}

	return entity.PlayerO
}

func (that *Game) IsBotTurn() bool {
	return that.IsWithBot() && !that.IsFinished() && that.Turn == that.BotMark()
}
