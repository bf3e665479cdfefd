package game

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-bot/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-bot/internal/bot"
	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

const (
	x = entity.PlayerX
	o = entity.PlayerO
	e = entity.EmptyCell
)

func TestNewGame(t *testing.T) {
	// When: create a new game instance
	game := NewGame("000", ModeBot, bot.Hard)

	// Then: the game should have the expected initial state
	expectedGame := &Game{
		ID:         "000",
		Board:      entity.Board{},
		Turn:       x,
		Winner:     "",
		Status:     StatusOngoing,
		Mode:       ModeBot,
		Difficulty: bot.Hard,
	}

	require.Equal(t, expectedGame, game)
	assert.Equal(t, o, game.BotMark())
	assert.False(t, game.IsBotTurn())
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("Successful Turn", func(t *testing.T) {
		// Given: a new two player game
		game := NewGame("123", ModeTwoPlayer, bot.Easy)

		// When: Player X makes a valid turn
		err := game.MakeTurn(x, 0)
		require.NoError(t, err)

		// Then: only the target cell changes and the turn switches
		assert.Equal(t, entity.Board{x, e, e, e, e, e, e, e, e}, game.Board)
		assert.Equal(t, o, game.Turn)
		assert.Equal(t, StatusOngoing, game.Status)
	})

	t.Run("Error on Cell Already Occupied", func(t *testing.T) {
		// Given: a game where cell 0 is occupied by Player X
		game := NewGame("123", ModeTwoPlayer, bot.Easy)
		require.NoError(t, game.MakeTurn(x, 0))
		before := *game

		// When: Player O tries to make a move to the same cell
		err := game.MakeTurn(o, 0)

		// Then: ErrCellOccupied is returned and the state is unchanged
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, before, *game)
	})

	t.Run("Error on Playing Out of Turn", func(t *testing.T) {
		// Given: a new game where it's Player X's turn
		game := NewGame("123", ModeTwoPlayer, bot.Easy)

		// When: Player O tries to make a move
		err := game.MakeTurn(o, 1)

		// Then: ErrNotYourTurn is returned
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		assert.Equal(t, entity.Board{}, game.Board)
	})

	t.Run("Error on Invalid Cell Index", func(t *testing.T) {
		game := NewGame("123", ModeTwoPlayer, bot.Easy)

		assert.ErrorIs(t, game.MakeTurn(x, 9), apperror.ErrInvalidCell)
		assert.ErrorIs(t, game.MakeTurn(x, -1), apperror.ErrInvalidCell)
	})

	t.Run("Winning move finishes the game", func(t *testing.T) {
		// Given: X one move away from the top row
		game := NewGame("123", ModeTwoPlayer, bot.Easy)
		game.Board = entity.Board{x, x, e, o, o, e, e, e, e}

		// When: X completes the row
		err := game.MakeTurn(x, 2)
		require.NoError(t, err)

		// Then: the game is finished with X as the winner
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, "X", game.Winner)
		assert.Equal(t, e, game.Turn)
		assert.Equal(t, entity.Outcome{Status: entity.StatusWin, Winner: x}, game.Outcome())
	})

	t.Run("Last move ends in a tie", func(t *testing.T) {
		// Given: a board with one cell left and no line possible
		game := NewGame("123", ModeTwoPlayer, bot.Easy)
		game.Board = entity.Board{x, o, x, o, x, o, o, x, e}
		game.Turn = o

		// When: O fills the last cell
		err := game.MakeTurn(o, 8)
		require.NoError(t, err)

		// Then: the game is a tie
		assert.Equal(t, StatusFinished, game.Status)
		assert.Equal(t, PlayerTie, game.Winner)
	})

	t.Run("Move After Game Finished", func(t *testing.T) {
		// Given: a game where X has already won
		game := NewGame("123", ModeTwoPlayer, bot.Easy)
		game.Board = entity.Board{x, x, x, e, o, e, e, o, e}
		game.Status = StatusFinished

		// When: player O tries to make a move
		err := game.MakeTurn(o, 3)

		// Then: ErrGameFinished is returned
		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})
}

func TestGame_Reset(t *testing.T) {
	// Given: a finished game
	game := NewGame("123", ModeBot, bot.Medium)
	game.Board = entity.Board{x, x, x, o, o, e, e, e, e}
	game.Status = StatusFinished
	game.Winner = "X"
	game.Turn = e

	// When: resetting it
	game.Reset()

	// Then: the board is empty and the session settings are kept
	assert.Equal(t, NewGame("123", ModeBot, bot.Medium), game)
}

func TestGame_IsBotTurn(t *testing.T) {
	game := NewGame("1", ModeBot, bot.Easy)
	require.NoError(t, game.MakeTurn(x, 4))
	assert.True(t, game.IsBotTurn())

	twoPlayer := NewGame("2", ModeTwoPlayer, bot.Easy)
	require.NoError(t, twoPlayer.MakeTurn(x, 4))
	assert.False(t, twoPlayer.IsBotTurn())
	assert.Equal(t, e, twoPlayer.BotMark())
}

func TestGame_JSON(t *testing.T) {
	// Given: a game in progress
	game := NewGame("42", ModeBot, bot.Hard)
	require.NoError(t, game.MakeTurn(x, 0))

	// When: encoding it
	data, err := json.Marshal(game)
	require.NoError(t, err)

	// Then: marks and difficulty are readable strings
	assert.JSONEq(t, `{
		"id": "42",
		"board": ["X","","","","","","","",""],
		"turn": "O",
		"winner": "",
		"status": "ongoing",
		"mode": "bot",
		"difficulty": "hard"
	}`, string(data))
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("bot")
	require.NoError(t, err)
	assert.Equal(t, ModeBot, mode)

	_, err = ParseMode("online")
	assert.ErrorIs(t, err, apperror.ErrInvalidInput)
}
