package bot

import (
	"math"

	"github.com/rocketscienceinc/tictactoe-bot/internal/entity"
)

// NoMove is returned when the board has no empty cell.
const NoMove = -1

const (
	winScore      = 10
	mediumRandomP = 0.5
)

type Option func(engine *Engine)

// WithRandomSource replaces the time-seeded source, mostly for tests.
func WithRandomSource(source RandomSource) Option {
	return func(engine *Engine) {
		if source != nil {
			engine.random = source
		}
	}
}

// Engine picks moves for the bot. It holds no game state and can be shared between sessions.
type Engine struct {
	random RandomSource
}

func NewEngine(opts ...Option) *Engine {
	engine := &Engine{}
	for _, opt := range opts {
		opt(engine)
	}

	if engine.random == nil {
		engine.random = NewLockedSource()
	}

	return engine
}

var defaultEngine = NewEngine()

// ChooseMove picks a move for the side to move with the default engine.
func ChooseMove(board entity.Board, difficulty Difficulty) int {
	return defaultEngine.ChooseMove(board, difficulty)
}

// ChooseMove - picks a cell for the side to move on board, or NoMove if the board is full.
func (that *Engine) ChooseMove(board entity.Board, difficulty Difficulty) int {
	return that.ChooseMoveAs(board, difficulty, board.NextMark())
}

// ChooseMoveAs - picks a cell for mark regardless of whose turn the board implies.
func (that *Engine) ChooseMoveAs(board entity.Board, difficulty Difficulty, mark entity.Mark) int {
	switch difficulty {
	case Easy:
		return that.randomMove(board)
	case Medium:
		if that.random.Float64() < mediumRandomP {
			return that.randomMove(board)
		}
		return bestMove(board, mark)
	default:
		return bestMove(board, mark)
	}
}

func (that *Engine) randomMove(board entity.Board) int {
	cells := board.EmptyCells()
	if len(cells) == 0 {
		return NoMove
	}

	return cells[that.random.Intn(len(cells))]
}

// bestMove tries every free cell in ascending order and keeps the first one with the highest score.
func bestMove(board entity.Board, mark entity.Mark) int {
	bestScore, move := math.MinInt, NoMove

	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		board[i] = mark
		score := minimax(board, 0, false, mark)
		board[i] = entity.EmptyCell

		if score > bestScore {
			bestScore, move = score, i
		}
	}

	return move
}

// minimax scores board from the point of view of mark. Faster wins and slower losses score higher.
func minimax(board entity.Board, depth int, maximizing bool, mark entity.Mark) int {
	outcome := entity.Evaluate(board)
	switch outcome.Status {
	case entity.StatusWin:
		if outcome.Winner == mark {
			return winScore - depth
		}
		return depth - winScore
	case entity.StatusDraw:
		return 0
	}

	toMove := mark
	best := math.MinInt
	if !maximizing {
		toMove = mark.Opponent()
		best = math.MaxInt
	}

	for i, cell := range board {
		if cell != entity.EmptyCell {
			continue
		}

		board[i] = toMove
		score := minimax(board, depth+1, !maximizing, mark)
		board[i] = entity.EmptyCell

		if maximizing {
			best = max(best, score)
		} else {
			best = min(best, score)
		}
	}

	return best
}
