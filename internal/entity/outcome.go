package entity

type Status string

const (
	StatusOngoing Status = "ongoing"
	StatusWin     Status = "win"
	StatusDraw    Status = "draw"
)

// Outcome is derived from a board on demand and never stored.
type Outcome struct {
	Status Status `json:"status"`
	Winner Mark   `json:"winner,omitempty"`
}

func (that Outcome) IsFinished() bool {
	return that.Status == StatusWin || that.Status == StatusDraw
}

func (that Outcome) String() string {
	if that.Status == StatusWin {
		return string(StatusWin) + "(" + string(that.Winner) + ")"
	}

	return string(that.Status)
}

// Evaluate - determines whether the board has a winner, is a draw, or is still in play.
// The first completed combo in WinCombos order decides the winner.
func Evaluate(board Board) Outcome {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return Outcome{Status: StatusWin, Winner: a}
		}
	}

	// the game will continue until all the squares are full
	if !board.IsFull() {
		return Outcome{Status: StatusOngoing}
	}

	return Outcome{Status: StatusDraw}
}
