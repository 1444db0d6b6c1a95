package entity

import (
	"fmt"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"

	EmptyCell = ""

	BoardSize = 3
)

// Game is the state of a single tic-tac-toe match: board, whose turn it is,
// and the outcome once the match is over.
type Game struct {
	Board  [BoardSize][BoardSize]string `json:"board"`
	Turn   string                       `json:"turn"`
	Winner string                       `json:"winner,omitempty"`
	Status string                       `json:"status"`
}

func NewGame() *Game {
	return &Game{
		Turn:   PlayerX,
		Status: StatusOngoing,
	}
}

// MakeMove - places the current player's mark at (row, col), advances the turn
// and re-evaluates the outcome. The game state is left untouched on any error.
func (that *Game) MakeMove(row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameAlreadyOver
	}

	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrOutOfBounds, row, col)
	}

	if that.Board[row][col] != EmptyCell {
		return fmt.Errorf("%w: row %d, col %d", apperror.ErrCellOccupied, row, col)
	}

	that.Board[row][col] = that.Turn
	that.updateGameState()

	return nil
}

// DetermineGameResult - scans the 3 rows, 3 columns and both diagonals for a
// winning line. Returns the winning mark, PlayerTie when the board is full,
// or EmptyCell while the game continues. The win scan runs before the
// full-board check so a winning ninth move is never scored as a tie.
func (that *Game) DetermineGameResult() string {
	for i := 0; i < BoardSize; i++ {
		if mark := that.Board[i][0]; mark != EmptyCell && mark == that.Board[i][1] && mark == that.Board[i][2] {
			return mark
		}
		if mark := that.Board[0][i]; mark != EmptyCell && mark == that.Board[1][i] && mark == that.Board[2][i] {
			return mark
		}
	}

	if mark := that.Board[1][1]; mark != EmptyCell {
		if (that.Board[0][0] == mark && that.Board[2][2] == mark) || (that.Board[0][2] == mark && that.Board[2][0] == mark) {
			return mark
		}
	}

	for _, row := range that.Board {
		for _, cell := range row {
			if cell == EmptyCell {
				return EmptyCell
			}
		}
	}

	return PlayerTie
}

func (that *Game) updateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins or the board is full
	case PlayerX, PlayerO, PlayerTie:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = EmptyCell
	// game continues
	default:
		that.Turn = toggleMark(that.Turn)
	}
}

func toggleMark(currentMark string) string {
	if currentMark == PlayerX {
		return PlayerO
	}
	return PlayerX
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}
