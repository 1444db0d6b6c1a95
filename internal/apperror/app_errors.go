package apperror

import "errors"

var (
	ErrOutOfBounds     = errors.New("cell coordinates are out of bounds")
	ErrCellOccupied    = errors.New("cell is already occupied")
	ErrGameAlreadyOver = errors.New("game is already over")
	ErrGameNotStarted  = errors.New("game is not started")
	ErrNotYourTurn     = errors.New("it's not your turn")
	ErrRoomNotFound    = errors.New("room not found")
	ErrRoomFull        = errors.New("room is full")
	ErrAlreadySeated   = errors.New("connection is already seated in a room")
	ErrNotSeated       = errors.New("connection is not seated in any room")
	ErrUnknownAction   = errors.New("unknown action")
)

// Code - maps a known application error to its wire code.
// Unknown errors map to "internal" so clients never see raw internals.
func Code(err error) string {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return "out_of_bounds"
	case errors.Is(err, ErrCellOccupied):
		return "cell_occupied"
	case errors.Is(err, ErrGameAlreadyOver):
		return "game_already_over"
	case errors.Is(err, ErrGameNotStarted):
		return "game_not_started"
	case errors.Is(err, ErrNotYourTurn):
		return "not_your_turn"
	case errors.Is(err, ErrRoomNotFound):
		return "room_not_found"
	case errors.Is(err, ErrRoomFull):
		return "room_full"
	case errors.Is(err, ErrAlreadySeated):
		return "already_seated"
	case errors.Is(err, ErrNotSeated):
		return "not_seated"
	case errors.Is(err, ErrUnknownAction):
		return "unknown_action"
	default:
		return "internal"
	}
}
