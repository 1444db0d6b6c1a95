package websocket

import (
	"encoding/json"
	"fmt"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
	"github.com/roomloop/tictactoe-backend/internal/router"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RoomPayload struct {
	Room string `json:"room"`
}

type MovePayload struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// parseEvent - turns a wire message from a connection into a typed router
// event. Unknown actions and malformed payloads are reported back to the
// sender only.
func parseEvent(connID string, msg *Message) (router.Event, error) {
	ev := router.Event{Conn: connID}

	switch msg.Action {
	case "list_rooms":
		ev.Kind = router.KindListRooms
	case "create_room":
		ev.Kind = router.KindCreateRoom
	case "delete_room":
		var payload RoomPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return ev, fmt.Errorf("failed to unmarshal delete_room payload: %w", err)
		}
		ev.Kind = router.KindDeleteRoom
		ev.Room = payload.Room
	case "join_room":
		var payload RoomPayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return ev, fmt.Errorf("failed to unmarshal join_room payload: %w", err)
		}
		ev.Kind = router.KindJoinRoom
		ev.Room = payload.Room
	case "make_move":
		var payload MovePayload
		if err := json.Unmarshal(msg.Payload, &payload); err != nil {
			return ev, fmt.Errorf("failed to unmarshal make_move payload: %w", err)
		}
		ev.Kind = router.KindMakeMove
		ev.Row = payload.Row
		ev.Col = payload.Col
	default:
		return ev, fmt.Errorf("%w: %s", apperror.ErrUnknownAction, msg.Action)
	}

	return ev, nil
}
