package router

import "github.com/roomloop/tictactoe-backend/internal/entity"

// Kind enumerates every inbound event the coordinator understands. Keeping
// this a closed set means a new or misspelled event is a compile-time concern
// in the dispatch switch, not a silently ignored string.
type Kind int

const (
	KindConnect Kind = iota
	KindDisconnect
	KindListRooms
	KindCreateRoom
	KindDeleteRoom
	KindJoinRoom
	KindMakeMove
)

func (that Kind) String() string {
	switch that {
	case KindConnect:
		return "connect"
	case KindDisconnect:
		return "disconnect"
	case KindListRooms:
		return "list_rooms"
	case KindCreateRoom:
		return "create_room"
	case KindDeleteRoom:
		return "delete_room"
	case KindJoinRoom:
		return "join_room"
	case KindMakeMove:
		return "make_move"
	default:
		return "unknown"
	}
}

// Event - one inbound event from a connection. Room is set for delete_room
// and join_room, Row/Col for make_move.
type Event struct {
	Conn string
	Kind Kind
	Room string
	Row  int
	Col  int
}

// Outbound event actions.
const (
	ActionRoomList   = "room_list"
	ActionJoinedRoom = "joined_room"
	ActionGameState  = "game_state"
	ActionError      = "error"
)

type RoomListPayload struct {
	Rooms []string `json:"rooms"`
}

type JoinedRoomPayload struct {
	Room       string `json:"room"`
	Connection string `json:"connection"`
}

type GameStatePayload struct {
	Room   string                                     `json:"room"`
	Board  [entity.BoardSize][entity.BoardSize]string `json:"board"`
	Turn   string                                     `json:"turn"`
	Winner string                                     `json:"winner,omitempty"`
	Status string                                     `json:"status"`
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Outbound - one event to deliver, with an explicit recipient set. The
// transport only delivers; it never decides who hears what.
type Outbound struct {
	Broadcast bool
	To        []string
	Action    string
	Payload   any
}
