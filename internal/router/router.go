package router

import (
	"log/slog"
	"sync"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
	"github.com/roomloop/tictactoe-backend/internal/directory"
	"github.com/roomloop/tictactoe-backend/internal/entity"
	"github.com/roomloop/tictactoe-backend/internal/metrics"
	"github.com/roomloop/tictactoe-backend/internal/registry"
)

// Router is the coordinator: it receives inbound events from connections,
// applies them to the registry, directory and game state, and produces the
// outbound events for the affected audience.
type Router struct {
	logger *slog.Logger

	// mu serializes all event processing, so concurrent joins or moves
	// against the same room can never interleave partially. State is fully
	// updated before any outbound event is handed back for delivery.
	mu sync.Mutex

	registry  *registry.Registry
	directory *directory.Directory
}

func New(logger *slog.Logger, reg *registry.Registry, dir *directory.Directory) *Router {
	return &Router{
		logger:    logger.With("component", "router"),
		registry:  reg,
		directory: dir,
	}
}

// Dispatch - processes one inbound event to completion and returns the
// outbound events it produced. Rejections never mutate shared state and are
// delivered only to the originating connection.
func (that *Router) Dispatch(ev Event) []Outbound {
	that.mu.Lock()
	defer that.mu.Unlock()

	metrics.EventsReceived.WithLabelValues(ev.Kind.String()).Inc()

	switch ev.Kind {
	case KindConnect:
		that.logger.Debug("connection registered", "conn", ev.Conn)
		return nil
	case KindDisconnect:
		return that.handleDisconnect(ev)
	case KindListRooms:
		return []Outbound{that.roomList(false, ev.Conn)}
	case KindCreateRoom:
		return that.handleCreateRoom(ev)
	case KindDeleteRoom:
		return that.handleDeleteRoom(ev)
	case KindJoinRoom:
		return that.handleJoinRoom(ev)
	case KindMakeMove:
		return that.handleMakeMove(ev)
	default:
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrUnknownAction)}
	}
}

func (that *Router) handleDisconnect(ev Event) []Outbound {
	roomID, seated := that.directory.Unseat(ev.Conn)
	if !seated {
		return nil
	}

	room, ok := that.registry.GetRoom(roomID)
	if !ok {
		// The directory must never point at a room the registry does not hold.
		that.logger.Error("seat references a missing room", "conn", ev.Conn, "room", roomID)
		return nil
	}

	room.RemoveMember(ev.Conn)
	that.logger.Info("connection left room", "conn", ev.Conn, "room", roomID)

	// The room stays listed even when empty; lobby entries persist until
	// they are explicitly deleted.
	return nil
}

func (that *Router) handleCreateRoom(ev Event) []Outbound {
	room := that.registry.CreateRoom()
	metrics.RoomsOpen.Set(float64(that.registry.Len()))
	that.logger.Info("room created", "room", room.ID, "conn", ev.Conn)

	return []Outbound{that.roomList(true, "")}
}

func (that *Router) handleDeleteRoom(ev Event) []Outbound {
	room, err := that.registry.DeleteRoom(ev.Room)
	if err != nil {
		return []Outbound{that.errorTo(ev.Conn, err)}
	}

	// Evict anyone still seated there so no connection references a
	// deleted room.
	for _, member := range room.Members {
		that.directory.Unseat(member)
	}

	metrics.RoomsOpen.Set(float64(that.registry.Len()))
	that.logger.Info("room deleted", "room", room.ID, "conn", ev.Conn)

	return []Outbound{that.roomList(true, "")}
}

func (that *Router) handleJoinRoom(ev Event) []Outbound {
	if _, seated := that.directory.RoomOf(ev.Conn); seated {
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrAlreadySeated)}
	}

	room, ok := that.registry.GetRoom(ev.Room)
	if !ok {
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrRoomNotFound)}
	}

	if err := room.AddMember(ev.Conn); err != nil {
		return []Outbound{that.errorTo(ev.Conn, err)}
	}

	that.directory.Seat(ev.Conn, room.ID)
	that.logger.Info("connection joined room", "conn", ev.Conn, "room", room.ID)

	outs := []Outbound{{
		To:     append([]string(nil), room.Members...),
		Action: ActionJoinedRoom,
		Payload: JoinedRoomPayload{
			Room:       room.ID,
			Connection: ev.Conn,
		},
	}}

	// Gameplay starts once the second member is in. Both players get the
	// initial board; the joined notice alone carries no game state.
	if room.IsFull() {
		if room.Game == nil {
			room.Game = entity.NewGame()
			that.logger.Info("game started", "room", room.ID)
		}
		outs = append(outs, that.gameState(room))
	}

	return outs
}

func (that *Router) handleMakeMove(ev Event) []Outbound {
	roomID, seated := that.directory.RoomOf(ev.Conn)
	if !seated {
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrNotSeated)}
	}

	room, ok := that.registry.GetRoom(roomID)
	if !ok {
		that.logger.Error("seat references a missing room", "conn", ev.Conn, "room", roomID)
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrRoomNotFound)}
	}

	if room.Game == nil || !room.IsFull() {
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrGameNotStarted)}
	}

	if room.Game.IsOngoing() && room.Game.Turn != room.MarkOf(ev.Conn) {
		return []Outbound{that.errorTo(ev.Conn, apperror.ErrNotYourTurn)}
	}

	if err := room.Game.MakeMove(ev.Row, ev.Col); err != nil {
		return []Outbound{that.errorTo(ev.Conn, err)}
	}

	metrics.MovesApplied.Inc()
	if room.Game.IsFinished() {
		metrics.GamesFinished.WithLabelValues(room.Game.Winner).Inc()
		that.logger.Info("game finished", "room", room.ID, "winner", room.Game.Winner)
	}

	return []Outbound{that.gameState(room)}
}

func (that *Router) roomList(broadcast bool, conn string) Outbound {
	out := Outbound{
		Broadcast: broadcast,
		Action:    ActionRoomList,
		Payload: RoomListPayload{
			Rooms: that.registry.ListRooms(),
		},
	}
	if !broadcast {
		out.To = []string{conn}
	}

	return out
}

func (that *Router) gameState(room *entity.Room) Outbound {
	return Outbound{
		To:     append([]string(nil), room.Members...),
		Action: ActionGameState,
		Payload: GameStatePayload{
			Room:   room.ID,
			Board:  room.Game.Board,
			Turn:   room.Game.Turn,
			Winner: room.Game.Winner,
			Status: room.Game.Status,
		},
	}
}

func (that *Router) errorTo(conn string, err error) Outbound {
	metrics.EventErrors.WithLabelValues(apperror.Code(err)).Inc()

	return Outbound{
		To:     []string{conn},
		Action: ActionError,
		Payload: ErrorPayload{
			Code:    apperror.Code(err),
			Message: err.Error(),
		},
	}
}
