package registry

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/roomloop/tictactoe-backend/internal/apperror"
	"github.com/roomloop/tictactoe-backend/internal/entity"
)

// Registry is the in-memory table of open and active rooms. It owns every
// Room for its whole lifetime; everything else refers to rooms by identifier.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
	order []string
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]*entity.Room),
	}
}

// CreateRoom - registers a new empty room under a fresh random token.
// Tokens are random rather than sequential so room identifiers cannot be
// guessed or enumerated from the outside.
func (that *Registry) CreateRoom() *entity.Room {
	room := entity.NewRoom("game-" + uuid.NewString())

	that.mu.Lock()
	defer that.mu.Unlock()

	that.rooms[room.ID] = room
	that.order = append(that.order, room.ID)

	return room
}

// ListRooms - returns a snapshot of all room identifiers in creation order.
func (that *Registry) ListRooms() []string {
	that.mu.RLock()
	defer that.mu.RUnlock()

	ids := make([]string, len(that.order))
	copy(ids, that.order)

	return ids
}

// DeleteRoom - removes a room from the table and returns it so the caller can
// evict any members still seated there.
func (that *Registry) DeleteRoom(id string) (*entity.Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, id)
	}

	delete(that.rooms, id)
	for i, roomID := range that.order {
		if roomID == id {
			that.order = append(that.order[:i], that.order[i+1:]...)
			break
		}
	}

	return room, nil
}

func (that *Registry) GetRoom(id string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]

	return room, ok
}

// Len - number of registered rooms.
func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}
