package entity

import (
	"fmt"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
)

// MaxMembers - a room never holds more than two connections.
const MaxMembers = 2

// Room is one lobby slot: up to two seated connections and, once the second
// member joins, an active game. A room with no game is still listed in the
// lobby until it is explicitly deleted.
type Room struct {
	ID      string            `json:"id"`
	Members []string          `json:"members"`
	Marks   map[string]string `json:"marks,omitempty"`
	Game    *Game             `json:"game,omitempty"`
}

func NewRoom(id string) *Room {
	return &Room{
		ID:    id,
		Marks: make(map[string]string),
	}
}

// AddMember - seats a connection in the room and assigns it the vacant mark.
// The first joiner plays X, the second plays O; a joiner replacing someone who
// left mid-game inherits the mark that was freed.
func (that *Room) AddMember(connID string) error {
	if len(that.Members) >= MaxMembers {
		return fmt.Errorf("%w: room %s has %d members", apperror.ErrRoomFull, that.ID, len(that.Members))
	}

	mark := PlayerX
	for _, id := range that.Members {
		if that.Marks[id] == PlayerX {
			mark = PlayerO
			break
		}
	}

	that.Members = append(that.Members, connID)
	that.Marks[connID] = mark

	return nil
}

// RemoveMember - vacates a connection's seat and frees its mark.
func (that *Room) RemoveMember(connID string) {
	for i, id := range that.Members {
		if id == connID {
			that.Members = append(that.Members[:i], that.Members[i+1:]...)
			break
		}
	}
	delete(that.Marks, connID)
}

func (that *Room) HasMember(connID string) bool {
	for _, id := range that.Members {
		if id == connID {
			return true
		}
	}
	return false
}

// MarkOf - returns the mark assigned to a seated connection, or EmptyCell
// when the connection is not a member.
func (that *Room) MarkOf(connID string) string {
	return that.Marks[connID]
}

func (that *Room) IsFull() bool {
	return len(that.Members) == MaxMembers
}
