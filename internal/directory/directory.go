package directory

import "sync"

// Directory maps each live connection to the single room it currently
// occupies. A connection absent from the table is in the lobby, unseated.
// The directory holds only room identifiers, never the rooms themselves.
type Directory struct {
	mu    sync.RWMutex
	seats map[string]string
}

func New() *Directory {
	return &Directory{
		seats: make(map[string]string),
	}
}

// Seat - records that a connection occupies a room. A connection holds at
// most one seat, so any previous seat is vacated first.
func (that *Directory) Seat(connID, roomID string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.seats[connID] = roomID
}

// Unseat - removes the connection's seat and returns the room it occupied.
// Reports false when the connection was not seated.
func (that *Directory) Unseat(connID string) (string, bool) {
	that.mu.Lock()
	defer that.mu.Unlock()

	roomID, ok := that.seats[connID]
	if ok {
		delete(that.seats, connID)
	}

	return roomID, ok
}

// RoomOf - looks up the room a connection is seated in.
func (that *Directory) RoomOf(connID string) (string, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	roomID, ok := that.seats[connID]

	return roomID, ok
}
