package registry

import (
	"sync"
	"testing"

	"github.com/roomloop/tictactoe-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_CreateRoom(t *testing.T) {
	// Given: an empty registry
	reg := New()

	// When: a room is created
	room := reg.CreateRoom()

	// Then: it is registered, empty and has no game yet
	require.NotEmpty(t, room.ID)
	assert.Empty(t, room.Members)
	assert.Nil(t, room.Game)

	got, ok := reg.GetRoom(room.ID)
	require.True(t, ok)
	assert.Same(t, room, got)
}

func TestRegistry_CreateRoom_UniqueIDs(t *testing.T) {
	reg := New()

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		room := reg.CreateRoom()
		require.False(t, seen[room.ID], "room identifiers must be unique")
		seen[room.ID] = true
	}
}

func TestRegistry_ListRooms(t *testing.T) {
	t.Run("Returns identifiers in creation order", func(t *testing.T) {
		// Given: two rooms created one after another
		reg := New()
		first := reg.CreateRoom()
		second := reg.CreateRoom()

		// When: the lobby is listed
		ids := reg.ListRooms()

		// Then: both identifiers come back in creation order
		assert.Equal(t, []string{first.ID, second.ID}, ids)
	})

	t.Run("Returns a snapshot, not a live view", func(t *testing.T) {
		reg := New()
		reg.CreateRoom()

		ids := reg.ListRooms()
		reg.CreateRoom()

		assert.Len(t, ids, 1)
		assert.Len(t, reg.ListRooms(), 2)
	})
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	// Given: an empty registry shared by many goroutines
	reg := New()

	const perWorker = 10
	const workers = 8

	// When: workers create, list and delete rooms concurrently
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				room := reg.CreateRoom()
				_ = reg.ListRooms()

				if _, err := reg.DeleteRoom(room.ID); err != nil {
					t.Errorf("failed to delete own room: %v", err)
				}
			}
		}()
	}

	keepers := make([]string, 0, workers)
	var mu sync.Mutex
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			room := reg.CreateRoom()

			mu.Lock()
			keepers = append(keepers, room.ID)
			mu.Unlock()
		}()
	}
	wg.Wait()

	// Then: only the undeleted rooms remain and every listed identifier
	// is one of them
	require.Equal(t, workers, reg.Len())
	assert.ElementsMatch(t, keepers, reg.ListRooms())
}

func TestRegistry_DeleteRoom(t *testing.T) {
	t.Run("Removes the room and keeps order of the rest", func(t *testing.T) {
		// Given: two rooms
		reg := New()
		first := reg.CreateRoom()
		second := reg.CreateRoom()

		// When: the first is deleted
		room, err := reg.DeleteRoom(first.ID)

		// Then: only the second remains listed
		require.NoError(t, err)
		assert.Equal(t, first.ID, room.ID)
		assert.Equal(t, []string{second.ID}, reg.ListRooms())

		_, ok := reg.GetRoom(first.ID)
		assert.False(t, ok)
	})

	t.Run("Fails with ErrRoomNotFound for an unknown identifier", func(t *testing.T) {
		reg := New()

		_, err := reg.DeleteRoom("game-missing")

		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})
}
