package store

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"timetravel/internal/game"
)

func TestGameStore_CreateGet(t *testing.T) {
	store := NewGameStore(4)

	sess := game.NewSession("game-1")

	// Create
	err := store.Create(sess)
	require.NoError(t, err)

	// Get
	retrieved, err := store.Get("game-1")
	require.NoError(t, err)
	assert.Same(t, sess, retrieved)

	// Create duplicate
	err = store.Create(game.NewSession("game-1"))
	assert.ErrorIs(t, err, ErrGameAlreadyExists)
}

func TestGameStore_GetNotFound(t *testing.T) {
	store := NewGameStore(4)

	_, err := store.Get("nonexistent")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGameStore_Delete(t *testing.T) {
	store := NewGameStore(4)
	require.NoError(t, store.Create(game.NewSession("game-1")))

	err := store.Delete("game-1")
	require.NoError(t, err)

	_, err = store.Get("game-1")
	assert.ErrorIs(t, err, ErrGameNotFound)

	// Delete again
	err = store.Delete("game-1")
	assert.ErrorIs(t, err, ErrGameNotFound)
}

func TestGameStore_DeleteIdle(t *testing.T) {
	store := NewGameStore(4)
	now := time.Now()

	stale := game.NewSession("stale")
	stale.UpdatedAt = now.Add(-time.Hour)
	require.NoError(t, store.Create(stale))
	require.NoError(t, store.Create(game.NewSession("fresh")))

	removed := store.DeleteIdle(now.Add(-time.Minute))

	assert.Equal(t, []string{"stale"}, removed)
	assert.Equal(t, 1, store.Count())
	_, err := store.Get("fresh")
	assert.NoError(t, err)
}

func TestGameStore_List(t *testing.T) {
	store := NewGameStore(4)
	base := time.Now()

	for i := 0; i < 5; i++ {
		sess := game.NewSession(fmt.Sprintf("game-%d", i))
		sess.CreatedAt = base.Add(time.Duration(i) * time.Second)
		require.NoError(t, store.Create(sess))
	}

	list, total := store.List(10, 0)
	assert.Equal(t, 5, total)
	require.Len(t, list, 5)
	assert.Equal(t, "game-4", list[0].ID)
	assert.Equal(t, "game-0", list[4].ID)

	// Test pagination
	list, total = store.List(2, 0)
	assert.Equal(t, 5, total)
	assert.Len(t, list, 2)

	list, total = store.List(2, 4)
	assert.Equal(t, 5, total)
	require.Len(t, list, 1)
	assert.Equal(t, "game-0", list[0].ID)

	list, _ = store.List(2, 9)
	assert.Empty(t, list)
}

func TestGameStore_Count(t *testing.T) {
	store := NewGameStore(4)

	assert.Equal(t, 0, store.Count())

	store.Create(game.NewSession("game-1"))
	store.Create(game.NewSession("game-2"))

	assert.Equal(t, 2, store.Count())
}

func TestGameStore_Concurrent(t *testing.T) {
	store := NewGameStore(4)
	var wg sync.WaitGroup

	// Concurrent creates
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			store.Create(game.NewSession(fmt.Sprintf("game-%d", id)))
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 100, store.Count())

	// Concurrent reads and moves
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			sess, err := store.Get(fmt.Sprintf("game-%d", id))
			if err != nil {
				return
			}
			sess.Play(id % game.Cells)
		}(i)
	}
	wg.Wait()

	list, total := store.List(0, 0)
	assert.Equal(t, 100, total)
	for _, snap := range list {
		assert.Equal(t, 2, snap.State.Len())
	}
}
