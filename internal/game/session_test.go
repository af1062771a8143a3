package game

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSession(t *testing.T) {
	s := NewSession("game-1")

	assert.Equal(t, "game-1", s.ID)
	assert.Equal(t, New(), s.State())
	assert.False(t, s.CreatedAt.IsZero())
	assert.Equal(t, s.CreatedAt, s.LastActive())
}

func TestSession_Play(t *testing.T) {
	s := NewSession("game-1")

	snap, ok := s.Play(4)
	require.True(t, ok)
	assert.Equal(t, MarkX, snap.State.Board().Get(4))
	assert.Equal(t, uint64(1), snap.Version)
	assert.Equal(t, snap, s.GetSnapshot())

	// Occupied cell is rejected without changing the session.
	again, ok := s.Play(4)
	assert.False(t, ok)
	assert.Equal(t, snap, again)
	assert.Equal(t, snap, s.GetSnapshot())
}

func TestSession_JumpTo(t *testing.T) {
	s := NewSession("game-1")
	s.Play(0)
	s.Play(3)

	snap, err := s.JumpTo(1)
	require.NoError(t, err)
	assert.Equal(t, 1, snap.State.StepNumber())
	assert.Equal(t, 3, snap.State.Len())
	assert.Equal(t, uint64(3), snap.Version)

	failed, err := s.JumpTo(7)
	assert.ErrorIs(t, err, ErrStepOutOfRange)
	assert.Equal(t, snap, failed)
	assert.Equal(t, 1, s.State().StepNumber())
}

func TestSession_GetSnapshot(t *testing.T) {
	s := NewSession("game-1")
	s.Play(0)

	snapshot := s.GetSnapshot()

	assert.Equal(t, s.ID, snapshot.ID)
	assert.Equal(t, s.State(), snapshot.State)

	// Later moves do not leak into an earlier snapshot.
	s.Play(1)
	assert.Equal(t, 2, snapshot.State.Len())
	assert.Equal(t, MarkEmpty, snapshot.State.Board().Get(1))
}

func TestSession_ConcurrentPlay(t *testing.T) {
	s := NewSession("game-1")
	var wg sync.WaitGroup

	accepted := make(chan SessionSnapshot, Cells*4)
	for i := 0; i < Cells*4; i++ {
		wg.Add(1)
		go func(cell int) {
			defer wg.Done()
			if snap, ok := s.Play(cell); ok {
				accepted <- snap
			}
		}(i % Cells)
	}
	wg.Wait()
	close(accepted)

	st := s.State()
	n := 0
	for snap := range accepted {
		n++
		// Each snapshot shows the history as it stood right after that move.
		assert.Equal(t, int(snap.Version)+1, snap.State.Len())
	}
	// Each accepted move is recorded exactly once.
	assert.Equal(t, n+1, st.Len())
	_, err := Restore(st.History(), st.StepNumber())
	assert.NoError(t, err)
}
