package game

import (
	"sync"
	"time"
)

// Session owns the live State for one remote game
type Session struct {
	mu sync.RWMutex

	ID        string
	state     State
	version   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewSession starts a session at the initial state
func NewSession(id string) *Session {
	now := time.Now()
	return &Session{
		ID:        id,
		state:     New(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Play applies a move and reports whether it was accepted. The snapshot is
// taken under the same lock as the move.
func (s *Session) Play(cell int) (SessionSnapshot, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.state.CanMove(cell) {
		return s.snapshot(), false
	}
	s.commit(s.state.ApplyMove(cell))
	return s.snapshot(), true
}

// JumpTo moves the session cursor to a recorded step
func (s *Session) JumpTo(step int) (SessionSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := s.state.JumpTo(step)
	if err != nil {
		return s.snapshot(), err
	}
	s.commit(next)
	return s.snapshot(), nil
}

// commit must be called with mu held
func (s *Session) commit(next State) {
	s.state = next
	s.version++
	s.UpdatedAt = time.Now()
}

// State returns the current state (thread-safe)
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// LastActive returns when the session last changed (thread-safe)
func (s *Session) LastActive() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.UpdatedAt
}

// GetSnapshot returns a snapshot of the session
func (s *Session) GetSnapshot() SessionSnapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

func (s *Session) snapshot() SessionSnapshot {
	return SessionSnapshot{
		ID:        s.ID,
		State:     s.state,
		Version:   s.version,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SessionSnapshot is an immutable snapshot of a session. Version counts the
// changes applied so far.
type SessionSnapshot struct {
	ID        string
	State     State
	Version   uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}
