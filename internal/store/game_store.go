package store

import (
	"errors"
	"sort"
	"sync"
	"time"

	"timetravel/internal/game"
)

var (
	ErrGameNotFound      = errors.New("game not found")
	ErrGameAlreadyExists = errors.New("game already exists")
)

// GameStore provides thread-safe storage for live game sessions
// Uses sharding to reduce lock contention for scalability
type GameStore struct {
	shards    []*gameShard
	numShards int
}

type gameShard struct {
	mu       sync.RWMutex
	sessions map[string]*game.Session
}

// NewGameStore creates a new game store with the specified number of shards
// More shards = less contention but more memory overhead
func NewGameStore(numShards int) *GameStore {
	if numShards < 1 {
		numShards = 64 // Default for good concurrency
	}

	shards := make([]*gameShard, numShards)
	for i := range shards {
		shards[i] = &gameShard{
			sessions: make(map[string]*game.Session),
		}
	}

	return &GameStore{
		shards:    shards,
		numShards: numShards,
	}
}

// getShard returns the shard for a given game ID
func (s *GameStore) getShard(gameID string) *gameShard {
	// Simple hash function for sharding
	hash := uint32(0)
	for _, c := range gameID {
		hash = hash*31 + uint32(c)
	}
	return s.shards[hash%uint32(s.numShards)]
}

// Create stores a new session
func (s *GameStore) Create(sess *game.Session) error {
	shard := s.getShard(sess.ID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, exists := shard.sessions[sess.ID]; exists {
		return ErrGameAlreadyExists
	}

	shard.sessions[sess.ID] = sess
	return nil
}

// Get retrieves a session by game ID
func (s *GameStore) Get(gameID string) (*game.Session, error) {
	shard := s.getShard(gameID)
	shard.mu.RLock()
	defer shard.mu.RUnlock()

	sess, exists := shard.sessions[gameID]
	if !exists {
		return nil, ErrGameNotFound
	}

	return sess, nil
}

// Delete removes a session by game ID
func (s *GameStore) Delete(gameID string) error {
	shard := s.getShard(gameID)
	shard.mu.Lock()
	defer shard.mu.Unlock()

	if _, exists := shard.sessions[gameID]; !exists {
		return ErrGameNotFound
	}

	delete(shard.sessions, gameID)
	return nil
}

// DeleteIdle removes sessions that have not changed since cutoff and
// returns their IDs
func (s *GameStore) DeleteIdle(cutoff time.Time) []string {
	var removed []string
	for _, shard := range s.shards {
		shard.mu.Lock()
		for id, sess := range shard.sessions {
			if sess.LastActive().Before(cutoff) {
				delete(shard.sessions, id)
				removed = append(removed, id)
			}
		}
		shard.mu.Unlock()
	}
	return removed
}

// List returns session snapshots, newest first, with pagination
func (s *GameStore) List(limit, offset int) ([]game.SessionSnapshot, int) {
	var all []game.SessionSnapshot

	for _, shard := range s.shards {
		shard.mu.RLock()
		for _, sess := range shard.sessions {
			all = append(all, sess.GetSnapshot())
		}
		shard.mu.RUnlock()
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].CreatedAt.Equal(all[j].CreatedAt) {
			return all[i].ID < all[j].ID
		}
		return all[i].CreatedAt.After(all[j].CreatedAt)
	})

	totalCount := len(all)

	// Apply pagination
	if offset >= len(all) {
		return []game.SessionSnapshot{}, totalCount
	}

	all = all[offset:]
	if limit > 0 && len(all) > limit {
		all = all[:limit]
	}

	return all, totalCount
}

// Count returns the total number of sessions
func (s *GameStore) Count() int {
	count := 0
	for _, shard := range s.shards {
		shard.mu.RLock()
		count += len(shard.sessions)
		shard.mu.RUnlock()
	}
	return count
}
