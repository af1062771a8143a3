package server

import (
	"context"
	"log"
	"time"
)

// ExpireIdle deletes sessions untouched since cutoff and notifies their
// subscribers. It returns the number of sessions removed.
func (s *TicTacToeServer) ExpireIdle(cutoff time.Time) int {
	removed := s.gameStore.DeleteIdle(cutoff)
	for _, id := range removed {
		s.broadcastClosed(id)
	}
	return len(removed)
}

// RunReaper expires sessions idle for longer than ttl, checking every
// interval, until ctx is cancelled.
func (s *TicTacToeServer) RunReaper(ctx context.Context, ttl, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := s.ExpireIdle(now.Add(-ttl)); n > 0 {
				log.Printf("Expired %d idle games", n)
			}
		}
	}
}
