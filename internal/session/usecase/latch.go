package usecase

import "sync"

// sessionLatch enforces the single-writer invariant: at most one turn in
// flight per session id, across all connections in this process.
type sessionLatch struct {
	mu   sync.Mutex
	busy map[string]struct{}
}

func newSessionLatch() *sessionLatch {
	return &sessionLatch{busy: make(map[string]struct{})}
}

func (s *sessionLatch) TryAcquire(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.busy[sessionID]; ok {
		return false
	}
	s.busy[sessionID] = struct{}{}
	return true
}

func (s *sessionLatch) Release(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.busy, sessionID)
}
