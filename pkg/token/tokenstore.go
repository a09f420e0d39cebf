package tokenstore

import "sync"

// Store tracks revoked JWT ids in memory. A multi-instance deployment
// would back this with Redis or the database instead.
type Store struct {
	mu      sync.RWMutex
	revoked map[string]struct{}
}

func New() *Store {
	return &Store{revoked: map[string]struct{}{}}
}

func (s *Store) Revoke(jti string) {
	if jti == "" {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.revoked[jti] = struct{}{}
}

func (s *Store) IsRevoked(jti string) bool {
	if jti == "" {
		return false
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.revoked[jti]
	return ok
}
