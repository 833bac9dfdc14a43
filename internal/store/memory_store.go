package store

import (
	"sync"

	"nba-scores/internal/domain"
)

// MemoryStore keeps the games fetched for the date on screen. Games are held
// in feed order so the list renders exactly as the upstream returned it.
type MemoryStore struct {
	mu    sync.RWMutex
	games []domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// ListGames returns a copy of the current games slice.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, len(s.games))
	copy(result, s.games)
	return result
}

// GameByIndex retrieves a game by its selector index.
func (s *MemoryStore) GameByIndex(index int) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if g.Index == index {
			return g, true
		}
	}
	return domain.Game{}, false
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make([]domain.Game, len(games))
	copy(s.games, games)
}
