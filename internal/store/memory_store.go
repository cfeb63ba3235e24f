package store

import (
	"sort"
	"sync"

	"league-postseason-service/internal/domain"
)

// MemoryStore keeps resolved seasons in memory, thread-safe.
type MemoryStore struct {
	mu      sync.RWMutex
	seasons map[int]domain.SeasonResult
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		seasons: make(map[int]domain.SeasonResult),
	}
}

// SetResult stores (or replaces) a resolved season.
func (s *MemoryStore) SetResult(result domain.SeasonResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seasons[result.Season] = result
}

// Result retrieves a resolved season.
func (s *MemoryStore) Result(season int) (domain.SeasonResult, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.seasons[season]
	return r, ok
}

// Seasons returns the resolved season numbers in ascending order.
func (s *MemoryStore) Seasons() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]int, 0, len(s.seasons))
	for season := range s.seasons {
		out = append(out, season)
	}
	sort.Ints(out)
	return out
}

// Len reports how many seasons are resolved.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.seasons)
}
