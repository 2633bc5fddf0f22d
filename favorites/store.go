// Package favorites keeps per-user sets of favorited property IDs.
package favorites

import (
	"sort"
	"sync"
)

type Store struct {
	mu     sync.Mutex
	byUser map[string]map[string]struct{}
}

func NewStore() *Store {
	return &Store{byUser: make(map[string]map[string]struct{})}
}

// Add records the pair; adding an existing pair is a no-op.
func (s *Store) Add(userID, propertyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.byUser[userID]
	if !ok {
		set = make(map[string]struct{})
		s.byUser[userID] = set
	}
	set[propertyID] = struct{}{}
}

// Remove drops the pair; removing an absent pair is a no-op.
func (s *Store) Remove(userID, propertyID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if set, ok := s.byUser[userID]; ok {
		delete(set, propertyID)
	}
}

// Toggle flips membership and returns the resulting state: true when
// the property is now favorited.
func (s *Store) Toggle(userID, propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	set, ok := s.byUser[userID]
	if !ok {
		set = make(map[string]struct{})
		s.byUser[userID] = set
	}
	if _, present := set[propertyID]; present {
		delete(set, propertyID)
		return false
	}
	set[propertyID] = struct{}{}
	return true
}

func (s *Store) Contains(userID, propertyID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.byUser[userID][propertyID]
	return ok
}

// ListFor returns the user's favorited property IDs sorted for stable
// output.
func (s *Store) ListFor(userID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.byUser[userID]
	out := make([]string, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
