// ABOUTME: In-memory saved-place storage for development and tests
// ABOUTME: Thread-safe map-backed implementation of PlaceStorage

package memory

import (
	"context"
	"sync"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
)

// Store implements PlaceStorage in memory. Contents are lost on
// restart; use the Redis or SQLite backend for persistence.
type Store struct {
	mu     sync.RWMutex
	places map[string]domain.SavedPlace
}

// NewStore creates a new in-memory place store.
func NewStore() *Store {
	return &Store{
		places: make(map[string]domain.SavedPlace),
	}
}

// Save persists a saved place, overwriting any existing entry.
func (s *Store) Save(ctx context.Context, place *domain.SavedPlace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.places[place.ID] = *place
	return nil
}

// Get retrieves a saved place by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.SavedPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	place, ok := s.places[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "place", ID: id}
	}
	return &place, nil
}

// List returns all saved places.
func (s *Store) List(ctx context.Context) ([]domain.SavedPlace, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.SavedPlace, 0, len(s.places))
	for _, p := range s.places {
		out = append(out, p)
	}
	return out, nil
}

// Delete removes a saved place by ID. Unknown IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.places, id)
	return nil
}
