// ABOUTME: Places service manages user-saved restaurants
// ABOUTME: Persists through PlaceStorage; storage, not the cache, is the source of truth

package places

import (
	"context"
	"fmt"
	"time"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"

	"github.com/google/uuid"
)

// PlaceService handles saved-place operations.
type PlaceService struct {
	storage interfaces.PlaceStorage
	logger  interfaces.Logger
}

// NewPlaceService creates a new place service.
func NewPlaceService(storage interfaces.PlaceStorage, logger interfaces.Logger) *PlaceService {
	return &PlaceService{
		storage: storage,
		logger:  logger,
	}
}

// Save stores a restaurant as a saved place and returns it with its
// assigned ID.
func (s *PlaceService) Save(ctx context.Context, restaurant domain.Restaurant, note string) (*domain.SavedPlace, error) {
	if !restaurant.IsValid() {
		return nil, &coreerrors.ValidationError{Field: "restaurant", Message: "must have a name and valid coordinates"}
	}

	place := &domain.SavedPlace{
		ID:         uuid.New().String(),
		Restaurant: restaurant,
		Note:       note,
		SavedAt:    time.Now(),
	}

	if err := s.storage.Save(ctx, place); err != nil {
		return nil, fmt.Errorf("failed to save place: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("Saved place", map[string]interface{}{
			"id":   place.ID,
			"name": restaurant.Name,
		})
	}
	return place, nil
}

// Get retrieves a saved place by ID.
func (s *PlaceService) Get(ctx context.Context, id string) (*domain.SavedPlace, error) {
	if id == "" {
		return nil, &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.storage.Get(ctx, id)
}

// List returns all saved places.
func (s *PlaceService) List(ctx context.Context) ([]domain.SavedPlace, error) {
	return s.storage.List(ctx)
}

// Delete removes a saved place by ID.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if id == "" {
		return &coreerrors.ValidationError{Field: "id", Message: "cannot be empty"}
	}
	return s.storage.Delete(ctx, id)
}
