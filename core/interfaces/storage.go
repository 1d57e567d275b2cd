// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Saved places persist across restarts; cached lookups do not

package interfaces

import (
	"context"

	"mealmap-api/core/domain"
)

// PlaceStorage defines the interface for saved-place persistence.
// Implementations exist for memory, Redis, and SQLite backends.
type PlaceStorage interface {
	// Save persists a saved place, overwriting any existing entry with
	// the same ID.
	Save(ctx context.Context, place *domain.SavedPlace) error

	// Get retrieves a saved place by ID. Returns a NotFoundError when
	// the ID is unknown.
	Get(ctx context.Context, id string) (*domain.SavedPlace, error)

	// List returns all saved places.
	List(ctx context.Context) ([]domain.SavedPlace, error)

	// Delete removes a saved place by ID. Deleting an unknown ID is not
	// an error.
	Delete(ctx context.Context, id string) error
}
