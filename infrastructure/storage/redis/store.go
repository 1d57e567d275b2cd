// ABOUTME: Redis-backed saved-place storage using ReJSON documents
// ABOUTME: Each place lives at place:<id>; listing scans the key prefix

package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nitishm/go-rejson/v4"
	"github.com/redis/go-redis/v9"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
)

const keyPrefix = "place:"

// Config holds Redis connection settings.
type Config struct {
	Address  string
	Password string
	DB       int
}

// Store implements PlaceStorage on Redis with ReJSON documents.
type Store struct {
	client  *redis.Client
	handler *rejson.Handler
}

// NewStore connects to Redis and verifies the connection.
func NewStore(cfg Config) (*Store, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Address,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", cfg.Address, err)
	}

	handler := rejson.NewReJSONHandler()
	handler.SetGoRedisClientWithContext(context.Background(), client)

	return &Store{client: client, handler: handler}, nil
}

// Save persists a saved place as a JSON document.
func (s *Store) Save(ctx context.Context, place *domain.SavedPlace) error {
	if _, err := s.handler.JSONSet(keyPrefix+place.ID, ".", place); err != nil {
		return fmt.Errorf("failed to store place %s: %w", place.ID, err)
	}
	return nil
}

// Get retrieves a saved place by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.SavedPlace, error) {
	val, err := s.handler.JSONGet(keyPrefix+id, ".")
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, &coreerrors.NotFoundError{Resource: "place", ID: id}
		}
		return nil, fmt.Errorf("failed to load place %s: %w", id, err)
	}

	raw, ok := val.([]byte)
	if !ok {
		return nil, fmt.Errorf("unexpected ReJSON payload type %T for place %s", val, id)
	}

	var place domain.SavedPlace
	if err := json.Unmarshal(raw, &place); err != nil {
		return nil, fmt.Errorf("failed to decode place %s: %w", id, err)
	}
	return &place, nil
}

// List returns all saved places by scanning the key prefix.
func (s *Store) List(ctx context.Context) ([]domain.SavedPlace, error) {
	keys, err := s.client.Keys(ctx, keyPrefix+"*").Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list place keys: %w", err)
	}

	places := make([]domain.SavedPlace, 0, len(keys))
	for _, key := range keys {
		place, err := s.Get(ctx, key[len(keyPrefix):])
		if err != nil {
			// A key deleted between the scan and the read is not an error.
			if coreerrors.IsNotFound(err) {
				continue
			}
			return nil, err
		}
		places = append(places, *place)
	}
	return places, nil
}

// Delete removes a saved place by ID. Unknown IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, keyPrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete place %s: %w", id, err)
	}
	return nil
}

// Close releases the Redis connection.
func (s *Store) Close() error {
	return s.client.Close()
}
