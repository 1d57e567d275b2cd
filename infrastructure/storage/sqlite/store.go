// ABOUTME: SQLite-backed saved-place storage that survives restarts
// ABOUTME: Places are stored as JSON blobs keyed by ID

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
)

// Store implements PlaceStorage on a SQLite database file.
type Store struct {
	db       *sql.DB
	filePath string
}

// NewStore opens (or creates) the database file and initializes the
// schema.
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "places.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{db: db, filePath: filePath}
	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	return store, nil
}

func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS places (
			id TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			saved_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_places_saved_at ON places(saved_at);
	`
	_, err := s.db.Exec(query)
	return err
}

// Save persists a saved place, overwriting any existing row.
func (s *Store) Save(ctx context.Context, place *domain.SavedPlace) error {
	data, err := json.Marshal(place)
	if err != nil {
		return fmt.Errorf("failed to encode place %s: %w", place.ID, err)
	}

	query := "INSERT OR REPLACE INTO places (id, data, saved_at) VALUES (?, ?, ?)"
	if _, err := s.db.ExecContext(ctx, query, place.ID, data, place.SavedAt.Unix()); err != nil {
		return fmt.Errorf("failed to store place %s: %w", place.ID, err)
	}
	return nil
}

// Get retrieves a saved place by ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.SavedPlace, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, "SELECT data FROM places WHERE id = ?", id).Scan(&data)
	if err == sql.ErrNoRows {
		return nil, &coreerrors.NotFoundError{Resource: "place", ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load place %s: %w", id, err)
	}

	var place domain.SavedPlace
	if err := json.Unmarshal(data, &place); err != nil {
		return nil, fmt.Errorf("failed to decode place %s: %w", id, err)
	}
	return &place, nil
}

// List returns all saved places, newest first.
func (s *Store) List(ctx context.Context) ([]domain.SavedPlace, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT data FROM places ORDER BY saved_at DESC")
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []domain.SavedPlace
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, fmt.Errorf("failed to scan place row: %w", err)
		}
		var place domain.SavedPlace
		if err := json.Unmarshal(data, &place); err != nil {
			return nil, fmt.Errorf("failed to decode place row: %w", err)
		}
		places = append(places, place)
	}
	return places, rows.Err()
}

// Delete removes a saved place by ID. Unknown IDs are ignored.
func (s *Store) Delete(ctx context.Context, id string) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM places WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete place %s: %w", id, err)
	}
	return nil
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
