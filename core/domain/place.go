// ABOUTME: SavedPlace domain model for user-saved restaurants
// ABOUTME: Saved places persist in storage, unlike cached lookup results

package domain

import "time"

// SavedPlace is a restaurant a user has saved for later.
type SavedPlace struct {
	// ID uniquely identifies the saved place
	ID string `json:"id"`

	// Restaurant is the saved venue
	Restaurant Restaurant `json:"restaurant"`

	// Note is an optional user note
	Note string `json:"note,omitempty"`

	// SavedAt is when the place was saved
	SavedAt time.Time `json:"saved_at"`
}
