// ABOUTME: Search domain models for free-text place discovery
// ABOUTME: Defines results returned by the external geocoding search API

package domain

// PlaceResult represents one place matched by a free-text search.
type PlaceResult struct {
	// Name is the place's short name
	Name string `json:"name"`

	// DisplayName is the full human-readable label (name plus locality)
	DisplayName string `json:"display_name"`

	// Latitude and Longitude locate the place
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Category is the source's classification (e.g., "restaurant", "cafe")
	Category string `json:"category,omitempty"`

	// Importance is the source's relevance ranking, higher is better
	Importance float64 `json:"importance,omitempty"`
}
