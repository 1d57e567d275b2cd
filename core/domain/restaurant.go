// ABOUTME: Restaurant domain model for venues returned by the geodata source
// ABOUTME: Provides validation to ensure a venue has the fields the API requires

package domain

// Restaurant represents a food venue near a queried location.
type Restaurant struct {
	// ID is the geodata source's identifier for the venue
	ID string `json:"id"`

	// Name is the venue's display name
	Name string `json:"name"`

	// Latitude and Longitude locate the venue
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Cuisine is the venue's cuisine tag (e.g., "burger", "sushi")
	Cuisine string `json:"cuisine,omitempty"`

	// Address is a single-line street address assembled from source tags
	Address string `json:"address,omitempty"`

	// Website is the venue's homepage, when tagged
	Website string `json:"website,omitempty"`

	// Phone is the venue's contact number, when tagged
	Phone string `json:"phone,omitempty"`

	// OpeningHours is the source's opening-hours string, unparsed
	OpeningHours string `json:"opening_hours,omitempty"`

	// DistanceMeters is the distance from the query center. Only set on
	// region listings; zero otherwise.
	DistanceMeters float64 `json:"distance_meters,omitempty"`
}

// IsValid checks whether the venue has a name and plausible coordinates.
func (r *Restaurant) IsValid() bool {
	if r.Name == "" {
		return false
	}
	if r.Latitude < -90 || r.Latitude > 90 {
		return false
	}
	if r.Longitude < -180 || r.Longitude > 180 {
		return false
	}
	return true
}

// RGBColor represents an RGB color value extracted from a venue photo.
type RGBColor struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}
