// ABOUTME: Deterministic cache key derivation for location and name lookups
// ABOUTME: Coordinate keys are coarsened to a ~111m grid so nearby queries share an entry

package cache

import (
	"fmt"
	"strings"
)

// BucketKey derives a cache key from a search position. Latitude and
// longitude are rounded independently to three decimal places (roughly a
// 111 m grid) and combined with the integer radius in meters, so small
// map pans inside the same cell reuse one cached result set.
func BucketKey(lat, lon float64, radiusMeters int) string {
	return fmt.Sprintf("%.3f,%.3f,%d", lat, lon, radiusMeters)
}

// NormalizeKey derives a cache key from a free-text name or query:
// whitespace-trimmed and case-normalized, so "  Subway " and "subway"
// hit the same entry.
func NormalizeKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
