// ABOUTME: Namespace names and TTLs for the data categories the API caches
// ABOUTME: Defaults returns the full namespace set used by the server

package cache

import "time"

// Namespace names used across the services. Each category tolerates a
// different staleness window: restaurant lists go stale quickly as the
// map moves, nutrition facts barely change within an hour.
const (
	RestaurantsByRegion = "restaurants-by-region"
	NutritionByName     = "nutrition-by-name"
	SearchByQuery       = "search-by-query"
	RestaurantsByBucket = "restaurants-by-bucket"
	SiteMetadata        = "site-metadata"
	PhotoColor          = "photo-color"
)

// Defaults returns the namespaces the server registers at startup.
// maxEntries caps each namespace; zero leaves them unbounded.
func Defaults(maxEntries int) []Namespace {
	return []Namespace{
		{Name: RestaurantsByRegion, TTL: 5 * time.Minute, MaxEntries: maxEntries},
		{Name: NutritionByName, TTL: 60 * time.Minute, MaxEntries: maxEntries},
		{Name: SearchByQuery, TTL: 10 * time.Minute, MaxEntries: maxEntries},
		{Name: RestaurantsByBucket, TTL: 15 * time.Minute, MaxEntries: maxEntries},
		{Name: SiteMetadata, TTL: 24 * time.Hour, MaxEntries: maxEntries},
		{Name: PhotoColor, TTL: 24 * time.Hour, MaxEntries: maxEntries},
	}
}
