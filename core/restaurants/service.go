// ABOUTME: Restaurant service fetches nearby venues from an Overpass-style geodata API
// ABOUTME: Results are memoized per coordinate bucket so map pans reuse cached lookups

package restaurants

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"sort"

	"mealmap-api/core/cache"
	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/geo"
	"mealmap-api/core/interfaces"
)

const (
	// maxRadiusMeters caps the search radius the geodata source accepts
	// without timing out.
	maxRadiusMeters = 50000

	defaultRegionLimit = 50
)

// RestaurantService handles nearby-restaurant lookups against the
// geodata API.
type RestaurantService struct {
	deps   interfaces.Dependencies
	apiURL string
}

// NewRestaurantService creates a new restaurant service. apiURL is the
// Overpass interpreter endpoint.
func NewRestaurantService(deps interfaces.Dependencies, apiURL string) *RestaurantService {
	return &RestaurantService{
		deps:   deps,
		apiURL: apiURL,
	}
}

// validateQuery validates the coordinate and radius of a lookup.
func (s *RestaurantService) validateQuery(lat, lon float64, radiusMeters int) error {
	if lat < -90 || lat > 90 {
		return &coreerrors.ValidationError{Field: "lat", Message: "must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return &coreerrors.ValidationError{Field: "lon", Message: "must be between -180 and 180"}
	}
	if radiusMeters <= 0 {
		return &coreerrors.ValidationError{Field: "radius", Message: "must be positive"}
	}
	if radiusMeters > maxRadiusMeters {
		return &coreerrors.ValidationError{Field: "radius", Message: fmt.Sprintf("must not exceed %d meters", maxRadiusMeters)}
	}
	return nil
}

// Nearby returns the restaurants around a coordinate. Lookups within
// the same ~111 m bucket reuse one cached result set for the namespace
// TTL.
func (s *RestaurantService) Nearby(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Restaurant, error) {
	if err := s.validateQuery(lat, lon, radiusMeters); err != nil {
		return nil, err
	}

	key := cache.BucketKey(lat, lon, radiusMeters)
	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.RestaurantsByBucket, key); ok {
			if cached, ok := v.([]domain.Restaurant); ok {
				return cached, nil
			}
		}
	}

	results, err := s.fetch(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		s.deps.Cache.Put(cache.RestaurantsByBucket, key, results)
	}
	return results, nil
}

// ListForRegion returns restaurants for a map region list screen,
// sorted by distance from the region center and trimmed to limit. The
// region namespace has a shorter TTL than the bucket namespace since
// list screens expect fresher data.
func (s *RestaurantService) ListForRegion(ctx context.Context, lat, lon float64, radiusMeters, limit int) ([]domain.Restaurant, error) {
	if err := s.validateQuery(lat, lon, radiusMeters); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = defaultRegionLimit
	}

	key := cache.BucketKey(lat, lon, radiusMeters)
	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.RestaurantsByRegion, key); ok {
			if cached, ok := v.([]domain.Restaurant); ok {
				return trim(cached, limit), nil
			}
		}
	}

	results, err := s.fetch(ctx, lat, lon, radiusMeters)
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].DistanceMeters = geo.Distance(lat, lon, results[i].Latitude, results[i].Longitude)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceMeters < results[j].DistanceMeters
	})

	if s.deps.Cache != nil {
		s.deps.Cache.Put(cache.RestaurantsByRegion, key, results)
	}
	return trim(results, limit), nil
}

func trim(rs []domain.Restaurant, limit int) []domain.Restaurant {
	if len(rs) > limit {
		return rs[:limit]
	}
	return rs
}

// overpassResponse mirrors the subset of the Overpass JSON output the
// service consumes.
type overpassResponse struct {
	Elements []struct {
		Type string            `json:"type"`
		ID   int64             `json:"id"`
		Lat  float64           `json:"lat"`
		Lon  float64           `json:"lon"`
		Tags map[string]string `json:"tags"`
	} `json:"elements"`
}

// fetch queries the geodata API for restaurants around the coordinate.
func (s *RestaurantService) fetch(ctx context.Context, lat, lon float64, radiusMeters int) ([]domain.Restaurant, error) {
	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	query := fmt.Sprintf(`[out:json][timeout:25];node["amenity"="restaurant"](around:%d,%.6f,%.6f);out body;`,
		radiusMeters, lat, lon)
	requestURL := s.apiURL + "?data=" + url.QueryEscape(query)

	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to query geodata API: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "overpass",
			StatusCode: resp.StatusCode(),
			Message:    "restaurant query failed",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read geodata response: %w", err)
	}

	var parsed overpassResponse
	if err := json.Unmarshal(bodyBytes, &parsed); err != nil {
		return nil, fmt.Errorf("failed to parse geodata response: %w", err)
	}

	results := make([]domain.Restaurant, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		r := domain.Restaurant{
			ID:           fmt.Sprintf("%s/%d", el.Type, el.ID),
			Name:         el.Tags["name"],
			Latitude:     el.Lat,
			Longitude:    el.Lon,
			Cuisine:      el.Tags["cuisine"],
			Website:      el.Tags["website"],
			Phone:        el.Tags["phone"],
			OpeningHours: el.Tags["opening_hours"],
			Address:      assembleAddress(el.Tags),
		}
		// Unnamed nodes are unusable on a list screen.
		if !r.IsValid() {
			continue
		}
		results = append(results, r)
	}

	if s.deps.Logger != nil {
		s.deps.Logger.Debug("Fetched restaurants from geodata API", map[string]interface{}{
			"bucket": cache.BucketKey(lat, lon, radiusMeters),
			"count":  len(results),
		})
	}
	return results, nil
}

// assembleAddress builds a single-line address from OSM addr tags.
func assembleAddress(tags map[string]string) string {
	street := tags["addr:street"]
	if street == "" {
		return tags["addr:city"]
	}
	line := street
	if num := tags["addr:housenumber"]; num != "" {
		line = num + " " + street
	}
	if city := tags["addr:city"]; city != "" {
		line += ", " + city
	}
	return line
}
