// ABOUTME: Search service handles free-text place discovery through an external geocoding API
// ABOUTME: Query results are memoized per normalized query string

package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"mealmap-api/core/cache"
	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
)

const maxResults = 20

// SearchService handles place discovery operations.
type SearchService struct {
	deps   interfaces.Dependencies
	apiURL string
}

// NewSearchService creates a new search service. apiURL is the
// geocoding search endpoint.
func NewSearchService(deps interfaces.Dependencies, apiURL string) *SearchService {
	return &SearchService{
		deps:   deps,
		apiURL: apiURL,
	}
}

// validateQuery validates search query parameters.
func (s *SearchService) validateQuery(query string) error {
	if query == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "cannot be empty"}
	}
	if len(query) < 2 {
		return &coreerrors.ValidationError{Field: "query", Message: "must be at least 2 characters"}
	}
	if len(query) > 100 {
		return &coreerrors.ValidationError{Field: "query", Message: "cannot exceed 100 characters"}
	}
	return nil
}

// SearchPlaces searches for places matching a free-text query. The
// query is trimmed and case-normalized before caching, so repeated
// searches for the same text reuse one entry for the namespace TTL.
func (s *SearchService) SearchPlaces(ctx context.Context, query string) ([]domain.PlaceResult, error) {
	key := cache.NormalizeKey(query)
	if err := s.validateQuery(key); err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if v, ok := s.deps.Cache.Get(cache.SearchByQuery, key); ok {
			if cached, ok := v.([]domain.PlaceResult); ok {
				return cached, nil
			}
		}
	}

	if s.deps.HTTPClient == nil {
		return nil, errors.New("HTTP client not configured")
	}

	requestURL := fmt.Sprintf("%s?q=%s&format=json&limit=%d", s.apiURL, url.QueryEscape(key), maxResults)
	resp, err := s.deps.HTTPClient.Get(ctx, requestURL)
	if err != nil {
		return nil, fmt.Errorf("failed to search places: %w", err)
	}
	defer resp.Body().Close()

	if resp.StatusCode() != 200 {
		return nil, &coreerrors.ExternalAPIError{
			API:        "geocoding",
			StatusCode: resp.StatusCode(),
			Message:    "place search failed",
		}
	}

	bodyBytes, err := io.ReadAll(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("failed to read search response: %w", err)
	}

	// The geocoding API reports coordinates as strings.
	var apiResults []struct {
		Name        string `json:"name"`
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
		Type        string `json:"type"`
		Importance  float64 `json:"importance"`
	}
	if err := json.Unmarshal(bodyBytes, &apiResults); err != nil {
		return nil, fmt.Errorf("failed to parse search results: %w", err)
	}

	results := make([]domain.PlaceResult, 0, len(apiResults))
	for _, r := range apiResults {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		results = append(results, domain.PlaceResult{
			Name:        r.Name,
			DisplayName: r.DisplayName,
			Latitude:    lat,
			Longitude:   lon,
			Category:    r.Type,
			Importance:  r.Importance,
		})
	}

	if s.deps.Cache != nil && len(results) > 0 {
		s.deps.Cache.Put(cache.SearchByQuery, key, results)
	}
	return results, nil
}
