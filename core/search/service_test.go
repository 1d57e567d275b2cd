package search

import (
	"context"
	"strings"
	"testing"

	"mealmap-api/core/cache"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
)

const searchBody = `[
	{"name": "Golden Wok", "display_name": "Golden Wok, Mission St, San Francisco",
	 "lat": "37.776", "lon": "-122.418", "type": "restaurant", "importance": 0.42},
	{"name": "Wok This Way", "display_name": "Wok This Way, Valencia St, San Francisco",
	 "lat": "37.758", "lon": "-122.421", "type": "restaurant", "importance": 0.31},
	{"name": "Broken", "display_name": "Broken entry", "lat": "not-a-number", "lon": "0"}
]`

func newTestService(client interfaces.HTTPClient) *SearchService {
	deps := interfaces.Dependencies{
		Cache:      cache.New(0, cache.Defaults(0)...),
		HTTPClient: client,
	}
	return NewSearchService(deps, "https://geocode.example.com/search")
}

func TestSearchPlaces_ValidatesQuery(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		name  string
		query string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"too short", "a"},
		{"too long", strings.Repeat("a", 101)},
	}

	for _, tt := range tests {
		_, err := service.SearchPlaces(ctx, tt.query)
		if !coreerrors.IsValidation(err) {
			t.Errorf("%s: want validation error, got %v", tt.name, err)
		}
	}
}

func TestSearchPlaces_ParsesStringCoordinates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: searchBody}, nil
		},
	}
	service := newTestService(client)

	results, err := service.SearchPlaces(context.Background(), "wok")
	if err != nil {
		t.Fatalf("SearchPlaces returned error: %v", err)
	}

	// The entry with a malformed coordinate must be dropped.
	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if results[0].Latitude != 37.776 || results[0].Longitude != -122.418 {
		t.Errorf("coordinates = %f,%f, want 37.776,-122.418", results[0].Latitude, results[0].Longitude)
	}
	if results[0].Category != "restaurant" {
		t.Errorf("category = %q, want restaurant", results[0].Category)
	}
}

func TestSearchPlaces_CachesByNormalizedQuery(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: searchBody}, nil
		},
	}
	service := newTestService(client)
	ctx := context.Background()

	service.SearchPlaces(ctx, "Wok")
	service.SearchPlaces(ctx, "  wok ")

	if calls != 1 {
		t.Errorf("search API called %d times, want 1", calls)
	}
}

func TestSearchPlaces_ExternalError(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 429, body: ""}, nil
		},
	}
	service := newTestService(client)

	_, err := service.SearchPlaces(context.Background(), "wok")
	if !coreerrors.IsExternalAPI(err) {
		t.Errorf("want external API error, got %v", err)
	}
}

func TestSearchPlaces_QueryIsolationFromNutrition(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: searchBody}, nil
		},
	}
	deps := interfaces.Dependencies{Cache: cache.New(0, cache.Defaults(0)...), HTTPClient: client}
	service := NewSearchService(deps, "https://geocode.example.com/search")

	if _, err := service.SearchPlaces(context.Background(), "subway"); err != nil {
		t.Fatalf("SearchPlaces returned error: %v", err)
	}

	// The same key under a different namespace stays invisible.
	if _, ok := deps.Cache.Get(cache.NutritionByName, "subway"); ok {
		t.Error("search results must not leak into the nutrition namespace")
	}
}
