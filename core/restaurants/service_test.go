package restaurants

import (
	"context"
	"errors"
	"testing"
	"time"

	"mealmap-api/core/cache"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
)

const overpassBody = `{
	"elements": [
		{"type": "node", "id": 1, "lat": 37.776, "lon": -122.418,
		 "tags": {"name": "Golden Wok", "cuisine": "chinese",
		          "addr:housenumber": "12", "addr:street": "Mission St", "addr:city": "San Francisco"}},
		{"type": "node", "id": 2, "lat": 37.790, "lon": -122.410,
		 "tags": {"name": "Burger Barn", "cuisine": "burger"}},
		{"type": "node", "id": 3, "lat": 37.777, "lon": -122.419, "tags": {}}
	]
}`

func testCache() *cache.Cache {
	return cache.New(0, cache.Defaults(0)...)
}

func newTestService(client interfaces.HTTPClient) *RestaurantService {
	deps := interfaces.Dependencies{
		Cache:      testCache(),
		HTTPClient: client,
	}
	return NewRestaurantService(deps, "https://overpass.example.com/api/interpreter")
}

func TestNearby_ValidatesCoordinates(t *testing.T) {
	service := newTestService(nil)
	ctx := context.Background()

	tests := []struct {
		name   string
		lat    float64
		lon    float64
		radius int
	}{
		{"latitude too large", 91, 0, 1000},
		{"latitude too small", -91, 0, 1000},
		{"longitude too large", 0, 181, 1000},
		{"longitude too small", 0, -181, 1000},
		{"zero radius", 37.775, -122.419, 0},
		{"negative radius", 37.775, -122.419, -5},
		{"radius over cap", 37.775, -122.419, 60000},
	}

	for _, tt := range tests {
		_, err := service.Nearby(ctx, tt.lat, tt.lon, tt.radius)
		if !coreerrors.IsValidation(err) {
			t.Errorf("%s: want validation error, got %v", tt.name, err)
		}
	}
}

func TestNearby_FetchesAndParses(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := newTestService(client)

	results, err := service.Nearby(context.Background(), 37.775, -122.419, 5000)
	if err != nil {
		t.Fatalf("Nearby returned error: %v", err)
	}

	// The unnamed node must be dropped.
	if len(results) != 2 {
		t.Fatalf("got %d restaurants, want 2", len(results))
	}
	if results[0].Name != "Golden Wok" {
		t.Errorf("name = %q, want Golden Wok", results[0].Name)
	}
	if results[0].Address != "12 Mission St, San Francisco" {
		t.Errorf("address = %q, want assembled street address", results[0].Address)
	}
	if results[0].ID != "node/1" {
		t.Errorf("id = %q, want node/1", results[0].ID)
	}
}

func TestNearby_PopulatesCacheOnSuccess(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := newTestService(client)
	ctx := context.Background()

	if _, err := service.Nearby(ctx, 37.775, -122.419, 5000); err != nil {
		t.Fatalf("first Nearby returned error: %v", err)
	}
	if _, err := service.Nearby(ctx, 37.775, -122.419, 5000); err != nil {
		t.Fatalf("second Nearby returned error: %v", err)
	}

	if calls != 1 {
		t.Errorf("geodata API called %d times, want 1 (second lookup should hit cache)", calls)
	}
}

func TestNearby_NearbyCoordinatesShareBucket(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := newTestService(client)
	ctx := context.Background()

	// Both coordinates round to the 37.775,-122.419 cell.
	service.Nearby(ctx, 37.77490001, -122.41940001, 5000)
	service.Nearby(ctx, 37.7751, -122.4191, 5000)

	if calls != 1 {
		t.Errorf("geodata API called %d times, want 1 (same bucket)", calls)
	}
}

func TestNearby_ExternalErrorNotCached(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			if calls == 1 {
				return &mockResponse{statusCode: 503, body: ""}, nil
			}
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := newTestService(client)
	ctx := context.Background()

	_, err := service.Nearby(ctx, 37.775, -122.419, 5000)
	if !coreerrors.IsExternalAPI(err) {
		t.Fatalf("want external API error, got %v", err)
	}

	// The failed fetch must not populate the cache; the retry refetches.
	results, err := service.Nearby(ctx, 37.775, -122.419, 5000)
	if err != nil {
		t.Fatalf("retry returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("retry got %d restaurants, want 2", len(results))
	}
	if calls != 2 {
		t.Errorf("geodata API called %d times, want 2", calls)
	}
}

func TestNearby_TransportErrorPropagates(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return nil, errors.New("connection refused")
		},
	}
	service := newTestService(client)

	_, err := service.Nearby(context.Background(), 37.775, -122.419, 5000)
	if err == nil {
		t.Error("Nearby should propagate transport errors")
	}
}

func TestListForRegion_SortsByDistanceAndTrims(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := newTestService(client)

	results, err := service.ListForRegion(context.Background(), 37.775, -122.419, 5000, 1)
	if err != nil {
		t.Fatalf("ListForRegion returned error: %v", err)
	}

	if len(results) != 1 {
		t.Fatalf("got %d restaurants, want 1 after trimming", len(results))
	}
	// Golden Wok is closer to the center than Burger Barn.
	if results[0].Name != "Golden Wok" {
		t.Errorf("closest = %q, want Golden Wok", results[0].Name)
	}
	if results[0].DistanceMeters <= 0 {
		t.Error("distance from center should be set on region listings")
	}
}

func TestListForRegion_UsesRegionNamespace(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	deps := interfaces.Dependencies{Cache: testCache(), HTTPClient: client}
	service := NewRestaurantService(deps, "https://overpass.example.com/api/interpreter")

	if _, err := service.ListForRegion(context.Background(), 37.775, -122.419, 5000, 10); err != nil {
		t.Fatalf("ListForRegion returned error: %v", err)
	}

	stats := deps.Cache.Stats()
	if stats[cache.RestaurantsByRegion].Entries != 1 {
		t.Error("region listing should populate the region namespace")
	}
	if stats[cache.RestaurantsByBucket].Entries != 0 {
		t.Error("region listing must not touch the bucket namespace")
	}
}

func TestNearby_WorksWithoutCache(t *testing.T) {
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	service := NewRestaurantService(interfaces.Dependencies{HTTPClient: client}, "https://overpass.example.com/api/interpreter")

	results, err := service.Nearby(context.Background(), 37.775, -122.419, 5000)
	if err != nil {
		t.Fatalf("Nearby returned error: %v", err)
	}
	if len(results) != 2 {
		t.Errorf("got %d restaurants, want 2", len(results))
	}
}

func TestNearby_ExpiredBucketRefetches(t *testing.T) {
	calls := 0
	client := &mockHTTPClient{
		getFunc: func(ctx context.Context, url string) (interfaces.Response, error) {
			calls++
			return &mockResponse{statusCode: 200, body: overpassBody}, nil
		},
	}
	shortCache := cache.New(0, cache.Namespace{Name: cache.RestaurantsByBucket, TTL: 10 * time.Millisecond})
	deps := interfaces.Dependencies{Cache: shortCache, HTTPClient: client}
	service := NewRestaurantService(deps, "https://overpass.example.com/api/interpreter")
	ctx := context.Background()

	service.Nearby(ctx, 37.775, -122.419, 5000)
	time.Sleep(20 * time.Millisecond)
	service.Nearby(ctx, 37.775, -122.419, 5000)

	if calls != 2 {
		t.Errorf("geodata API called %d times, want 2 after TTL expiry", calls)
	}
}
