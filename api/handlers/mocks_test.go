package handlers

import (
	"context"
	"io"
	"strings"

	"mealmap-api/core/domain"
	coreerrors "mealmap-api/core/errors"
	"mealmap-api/core/interfaces"
)

// mockHTTPClient is a mock implementation of the HTTPClient interface
type mockHTTPClient struct {
	getFunc func(ctx context.Context, url string) (interfaces.Response, error)
}

func (m *mockHTTPClient) Get(ctx context.Context, url string) (interfaces.Response, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, url)
	}
	return nil, nil
}

func (m *mockHTTPClient) Post(ctx context.Context, url string, body io.Reader) (interfaces.Response, error) {
	return nil, nil
}

// mockResponse is a mock implementation of the Response interface
type mockResponse struct {
	statusCode int
	body       string
}

func (m *mockResponse) StatusCode() int {
	return m.statusCode
}

func (m *mockResponse) Body() io.ReadCloser {
	return io.NopCloser(strings.NewReader(m.body))
}

func (m *mockResponse) Header(key string) string {
	return ""
}

// nopLogger discards all log output
type nopLogger struct{}

func (nopLogger) Debug(msg string, fields map[string]interface{}) {}
func (nopLogger) Info(msg string, fields map[string]interface{})  {}
func (nopLogger) Warn(msg string, fields map[string]interface{})  {}
func (nopLogger) Error(msg string, fields map[string]interface{}) {}

// stubStorage keeps saved places in a map
type stubStorage struct {
	places map[string]*domain.SavedPlace
}

func newStubStorage() *stubStorage {
	return &stubStorage{places: make(map[string]*domain.SavedPlace)}
}

func (s *stubStorage) Save(ctx context.Context, place *domain.SavedPlace) error {
	s.places[place.ID] = place
	return nil
}

func (s *stubStorage) Get(ctx context.Context, id string) (*domain.SavedPlace, error) {
	place, ok := s.places[id]
	if !ok {
		return nil, &coreerrors.NotFoundError{Resource: "place", ID: id}
	}
	return place, nil
}

func (s *stubStorage) List(ctx context.Context) ([]domain.SavedPlace, error) {
	out := make([]domain.SavedPlace, 0, len(s.places))
	for _, place := range s.places {
		out = append(out, *place)
	}
	return out, nil
}

func (s *stubStorage) Delete(ctx context.Context, id string) error {
	delete(s.places, id)
	return nil
}
