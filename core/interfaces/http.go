// ABOUTME: HTTP client abstraction for calls to external geodata and nutrition APIs
// ABOUTME: Allows mocking in tests and swapping client implementations

package interfaces

import (
	"context"
	"io"
)

// HTTPClient defines the interface for making HTTP requests to the
// external APIs the services fetch from.
type HTTPClient interface {
	// Get performs an HTTP GET request to the specified URL.
	Get(ctx context.Context, url string) (Response, error)

	// Post performs an HTTP POST request with the given body. The caller
	// closes the response body after use.
	Post(ctx context.Context, url string, body io.Reader) (Response, error)
}

// Response defines the interface for HTTP responses.
type Response interface {
	// StatusCode returns the HTTP status code of the response.
	StatusCode() int

	// Body returns the response body. The caller is responsible for
	// closing it.
	Body() io.ReadCloser

	// Header returns the value of the specified header, or an empty
	// string if absent. Header names are case-insensitive.
	Header(key string) string
}
