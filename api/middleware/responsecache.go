// ABOUTME: Response caching middleware for GET endpoints
// ABOUTME: Caches full responses in-process with go-cache to absorb repeated reads

package middleware

import (
	"net/http"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// skipPrefixes lists paths whose responses must never be cached:
// health probes, cache administration, and mutable place data.
var skipPrefixes = []string{"/health", "/cache", "/places"}

// ResponseCache caches successful GET responses for a fixed TTL.
type ResponseCache struct {
	store *gocache.Cache
}

// NewResponseCache creates a response cache with the given TTL.
func NewResponseCache(ttl time.Duration) *ResponseCache {
	return &ResponseCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

type cachedResponse struct {
	statusCode  int
	contentType string
	body        []byte
}

// responseRecorder buffers the response so it can be stored after the
// handler runs.
type responseRecorder struct {
	http.ResponseWriter
	statusCode int
	body       []byte
}

func (rr *responseRecorder) WriteHeader(code int) {
	rr.statusCode = code
	rr.ResponseWriter.WriteHeader(code)
}

func (rr *responseRecorder) Write(b []byte) (int, error) {
	rr.body = append(rr.body, b...)
	return rr.ResponseWriter.Write(b)
}

func cacheable(r *http.Request) bool {
	if r.Method != http.MethodGet {
		return false
	}
	for _, prefix := range skipPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// Middleware serves cached GET responses and records fresh ones.
func (rc *ResponseCache) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !cacheable(r) {
			next.ServeHTTP(w, r)
			return
		}

		key := r.URL.RequestURI()
		if val, found := rc.store.Get(key); found {
			cached := val.(cachedResponse)
			if cached.contentType != "" {
				w.Header().Set("Content-Type", cached.contentType)
			}
			w.Header().Set("X-Cache", "HIT")
			w.WriteHeader(cached.statusCode)
			w.Write(cached.body)
			return
		}

		recorder := &responseRecorder{
			ResponseWriter: w,
			statusCode:     http.StatusOK,
		}
		next.ServeHTTP(recorder, r)

		if recorder.statusCode == http.StatusOK {
			rc.store.Set(key, cachedResponse{
				statusCode:  recorder.statusCode,
				contentType: recorder.Header().Get("Content-Type"),
				body:        recorder.body,
			}, gocache.DefaultExpiration)
		}
	})
}
