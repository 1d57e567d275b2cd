// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as storage, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured JSON logger built on logrus
// - storage/memory: In-memory saved-place storage
// - storage/redis: Redis-backed saved-place storage using ReJSON
// - storage/sqlite: SQLite-backed saved-place storage
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Storage Implementations
//
// Memory Example:
//
//	store := memory.NewStore()
//	err := store.Save(ctx, place)
//
// Redis Example:
//
//	store, err := redis.NewStore(redis.Config{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// SQLite Example:
//
//	store, err := sqlite.NewStore("places.db")
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//	if err != nil {
//	    // Handle error
//	}
//	defer resp.Body().Close()
//
// # Logger
//
// The logger emits structured JSON with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Fetched restaurants", map[string]interface{}{
//	    "bucket": "37.775,-122.419,5000",
//	    "count":  42,
//	})
package infrastructure
