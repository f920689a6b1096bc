// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation using sync.Map
// - cache/gocache: In-memory cache backed by patrickmn/go-cache
// - http/standard: Standard library HTTP client for single-attempt requests
// - logger/logrus: Structured JSON logger implementation
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include timeouts and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 5*time.Minute)
//	value, err := cache.Get(ctx, "key")
//
// # HTTP Client
//
// The HTTP client performs a single attempt per call; retry policy lives
// with the caller:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://api.github.com", nil)
//	if err != nil {
//	    // Handle error
//	}
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogrusLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "username": "octocat",
//	})
package infrastructure
