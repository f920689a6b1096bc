// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Bundles the external collaborators the core business logic requires

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache provides TTL caching functionality
	Cache Cache

	// HTTPClient provides HTTP transport functionality
	HTTPClient HTTPClient

	// Logger provides structured logging
	Logger Logger
}
