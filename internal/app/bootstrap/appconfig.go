// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration.
//
// WAFFLE's CoreConfig handles framework-level settings like HTTP/HTTPS
// ports, TLS, logging level and format, CORS, and body size limits.
// AppConfig is where everything specific to the group service lives.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Bearer-token authentication
	AuthSecret string // HMAC secret for verifying caller JWTs (must be strong in production)

	// List endpoint behavior
	SortableFields  []string // Fields clients may sort the group list by
	DefaultPageSize int      // Page size when the client sends none
	MaxPageSize     int      // Hard cap on the per-request page size

	// Per-client API throttling. A zero limit disables it.
	RateLimitRequests int           // Requests allowed per window per client
	RateLimitWindow   time.Duration // Window duration

	// Store operation timeouts
	TimeoutPing   time.Duration // Health-check pings
	TimeoutShort  time.Duration // Point reads and conditional updates
	TimeoutMedium time.Duration // List queries and document replaces
	TimeoutBatch  time.Duration // Bulk member-strip operations
}
