// internal/app/bootstrap/config.go
package bootstrap

import (
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for GroupHub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, auth_secret, etc.
//   - Environment variables: GROUPHUB_MONGO_URI, GROUPHUB_AUTH_SECRET, etc.
//   - Command-line flags: --mongo_uri, --auth_secret, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "mongodb://localhost:27017", Desc: "MongoDB connection URI"},
	{Name: "mongo_database", Default: "group_hub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 10, Desc: "MongoDB min connection pool size (default: 10)"},

	{Name: "auth_secret", Default: "dev-only-change-me-please-0123456789ABCDEF", Desc: "HMAC secret for bearer-token verification (must be strong in production)"},

	// List endpoint behavior
	{Name: "sortable_fields", Default: "name", Desc: "Comma-separated fields clients may sort the group list by"},
	{Name: "default_page_size", Default: 20, Desc: "Page size when the client sends none"},
	{Name: "max_page_size", Default: 100, Desc: "Hard cap on the per-request page size"},

	// Per-client API throttling
	{Name: "rate_limit_requests", Default: 0, Desc: "Requests allowed per window per client (0 disables throttling)"},
	{Name: "rate_limit_window", Default: "1m", Desc: "Throttling window duration"},

	// Store operation timeouts
	{Name: "timeout_ping", Default: "2s", Desc: "Timeout for health-check pings"},
	{Name: "timeout_short", Default: "5s", Desc: "Timeout for point reads and conditional updates"},
	{Name: "timeout_medium", Default: "10s", Desc: "Timeout for list queries and document replaces"},
	{Name: "timeout_batch", Default: "60s", Desc: "Timeout for bulk member-strip operations"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// It is called early in startup so that both WAFFLE and the app have
// access to configuration before any backends or handlers are built.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, GROUPHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "GROUPHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:         appValues.String("mongo_uri"),
		MongoDatabase:    appValues.String("mongo_database"),
		MongoMaxPoolSize: uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize: uint64(appValues.Int("mongo_min_pool_size")),

		AuthSecret: appValues.String("auth_secret"),

		SortableFields:  splitFields(appValues.String("sortable_fields")),
		DefaultPageSize: appValues.Int("default_page_size"),
		MaxPageSize:     appValues.Int("max_page_size"),

		RateLimitRequests: appValues.Int("rate_limit_requests"),
		RateLimitWindow:   appValues.Duration("rate_limit_window", time.Minute),

		TimeoutPing:   appValues.Duration("timeout_ping", 2*time.Second),
		TimeoutShort:  appValues.Duration("timeout_short", 5*time.Second),
		TimeoutMedium: appValues.Duration("timeout_medium", 10*time.Second),
		TimeoutBatch:  appValues.Duration("timeout_batch", 60*time.Second),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// Return nil to accept the loaded config, or an error to abort startup.
// GroupHub validates the MongoDB URI format to catch configuration errors
// early, before attempting to connect, and refuses to start without an
// auth secret.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.AuthSecret) == "" {
		return fmt.Errorf("auth_secret must be set")
	}
	if appCfg.MaxPageSize > 0 && appCfg.DefaultPageSize > appCfg.MaxPageSize {
		return fmt.Errorf("default_page_size (%d) exceeds max_page_size (%d)", appCfg.DefaultPageSize, appCfg.MaxPageSize)
	}
	return nil
}

func splitFields(raw string) []string {
	var out []string
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}
