// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/grouphub/internal/app/features/health"
	usergroupsfeature "github.com/dalemusser/grouphub/internal/app/features/usergroups"
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. GroupHub applies the bearer-token
// verifier globally so any handler can read the actor from the request
// context, then mounts the health probe and the user-group API.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	verifier, err := auth.NewVerifier(appCfg.AuthSecret, logger)
	if err != nil {
		logger.Error("auth verifier init failed", zap.Error(err))
		return nil, err
	}

	r := chi.NewRouter()

	// Global auth middleware: loads the actor id into context when a valid
	// bearer token is present. Enforcement happens per route group.
	r.Use(verifier.LoadActor)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.GroupHubMongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// User-group API, throttled per client when a limit is configured.
	groupsHandler := usergroupsfeature.NewHandler(deps.GroupHubMongoDatabase, logger)
	groupsRoutes := usergroupsfeature.Routes(groupsHandler)
	if appCfg.RateLimitRequests > 0 {
		limiter := ratelimit.New(appCfg.RateLimitRequests, appCfg.RateLimitWindow)
		r.With(limiter.Middleware).Mount("/v1/user-groups", groupsRoutes)
	} else {
		r.Mount("/v1/user-groups", groupsRoutes)
	}

	return r, nil
}
