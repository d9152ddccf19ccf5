// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/grouphub/internal/app/store/queries/groupqueries"
	"github.com/dalemusser/grouphub/internal/app/system/paging"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections
// and schema setup are complete, but before the HTTP handler is built.
// It pushes the loaded configuration into the package-level tunables the
// handlers read on every request.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	timeouts.Configure(timeouts.Config{
		Ping:   appCfg.TimeoutPing,
		Short:  appCfg.TimeoutShort,
		Medium: appCfg.TimeoutMedium,
		Batch:  appCfg.TimeoutBatch,
	})
	paging.Configure(appCfg.DefaultPageSize, appCfg.MaxPageSize)
	groupqueries.ConfigureSortable(appCfg.SortableFields)

	logger.Info("startup configuration applied",
		zap.Strings("sortable_fields", appCfg.SortableFields),
		zap.Int("default_page_size", appCfg.DefaultPageSize),
		zap.Int("max_page_size", appCfg.MaxPageSize))
	return nil
}
