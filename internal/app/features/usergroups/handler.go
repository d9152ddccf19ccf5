// internal/app/features/usergroups/handler.go
package usergroups

import (
	"context"

	groupsvc "github.com/dalemusser/grouphub/internal/app/service/groups"
	groupstore "github.com/dalemusser/grouphub/internal/app/store/groups"
	"github.com/dalemusser/grouphub/internal/app/store/queries/groupqueries"
	"github.com/dalemusser/grouphub/internal/app/system/paging"
	"github.com/dalemusser/grouphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Handler is the feature-level handler for the user-group API.
// It holds the service, DB handle, and logger provided by DBDeps / Startup.
type Handler struct {
	DB  *mongo.Database
	Log *zap.Logger
	Svc *groupsvc.Service
}

func NewHandler(db *mongo.Database, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
		Svc: groupsvc.New(groupstore.New(db), dbLister{db: db}, logger),
	}
}

// dbLister adapts the package-level query function to the service's
// Lister seam.
type dbLister struct {
	db *mongo.Database
}

func (l dbLister) ListGroups(ctx context.Context, f groupqueries.Filter, sortField string, page paging.Page) ([]models.UserGroup, error) {
	return groupqueries.ListGroups(ctx, l.db, f, sortField, page)
}
