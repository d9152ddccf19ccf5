// Package groupqueries builds and runs the filtered list query for user
// groups. The filter is an immutable value object compiled by a validating
// factory; the scoping rules exist to keep ordered or status-filtered
// queries off unindexed full-collection scans.
package groupqueries

import (
	"context"
	"sync"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/paging"
	"github.com/dalemusser/grouphub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Filter holds the optional criteria for listing groups. Zero-valued
// fields mean "not filtered". UserID matches groups whose member set
// contains that user.
type Filter struct {
	InstitutionID string
	ProductID     string
	UserID        string
	Status        models.UserGroupStatus
}

var sortableMu sync.RWMutex

// sortable is the allow-list of fields a caller may sort by. Overridden
// at startup from configuration.
var sortable = map[string]bool{"name": true}

// ConfigureSortable replaces the sortable-field allow-list. An empty
// slice keeps the current list.
func ConfigureSortable(fields []string) {
	if len(fields) == 0 {
		return
	}
	m := make(map[string]bool, len(fields))
	for _, f := range fields {
		m[f] = true
	}
	sortableMu.Lock()
	sortable = m
	sortableMu.Unlock()
}

// Descriptor is a compiled, validated list query: equality clauses plus
// ordering and a page window.
type Descriptor struct {
	Filter bson.M
	Sort   bson.D
	Skip   int64
	Limit  int64
}

// Build validates the filter/sort combination and compiles the query
// descriptor. Rules, in order:
//  1. sorting requires an institution or product scope
//  2. a status filter requires at least one of institution, product, user
//  3. the sort field must be in the allow-list
func Build(f Filter, sortField string, page paging.Page) (Descriptor, error) {
	if sortField != "" && f.InstitutionID == "" && f.ProductID == "" {
		return Descriptor{}, apperr.ValidationFailed("Sorting not allowed without productId or institutionId")
	}
	if f.Status != "" && f.InstitutionID == "" && f.ProductID == "" && f.UserID == "" {
		return Descriptor{}, apperr.ValidationFailed("At least one of productId, institutionId and userId must be provided with status filter")
	}
	if sortField != "" {
		sortableMu.RLock()
		ok := sortable[sortField]
		sortableMu.RUnlock()
		if !ok {
			return Descriptor{}, apperr.ValidationFailed("Given sort parameters aren't valid")
		}
	}

	var clauses []bson.M
	if f.InstitutionID != "" {
		clauses = append(clauses, bson.M{"institution_id": f.InstitutionID})
	}
	if f.ProductID != "" {
		clauses = append(clauses, bson.M{"product_id": f.ProductID})
	}
	if f.UserID != "" {
		clauses = append(clauses, bson.M{"members": f.UserID})
	}
	if f.Status != "" {
		clauses = append(clauses, bson.M{"status": f.Status})
	}

	d := Descriptor{
		Filter: andify(clauses),
		Skip:   page.Skip(),
		Limit:  page.Limit(),
	}
	if sortField != "" {
		// _id tiebreak keeps pages stable when sort keys collide.
		d.Sort = bson.D{{Key: sortField, Value: 1}, {Key: "_id", Value: 1}}
	}
	return d, nil
}

// ListGroups compiles the filter and fetches the matching page of groups.
func ListGroups(ctx context.Context, db *mongo.Database, f Filter, sortField string, page paging.Page) ([]models.UserGroup, error) {
	d, err := Build(f, sortField, page)
	if err != nil {
		return nil, err
	}

	find := options.Find().SetSkip(d.Skip).SetLimit(d.Limit)
	if d.Sort != nil {
		find.SetSort(d.Sort)
	}

	cur, err := db.Collection("user_groups").Find(ctx, d.Filter, find)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var groups []models.UserGroup
	if err := cur.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// andify composes clauses into a single bson.M with optional $and.
func andify(clauses []bson.M) bson.M {
	switch len(clauses) {
	case 0:
		return bson.M{}
	case 1:
		return clauses[0]
	default:
		return bson.M{"$and": clauses}
	}
}
