package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/grouphub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateGroup inserts an ACTIVE user group in the given scope and returns
// it. Audit stamps are set to the fixture actor "fixture-admin".
func (f *Fixtures) CreateGroup(ctx context.Context, institutionID, productID, name string, members ...string) models.UserGroup {
	f.t.Helper()
	return f.CreateGroupWithStatus(ctx, institutionID, productID, name, models.StatusActive, members...)
}

// CreateGroupWithStatus inserts a user group with an explicit status.
func (f *Fixtures) CreateGroupWithStatus(ctx context.Context, institutionID, productID, name string, status models.UserGroupStatus, members ...string) models.UserGroup {
	f.t.Helper()

	if members == nil {
		members = []string{}
	}
	now := time.Now().UTC().Truncate(time.Millisecond)
	g := models.UserGroup{
		ID:            primitive.NewObjectID().Hex(),
		InstitutionID: institutionID,
		ProductID:     productID,
		Name:          name,
		NameCI:        text.Fold(name),
		Status:        status,
		Members:       members,
		CreatedAt:     now,
		CreatedBy:     "fixture-admin",
		ModifiedAt:    now,
		ModifiedBy:    "fixture-admin",
	}

	if _, err := f.db.Collection("user_groups").InsertOne(ctx, g); err != nil {
		f.t.Fatalf("failed to create test group: %v", err)
	}
	return g
}
