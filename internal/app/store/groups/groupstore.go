// internal/app/store/groups/groupstore.go
package groupstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/grouphub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"

	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store persists user groups in the user_groups collection. Every
// status-gated mutation is a single conditional UpdateOne so concurrent
// callers are resolved by Mongo's per-document atomicity, never by
// client-side locking.
type Store struct {
	c *mongo.Collection
}

var ErrDuplicateGroup = errors.New("a group with this name already exists for the institution and product")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("user_groups")}
}

// UpdateResult reports the outcome of a conditional update. Matched==0
// means no document satisfied the precondition filter; Matched>0 with
// Modified==0 means the document was found but the write changed nothing.
type UpdateResult struct {
	Matched  int64
	Modified int64
}

func (s *Store) FindByID(ctx context.Context, id string) (models.UserGroup, error) {
	var g models.UserGroup
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&g); err != nil {
		return models.UserGroup{}, err
	}
	return g, nil
}

// Insert stores a new group. The caller is expected to have assigned the
// id and audit stamps already.
func (s *Store) Insert(ctx context.Context, g models.UserGroup) (models.UserGroup, error) {
	g.NameCI = text.Fold(g.Name)
	_, err := s.c.InsertOne(ctx, g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserGroup{}, ErrDuplicateGroup
		}
		return models.UserGroup{}, err
	}
	return g, nil
}

// Replace swaps the full document for g.ID. Returns mongo.ErrNoDocuments
// when the id matches nothing and ErrDuplicateGroup when the replacement
// collides with the unique (institution, product, name) index.
func (s *Store) Replace(ctx context.Context, g models.UserGroup) (models.UserGroup, error) {
	g.NameCI = text.Fold(g.Name)
	res, err := s.c.ReplaceOne(ctx, bson.M{"_id": g.ID}, g)
	if err != nil {
		if wafflemongo.IsDup(err) {
			return models.UserGroup{}, ErrDuplicateGroup
		}
		return models.UserGroup{}, err
	}
	if res.MatchedCount == 0 {
		return models.UserGroup{}, mongo.ErrNoDocuments
	}
	return g, nil
}

// UpdateStatus moves a group to the given status, provided it is not
// DELETED. DELETED documents never match, which makes the terminal state
// authoritative at the store layer regardless of what the caller read.
func (s *Store) UpdateStatus(ctx context.Context, id string, status models.UserGroupStatus, actor string) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": bson.M{"$ne": models.StatusDeleted}},
		bson.M{"$set": bson.M{
			"status":      status,
			"modified_at": time.Now().UTC(),
			"modified_by": actor,
		}})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// AddMember adds memberID to the member set of an ACTIVE group. $addToSet
// keeps set semantics: adding a present member still matches and updates
// the audit stamps, but never duplicates the entry.
func (s *Store) AddMember(ctx context.Context, id, memberID, actor string) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusActive},
		bson.M{
			"$addToSet": bson.M{"members": memberID},
			"$set": bson.M{
				"modified_at": time.Now().UTC(),
				"modified_by": actor,
			},
		})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// RemoveMember pulls memberID from the member set of an ACTIVE group.
func (s *Store) RemoveMember(ctx context.Context, id, memberID, actor string) (UpdateResult, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusActive},
		bson.M{
			"$pull": bson.M{"members": memberID},
			"$set": bson.M{
				"modified_at": time.Now().UTC(),
				"modified_by": actor,
			},
		})
	if err != nil {
		return UpdateResult{}, err
	}
	return UpdateResult{Matched: res.MatchedCount, Modified: res.ModifiedCount}, nil
}

// RemoveMemberFromAll strips memberID from every group in the given
// institution/product scope, regardless of status. Used for member
// offboarding. Returns the number of groups actually changed.
func (s *Store) RemoveMemberFromAll(ctx context.Context, memberID, institutionID, productID, actor string) (int64, error) {
	res, err := s.c.UpdateMany(ctx,
		bson.M{
			"institution_id": institutionID,
			"product_id":     productID,
			"members":        memberID,
		},
		bson.M{
			"$pull": bson.M{"members": memberID},
			"$set": bson.M{
				"modified_at": time.Now().UTC(),
				"modified_by": actor,
			},
		})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

// Delete physically removes a group by id. Normal flows use the logical
// delete (UpdateStatus to DELETED); this remains for maintenance tooling.
// Returns the number of documents deleted (0 or 1).
func (s *Store) Delete(ctx context.Context, id string) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
