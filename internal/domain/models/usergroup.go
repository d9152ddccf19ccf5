// internal/domain/models/usergroup.go
package models

import (
	"time"
)

// UserGroupStatus is the lifecycle state of a user group.
type UserGroupStatus string

const (
	StatusActive    UserGroupStatus = "ACTIVE"
	StatusSuspended UserGroupStatus = "SUSPENDED"
	StatusDeleted   UserGroupStatus = "DELETED"
)

// Valid reports whether s is one of the known statuses.
func (s UserGroupStatus) Valid() bool {
	switch s {
	case StatusActive, StatusSuspended, StatusDeleted:
		return true
	}
	return false
}

// UserGroup represents a named collection of member users scoped to an
// institution and a product.
//
// NOTE:
//   - ID is an opaque string assigned once at creation (ObjectID hex);
//     it never changes afterwards.
//   - InstitutionID and ProductID are immutable after creation.
//   - Members carries set semantics: the store writes it with $addToSet
//     and $pull so it never holds duplicates.
//   - Status gates mutations; see policy/grouppolicy.
type UserGroup struct {
	ID            string          `bson:"_id" json:"id"`
	InstitutionID string          `bson:"institution_id" json:"institutionId"`
	ProductID     string          `bson:"product_id" json:"productId"`
	Name          string          `bson:"name" json:"name"`
	NameCI        string          `bson:"name_ci" json:"-"`
	Description   string          `bson:"description" json:"description"`
	Status        UserGroupStatus `bson:"status" json:"status"`
	Members       []string        `bson:"members" json:"members"`

	CreatedAt  time.Time `bson:"created_at" json:"createdAt"`
	CreatedBy  string    `bson:"created_by" json:"createdBy"`
	ModifiedAt time.Time `bson:"modified_at" json:"modifiedAt"`
	ModifiedBy string    `bson:"modified_by" json:"modifiedBy"`
}
