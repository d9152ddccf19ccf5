// internal/app/policy/grouppolicy/grouppolicy.go
package grouppolicy

import (
	"github.com/dalemusser/grouphub/internal/domain/models"
)

// The lifecycle rules for user groups. A group starts ACTIVE, can move
// between ACTIVE and SUSPENDED, and ends in DELETED. DELETED is terminal:
// no transition leaves it. The store enforces the same rules atomically
// via status preconditions on its conditional writes; these helpers are
// the readable source of truth consulted by the service layer.

// InitialStatus is the status a group gets when none is supplied at creation.
const InitialStatus = models.StatusActive

// CanTransition reports whether a group in state from may move to state to.
// Self-transitions on non-terminal states are allowed (re-activating an
// ACTIVE group is an idempotent success).
func CanTransition(from, to models.UserGroupStatus) bool {
	if from == models.StatusDeleted {
		return false
	}
	switch to {
	case models.StatusActive, models.StatusSuspended, models.StatusDeleted:
		return true
	}
	return false
}

// CanModify reports whether member add/remove and field updates are allowed
// for a group in the given state. Only ACTIVE groups accept modifications.
func CanModify(status models.UserGroupStatus) bool {
	return status == models.StatusActive
}

// CanCreateWith reports whether a client-supplied initial status is
// acceptable on create. A group cannot be born DELETED.
func CanCreateWith(status models.UserGroupStatus) bool {
	return status == models.StatusActive || status == models.StatusSuspended
}
