package grouppolicy_test

import (
	"testing"

	"github.com/dalemusser/grouphub/internal/app/policy/grouppolicy"
	"github.com/dalemusser/grouphub/internal/domain/models"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		name string
		from models.UserGroupStatus
		to   models.UserGroupStatus
		want bool
	}{
		{"active to suspended", models.StatusActive, models.StatusSuspended, true},
		{"active to deleted", models.StatusActive, models.StatusDeleted, true},
		{"active to active is idempotent", models.StatusActive, models.StatusActive, true},
		{"suspended to active", models.StatusSuspended, models.StatusActive, true},
		{"suspended to deleted", models.StatusSuspended, models.StatusDeleted, true},
		{"deleted is terminal (activate)", models.StatusDeleted, models.StatusActive, false},
		{"deleted is terminal (suspend)", models.StatusDeleted, models.StatusSuspended, false},
		{"deleted is terminal (delete)", models.StatusDeleted, models.StatusDeleted, false},
		{"unknown target rejected", models.StatusActive, models.UserGroupStatus("ARCHIVED"), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := grouppolicy.CanTransition(tc.from, tc.to); got != tc.want {
				t.Errorf("CanTransition(%s, %s) = %v, want %v", tc.from, tc.to, got, tc.want)
			}
		})
	}
}

func TestCanModify(t *testing.T) {
	if !grouppolicy.CanModify(models.StatusActive) {
		t.Error("ACTIVE groups must accept modifications")
	}
	if grouppolicy.CanModify(models.StatusSuspended) {
		t.Error("SUSPENDED groups must not accept modifications")
	}
	if grouppolicy.CanModify(models.StatusDeleted) {
		t.Error("DELETED groups must not accept modifications")
	}
}

func TestCanCreateWith(t *testing.T) {
	if !grouppolicy.CanCreateWith(models.StatusActive) {
		t.Error("expected ACTIVE to be a valid initial status")
	}
	if !grouppolicy.CanCreateWith(models.StatusSuspended) {
		t.Error("expected SUSPENDED to be a valid initial status")
	}
	if grouppolicy.CanCreateWith(models.StatusDeleted) {
		t.Error("a group cannot be created DELETED")
	}
}
