// internal/app/features/usergroups/members.go
package usergroups

import (
	"context"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// memberParam extracts and validates the memberId path parameter. Member
// ids are user UUIDs issued elsewhere, so anything non-UUID is rejected
// before it reaches the store.
func memberParam(r *http.Request) (string, error) {
	raw := chi.URLParam(r, "memberId")
	if _, err := uuid.Parse(raw); err != nil {
		return "", apperr.InvalidArgument("A valid member UUID is required")
	}
	return raw, nil
}

// HandleAddMember adds a user to a group. Adding an existing member
// answers 204 without changing anything.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)
	memberID, err := memberParam(r)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Svc.AddMember(ctx, actor, chi.URLParam(r, "id"), memberID); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}

// HandleRemoveMember removes a user from a group.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)
	memberID, err := memberParam(r)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Svc.RemoveMember(ctx, actor, chi.URLParam(r, "id"), memberID); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}

// HandleRemoveMemberEverywhere strips a user from every group in the
// institution/product scope given by the query string.
func (h *Handler) HandleRemoveMemberEverywhere(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)
	memberID, err := memberParam(r)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Batch())
	defer cancel()

	err = h.Svc.RemoveMemberEverywhere(ctx, actor, memberID,
		query.Get(r, "institutionId"), query.Get(r, "productId"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}
