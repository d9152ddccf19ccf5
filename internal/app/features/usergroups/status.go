// internal/app/features/usergroups/status.go
package usergroups

import (
	"context"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleDelete moves a group to DELETED. Repeating the call on an
// already-deleted group still answers 204.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Svc.Delete(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}

// HandleSuspend moves a group to SUSPENDED.
func (h *Handler) HandleSuspend(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Svc.Suspend(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}

// HandleActivate moves a group back to ACTIVE.
func (h *Handler) HandleActivate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if err := h.Svc.Activate(ctx, actor, chi.URLParam(r, "id")); err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.NoContent(w)
}
