// internal/app/features/usergroups/update.go
package usergroups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleUpdate replaces the editable content of a group (name,
// description, members) and answers the stored result.
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgument("Request body must be valid JSON"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Svc.Update(ctx, actor, chi.URLParam(r, "id"), req.draft())
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.OK(w, toResponse(g))
}
