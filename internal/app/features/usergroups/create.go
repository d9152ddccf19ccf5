// internal/app/features/usergroups/create.go
package usergroups

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/apperr"
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
)

// HandleCreate creates a new user group from the JSON body and answers
// 201 with the stored group.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	actor, _ := auth.Actor(r)

	var req groupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, h.Log, apperr.InvalidArgument("Request body must be valid JSON"))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.Create(ctx, actor, req.draft())
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.Created(w, toResponse(g))
}
