// internal/app/features/usergroups/get.go
package usergroups

import (
	"context"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

// HandleGet answers a single group by id. DELETED groups are still
// retrievable here.
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Svc.Get(ctx, chi.URLParam(r, "id"))
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}
	respond.OK(w, toResponse(g))
}
