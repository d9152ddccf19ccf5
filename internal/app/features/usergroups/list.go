// internal/app/features/usergroups/list.go
package usergroups

import (
	"context"
	"net/http"

	"github.com/dalemusser/grouphub/internal/app/store/queries/groupqueries"
	"github.com/dalemusser/grouphub/internal/app/system/paging"
	"github.com/dalemusser/grouphub/internal/app/system/respond"
	"github.com/dalemusser/grouphub/internal/app/system/timeouts"
	"github.com/dalemusser/grouphub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// HandleList answers a page of groups matching the query-string filter:
// institutionId, productId, userId, status, sort, page, size.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	filter := groupqueries.Filter{
		InstitutionID: query.Get(r, "institutionId"),
		ProductID:     query.Get(r, "productId"),
		UserID:        query.Get(r, "userId"),
		Status:        models.UserGroupStatus(query.Get(r, "status")),
	}
	page := paging.ParsePage(r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	list, err := h.Svc.List(ctx, filter, paging.ParseSort(r), page)
	if err != nil {
		respond.Error(w, h.Log, err)
		return
	}

	content := make([]any, 0, len(list))
	for _, g := range list {
		content = append(content, toResponse(g))
	}
	respond.OK(w, respond.PageBody{Content: content, Page: page.Number, Size: page.Size})
}
