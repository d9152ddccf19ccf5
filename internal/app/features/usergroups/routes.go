// internal/app/features/usergroups/routes.go
package usergroups

import (
	"github.com/dalemusser/grouphub/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the user-group API under the path where the caller mounts
// it. Typically: r.Mount("/v1/user-groups", usergroups.Routes(handler))
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireActor)

		pr.Post("/", h.HandleCreate)
		pr.Get("/", h.HandleList)

		pr.Get("/{id}", h.HandleGet)
		pr.Put("/{id}", h.HandleUpdate)
		pr.Delete("/{id}", h.HandleDelete)

		pr.Post("/{id}/activate", h.HandleActivate)
		pr.Post("/{id}/suspend", h.HandleSuspend)

		pr.Put("/{id}/members/{memberId}", h.HandleAddMember)
		pr.Delete("/{id}/members/{memberId}", h.HandleRemoveMember)

		// Member offboarding across every group in a scope.
		pr.Delete("/members/{memberId}", h.HandleRemoveMemberEverywhere)
	})

	return r
}
