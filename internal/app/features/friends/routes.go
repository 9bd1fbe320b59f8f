// internal/app/features/friends/routes.go
package friends

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts all friend graph routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleAdd)
	r.Delete("/", h.HandleRemove)
	r.Get("/{user_id}", h.HandleList)
	r.Get("/{user_id}/recommendations", h.HandleRecommendations)

	return r
}
