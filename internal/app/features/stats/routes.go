// internal/app/features/stats/routes.go
package stats

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the global stats routes.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/daily", h.HandleDaily)

	return r
}
