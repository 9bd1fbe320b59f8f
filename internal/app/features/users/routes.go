// internal/app/features/users/routes.go
package users

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the identity routes. Mounted at the root so the paths
// are /register and /users.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Get("/users", h.HandleList)

	return r
}
