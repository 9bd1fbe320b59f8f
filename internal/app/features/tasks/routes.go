// internal/app/features/tasks/routes.go
package tasks

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the task routes. Mounted under
// /workspaces/{workspace_id}/tasks so the workspace_id URL parameter is
// available to every handler.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)
	r.Put("/{task_id}", h.HandleSetStatus)
	r.Delete("/{task_id}", h.HandleDelete)

	return r
}
