// internal/app/features/workspaces/routes.go
package workspaces

import (
	"github.com/dalemusser/taskhub/internal/app/features/tasks"
	"github.com/go-chi/chi/v5"
)

// Routes mounts all workspace routes, with the task routes nested under
// each workspace so task handlers see the workspace_id URL parameter.
func Routes(h *Handler, th *tasks.Handler) chi.Router {
	r := chi.NewRouter()

	// CREATE and LIST
	r.Post("/", h.HandleCreate)
	r.Get("/", h.HandleList)

	// MEMBERS - list, add, remove
	r.Get("/{workspace_id}/members", h.HandleListMembers)
	r.Post("/{workspace_id}/members", h.HandleAddMember)
	r.Delete("/{workspace_id}/members", h.HandleRemoveMember)

	// STATS - advisory counters for the workspace
	r.Get("/{workspace_id}/stats", h.HandleStats)

	// TASKS - nested per-workspace task routes
	r.Mount("/{workspace_id}/tasks", tasks.Routes(th))

	return r
}
