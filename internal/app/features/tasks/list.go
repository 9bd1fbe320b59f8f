// internal/app/features/tasks/list.go
package tasks

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/workspacepolicy"
	"github.com/dalemusser/taskhub/internal/app/system/dates"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Tasks []models.Task `json:"tasks"`
	Count int           `json:"count"`
}

// HandleList handles GET /workspaces/{workspace_id}/tasks?date=&user_id=.
// Any membership grants read access; non-members see nothing, not even
// whether the date has tasks.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}
	userID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("user_id"))
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}
	date := r.URL.Query().Get("date")
	if !dates.Valid(date) {
		respond.BadRequest(w, "date must be a valid YYYY-MM-DD date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	role, ok := h.requireRole(ctx, w, r, wsID, userID)
	if !ok {
		return
	}
	if !workspacepolicy.CanViewTasks(role) {
		respond.Forbidden(w, "user cannot view tasks in this workspace")
		return
	}

	tasks, err := h.Tasks.ListByDate(ctx, wsID, date)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list tasks failed", err)
		return
	}
	if tasks == nil {
		tasks = []models.Task{}
	}

	respond.JSON(w, http.StatusOK, listResponse{Tasks: tasks, Count: len(tasks)})
}
