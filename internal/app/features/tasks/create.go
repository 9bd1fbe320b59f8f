// internal/app/features/tasks/create.go
package tasks

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/taskhub/internal/app/policy/workspacepolicy"
	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	"github.com/dalemusser/taskhub/internal/app/system/dates"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createRequest is the body for POST /workspaces/{workspace_id}/tasks.
type createRequest struct {
	UserID string `json:"user_id"`
	Text   string `json:"text"`
	Date   string `json:"date"`
}

type createResponse struct {
	TaskID string `json:"task_id"`
}

// HandleCreate handles POST /workspaces/{workspace_id}/tasks. Editors
// and admins can create; viewers cannot. All validation runs before the
// write, so a rejected request creates nothing.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}

	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode create task body failed", err, "invalid JSON body")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}
	text := strings.TrimSpace(req.Text)
	if text == "" {
		respond.BadRequest(w, "text is required")
		return
	}
	if !dates.Valid(req.Date) {
		respond.BadRequest(w, "date must be a valid YYYY-MM-DD date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, ok := h.requireRole(ctx, w, r, wsID, userID)
	if !ok {
		return
	}
	if !workspacepolicy.CanCreateTask(role) {
		respond.Forbidden(w, "viewers cannot create tasks")
		return
	}

	task, err := h.Tasks.Create(ctx, wsID, text, req.Date)
	if err != nil {
		h.ErrLog.ServerError(w, r, "create task failed", err)
		return
	}

	h.countEvent(ctx, statstore.WorkspaceKey(wsID, statstore.MetricTasksCreated))
	h.countEvent(ctx, statstore.DailyKey(task.Date))

	h.Log.Info("task created",
		zap.String("task_id", task.ID.Hex()),
		zap.String("workspace_id", wsID.Hex()),
		zap.String("date", task.Date),
		zap.String("created_by", userID.Hex()))

	respond.JSON(w, http.StatusCreated, createResponse{TaskID: task.ID.Hex()})
}
