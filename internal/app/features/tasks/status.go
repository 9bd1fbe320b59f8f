// internal/app/features/tasks/status.go
package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/workspacepolicy"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// statusRequest is the body for PUT /workspaces/{workspace_id}/tasks/{task_id}.
// IsDone is a pointer so a missing field is distinguishable from false.
type statusRequest struct {
	UserID string `json:"user_id"`
	IsDone *bool  `json:"is_done"`
}

// HandleSetStatus handles PUT /workspaces/{workspace_id}/tasks/{task_id}.
// Setting a task to its current state is a success, so retries are safe.
func (h *Handler) HandleSetStatus(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}
	taskID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "task_id"))
	if err != nil {
		respond.BadRequest(w, "invalid task id")
		return
	}

	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode task status body failed", err, "invalid JSON body")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}
	if req.IsDone == nil {
		respond.BadRequest(w, "is_done is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, ok := h.requireRole(ctx, w, r, wsID, userID)
	if !ok {
		return
	}
	if !workspacepolicy.CanUpdateTask(role) {
		respond.Forbidden(w, "viewers cannot update tasks")
		return
	}

	if err := h.Tasks.SetStatus(ctx, wsID, taskID, *req.IsDone); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			respond.NotFound(w, "task not found in this workspace")
			return
		}
		h.ErrLog.ServerError(w, r, "update task status failed", err)
		return
	}

	h.Log.Info("task status updated",
		zap.String("task_id", taskID.Hex()),
		zap.String("workspace_id", wsID.Hex()),
		zap.Bool("is_done", *req.IsDone),
		zap.String("updated_by", userID.Hex()))

	respond.JSON(w, http.StatusOK, statusOK)
}
