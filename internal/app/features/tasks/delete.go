// internal/app/features/tasks/delete.go
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

// deleteRequest is the body for DELETE /workspaces/{workspace_id}/tasks/{task_id}.
type deleteRequest struct {
	UserID string `json:"user_id"`
}

// HandleDelete handles DELETE /workspaces/{workspace_id}/tasks/{task_id}.
// Deletion is admin-only: editors create and update but never delete.
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
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

	var req deleteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode delete task body failed", err, "invalid JSON body")
		return
	}
	userID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	role, ok := h.requireRole(ctx, w, r, wsID, userID)
	if !ok {
		return
	}
	if !workspacepolicy.CanDeleteTask(role) {
		respond.Forbidden(w, "only admins can delete tasks")
		return
	}

	if err := h.Tasks.Delete(ctx, wsID, taskID); err != nil {
		if errors.Is(err, taskstore.ErrNotFound) {
			respond.NotFound(w, "task not found in this workspace")
			return
		}
		h.ErrLog.ServerError(w, r, "delete task failed", err)
		return
	}

	h.Log.Info("task deleted",
		zap.String("task_id", taskID.Hex()),
		zap.String("workspace_id", wsID.Hex()),
		zap.String("deleted_by", userID.Hex()))

	respond.JSON(w, http.StatusOK, statusOK)
}
