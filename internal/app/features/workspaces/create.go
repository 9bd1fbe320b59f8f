// internal/app/features/workspaces/create.go
package workspaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// createRequest is the body for POST /workspaces.
type createRequest struct {
	Name   string `json:"name"`
	UserID string `json:"user_id"`
}

type createResponse struct {
	WorkspaceID string `json:"workspace_id"`
}

// HandleCreate handles POST /workspaces. The creating user becomes the
// workspace's sole admin member.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode create workspace body failed", err, "invalid JSON body")
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respond.BadRequest(w, "name is required")
		return
	}
	creatorID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if _, err := h.Users.GetByID(ctx, creatorID); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			respond.NotFound(w, "user not found")
			return
		}
		h.ErrLog.ServerError(w, r, "lookup creator failed", err)
		return
	}

	ws, err := h.Workspaces.Create(ctx, name, creatorID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "create workspace failed", err)
		return
	}

	h.Log.Info("workspace created",
		zap.String("workspace_id", ws.ID.Hex()),
		zap.String("name", ws.Name),
		zap.String("created_by", creatorID.Hex()))

	respond.JSON(w, http.StatusCreated, createResponse{WorkspaceID: ws.ID.Hex()})
}
