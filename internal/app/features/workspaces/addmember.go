// internal/app/features/workspaces/addmember.go
package workspaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/workspacepolicy"
	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// addMemberRequest is the body for POST /workspaces/{workspace_id}/members.
// admin_id names the requester, who must hold the admin role.
type addMemberRequest struct {
	AdminID string `json:"admin_id"`
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
}

// HandleAddMember handles POST /workspaces/{workspace_id}/members.
func (h *Handler) HandleAddMember(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}

	var req addMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode add member body failed", err, "invalid JSON body")
		return
	}
	adminID, err := primitive.ObjectIDFromHex(req.AdminID)
	if err != nil {
		respond.BadRequest(w, "invalid admin_id")
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}
	role, ok := models.ParseRole(req.Role)
	if !ok {
		respond.BadRequest(w, "role must be admin, editor, or viewer")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ws, err := h.Workspaces.GetByID(ctx, wsID)
	if err != nil {
		if errors.Is(err, workspacestore.ErrNotFound) {
			respond.NotFound(w, "workspace not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load workspace failed", err)
		return
	}

	requesterRole, isMember := ws.RoleOf(adminID)
	if !isMember {
		respond.Forbidden(w, "requester is not a member of this workspace")
		return
	}
	if !workspacepolicy.CanManageMembers(requesterRole) {
		respond.Forbidden(w, "only admins can manage members")
		return
	}

	if _, err := h.Users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			respond.NotFound(w, "user not found")
			return
		}
		h.ErrLog.ServerError(w, r, "lookup target user failed", err)
		return
	}

	if err := h.Workspaces.AddMember(ctx, wsID, targetID, role); err != nil {
		switch {
		case errors.Is(err, workspacestore.ErrDuplicateMember):
			respond.Conflict(w, "user is already a member of this workspace")
		case errors.Is(err, workspacestore.ErrNotFound):
			respond.NotFound(w, "workspace not found")
		default:
			h.ErrLog.ServerError(w, r, "add member failed", err)
		}
		return
	}

	h.countEvent(ctx, statstore.WorkspaceKey(wsID, statstore.MetricMembersAdded))

	h.Log.Info("member added",
		zap.String("workspace_id", wsID.Hex()),
		zap.String("user_id", targetID.Hex()),
		zap.String("role", string(role)),
		zap.String("added_by", adminID.Hex()))

	respond.JSON(w, http.StatusOK, statusOK)
}
