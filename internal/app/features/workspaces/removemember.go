// internal/app/features/workspaces/removemember.go
package workspaces

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/policy/workspacepolicy"
	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// removeMemberRequest is the body for DELETE /workspaces/{workspace_id}/members.
type removeMemberRequest struct {
	RequesterID string `json:"requester_id"`
	TargetID    string `json:"target_id"`
}

// HandleRemoveMember handles DELETE /workspaces/{workspace_id}/members.
//
// Self-removal is always rejected, even for admins: since only admins
// can remove members, this also guarantees a workspace never loses its
// last admin through this endpoint.
func (h *Handler) HandleRemoveMember(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}

	var req removeMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode remove member body failed", err, "invalid JSON body")
		return
	}
	requesterID, err := primitive.ObjectIDFromHex(req.RequesterID)
	if err != nil {
		respond.BadRequest(w, "invalid requester_id")
		return
	}
	targetID, err := primitive.ObjectIDFromHex(req.TargetID)
	if err != nil {
		respond.BadRequest(w, "invalid target_id")
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

	requesterRole, isMember := ws.RoleOf(requesterID)
	if !isMember {
		respond.Forbidden(w, "requester is not a member of this workspace")
		return
	}
	if !workspacepolicy.CanManageMembers(requesterRole) {
		respond.Forbidden(w, "only admins can manage members")
		return
	}
	if requesterID == targetID {
		respond.Forbidden(w, "members cannot remove themselves")
		return
	}

	if err := h.Workspaces.RemoveMember(ctx, wsID, targetID); err != nil {
		switch {
		case errors.Is(err, workspacestore.ErrMemberNotFound):
			respond.NotFound(w, "user is not a member of this workspace")
		case errors.Is(err, workspacestore.ErrNotFound):
			respond.NotFound(w, "workspace not found")
		default:
			h.ErrLog.ServerError(w, r, "remove member failed", err)
		}
		return
	}

	h.countEvent(ctx, statstore.WorkspaceKey(wsID, statstore.MetricMembersRemoved))

	h.Log.Info("member removed",
		zap.String("workspace_id", wsID.Hex()),
		zap.String("user_id", targetID.Hex()),
		zap.String("removed_by", requesterID.Hex()))

	respond.JSON(w, http.StatusOK, statusOK)
}
