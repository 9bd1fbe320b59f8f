// internal/app/features/workspaces/listmembers.go
package workspaces

import (
	"context"
	"errors"
	"net/http"

	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listMembersResponse struct {
	Members []memberView `json:"members"`
	Count   int          `json:"count"`
}

// HandleListMembers handles GET /workspaces/{workspace_id}/members.
// Usernames are resolved through the users collection; a member whose
// user document has been removed still appears, with an empty username.
func (h *Handler) HandleListMembers(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
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

	ids := make([]primitive.ObjectID, 0, len(ws.Members))
	for _, m := range ws.Members {
		ids = append(ids, m.UserID)
	}
	users, err := h.Users.ListByIDs(ctx, ids)
	if err != nil {
		h.ErrLog.ServerError(w, r, "resolve member usernames failed", err)
		return
	}
	names := make(map[primitive.ObjectID]string, len(users))
	for _, u := range users {
		names[u.ID] = u.Username
	}

	members := make([]memberView, 0, len(ws.Members))
	for _, m := range ws.Members {
		members = append(members, memberView{
			UserID:   m.UserID.Hex(),
			Username: names[m.UserID],
			Role:     string(m.Role),
		})
	}

	respond.JSON(w, http.StatusOK, listMembersResponse{Members: members, Count: len(members)})
}
