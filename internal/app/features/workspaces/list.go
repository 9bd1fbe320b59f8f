// internal/app/features/workspaces/list.go
package workspaces

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type listResponse struct {
	Workspaces []workspaceView `json:"workspaces"`
	Count      int             `json:"count"`
}

// HandleList handles GET /workspaces?user_id=, returning every
// workspace the user belongs to along with their role in each.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID, err := primitive.ObjectIDFromHex(r.URL.Query().Get("user_id"))
	if err != nil {
		respond.BadRequest(w, "invalid user_id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Workspaces.ListForUser(ctx, userID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list workspaces failed", err)
		return
	}

	views := make([]workspaceView, 0, len(all))
	for _, ws := range all {
		role, _ := ws.RoleOf(userID)
		views = append(views, workspaceView{
			WorkspaceID: ws.ID.Hex(),
			Name:        ws.Name,
			Role:        string(role),
			MemberCount: len(ws.Members),
		})
	}

	respond.JSON(w, http.StatusOK, listResponse{Workspaces: views, Count: len(views)})
}
