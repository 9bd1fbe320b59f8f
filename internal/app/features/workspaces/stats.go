// internal/app/features/workspaces/stats.go
package workspaces

import (
	"context"
	"errors"
	"net/http"

	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type statsResponse struct {
	WorkspaceID string           `json:"workspace_id"`
	Stats       map[string]int64 `json:"stats"`
}

// HandleStats handles GET /workspaces/{workspace_id}/stats, reading
// every advisory counter recorded for the workspace. Metrics that were
// never incremented are simply absent from the map.
func (h *Handler) HandleStats(w http.ResponseWriter, r *http.Request) {
	wsID, err := primitive.ObjectIDFromHex(chi.URLParam(r, "workspace_id"))
	if err != nil {
		respond.BadRequest(w, "invalid workspace id")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	if _, err := h.Workspaces.GetByID(ctx, wsID); err != nil {
		if errors.Is(err, workspacestore.ErrNotFound) {
			respond.NotFound(w, "workspace not found")
			return
		}
		h.ErrLog.ServerError(w, r, "load workspace failed", err)
		return
	}

	stats, err := h.Stats.GetAllWithPrefix(ctx, statstore.WorkspacePrefix(wsID))
	if err != nil {
		h.ErrLog.ServerError(w, r, "read workspace counters failed", err)
		return
	}

	respond.JSON(w, http.StatusOK, statsResponse{
		WorkspaceID: wsID.Hex(),
		Stats:       stats,
	})
}
