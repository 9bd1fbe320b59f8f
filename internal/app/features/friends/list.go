// internal/app/features/friends/list.go
package friends

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

type listResponse struct {
	UserID  string   `json:"user_id"`
	Friends []string `json:"friends"`
	Count   int      `json:"count"`
}

// HandleList handles GET /friends/{user_id}. A user with no friends
// (or one the graph has never seen) gets an empty list, not an error.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		respond.BadRequest(w, "user_id is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	friends, err := h.Graph.ListFriends(ctx, userID)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list friends failed", err)
		return
	}
	if friends == nil {
		friends = []string{}
	}

	respond.JSON(w, http.StatusOK, listResponse{
		UserID:  userID,
		Friends: friends,
		Count:   len(friends),
	})
}
