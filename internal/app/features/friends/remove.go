// internal/app/features/friends/remove.go
package friends

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleRemove handles DELETE /friends. Removing a friendship that does
// not exist is a success, so the operation is idempotent.
func (h *Handler) HandleRemove(w http.ResponseWriter, r *http.Request) {
	var req friendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode remove friend body failed", err, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		respond.BadRequest(w, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Graph.RemoveFriend(ctx, req.UserID, req.FriendID); err != nil {
		h.ErrLog.ServerError(w, r, "remove friend failed", err)
		return
	}

	h.Log.Info("friendship removed",
		zap.String("user_id", req.UserID),
		zap.String("friend_id", req.FriendID))

	respond.JSON(w, http.StatusOK, statusOK)
}
