// internal/app/features/friends/add.go
package friends

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	friendstore "github.com/dalemusser/taskhub/internal/app/store/friends"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// friendshipRequest is the body for POST and DELETE /friends.
type friendshipRequest struct {
	UserID   string `json:"user_id"`
	FriendID string `json:"friend_id"`
}

func (req *friendshipRequest) validate() string {
	req.UserID = strings.TrimSpace(req.UserID)
	req.FriendID = strings.TrimSpace(req.FriendID)
	if req.UserID == "" {
		return "user_id is required"
	}
	if req.FriendID == "" {
		return "friend_id is required"
	}
	return ""
}

// HandleAdd handles POST /friends. The friendship is symmetric: after
// this call each user appears in the other's friend list. Re-adding an
// existing friendship is a success.
func (h *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	var req friendshipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode add friend body failed", err, "invalid JSON body")
		return
	}
	if msg := req.validate(); msg != "" {
		respond.BadRequest(w, msg)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Graph.AddFriend(ctx, req.UserID, req.FriendID); err != nil {
		if errors.Is(err, friendstore.ErrSelfFriendship) {
			respond.BadRequest(w, "a user cannot friend themselves")
			return
		}
		h.ErrLog.ServerError(w, r, "add friend failed", err)
		return
	}

	h.Log.Info("friendship added",
		zap.String("user_id", req.UserID),
		zap.String("friend_id", req.FriendID))

	respond.JSON(w, http.StatusOK, statusOK)
}
