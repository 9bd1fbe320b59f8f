// internal/app/features/users/register.go
package users

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// registerRequest is the body for POST /register.
type registerRequest struct {
	Username string `json:"username"`
}

// registerResponse returns the identity for the given username, whether
// it existed before the call or not.
type registerResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

// HandleRegister handles POST /register.
//
// Registration is get-or-create: posting an existing username returns
// the same user_id, so the operation is idempotent.
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.ErrLog.BadRequestErr(w, r, "decode register body failed", err, "invalid JSON body")
		return
	}

	username := strings.TrimSpace(req.Username)
	if username == "" {
		respond.BadRequest(w, "username is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.Users.GetOrCreate(ctx, username)
	if err != nil {
		h.ErrLog.ServerError(w, r, "get-or-create user failed", err)
		return
	}

	h.Log.Info("user registered",
		zap.String("user_id", user.ID.Hex()),
		zap.String("username", user.Username))

	respond.JSON(w, http.StatusOK, registerResponse{
		UserID:   user.ID.Hex(),
		Username: user.Username,
	})
}
