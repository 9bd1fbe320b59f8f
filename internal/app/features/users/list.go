// internal/app/features/users/list.go
package users

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
)

type userView struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
}

type listResponse struct {
	Users []userView `json:"users"`
	Count int        `json:"count"`
}

// HandleList handles GET /users, returning every registered user
// ordered by username.
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	all, err := h.Users.List(ctx)
	if err != nil {
		h.ErrLog.ServerError(w, r, "list users failed", err)
		return
	}

	views := make([]userView, 0, len(all))
	for _, u := range all {
		views = append(views, userView{UserID: u.ID.Hex(), Username: u.Username})
	}

	respond.JSON(w, http.StatusOK, listResponse{Users: views, Count: len(views)})
}
