// internal/app/features/friends/recommendations.go
package friends

import (
	"context"
	"net/http"
	"strconv"

	friendstore "github.com/dalemusser/taskhub/internal/app/store/friends"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/go-chi/chi/v5"
)

const (
	defaultRecommendationLimit = 10
	maxRecommendationLimit     = 50
)

type recommendationsResponse struct {
	UserID          string                     `json:"user_id"`
	Recommendations []friendstore.Recommendation `json:"recommendations"`
	Count           int                        `json:"count"`
}

// HandleRecommendations handles GET /friends/{user_id}/recommendations.
// Candidates are friends-of-friends who are not already friends of the
// user, ranked by mutual-friend count descending then id ascending.
func (h *Handler) HandleRecommendations(w http.ResponseWriter, r *http.Request) {
	userID := chi.URLParam(r, "user_id")
	if userID == "" {
		respond.BadRequest(w, "user_id is required")
		return
	}

	limit := defaultRecommendationLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respond.BadRequest(w, "limit must be a positive integer")
			return
		}
		limit = n
	}
	if limit > maxRecommendationLimit {
		limit = maxRecommendationLimit
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	recs, err := h.Graph.RecommendFriends(ctx, userID, limit)
	if err != nil {
		h.ErrLog.ServerError(w, r, "recommend friends failed", err)
		return
	}
	if recs == nil {
		recs = []friendstore.Recommendation{}
	}

	respond.JSON(w, http.StatusOK, recommendationsResponse{
		UserID:          userID,
		Recommendations: recs,
		Count:           len(recs),
	})
}
