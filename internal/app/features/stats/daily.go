// internal/app/features/stats/daily.go
package stats

import (
	"context"
	"net/http"

	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	"github.com/dalemusser/taskhub/internal/app/system/dates"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
)

type dailyResponse struct {
	Date      string `json:"date"`
	TaskCount int64  `json:"task_count"`
}

// HandleDaily handles GET /stats/daily?date=. Without a date parameter
// it reports today. A date no task was ever created on reads as zero.
func (h *Handler) HandleDaily(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		date = dates.Today()
	}
	if !dates.Valid(date) {
		respond.BadRequest(w, "date must be a valid YYYY-MM-DD date")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	count, err := h.Stats.Get(ctx, statstore.DailyKey(date))
	if err != nil {
		h.ErrLog.ServerError(w, r, "read daily counter failed", err)
		return
	}

	respond.JSON(w, http.StatusOK, dailyResponse{Date: date, TaskCount: count})
}
