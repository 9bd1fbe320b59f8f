// internal/app/features/stats/handler.go
package stats

import (
	"context"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// StatStore reads advisory counters.
type StatStore interface {
	Get(ctx context.Context, key string) (int64, error)
}

// Handler provides HTTP handlers for global stat counters.
type Handler struct {
	Stats  StatStore
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler creates a new stats Handler.
func NewHandler(stats StatStore, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Stats:  stats,
		Log:    logger,
		ErrLog: errLog,
	}
}
