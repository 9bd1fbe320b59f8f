// internal/app/features/friends/handler.go
package friends

import (
	"context"

	friendstore "github.com/dalemusser/taskhub/internal/app/store/friends"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// GraphStore is the slice of the friend graph this feature needs.
type GraphStore interface {
	AddFriend(ctx context.Context, userID, friendID string) error
	RemoveFriend(ctx context.Context, userID, friendID string) error
	ListFriends(ctx context.Context, userID string) ([]string, error)
	RecommendFriends(ctx context.Context, userID string, limit int) ([]friendstore.Recommendation, error)
}

// Handler provides HTTP handlers for the friend graph.
type Handler struct {
	Graph  GraphStore
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler creates a new friends Handler.
func NewHandler(graph GraphStore, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Graph:  graph,
		Log:    logger,
		ErrLog: errLog,
	}
}

// statusResponse is the body for mutations that return no entity.
type statusResponse struct {
	Status string `json:"status"`
}

var statusOK = statusResponse{Status: "ok"}
