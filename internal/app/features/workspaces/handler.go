// internal/app/features/workspaces/handler.go
package workspaces

import (
	"context"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// WorkspaceStore is the slice of the workspace store this feature needs.
type WorkspaceStore interface {
	Create(ctx context.Context, name string, creatorID primitive.ObjectID) (models.Workspace, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Workspace, error)
	AddMember(ctx context.Context, wsID, userID primitive.ObjectID, role models.Role) error
	RemoveMember(ctx context.Context, wsID, userID primitive.ObjectID) error
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Workspace, error)
}

// UserStore resolves user identities for member listings and existence
// checks.
type UserStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	ListByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error)
}

// StatStore records and reads advisory workspace counters.
type StatStore interface {
	Increment(ctx context.Context, key string) error
	GetAllWithPrefix(ctx context.Context, prefix string) (map[string]int64, error)
}

// Handler provides HTTP handlers for workspace and membership
// management.
type Handler struct {
	Workspaces WorkspaceStore
	Users      UserStore
	Stats      StatStore
	Log        *zap.Logger
	ErrLog     *respond.ErrorLogger
}

// NewHandler creates a new workspaces Handler.
func NewHandler(workspaces WorkspaceStore, users UserStore, stats StatStore, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Workspaces: workspaces,
		Users:      users,
		Stats:      stats,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// countEvent bumps an advisory counter. Counter failures never fail the
// request that already committed its primary write; they are logged and
// swallowed.
func (h *Handler) countEvent(ctx context.Context, key string) {
	if err := h.Stats.Increment(ctx, key); err != nil {
		h.Log.Warn("counter increment failed",
			zap.String("key", key),
			zap.Error(err))
	}
}
