// internal/app/features/tasks/handler.go
package tasks

import (
	"context"
	"errors"
	"net/http"

	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// TaskStore is the slice of the task store this feature needs.
type TaskStore interface {
	Create(ctx context.Context, wsID primitive.ObjectID, text, date string) (models.Task, error)
	SetStatus(ctx context.Context, wsID, taskID primitive.ObjectID, isDone bool) error
	Delete(ctx context.Context, wsID, taskID primitive.ObjectID) error
	ListByDate(ctx context.Context, wsID primitive.ObjectID, date string) ([]models.Task, error)
}

// WorkspaceStore loads workspaces for role checks.
type WorkspaceStore interface {
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Workspace, error)
}

// StatStore records advisory counters.
type StatStore interface {
	Increment(ctx context.Context, key string) error
}

// Handler provides HTTP handlers for workspace-scoped tasks.
type Handler struct {
	Tasks      TaskStore
	Workspaces WorkspaceStore
	Stats      StatStore
	Log        *zap.Logger
	ErrLog     *respond.ErrorLogger
}

// NewHandler creates a new tasks Handler.
func NewHandler(tasks TaskStore, workspaces WorkspaceStore, stats StatStore, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Tasks:      tasks,
		Workspaces: workspaces,
		Stats:      stats,
		Log:        logger,
		ErrLog:     errLog,
	}
}

// requireRole loads the caller's role in the workspace, writing 404 when
// the workspace is unknown and 403 when the caller is not a member. The
// returned bool reports whether the request may proceed.
func (h *Handler) requireRole(ctx context.Context, w http.ResponseWriter, r *http.Request, wsID, userID primitive.ObjectID) (models.Role, bool) {
	ws, err := h.Workspaces.GetByID(ctx, wsID)
	if err != nil {
		if errors.Is(err, workspacestore.ErrNotFound) {
			respond.NotFound(w, "workspace not found")
			return "", false
		}
		h.ErrLog.ServerError(w, r, "load workspace failed", err)
		return "", false
	}
	role, ok := ws.RoleOf(userID)
	if !ok {
		respond.Forbidden(w, "user is not a member of this workspace")
		return "", false
	}
	return role, true
}

// countEvent bumps an advisory counter, logging and swallowing any
// failure so counters never fail a request whose primary write already
// committed.
func (h *Handler) countEvent(ctx context.Context, key string) {
	if err := h.Stats.Increment(ctx, key); err != nil {
		h.Log.Warn("counter increment failed",
			zap.String("key", key),
			zap.Error(err))
	}
}
