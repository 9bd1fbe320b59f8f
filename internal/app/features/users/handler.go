// internal/app/features/users/handler.go
package users

import (
	"context"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.uber.org/zap"
)

// UserStore is the slice of the identity store this feature needs.
type UserStore interface {
	GetOrCreate(ctx context.Context, username string) (models.User, error)
	List(ctx context.Context) ([]models.User, error)
}

// Handler provides HTTP handlers for user registration and listing.
type Handler struct {
	Users  UserStore
	Log    *zap.Logger
	ErrLog *respond.ErrorLogger
}

// NewHandler creates a new users Handler.
func NewHandler(users UserStore, errLog *respond.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Users:  users,
		Log:    logger,
		ErrLog: errLog,
	}
}
