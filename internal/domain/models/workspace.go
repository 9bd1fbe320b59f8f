// internal/domain/models/workspace.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership associates a user with a role inside one workspace.
// At most one entry exists per (workspace, user) pair.
type Membership struct {
	UserID primitive.ObjectID `bson:"user_id" json:"user_id"`
	Role   Role               `bson:"role" json:"role"`
}

// Workspace is a shared task container. Members are embedded on the
// document; the creator is always inserted as the first membership
// with role admin, so a workspace never exists with zero members.
//
// Names are not unique: two workspaces may share a name and are told
// apart only by ID.
type Workspace struct {
	ID      primitive.ObjectID `bson:"_id,omitempty" json:"workspace_id"`
	Name    string             `bson:"name" json:"name"`
	Members []Membership       `bson:"members" json:"members"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// RoleOf returns the member's role, or false if the user has no
// membership in this workspace.
func (w Workspace) RoleOf(userID primitive.ObjectID) (Role, bool) {
	for _, m := range w.Members {
		if m.UserID == userID {
			return m.Role, true
		}
	}
	return "", false
}
