// internal/domain/models/user.go
package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is an identity record: a stable store-assigned identifier bound
// to a unique, case-sensitive username. Users are created on first
// registration and never deleted.
type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"user_id"`
	Username string             `bson:"username" json:"username"`
}
