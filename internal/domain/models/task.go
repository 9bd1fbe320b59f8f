// internal/domain/models/task.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Task is a single todo entry. A task belongs to exactly one workspace
// and exactly one calendar date (YYYY-MM-DD) and is never moved between
// either after creation.
type Task struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"task_id"`
	WorkspaceID primitive.ObjectID `bson:"workspace_id" json:"workspace_id"`
	Text        string             `bson:"text" json:"text"`
	Date        string             `bson:"date" json:"date"` // YYYY-MM-DD
	IsDone      bool               `bson:"is_done" json:"is_done"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
}
