// internal/app/store/tasks/taskstore.go
package taskstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

var ErrNotFound = errors.New("task not found in this workspace")

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("tasks")}
}

// Create inserts a task. New tasks always start not done. The caller
// validates text and date; the store records them as given.
func (s *Store) Create(ctx context.Context, wsID primitive.ObjectID, text, date string) (models.Task, error) {
	task := models.Task{
		ID:          primitive.NewObjectID(),
		WorkspaceID: wsID,
		Text:        text,
		Date:        date,
		IsDone:      false,
		CreatedAt:   time.Now().UTC(),
	}
	if _, err := s.c.InsertOne(ctx, task); err != nil {
		return models.Task{}, err
	}
	return task, nil
}

// SetStatus updates the completion flag. The filter includes the
// workspace so a task can never be flipped through another workspace's
// URL. Setting the current value again is a no-op success.
func (s *Store) SetStatus(ctx context.Context, wsID, taskID primitive.ObjectID, isDone bool) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": taskID, "workspace_id": wsID},
		bson.M{"$set": bson.M{"is_done": isDone}},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the task, again scoped to the owning workspace.
func (s *Store) Delete(ctx context.Context, wsID, taskID primitive.ObjectID) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": taskID, "workspace_id": wsID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListByDate returns the workspace's tasks for an exact date, oldest first.
func (s *Store) ListByDate(ctx context.Context, wsID primitive.ObjectID, date string) ([]models.Task, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, bson.M{"workspace_id": wsID, "date": date}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var tasks []models.Task
	if err := cur.All(ctx, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

// EnsureIndexes creates the (workspace, date) listing index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "workspace_id", Value: 1}, {Key: "date", Value: 1}},
		Options: options.Index().SetName("idx_task_workspace_date"),
	})
	return err
}
