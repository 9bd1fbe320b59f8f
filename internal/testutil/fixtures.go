package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/taskhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser creates a test user with the given username.
// Returns the created user with its generated ID.
func (f *Fixtures) CreateUser(ctx context.Context, username string) models.User {
	f.t.Helper()

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
	}

	_, err := f.db.Collection("users").InsertOne(ctx, user)
	if err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

// CreateWorkspace creates a test workspace with creatorID as its sole
// admin member.
func (f *Fixtures) CreateWorkspace(ctx context.Context, name string, creatorID primitive.ObjectID) models.Workspace {
	f.t.Helper()

	now := time.Now().UTC()
	ws := models.Workspace{
		ID:        primitive.NewObjectID(),
		Name:      name,
		Members:   []models.Membership{{UserID: creatorID, Role: models.RoleAdmin}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := f.db.Collection("workspaces").InsertOne(ctx, ws)
	if err != nil {
		f.t.Fatalf("failed to create test workspace: %v", err)
	}

	return ws
}

// AddMember appends a membership record to an existing test workspace.
func (f *Fixtures) AddMember(ctx context.Context, wsID, userID primitive.ObjectID, role models.Role) {
	f.t.Helper()

	_, err := f.db.Collection("workspaces").UpdateOne(ctx,
		bson.M{"_id": wsID},
		bson.M{"$push": bson.M{"members": models.Membership{UserID: userID, Role: role}}},
	)
	if err != nil {
		f.t.Fatalf("failed to add test member: %v", err)
	}
}

// CreateTask creates a test task in the given workspace.
func (f *Fixtures) CreateTask(ctx context.Context, wsID primitive.ObjectID, text, date string) models.Task {
	f.t.Helper()

	task := models.Task{
		ID:          primitive.NewObjectID(),
		WorkspaceID: wsID,
		Text:        text,
		Date:        date,
		IsDone:      false,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := f.db.Collection("tasks").InsertOne(ctx, task)
	if err != nil {
		f.t.Fatalf("failed to create test task: %v", err)
	}

	return task
}
