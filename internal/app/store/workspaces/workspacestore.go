// internal/app/store/workspaces/workspacestore.go
package workspacestore

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

var (
	ErrNotFound        = errors.New("workspace not found")
	ErrMemberNotFound  = errors.New("user is not a member of this workspace")
	ErrDuplicateMember = errors.New("user is already a member of this workspace")
	errBadRole         = errors.New(`role must be "admin", "editor" or "viewer"`)
)

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("workspaces")}
}

// Create inserts a workspace with the creator as its sole admin member.
// Names are not unique; no duplicate check is performed.
func (s *Store) Create(ctx context.Context, name string, creatorID primitive.ObjectID) (models.Workspace, error) {
	now := time.Now().UTC()
	ws := models.Workspace{
		ID:   primitive.NewObjectID(),
		Name: name,
		Members: []models.Membership{
			{UserID: creatorID, Role: models.RoleAdmin},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if _, err := s.c.InsertOne(ctx, ws); err != nil {
		return models.Workspace{}, err
	}
	return ws, nil
}

// GetByID retrieves a workspace by its ID.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Workspace, error) {
	var ws models.Workspace
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&ws)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Workspace{}, ErrNotFound
		}
		return models.Workspace{}, err
	}
	return ws, nil
}

// GetUserRole is the single authorization lookup: it returns the user's
// role in the workspace, or ok=false when the workspace does not exist
// or the user has no membership. Absence is not an error.
func (s *Store) GetUserRole(ctx context.Context, wsID, userID primitive.ObjectID) (models.Role, bool, error) {
	ws, err := s.GetByID(ctx, wsID)
	if err != nil {
		if err == ErrNotFound {
			return "", false, nil
		}
		return "", false, err
	}
	role, ok := ws.RoleOf(userID)
	return role, ok, nil
}

// AddMember appends a membership entry. The filter excludes documents
// already holding the user, so the (workspace, user) pair stays unique
// even under concurrent adds.
func (s *Store) AddMember(ctx context.Context, wsID, userID primitive.ObjectID, role models.Role) error {
	if !role.Valid() {
		return errBadRole
	}

	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": wsID, "members.user_id": bson.M{"$ne": userID}},
		bson.M{
			"$push": bson.M{"members": models.Membership{UserID: userID, Role: role}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		// Either the workspace is gone or the user is already a member.
		if _, err := s.GetByID(ctx, wsID); err != nil {
			return err
		}
		return ErrDuplicateMember
	}
	return nil
}

// RemoveMember pulls the membership entry for userID. Returns
// ErrNotFound for a missing workspace and ErrMemberNotFound when the
// user held no membership.
func (s *Store) RemoveMember(ctx context.Context, wsID, userID primitive.ObjectID) error {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"_id": wsID},
		bson.M{
			"$pull": bson.M{"members": bson.M{"user_id": userID}},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		},
	)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	if res.ModifiedCount == 0 {
		return ErrMemberNotFound
	}
	return nil
}

// ListForUser returns every workspace holding a membership for userID.
func (s *Store) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Workspace, error) {
	filter := bson.M{"members": bson.M{"$elemMatch": bson.M{"user_id": userID}}}
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	cur, err := s.c.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var workspaces []models.Workspace
	if err := cur.All(ctx, &workspaces); err != nil {
		return nil, err
	}
	return workspaces, nil
}

// EnsureIndexes creates the membership lookup index.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	_, err := s.c.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "members.user_id", Value: 1}},
		Options: options.Index().SetName("idx_workspace_member"),
	})
	return err
}
