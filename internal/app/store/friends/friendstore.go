// internal/app/store/friends/friendstore.go
//
// Package friendstore is the Neo4j adapter for the friend graph. The
// relation is a single undirected FRIENDS_WITH edge between User nodes
// keyed by the Mongo user identifier, merged and matched
// direction-insensitively so both endpoints always see the friendship.
package friendstore

import (
	"context"
	"errors"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
)

type Store struct {
	driver neo4j.DriverWithContext
}

// ErrSelfFriendship is returned when both endpoints are the same user.
var ErrSelfFriendship = errors.New("a user cannot friend themselves")

// Recommendation is one friends-of-friends candidate with the number of
// shared friends backing the suggestion.
type Recommendation struct {
	UserID      string `json:"user_id"`
	MutualCount int64  `json:"mutual_count"`
}

func New(driver neo4j.DriverWithContext) *Store {
	return &Store{driver: driver}
}

// AddFriend records the symmetric friendship. Idempotent: merging an
// existing edge is a success, not an error.
func (s *Store) AddFriend(ctx context.Context, userID, friendID string) error {
	if userID == friendID {
		return ErrSelfFriendship
	}

	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MERGE (a:User {id: $user_id})
			MERGE (b:User {id: $friend_id})
			MERGE (a)-[:FRIENDS_WITH]-(b)
		`, map[string]any{"user_id": userID, "friend_id": friendID})
		if err != nil {
			return nil, err
		}
		_, err = result.Consume(ctx)
		return nil, err
	})
	return err
}

// RemoveFriend deletes the friendship edge regardless of the direction
// it was stored with. Removing a non-existent edge is a success.
func (s *Store) RemoveFriend(ctx context.Context, userID, friendID string) error {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeWrite})
	defer session.Close(ctx)

	_, err := session.ExecuteWrite(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (a:User {id: $user_id})-[f:FRIENDS_WITH]-(b:User {id: $friend_id})
			DELETE f
		`, map[string]any{"user_id": userID, "friend_id": friendID})
		if err != nil {
			return nil, err
		}
		_, err = result.Consume(ctx)
		return nil, err
	})
	return err
}

// ListFriends returns the identifiers adjacent to userID, ascending.
func (s *Store) ListFriends(ctx context.Context, userID string) ([]string, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	friends, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (:User {id: $user_id})-[:FRIENDS_WITH]-(f:User)
			RETURN f.id AS id
			ORDER BY id ASC
		`, map[string]any{"user_id": userID})
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(records))
		for _, rec := range records {
			v, _ := rec.Get("id")
			if id, ok := v.(string); ok {
				ids = append(ids, id)
			}
		}
		return ids, nil
	})
	if err != nil {
		return nil, err
	}
	return friends.([]string), nil
}

// RecommendFriends ranks friends-of-friends by distinct mutual-friend
// count descending, candidate id ascending on ties so results are
// reproducible. Self and existing friends are excluded by the match.
func (s *Store) RecommendFriends(ctx context.Context, userID string, limit int) ([]Recommendation, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{AccessMode: neo4j.AccessModeRead})
	defer session.Close(ctx)

	recs, err := session.ExecuteRead(ctx, func(tx neo4j.ManagedTransaction) (any, error) {
		result, err := tx.Run(ctx, `
			MATCH (u:User {id: $user_id})-[:FRIENDS_WITH]-(f:User)-[:FRIENDS_WITH]-(c:User)
			WHERE c.id <> $user_id AND NOT (u)-[:FRIENDS_WITH]-(c)
			RETURN c.id AS id, count(DISTINCT f) AS mutual
			ORDER BY mutual DESC, id ASC
			LIMIT $limit
		`, map[string]any{"user_id": userID, "limit": int64(limit)})
		if err != nil {
			return nil, err
		}
		records, err := result.Collect(ctx)
		if err != nil {
			return nil, err
		}
		out := make([]Recommendation, 0, len(records))
		for _, rec := range records {
			idVal, _ := rec.Get("id")
			mutualVal, _ := rec.Get("mutual")
			id, ok := idVal.(string)
			if !ok {
				continue
			}
			mutual, _ := mutualVal.(int64)
			out = append(out, Recommendation{UserID: id, MutualCount: mutual})
		}
		return out, nil
	})
	if err != nil {
		return nil, err
	}
	return recs.([]Recommendation), nil
}
