// internal/app/store/stats/statstore.go
//
// Package statstore is the Redis adapter for advisory counters. Keys
// are namespaced strings; values are monotonically non-decreasing
// integers. Reads of unset keys return 0, never an error.
package statstore

import (
	"context"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Metric names tracked per workspace.
const (
	MetricTasksCreated   = "tasks_created"
	MetricMembersAdded   = "members_added"
	MetricMembersRemoved = "members_removed"
)

const keyPrefix = "stats:"

// WorkspaceKey builds the counter key for one workspace metric.
func WorkspaceKey(wsID primitive.ObjectID, metric string) string {
	return WorkspacePrefix(wsID) + metric
}

// WorkspacePrefix is the common prefix of a workspace's counters, used
// for dashboard prefix scans.
func WorkspacePrefix(wsID primitive.ObjectID) string {
	return keyPrefix + "ws:" + wsID.Hex() + ":"
}

// DailyKey builds the global per-date task counter key.
func DailyKey(date string) string {
	return keyPrefix + "daily:" + date
}

type Store struct {
	rdb *redis.Client
}

func New(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Increment atomically adds 1, creating the key at 1 when absent.
func (s *Store) Increment(ctx context.Context, key string) error {
	return s.rdb.Incr(ctx, key).Err()
}

// Get reads a counter. Absent keys read as 0.
func (s *Store) Get(ctx context.Context, key string) (int64, error) {
	n, err := s.rdb.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return n, nil
}

// GetAllWithPrefix returns every counter under prefix, keyed by the
// suffix after the prefix. Used for workspace stat dashboards.
func (s *Store) GetAllWithPrefix(ctx context.Context, prefix string) (map[string]int64, error) {
	out := make(map[string]int64)

	iter := s.rdb.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		n, err := s.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		out[strings.TrimPrefix(key, prefix)] = n
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
