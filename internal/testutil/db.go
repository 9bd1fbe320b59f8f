// internal/testutil/db.go
package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

// TestContext returns a context with a generous deadline for store calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// SetupTestDB connects to the test MongoDB instance and hands back a
// database with a unique name, dropped on cleanup. The test is skipped
// when no MongoDB is reachable, so store integration tests only run
// against real infrastructure.
//
// Override the instance with TASKHUB_TEST_MONGO_URI.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("TASKHUB_TEST_MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongodb not available at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongodb not reachable at %s: %v", uri, err)
	}

	db := client.Database("taskhub_test_" + primitive.NewObjectID().Hex())

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

// SetupTestRedis connects to the test Redis instance, skipping the test
// when none is reachable. Callers must use unique keys (ObjectID-based
// keys already are) since the database is shared.
//
// Override the instance with TASKHUB_TEST_REDIS_URI.
func SetupTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	uri := os.Getenv("TASKHUB_TEST_REDIS_URI")
	if uri == "" {
		uri = "redis://localhost:6379"
	}

	opts, err := redis.ParseURL(uri)
	if err != nil {
		t.Fatalf("bad redis test URI %s: %v", uri, err)
	}
	rdb := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		t.Skipf("redis not reachable at %s: %v", uri, err)
	}

	t.Cleanup(func() { _ = rdb.Close() })
	return rdb
}

// SetupTestNeo4j connects to the test Neo4j instance, skipping the test
// when none is reachable.
//
// Override with TASKHUB_TEST_NEO4J_URI / _USER / _PASSWORD.
func SetupTestNeo4j(t *testing.T) neo4j.DriverWithContext {
	t.Helper()

	uri := os.Getenv("TASKHUB_TEST_NEO4J_URI")
	if uri == "" {
		uri = "bolt://localhost:7687"
	}
	user := os.Getenv("TASKHUB_TEST_NEO4J_USER")
	if user == "" {
		user = "neo4j"
	}
	password := os.Getenv("TASKHUB_TEST_NEO4J_PASSWORD")
	if password == "" {
		password = "password"
	}

	driver, err := neo4j.NewDriverWithContext(uri, neo4j.BasicAuth(user, password, ""))
	if err != nil {
		t.Skipf("neo4j driver init failed for %s: %v", uri, err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(context.Background())
		t.Skipf("neo4j not reachable at %s: %v", uri, err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = driver.Close(ctx)
	})
	return driver
}
