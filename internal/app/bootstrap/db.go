// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/waffle/config"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes connections to the three backing stores:
// MongoDB for documents, Redis for counters, Neo4j for the friend
// graph. Each connection is verified before startup proceeds, so a
// misconfigured store fails fast instead of at first request.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	var deps DBDeps

	// MongoDB
	mongoOpts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)
	client, err := mongo.Connect(ctx, mongoOpts)
	if err != nil {
		return deps, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("mongo ping: %w", err)
	}
	deps.MongoClient = client
	deps.MongoDatabase = client.Database(appCfg.MongoDatabase)
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	// Redis
	redisOpts, err := redis.ParseURL(appCfg.RedisURI)
	if err != nil {
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("parse redis URI: %w", err)
	}
	rdb := redis.NewClient(redisOpts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("redis ping: %w", err)
	}
	deps.Redis = rdb
	logger.Info("connected to Redis")

	// Neo4j
	driver, err := neo4j.NewDriverWithContext(appCfg.Neo4jURI,
		neo4j.BasicAuth(appCfg.Neo4jUser, appCfg.Neo4jPassword, ""))
	if err != nil {
		_ = rdb.Close()
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("neo4j driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		_ = rdb.Close()
		_ = client.Disconnect(ctx)
		return deps, fmt.Errorf("neo4j connectivity: %w", err)
	}
	deps.Neo4j = driver
	logger.Info("connected to Neo4j")

	return deps, nil
}

// EnsureSchema creates the MongoDB indexes the stores rely on. Index
// creation is idempotent, so this runs on every startup.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db := deps.MongoDatabase

	if err := userstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	if err := workspacestore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure workspace indexes: %w", err)
	}
	if err := taskstore.New(db).EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("ensure task indexes: %w", err)
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}
