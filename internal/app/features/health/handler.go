package health

import (
	"context"
	"net/http"

	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/taskhub/internal/app/system/timeouts"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds the backing-store clients needed for health checks.
type Handler struct {
	Mongo *mongo.Client
	Redis *redis.Client
	Neo4j neo4j.DriverWithContext
	Log   *zap.Logger
}

// NewHandler constructs a health Handler over the three store clients.
func NewHandler(mongoClient *mongo.Client, rdb *redis.Client, driver neo4j.DriverWithContext, logger *zap.Logger) *Handler {
	return &Handler{
		Mongo: mongoClient,
		Redis: rdb,
		Neo4j: driver,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status string `json:"status"`
	Mongo  string `json:"mongo"`
	Redis  string `json:"redis"`
	Neo4j  string `json:"neo4j"`
}

// Serve handles GET /health.
//
// 200 when every backing store answers its ping, 503 otherwise, with
// per-store connected/disconnected fields either way.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	resp := healthResponse{
		Status: "ok",
		Mongo:  "connected",
		Redis:  "connected",
		Neo4j:  "connected",
	}
	status := http.StatusOK

	if err := h.Mongo.Ping(ctx, readpref.Primary()); err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Mongo = "disconnected"
		status = http.StatusServiceUnavailable
	}
	if err := h.Redis.Ping(ctx).Err(); err != nil {
		h.Log.Error("health-check: redis ping failed", zap.Error(err))
		resp.Status = "error"
		resp.Redis = "disconnected"
		status = http.StatusServiceUnavailable
	}
	if err := h.Neo4j.VerifyConnectivity(ctx); err != nil {
		h.Log.Error("health-check: neo4j connectivity failed", zap.Error(err))
		resp.Status = "error"
		resp.Neo4j = "disconnected"
		status = http.StatusServiceUnavailable
	}

	respond.JSON(w, status, resp)
}
