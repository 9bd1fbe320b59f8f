// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	friendsfeature "github.com/dalemusser/taskhub/internal/app/features/friends"
	healthfeature "github.com/dalemusser/taskhub/internal/app/features/health"
	statsfeature "github.com/dalemusser/taskhub/internal/app/features/stats"
	tasksfeature "github.com/dalemusser/taskhub/internal/app/features/tasks"
	usersfeature "github.com/dalemusser/taskhub/internal/app/features/users"
	workspacesfeature "github.com/dalemusser/taskhub/internal/app/features/workspaces"
	friendstore "github.com/dalemusser/taskhub/internal/app/store/friends"
	statstore "github.com/dalemusser/taskhub/internal/app/store/stats"
	taskstore "github.com/dalemusser/taskhub/internal/app/store/tasks"
	userstore "github.com/dalemusser/taskhub/internal/app/store/users"
	workspacestore "github.com/dalemusser/taskhub/internal/app/store/workspaces"
	"github.com/dalemusser/taskhub/internal/app/system/respond"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup,
// and any Startup hooks have completed. TaskHub builds one store per
// backing collection or service, then mounts a feature router per API
// area: identity, workspaces (with nested tasks), the friend graph,
// global stats, and health.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Stores over the backing services.
	usersStore := userstore.New(deps.MongoDatabase)
	workspacesStore := workspacestore.New(deps.MongoDatabase)
	tasksStore := taskstore.New(deps.MongoDatabase)
	graphStore := friendstore.New(deps.Neo4j)
	statsStore := statstore.New(deps.Redis)

	// Error logger for handlers.
	errLog := respond.NewErrorLogger(logger)

	r := chi.NewRouter()

	// Health check endpoint for load balancers and orchestrators.
	healthHandler := healthfeature.NewHandler(deps.MongoClient, deps.Redis, deps.Neo4j, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Identity: /register and /users.
	usersHandler := usersfeature.NewHandler(usersStore, errLog, logger)
	r.Mount("/", usersfeature.Routes(usersHandler))

	// Workspaces, memberships, and nested per-workspace tasks.
	tasksHandler := tasksfeature.NewHandler(tasksStore, workspacesStore, statsStore, errLog, logger)
	workspacesHandler := workspacesfeature.NewHandler(workspacesStore, usersStore, statsStore, errLog, logger)
	r.Mount("/workspaces", workspacesfeature.Routes(workspacesHandler, tasksHandler))

	// Friend graph.
	friendsHandler := friendsfeature.NewHandler(graphStore, errLog, logger)
	r.Mount("/friends", friendsfeature.Routes(friendsHandler))

	// Global stat counters.
	statsHandler := statsfeature.NewHandler(statsStore, errLog, logger)
	r.Mount("/stats", statsfeature.Routes(statsHandler))

	return r, nil
}
