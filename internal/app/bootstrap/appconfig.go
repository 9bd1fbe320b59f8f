// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). They represent *app-level*
// configuration, not WAFFLE core configuration: ports, TLS, logging
// level, and the like stay in CoreConfig.
//
// TaskHub talks to three backing stores, so the app config is mostly
// connection settings for MongoDB (documents), Redis (counters), and
// Neo4j (friend graph).
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI         string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase    string // Database name within MongoDB
	MongoMaxPoolSize uint64 // Max connection pool size
	MongoMinPoolSize uint64 // Min connection pool size

	// Redis connection configuration (advisory stat counters)
	RedisURI string // Redis URI (e.g., redis://localhost:6379/0)

	// Neo4j connection configuration (friend graph)
	Neo4jURI      string // Bolt URI (e.g., bolt://localhost:7687)
	Neo4jUser     string // Neo4j username
	Neo4jPassword string // Neo4j password
}
