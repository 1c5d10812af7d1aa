package container

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"quotebook-backend/internal/config"
	"quotebook-backend/internal/domains/sentence/handler"
	"quotebook-backend/internal/domains/sentence/repository"
	"quotebook-backend/internal/domains/sentence/service"
	infraCache "quotebook-backend/internal/infrastructure/cache"
	"quotebook-backend/internal/infrastructure/database"
	"quotebook-backend/pkg/cache"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every dependency of the application.
// Order of construction: config, store, cache, repository, service, handler.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config *config.Config

	// DB and Conns are nil when the in-memory store is selected
	DB    *database.PostgresDB
	Conns *database.ConnCache[database.Querier]

	// Cache is nil when REDIS_HOST is empty
	Cache cache.Cache
	redis *infraCache.RedisCache

	// ========================================
	// SENTENCE DOMAIN
	// ========================================

	SentenceRepo    repository.RepositoryInterface
	SentenceService service.ServiceInterface
	SentenceHandler *handler.SentenceHandler
}

// ========================================
// CONSTRUCTORS
// ========================================

// NewContainer loads configuration from the environment and builds the graph
func NewContainer() (*Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return New(cfg)
}

// New builds the dependency graph from cfg.
// The store is not dialled here: the first request that needs it connects.
func New(cfg *config.Config) (*Container, error) {
	log.Info().Str("env", cfg.App.Environment).Msg("🔧 Initializing DI Container...")

	c := &Container{Config: cfg}

	// ========================================
	// STEP 1: STORE
	// ========================================
	if cfg.UsesMemoryStore() {
		log.Warn().Msg("🗄️  Using in-memory store, data is lost on restart")
		c.SentenceRepo = repository.NewMemoryRepository()
	} else {
		c.DB = database.NewPostgresDB(cfg.Database)
		c.Conns = database.NewConnCache[database.Querier](c.DB.Dial, cfg.Database.ConnectTimeout)
		c.SentenceRepo = repository.NewPostgresRepository(c.Conns)
	}

	// ========================================
	// STEP 2: CACHE (optional)
	// ========================================
	if cfg.Redis.Enabled() {
		c.redis = infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

		timeout := cfg.Database.ConnectTimeout
		if timeout <= 0 {
			timeout = database.DefaultConnectTimeout
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		// Redis failure is not critical: the decorator falls back to the store
		if err := c.redis.Connect(ctx); err != nil {
			log.Warn().Err(err).Msg("⚠️  Redis connection failed (non-critical)")
		}

		c.Cache = c.redis
		c.SentenceRepo = repository.NewCachedRepository(c.SentenceRepo, c.Cache, cfg.Redis.CacheTTL)
	}

	// ========================================
	// STEP 3: SERVICE + HANDLER
	// ========================================
	c.SentenceService = service.NewSentenceService(c.SentenceRepo)
	c.SentenceHandler = handler.NewSentenceHandler(c.SentenceService)

	log.Info().Msg("🎉 DI Container initialized successfully")
	return c, nil
}

// ========================================
// HEALTH
// ========================================

// Health is the body of GET /api/health
type Health struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Cache    string `json:"cache"`
	Version  string `json:"version"`
}

// CheckHealth acquires the store connection (dialling it if needed) and pings the cache.
// ok is false when the store cannot be reached; a down cache only degrades.
func (c *Container) CheckHealth(ctx context.Context) (Health, bool) {
	h := Health{Status: "ok", Database: "memory", Cache: "disabled", Version: c.Config.App.Version}
	ok := true

	if c.Conns != nil {
		if _, err := c.Conns.Acquire(ctx); err != nil {
			log.Warn().Err(err).Msg("[HEALTH] database unavailable")
			ok = false
		} else if err := c.DB.HealthCheck(ctx); err != nil {
			log.Warn().Err(err).Msg("[HEALTH] database health check failed")
			ok = false
		}
		h.Database = c.Conns.State().String()
		if !ok {
			h.Database = "unreachable"
		}
	}

	if c.Cache != nil {
		h.Cache = "up"
		if err := c.Cache.Ping(ctx); err != nil {
			h.Cache = "down"
		}
	}

	if !ok {
		h.Status = "unavailable"
	} else if h.Cache == "down" {
		h.Status = "degraded"
	}
	return h, ok
}

// ========================================
// CLEANUP
// ========================================

// Cleanup releases resources on graceful shutdown
func (c *Container) Cleanup() {
	log.Info().Msg("🧹 Cleaning up container resources...")

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close database pool")
		}
	}

	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			log.Warn().Err(err).Msg("⚠️  Failed to close Redis")
		} else {
			log.Info().Msg("✅ Redis connections closed")
		}
	}

	log.Info().Msg("✅ Container cleanup completed")
}
