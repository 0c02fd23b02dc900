package server

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"skincare-backend/internal/health"
	"skincare-backend/internal/plans"
	"skincare-backend/internal/plans/recommendations"
	"skincare-backend/internal/shared/config"
	"skincare-backend/internal/shared/metrics"
	"skincare-backend/internal/shared/server/middleware"
	"skincare-backend/internal/shared/storage/cache"
	"skincare-backend/internal/shared/storage/db"
	"skincare-backend/internal/shared/telemetry"
)

const (
	planBuildGroup     = "PLAN_BUILD"
	memoryCacheEntries = 10000
)

// NewRouter constructs the Gin engine with middleware and routes registered.
// The returned function releases database and cache connections.
func NewRouter(cfg config.Config) (*gin.Engine, func()) {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	// Client IP keys rate limiting, so forwarded headers are honored only
	// from configured proxies. An empty list means RemoteAddr alone.
	if err := r.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		telemetry.Warn("server.trusted_proxies_invalid", map[string]any{"error": err.Error()})
		_ = r.SetTrustedProxies(nil)
	}

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.Identity(),
	)

	// Dependencies
	ctx := context.Background()
	healthSvc := health.NewService(2 * time.Second)
	var closers []func() error

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			telemetry.Error("db.connect_failed", map[string]any{"error": err, "fallback": "memory"})
		} else if err := db.RunMigrations(ctx, dbConn); err != nil {
			telemetry.Error("db.migrate_failed", map[string]any{"error": err, "fallback": "memory"})
			_ = dbConn.Close()
		} else {
			sqlDB = dbConn
			closers = append(closers, sqlDB.Close)
			healthSvc.Register("database", func(ctx context.Context) error {
				return db.Ping(ctx, sqlDB, 0)
			})
		}
	}

	var planCache cache.Cache = cache.NewMemory(memoryCacheEntries, nil)
	redisEnabled := false
	if cfg.RedisURL != "" {
		redisCache, err := cache.NewRedis(ctx, cfg.RedisURL)
		if err != nil {
			telemetry.Error("cache.connect_failed", map[string]any{"error": err, "fallback": "memory"})
		} else {
			planCache = redisCache
			redisEnabled = true
			closers = append(closers, redisCache.Close)
			healthSvc.Register("cache", redisCache.Health)
		}
	}

	var planRepo plans.Repo
	if sqlDB != nil {
		planRepo = &plans.PGRepo{DB: sqlDB}
	} else {
		planRepo = plans.NewMemoryRepo()
	}

	var engineOpts []recommendations.Option
	if cfg.AllowEmptyConcerns {
		engineOpts = append(engineOpts, recommendations.WithEmptyConcernsAllowed())
	}
	if cfg.GuaranteeSPF {
		engineOpts = append(engineOpts, recommendations.WithSPFGuaranteed())
	}

	m := metrics.New()
	planSvc := &plans.Service{
		Engine:           recommendations.New(engineOpts...),
		Repo:             planRepo,
		Cache:            planCache,
		Metrics:          m,
		CacheTTL:         cfg.PlanCacheTTL,
		BatchConcurrency: cfg.BatchConcurrency,
	}
	planHandler := plans.NewHandler(planSvc)

	r.GET("/metrics", m.Handler())

	api := r.Group("/api/v1")
	api.Use(middleware.RateLimit(middleware.RateLimitConfig{
		GroupFor: func(c *gin.Context) string {
			if c.Request.Method == http.MethodPost {
				return planBuildGroup
			}
			return middleware.DefaultRateLimitGroup
		},
		Rules: map[string]middleware.RateLimitRule{
			planBuildGroup: {Rate: cfg.RateLimitRPS, Burst: cfg.RateLimitBurst},
		},
	}))
	healthSvc.RegisterRoutes(api)
	planHandler.RegisterRoutes(api)

	telemetry.Info("server.configured", map[string]any{
		"env":                  cfg.Env,
		"database":             sqlDB != nil,
		"redis":                redisEnabled,
		"guarantee_spf":        cfg.GuaranteeSPF,
		"allow_empty_concerns": cfg.AllowEmptyConcerns,
	})

	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				telemetry.Warn("server.close_failed", map[string]any{"error": err})
			}
		}
	}
	return r, cleanup
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
