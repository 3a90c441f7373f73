package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/nutricheck/backend/config"
	"github.com/nutricheck/backend/internal/api"
	"github.com/nutricheck/backend/internal/database"
	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/middleware"
	"github.com/nutricheck/backend/internal/router"
	"github.com/nutricheck/backend/internal/service"
)

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	cfg    *config.Config
}

type options struct {
	redis     *redis.Client
	storage   service.ImageStorage
	generator service.RecipeGenerator
	clock     func() time.Time
}

// Option supplies an optional dependency to New.
type Option func(*options)

// WithRedis enables the recipe rate limit.
func WithRedis(client *redis.Client) Option {
	return func(o *options) { o.redis = client }
}

// WithImageStorage enables presigned image uploads.
func WithImageStorage(storage service.ImageStorage) Option {
	return func(o *options) { o.storage = storage }
}

// WithGenerator replaces the configured LLM client.
func WithGenerator(generator service.RecipeGenerator) Option {
	return func(o *options) { o.generator = generator }
}

// WithClock replaces time.Now for freshness computation.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.clock = now }
}

// New wires services, handlers and routes.
func New(cfg *config.Config, db *gorm.DB, opts ...Option) (*Server, error) {
	o := options{clock: time.Now}
	for _, opt := range opts {
		opt(&o)
	}

	if o.generator == nil {
		llm, err := service.NewLLMService(service.LLMConfig{
			Endpoint: cfg.LLMEndpoint,
			Model:    cfg.LLMModel,
			APIKey:   cfg.LLMAPIKey,
			Timeout:  cfg.LLMTimeout,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create llm client: %w", err)
		}
		o.generator = llm
	}

	authService := service.NewAuthService(db, cfg.JWTSecret)
	foodOpts := []service.FoodOption{service.WithClock(o.clock)}
	if o.storage != nil {
		foodOpts = append(foodOpts, service.WithImageStorage(o.storage))
	}
	foodService := service.NewFoodService(db, foodOpts...)
	recipeService := service.NewRecipeService(o.generator, service.RecipeOptions{
		DefaultCount:          cfg.RecipeCount,
		MultilineInstructions: cfg.LLMMultilineInstructions,
	})

	var limiter *middleware.RateLimiter
	checks := map[string]api.Pinger{
		"database": func(ctx context.Context) error { return database.HealthCheck(ctx, db) },
	}
	if o.redis != nil {
		limiter = middleware.NewRecipeRateLimiter(o.redis, cfg.RecipeRateLimit, cfg.RecipeRateWindow)
		checks["redis"] = func(ctx context.Context) error { return o.redis.Ping(ctx).Err() }
	} else {
		logger.Warn("redis not configured, recipe generation is not rate limited")
	}

	engine := router.SetupRouter(router.Handlers{
		Auth:      api.NewAuthHandler(authService),
		Food:      api.NewFoodHandler(foodService),
		Recipe:    api.NewRecipeHandler(recipeService, limiter),
		Health:    api.NewHealthHandler(checks),
		Validator: authService,
	}, cfg.AllowedOrigins)

	return &Server{
		router: engine,
		cfg:    cfg,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           engine,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the routes, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	logger.Info("starting server", zap.String("addr", s.http.Addr), zap.String("env", string(s.cfg.Env)))
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
