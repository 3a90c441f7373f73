package router

import (
	"github.com/gin-gonic/gin"

	"github.com/nutricheck/backend/internal/api"
	"github.com/nutricheck/backend/internal/middleware"
)

// Handlers groups what SetupRouter mounts.
type Handlers struct {
	Auth      *api.AuthHandler
	Food      *api.FoodHandler
	Recipe    *api.RecipeHandler
	Health    *api.HealthHandler
	Validator middleware.TokenValidator
}

// SetupRouter configures the application routes. Every route is served at the
// root and again under /api/v1.
func SetupRouter(h Handlers, allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), middleware.Recovery(), middleware.CORS(allowedOrigins))

	router.GET("/health", h.Health.Health)

	for _, group := range []*gin.RouterGroup{router.Group(""), router.Group("/api/v1")} {
		h.Auth.RegisterRoutes(group)

		protected := group.Group("")
		protected.Use(middleware.AuthMiddleware(h.Validator))
		h.Food.RegisterRoutes(protected)
		h.Recipe.RegisterRoutes(protected)
	}

	return router
}
