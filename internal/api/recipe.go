package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/middleware"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/types"
)

type RecipeHandler struct {
	recipeService service.IRecipeService
	limiter       *middleware.RateLimiter
}

// NewRecipeHandler wires the generation endpoint; limiter may be nil.
func NewRecipeHandler(recipeService service.IRecipeService, limiter *middleware.RateLimiter) *RecipeHandler {
	return &RecipeHandler{recipeService: recipeService, limiter: limiter}
}

// RegisterRoutes expects r to be behind AuthMiddleware.
func (h *RecipeHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/generateRecipes", h.limiter.RateLimitMiddleware(), h.GenerateRecipes)
	r.GET("/generateRecipes/quota", h.Quota)
}

func (h *RecipeHandler) GenerateRecipes(c *gin.Context) {
	var req types.GenerateRecipesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.recipeService.Suggest(c.Request.Context(), req.Ingredients, req.Count)
	if err != nil {
		status, message := recipeError(err)
		if status == http.StatusInternalServerError {
			logger.Warn("recipe suggestion failed", zap.Error(err))
		}
		respondError(c, status, message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"recipes": result.Recipes,
		"skipped": len(result.Skipped),
	})
}

// recipeError maps a pipeline failure to its response.
func recipeError(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrNoIngredients):
		return http.StatusBadRequest, "No ingredients provided"
	case errors.Is(err, service.ErrGenerationFailed):
		return http.StatusInternalServerError, "AI recipe generation failed."
	case errors.Is(err, service.ErrFormattingFailed):
		return http.StatusInternalServerError, "Recipe formatting failed."
	case errors.Is(err, service.ErrNoRecipesProduced):
		return http.StatusInternalServerError, "No recipes generated. Try different ingredients."
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

// Quota reports how many generations the caller has left in the current window.
func (h *RecipeHandler) Quota(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	if h.limiter == nil {
		c.JSON(http.StatusOK, gin.H{"success": true, "limited": false})
		return
	}

	remaining, resetTime, err := h.limiter.GetRemainingRequests(c.Request.Context(), userID.String())
	if err != nil {
		logger.Warn("quota lookup failed", zap.Error(err))
		respondError(c, http.StatusServiceUnavailable, "Quota is temporarily unavailable")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"limited":   true,
		"limit":     h.limiter.Limit(),
		"remaining": remaining,
		"reset":     resetTime.Unix(),
	})
}
