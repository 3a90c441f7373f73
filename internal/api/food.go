package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/nutricheck/backend/internal/freshness"
	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/middleware"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/types"
)

type FoodHandler struct {
	foodService service.IFoodService
}

func NewFoodHandler(foodService service.IFoodService) *FoodHandler {
	return &FoodHandler{foodService: foodService}
}

// RegisterRoutes expects r to be behind AuthMiddleware.
func (h *FoodHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/addfood", h.AddFood)
	r.GET("/getFoodItems", h.GetFoodItems)
	r.DELETE("/food/:id", h.DeleteFood)
	r.POST("/food/image-upload-url", h.ImageUploadURL)
}

func (h *FoodHandler) AddFood(c *gin.Context) {
	claims, ok := middleware.ClaimsFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req types.AddFoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	item, err := h.foodService.AddFood(c.Request.Context(), claims, &req)
	if errors.Is(err, service.ErrMissingFoodFields) {
		respondError(c, http.StatusBadRequest, "All fields (except image) are required")
		return
	}
	if errors.Is(err, service.ErrFoodFieldTooLong) {
		respondError(c, http.StatusBadRequest, "One or more fields are too long")
		return
	}
	if errors.Is(err, service.ErrForeignImageKey) {
		respondError(c, http.StatusBadRequest, "Invalid image reference")
		return
	}
	if err != nil {
		logger.Error("add food failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to add food item")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":  true,
		"message":  "Food item added successfully!",
		"foodItem": item,
	})
}

// GetFoodItems lists the caller's items. Query parameters: q (name search),
// status (exact label) and sort=urgency.
func (h *FoodHandler) GetFoodItems(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	opts := service.ListFoodOptions{
		Query:         c.Query("q"),
		SortByUrgency: strings.EqualFold(c.Query("sort"), "urgency"),
	}
	if status := c.Query("status"); status != "" {
		label := freshness.Label(status)
		if !label.Valid() {
			respondError(c, http.StatusBadRequest, "Unknown status filter")
			return
		}
		opts.Status = label
	}

	items, err := h.foodService.ListFood(c.Request.Context(), userID, opts)
	if err != nil {
		logger.Error("list food failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to fetch food items")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "foodItems": items})
}

func (h *FoodHandler) DeleteFood(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	itemID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid food item ID")
		return
	}

	err = h.foodService.DeleteFood(c.Request.Context(), userID, itemID)
	if errors.Is(err, service.ErrFoodItemNotFound) {
		respondError(c, http.StatusNotFound, "Food item not found")
		return
	}
	if err != nil {
		logger.Error("delete food failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to delete food item")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Food item deleted"})
}

func (h *FoodHandler) ImageUploadURL(c *gin.Context) {
	userID, ok := middleware.UserIDFrom(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "User not authenticated")
		return
	}

	var req types.ImageUploadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "file_name and content_type are required")
		return
	}
	if !strings.HasPrefix(req.ContentType, "image/") {
		respondError(c, http.StatusBadRequest, "content_type must be an image type")
		return
	}

	resp, err := h.foodService.ImageUploadURL(c.Request.Context(), userID, &req)
	if errors.Is(err, service.ErrStorageUnavailable) {
		respondError(c, http.StatusServiceUnavailable, "Image uploads are not available")
		return
	}
	if err != nil {
		logger.Error("presign upload failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create upload URL")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "upload": resp})
}
