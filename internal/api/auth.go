package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/types"
)

type AuthHandler struct {
	authService service.IAuthService
}

func NewAuthHandler(authService service.IAuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r gin.IRoutes) {
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req types.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	user, err := h.authService.Signup(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		respondError(c, http.StatusBadRequest, "Email and Password are required")
		return
	case errors.Is(err, service.ErrUserExists):
		respondError(c, http.StatusBadRequest, "User already exists")
		return
	case err != nil:
		logger.Error("signup failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Failed to create user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User created successfully",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req types.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, service.ErrMissingCredentials):
		respondError(c, http.StatusBadRequest, "Email and Password are required")
		return
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, "User not found")
		return
	case errors.Is(err, service.ErrInvalidPassword):
		respondError(c, http.StatusUnauthorized, "Invalid password")
		return
	case err != nil:
		logger.Error("login failed", zap.Error(err))
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}
