package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nutricheck/backend/internal/models"
	"github.com/nutricheck/backend/internal/types"
)

// RecipeGenerator sends a prompt to a text model and returns its raw reply.
type RecipeGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImageStorage hands out upload URLs for item photos.
type ImageStorage interface {
	PresignPut(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error)
	PresignGet(ctx context.Context, objectKey string, expiration time.Duration) (string, error)
}

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Signup(ctx context.Context, email, password string) (*models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GenerateToken(user *models.User) (string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IFoodService defines the interface for pantry operations
type IFoodService interface {
	AddFood(ctx context.Context, owner *types.TokenClaims, req *types.AddFoodRequest) (*models.FoodItem, error)
	ListFood(ctx context.Context, userID uuid.UUID, opts ListFoodOptions) ([]*models.FoodItem, error)
	DeleteFood(ctx context.Context, userID, itemID uuid.UUID) error
	ImageUploadURL(ctx context.Context, userID uuid.UUID, req *types.ImageUploadRequest) (*types.ImageUploadResponse, error)
}

// IRecipeService defines the interface for recipe suggestions
type IRecipeService interface {
	Suggest(ctx context.Context, ingredients []string, count int) (*SuggestionResult, error)
}
