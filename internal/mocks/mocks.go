package mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/nutricheck/backend/internal/models"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/types"
)

// MockFoodService is a mock implementation of the pantry service
type MockFoodService struct {
	mock.Mock
}

func (m *MockFoodService) AddFood(ctx context.Context, owner *types.TokenClaims, req *types.AddFoodRequest) (*models.FoodItem, error) {
	args := m.Called(ctx, owner, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FoodItem), args.Error(1)
}

func (m *MockFoodService) ListFood(ctx context.Context, userID uuid.UUID, opts service.ListFoodOptions) ([]*models.FoodItem, error) {
	args := m.Called(ctx, userID, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FoodItem), args.Error(1)
}

func (m *MockFoodService) DeleteFood(ctx context.Context, userID, itemID uuid.UUID) error {
	args := m.Called(ctx, userID, itemID)
	return args.Error(0)
}

func (m *MockFoodService) ImageUploadURL(ctx context.Context, userID uuid.UUID, req *types.ImageUploadRequest) (*types.ImageUploadResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ImageUploadResponse), args.Error(1)
}

// MockImageStorage is a mock implementation of the S3 presigner
type MockImageStorage struct {
	mock.Mock
}

func (m *MockImageStorage) PresignPut(ctx context.Context, objectKey, contentType string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, contentType, expiration)
	return args.String(0), args.Error(1)
}

func (m *MockImageStorage) PresignGet(ctx context.Context, objectKey string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, objectKey, expiration)
	return args.String(0), args.Error(1)
}
