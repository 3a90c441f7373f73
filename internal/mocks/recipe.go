package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nutricheck/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func (m *MockRecipeService) Suggest(ctx context.Context, ingredients []string, count int) (*service.SuggestionResult, error) {
	args := m.Called(ctx, ingredients, count)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SuggestionResult), args.Error(1)
}

// MockRecipeGenerator stands in for the LLM.
type MockRecipeGenerator struct {
	mock.Mock
}

func (m *MockRecipeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
