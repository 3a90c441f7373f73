package service

import "errors"

// Recipe pipeline failures. Each maps to a distinct response at the HTTP layer.
var (
	ErrNoIngredients     = errors.New("no ingredients provided")
	ErrGenerationFailed  = errors.New("recipe generation failed")
	ErrFormattingFailed  = errors.New("recipe formatting failed")
	ErrNoRecipesProduced = errors.New("no recipes produced")
)

// Account and inventory failures.
var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidPassword    = errors.New("invalid password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrMissingFoodFields  = errors.New("all fields (except image) are required")
	ErrFoodFieldTooLong   = errors.New("food item field is too long")
	ErrForeignImageKey    = errors.New("image key belongs to another user")
	ErrFoodItemNotFound   = errors.New("food item not found")
	ErrStorageUnavailable = errors.New("image storage is not configured")
)
