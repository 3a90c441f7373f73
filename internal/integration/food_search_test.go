package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nutricheck/backend/internal/freshness"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/testhelpers"
	"github.com/nutricheck/backend/internal/types"
)

func TestPostgresFoodSearch(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}
	db := testhelpers.SetupPostgres(t)
	ctx := context.Background()

	user, err := service.NewAuthService(db, "test-secret").Signup(ctx, "cook@example.com", "password123")
	require.NoError(t, err)
	owner := &types.TokenClaims{UserID: user.ID, Email: user.Email}

	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	food := service.NewFoodService(db, service.WithClock(func() time.Time { return today }))

	for _, name := range []string{"Basmati rice", "Whole milk", "Cheddar", "Oat milk"} {
		_, err := food.AddFood(ctx, owner, &types.AddFoodRequest{
			Name:      name,
			Expiry:    "2025-03-12",
			Quantity:  "1",
			Location:  "Fridge",
			Nutrients: map[string]interface{}{"kcal": 100},
		})
		require.NoError(t, err)
	}

	items, err := food.ListFood(ctx, owner.UserID, service.ListFoodOptions{Query: "milk"})
	require.NoError(t, err)
	require.Len(t, items, 4)

	top := []string{items[0].Name, items[1].Name}
	assert.ElementsMatch(t, []string{"Whole milk", "Oat milk"}, top)
	for _, it := range items {
		assert.Equal(t, freshness.Urgent, it.Status)
		assert.Equal(t, float64(100), it.Nutrients["kcal"])
	}
}
