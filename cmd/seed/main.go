package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/nutricheck/backend/config"
	"github.com/nutricheck/backend/internal/database"
	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/models"
	"github.com/nutricheck/backend/internal/service"
	"github.com/nutricheck/backend/internal/types"
)

const seedPassword = "testpassword123"

type seedItem struct {
	name     string
	daysLeft int
	quantity string
	location string
}

var pantry = []seedItem{
	{"Milk", 1, "1 litre", "Fridge"},
	{"Spinach", 3, "200 g", "Fridge"},
	{"Eggs", 10, "12", "Fridge"},
	{"Rice", 200, "2 kg", "Pantry"},
	{"Yogurt", -2, "500 g", "Fridge"},
	{"Chicken breast", 0, "400 g", "Freezer"},
}

func main() {
	_ = godotenv.Load()
	if err := logger.Init(false); err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.L().Fatal("failed to load configuration", zap.Error(err))
	}
	db, err := database.New(cfg)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	if err := database.RunMigrations(db, cfg.MigrationsDir); err != nil {
		logger.L().Fatal("failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	auth := service.NewAuthService(db, cfg.JWTSecret)
	food := service.NewFoodService(db)

	for _, email := range []string{"john.doe@example.com", "jane.smith@example.com"} {
		user, err := auth.Signup(ctx, email, seedPassword)
		if errors.Is(err, service.ErrUserExists) {
			logger.Info("seed user already exists", zap.String("email", email))
			continue
		}
		if err != nil {
			logger.L().Fatal("failed to create seed user", zap.String("email", email), zap.Error(err))
		}
		if err := seedPantry(ctx, food, user); err != nil {
			logger.L().Fatal("failed to seed pantry", zap.String("email", email), zap.Error(err))
		}
		logger.Info("seeded user", zap.String("email", email), zap.Int("items", len(pantry)))
	}
}

func seedPantry(ctx context.Context, food *service.FoodService, user *models.User) error {
	owner := &types.TokenClaims{UserID: user.ID, Email: user.Email}
	today := time.Now()
	for _, it := range pantry {
		_, err := food.AddFood(ctx, owner, &types.AddFoodRequest{
			Name:     it.name,
			Expiry:   today.AddDate(0, 0, it.daysLeft).Format("02/01/2006"),
			Quantity: types.Quantity(it.quantity),
			Location: it.location,
		})
		if err != nil {
			return err
		}
	}
	return nil
}
