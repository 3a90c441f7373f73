package service

import (
	"context"
	"fmt"
	"path"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nutricheck/backend/internal/freshness"
	"github.com/nutricheck/backend/internal/logger"
	"github.com/nutricheck/backend/internal/models"
	"github.com/nutricheck/backend/internal/types"
)

const (
	imageKeyPrefix  = "food-images"
	imageURLExpiry  = 15 * time.Minute
	imageViewExpiry = time.Hour
	searchCandidate = 20
)

// Column widths of models.FoodItem.
const (
	maxNameLen     = 255
	maxExpiryLen   = 32
	maxQuantityLen = 64
	maxLocationLen = 100
	maxImageURLLen = 1024
)

// ListFoodOptions narrows and orders ListFood.
type ListFoodOptions struct {
	// Query ranks items by name similarity and keeps the closest matches.
	Query string
	// Status keeps only items whose recomputed label matches.
	Status freshness.Label
	// SortByUrgency orders Expired first and Fresh last; Unknown goes to the end.
	SortByUrgency bool
}

type FoodService struct {
	db      *gorm.DB
	storage ImageStorage
	now     func() time.Time
}

// FoodOption configures a FoodService.
type FoodOption func(*FoodService)

// WithClock replaces time.Now, used for status computation.
func WithClock(now func() time.Time) FoodOption {
	return func(s *FoodService) { s.now = now }
}

// WithImageStorage enables presigned image uploads.
func WithImageStorage(storage ImageStorage) FoodOption {
	return func(s *FoodService) { s.storage = storage }
}

func NewFoodService(db *gorm.DB, opts ...FoodOption) *FoodService {
	s := &FoodService{db: db, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddFood stores a pantry item for owner and returns it with its current status.
// An expiry in neither accepted layout is stored as given and reported as Unknown.
func (s *FoodService) AddFood(ctx context.Context, owner *types.TokenClaims, req *types.AddFoodRequest) (*models.FoodItem, error) {
	name := strings.TrimSpace(req.Name)
	expiry := strings.TrimSpace(req.Expiry)
	quantity := strings.TrimSpace(string(req.Quantity))
	location := strings.TrimSpace(req.Location)
	if name == "" || expiry == "" || quantity == "" || location == "" {
		return nil, ErrMissingFoodFields
	}
	if tooLong(name, maxNameLen) || tooLong(expiry, maxExpiryLen) ||
		tooLong(quantity, maxQuantityLen) || tooLong(location, maxLocationLen) {
		return nil, ErrFoodFieldTooLong
	}
	if req.ImageURL != nil {
		if tooLong(*req.ImageURL, maxImageURLLen) {
			return nil, ErrFoodFieldTooLong
		}
		if isImageKey(*req.ImageURL) && !ownsImageKey(owner.UserID, *req.ImageURL) {
			return nil, ErrForeignImageKey
		}
	}

	if _, err := freshness.ParseExpiry(expiry); err != nil {
		logger.Warn("storing food item with unparseable expiry",
			zap.String("user_id", owner.UserID.String()),
			zap.String("expiry", expiry),
			zap.Error(err),
		)
	}

	nutrients := models.JSONMap{}
	for k, v := range req.Nutrients {
		nutrients[k] = v
	}

	item := &models.FoodItem{
		UserID:        owner.UserID,
		Email:         owner.Email,
		Name:          name,
		Expiry:        expiry,
		Quantity:      quantity,
		Location:      location,
		Nutrients:     nutrients,
		ImageURL:      req.ImageURL,
		NameEmbedding: GenerateEmbedding(name),
	}
	if err := s.db.WithContext(ctx).Create(item).Error; err != nil {
		return nil, fmt.Errorf("failed to create food item: %w", err)
	}

	item.Refresh(s.now())
	s.signImage(ctx, item)
	logger.Info("food item added",
		zap.String("user_id", owner.UserID.String()),
		zap.String("item_id", item.ID.String()),
		zap.String("status", string(item.Status)),
	)
	return item, nil
}

// ListFood returns userID's items with Status recomputed for today.
func (s *FoodService) ListFood(ctx context.Context, userID uuid.UUID, opts ListFoodOptions) ([]*models.FoodItem, error) {
	query := s.db.WithContext(ctx).Model(&models.FoodItem{}).Where("user_id = ?", userID)

	if q := strings.TrimSpace(opts.Query); q != "" {
		if s.db.Dialector.Name() == "postgres" {
			query = query.Clauses(clause.OrderBy{
				Expression: clause.Expr{SQL: "name_embedding <-> ?", Vars: []interface{}{GenerateEmbedding(q)}},
			}).Limit(searchCandidate)
		} else {
			query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(q)+"%")
		}
	} else {
		query = query.Order("created_at ASC")
	}

	var items []*models.FoodItem
	if err := query.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list food items: %w", err)
	}

	today := s.now()
	filtered := items[:0]
	for _, item := range items {
		item.Refresh(today)
		if opts.Status != "" && item.Status != opts.Status {
			continue
		}
		s.signImage(ctx, item)
		filtered = append(filtered, item)
	}

	if opts.SortByUrgency {
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Status.Rank() > filtered[j].Status.Rank()
		})
	}
	return filtered, nil
}

// DeleteFood removes an item owned by userID.
func (s *FoodService) DeleteFood(ctx context.Context, userID, itemID uuid.UUID) error {
	result := s.db.WithContext(ctx).Where("id = ? AND user_id = ?", itemID, userID).Delete(&models.FoodItem{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete food item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrFoodItemNotFound
	}
	return nil
}

// ImageUploadURL presigns a PUT for an item photo under the user's prefix.
func (s *FoodService) ImageUploadURL(ctx context.Context, userID uuid.UUID, req *types.ImageUploadRequest) (*types.ImageUploadResponse, error) {
	if s.storage == nil {
		return nil, ErrStorageUnavailable
	}

	key := fmt.Sprintf("%s/%s/%s%s", imageKeyPrefix, userID, uuid.New(), strings.ToLower(path.Ext(req.FileName)))
	url, err := s.storage.PresignPut(ctx, key, req.ContentType, imageURLExpiry)
	if err != nil {
		return nil, fmt.Errorf("failed to presign upload: %w", err)
	}

	return &types.ImageUploadResponse{
		UploadURL: url,
		ObjectKey: key,
		ExpiresIn: int(imageURLExpiry.Seconds()),
	}, nil
}

// signImage swaps the owner's uploaded object key for a short-lived GET URL.
// External URLs and keys under another user's prefix are left alone.
func (s *FoodService) signImage(ctx context.Context, item *models.FoodItem) {
	if s.storage == nil || item.ImageURL == nil || !ownsImageKey(item.UserID, *item.ImageURL) {
		return
	}
	url, err := s.storage.PresignGet(ctx, *item.ImageURL, imageViewExpiry)
	if err != nil {
		logger.Warn("failed to presign item image", zap.String("item_id", item.ID.String()), zap.Error(err))
		return
	}
	item.ImageURL = &url
}

func isImageKey(ref string) bool {
	return strings.HasPrefix(ref, imageKeyPrefix+"/")
}

func ownsImageKey(userID uuid.UUID, ref string) bool {
	return strings.HasPrefix(ref, imageKeyPrefix+"/"+userID.String()+"/")
}

func tooLong(s string, limit int) bool {
	return utf8.RuneCountInString(s) > limit
}
