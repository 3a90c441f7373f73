package models

import (
	"time"

	"github.com/google/uuid"
	pgvector "github.com/pgvector/pgvector-go"
	"gorm.io/gorm"

	"github.com/nutricheck/backend/internal/freshness"
)

// EmbeddingDimensions is the width of FoodItem.NameEmbedding.
const EmbeddingDimensions = 32

// FoodItem is one pantry entry. Expiry is stored exactly as the user entered it;
// Status is not persisted and is filled from Expiry each time the item is read.
type FoodItem struct {
	ID            uuid.UUID       `gorm:"type:varchar(36);primarykey" json:"id"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	DeletedAt     gorm.DeletedAt  `gorm:"index" json:"-"`
	UserID        uuid.UUID       `gorm:"type:varchar(36);not null;index" json:"-"`
	Email         string          `gorm:"size:255;not null" json:"email"`
	Name          string          `gorm:"size:255;not null" json:"name"`
	Expiry        string          `gorm:"size:32;not null" json:"expiry"`
	Quantity      string          `gorm:"size:64;not null" json:"quantity"`
	Location      string          `gorm:"size:100;not null" json:"location"`
	Nutrients     JSONMap         `gorm:"type:jsonb;not null;default:'{}'" json:"nutrients"`
	ImageURL      *string         `gorm:"size:1024" json:"image_url"`
	NameEmbedding pgvector.Vector `gorm:"type:vector(32)" json:"-"`

	Status freshness.Label `gorm:"-" json:"status"`
}

// BeforeCreate assigns an ID when the caller did not.
func (f *FoodItem) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}

// Refresh recomputes Status for the given day.
func (f *FoodItem) Refresh(today time.Time) freshness.Label {
	f.Status = freshness.Classify(f.Expiry, today)
	return f.Status
}
