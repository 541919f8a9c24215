package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ReviewID   uuid.UUID `gorm:"type:uuid;primaryKey;column:review_id" json:"review_id"`
	ListingID  uuid.UUID `gorm:"type:uuid;not null;index" json:"listing_id"`
	ReviewedBy uuid.UUID `gorm:"type:uuid;not null" json:"reviewed_by"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
}

func (Review) TableName() string { return "travel_reviews" }

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ReviewID == uuid.Nil {
		r.ReviewID = uuid.New()
	}
	return nil
}
