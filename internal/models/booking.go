package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	BookingID      uuid.UUID     `gorm:"type:uuid;primaryKey;column:booking_id" json:"booking_id"`
	ListingID      uuid.UUID     `gorm:"type:uuid;not null;index" json:"listing_id"`
	BookedBy       uuid.UUID     `gorm:"type:uuid;not null" json:"booked_by"`
	NumberOfGuests int           `gorm:"not null" json:"number_of_guests"`
	BookingStatus  BookingStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"booking_status"`
	CheckInDate    time.Time     `gorm:"not null" json:"check_in_date"`
	CheckOutDate   time.Time     `gorm:"not null" json:"check_out_date"`
	AmountDue      float64       `gorm:"not null" json:"amount_due"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`

	Listing *Listing `gorm:"foreignKey:ListingID;constraint:OnDelete:CASCADE" json:"listing,omitempty"`
}

func (Booking) TableName() string { return "travel_bookings" }

func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.BookingID == uuid.Nil {
		b.BookingID = uuid.New()
	}
	return nil
}
