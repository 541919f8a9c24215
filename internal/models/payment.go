package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentCancelled PaymentStatus = "cancelled"
)

type Payment struct {
	TransactionID   uuid.UUID     `gorm:"type:uuid;primaryKey;column:transaction_id" json:"transaction_id"`
	BookingID       uuid.UUID     `gorm:"type:uuid;not null;index" json:"booking_id"`
	PayerID         uuid.UUID     `gorm:"type:uuid;not null" json:"payer_id"`
	PayeeID         uuid.UUID     `gorm:"type:uuid;not null" json:"payee_id"`
	Amount          float64       `gorm:"not null" json:"amount"`
	Status          PaymentStatus `gorm:"type:varchar(20);not null;default:'pending'" json:"status"`
	TransactionDate time.Time     `gorm:"autoCreateTime" json:"transaction_date"`
	UpdatedAt       time.Time     `json:"updated_at"`

	Booking *Booking `gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE" json:"booking,omitempty"`
}

func (Payment) TableName() string { return "travel_payments" }

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.TransactionID == uuid.Nil {
		p.TransactionID = uuid.New()
	}
	return nil
}
