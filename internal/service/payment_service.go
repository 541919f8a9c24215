package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrPaymentNotFound    = errors.New("payment not found")
	ErrNotBooker          = errors.New("only the booking's guest can pay for it")
	ErrBookingNotPayable  = errors.New("booking must be confirmed before payment")
	ErrPaymentNotPending  = errors.New("payment is not pending")
)

type PaymentService interface {
	CreatePayment(ctx context.Context, bookingID, payerID uuid.UUID) (*models.Payment, error)
	CompletePayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	FailPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error)
	GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error)
}

type paymentService struct {
	paymentRepo repository.PaymentRepository
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   EventPublisher
}

func NewPaymentService(paymentRepo repository.PaymentRepository, bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher EventPublisher) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

// CreatePayment opens a pending payment for a confirmed booking. The amount
// is taken from the booking's stored amount_due, never recomputed.
func (s *paymentService) CreatePayment(ctx context.Context, bookingID, payerID uuid.UUID) (*models.Payment, error) {
	booking, err := s.bookingRepo.FindByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	if booking.BookedBy != payerID {
		return nil, ErrNotBooker
	}
	if booking.BookingStatus != models.StatusConfirmed {
		return nil, ErrBookingNotPayable
	}

	listing, err := s.listingRepo.FindByID(ctx, booking.ListingID)
	if err != nil {
		return nil, err
	}

	payment := &models.Payment{
		BookingID: bookingID,
		PayerID:   payerID,
		PayeeID:   listing.HostID,
		Amount:    booking.AmountDue,
		Status:    models.PaymentPending,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *paymentService) CompletePayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	payment, err := s.transition(ctx, paymentID, models.PaymentCompleted)
	if err != nil {
		return nil, err
	}

	if s.publisher != nil {
		if err := s.publisher.Publish("payment.completed", payment); err != nil {
			log.Printf("[PaymentService] publish payment.completed failed: %v", err)
		}
	}
	return payment, nil
}

func (s *paymentService) FailPayment(ctx context.Context, paymentID uuid.UUID) (*models.Payment, error) {
	return s.transition(ctx, paymentID, models.PaymentFailed)
}

func (s *paymentService) transition(ctx context.Context, paymentID uuid.UUID, to models.PaymentStatus) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	if payment.Status != models.PaymentPending {
		return nil, ErrPaymentNotPending
	}

	if err := s.paymentRepo.UpdateStatus(ctx, paymentID, to); err != nil {
		return nil, err
	}
	payment.Status = to
	return payment, nil
}

func (s *paymentService) GetPayment(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	payment, err := s.paymentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return payment, nil
}
