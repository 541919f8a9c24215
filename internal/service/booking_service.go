package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"github.com/kasemsan/travelstay/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrListingNotFound   = errors.New("listing not found")
	ErrBookingNotFound   = errors.New("booking not found")
	ErrHostBooking       = errors.New("hosts cannot book their own listing")
	ErrCapacityExceeded  = errors.New("guest count exceeds the listing's capacity")
	ErrDateConflict      = errors.New("listing is already booked for the selected dates")
	ErrInvalidTransition = errors.New("booking status does not allow this transition")
)

// BookingConfirmedEvent is published when a booking reaches confirmed state.
type BookingConfirmedEvent struct {
	BookingID    uuid.UUID `json:"booking_id"`
	ListingTitle string    `json:"listing_title"`
	GuestID      uuid.UUID `json:"guest_id"`
	HostID       uuid.UUID `json:"host_id"`
	CheckInDate  time.Time `json:"check_in_date"`
	CheckOutDate time.Time `json:"check_out_date"`
	AmountDue    float64   `json:"amount_due"`
}

// EventPublisher is the messaging seam; nil disables publishing.
type EventPublisher interface {
	Publish(routingKey string, payload any) error
}

type CreateBookingInput struct {
	ListingID      uuid.UUID
	BookedBy       uuid.UUID
	NumberOfGuests int
	CheckInDate    time.Time
	CheckOutDate   time.Time
	Confirm        bool
}

type BookingService interface {
	CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error)
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	IsAvailable(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

type bookingService struct {
	bookingRepo repository.BookingRepository
	listingRepo repository.ListingRepository
	publisher   EventPublisher
}

func NewBookingService(bookingRepo repository.BookingRepository, listingRepo repository.ListingRepository, publisher EventPublisher) BookingService {
	return &bookingService{
		bookingRepo: bookingRepo,
		listingRepo: listingRepo,
		publisher:   publisher,
	}
}

// ValidateAndPrice runs the admission checks in a fixed order (host, then
// interval, capacity, conflict), short-circuiting at the first failure, and
// prices the stay. The order keeps error reporting deterministic when
// several conditions fail at once. Pure; the caller is responsible for
// fetching the confirmed intervals under a suitable lock.
func ValidateAndPrice(listing *models.Listing, in CreateBookingInput, confirmed []pricing.Interval) (float64, error) {
	if in.BookedBy == listing.HostID {
		return 0, ErrHostBooking
	}
	if pricing.Nights(in.CheckInDate, in.CheckOutDate) <= 0 {
		return 0, pricing.ErrInvalidInterval
	}
	if in.NumberOfGuests > listing.AllowableGuests {
		return 0, ErrCapacityExceeded
	}
	if pricing.ConflictsAny(in.CheckInDate, in.CheckOutDate, confirmed) {
		return 0, ErrDateConflict
	}
	return pricing.AmountDue(listing.PricePerNight, in.CheckInDate, in.CheckOutDate)
}

// CreateBooking runs the admission sequence inside one transaction so the
// availability read and the insert are atomic.
func (s *bookingService) CreateBooking(ctx context.Context, in CreateBookingInput) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Serializes concurrent admissions for the same listing.
		listing, err := s.listingRepo.FindByIDForUpdate(ctx, tx, in.ListingID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrListingNotFound
			}
			return err
		}

		intervals, err := s.bookingRepo.FindConfirmedIntervals(ctx, tx, in.ListingID)
		if err != nil {
			return err
		}

		amount, err := ValidateAndPrice(listing, in, intervals)
		if err != nil {
			return err
		}

		status := models.StatusPending
		if in.Confirm {
			status = models.StatusConfirmed
		}

		booking := &models.Booking{
			ListingID:      in.ListingID,
			BookedBy:       in.BookedBy,
			NumberOfGuests: in.NumberOfGuests,
			BookingStatus:  status,
			CheckInDate:    in.CheckInDate,
			CheckOutDate:   in.CheckOutDate,
			AmountDue:      amount,
		}
		if err := s.bookingRepo.Create(ctx, tx, booking); err != nil {
			// The storage exclusion constraint is the last line of
			// defense against a check-then-act race.
			if repository.IsExclusionViolation(err) {
				return ErrDateConflict
			}
			return err
		}
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	if result.BookingStatus == models.StatusConfirmed {
		s.publishConfirmed(ctx, result)
	}
	return result, nil
}

// ConfirmBooking moves a pending booking to confirmed, re-checking
// availability under the listing lock: pending bookings do not block other
// requests, so the interval may have been taken since creation.
func (s *bookingService) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}
		if booking.BookingStatus != models.StatusPending {
			return ErrInvalidTransition
		}

		if _, err := s.listingRepo.FindByIDForUpdate(ctx, tx, booking.ListingID); err != nil {
			return err
		}

		intervals, err := s.bookingRepo.FindConfirmedIntervals(ctx, tx, booking.ListingID)
		if err != nil {
			return err
		}
		if pricing.ConflictsAny(booking.CheckInDate, booking.CheckOutDate, intervals) {
			return ErrDateConflict
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, bookingID, models.StatusConfirmed); err != nil {
			if repository.IsExclusionViolation(err) {
				return ErrDateConflict
			}
			return err
		}

		booking.BookingStatus = models.StatusConfirmed
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publishConfirmed(ctx, result)
	return result, nil
}

func (s *bookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	var result *models.Booking

	err := s.bookingRepo.GetDB().WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		booking, err := s.bookingRepo.FindByID(ctx, bookingID)
		if err != nil {
			return ErrBookingNotFound
		}

		switch booking.BookingStatus {
		case models.StatusPending, models.StatusConfirmed:
			// cancellable
		case models.StatusCancelled:
			return ErrInvalidTransition
		default:
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, tx, bookingID, models.StatusCancelled); err != nil {
			return err
		}

		booking.BookingStatus = models.StatusCancelled
		result = booking
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *bookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	booking, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}
	return booking, nil
}

func (s *bookingService) ListBookings(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return s.bookingRepo.FindByListingID(ctx, listingID, status)
}

// IsAvailable is the advisory read-only check. The proposed interval must be
// at least one whole night; violations are a caller error.
func (s *bookingService) IsAvailable(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	if pricing.Nights(checkIn, checkOut) <= 0 {
		return false, pricing.ErrInvalidInterval
	}
	intervals, err := s.bookingRepo.FindConfirmedIntervals(ctx, s.bookingRepo.GetDB(), listingID)
	if err != nil {
		return false, err
	}
	return !pricing.ConflictsAny(checkIn, checkOut, intervals), nil
}

func (s *bookingService) publishConfirmed(ctx context.Context, booking *models.Booking) {
	if s.publisher == nil {
		return
	}
	event := BookingConfirmedEvent{
		BookingID:    booking.BookingID,
		GuestID:      booking.BookedBy,
		CheckInDate:  booking.CheckInDate,
		CheckOutDate: booking.CheckOutDate,
		AmountDue:    booking.AmountDue,
	}
	if listing, err := s.listingRepo.FindByID(ctx, booking.ListingID); err == nil {
		event.ListingTitle = listing.Title
		event.HostID = listing.HostID
	}
	if err := s.publisher.Publish("booking.confirmed", event); err != nil {
		log.Printf("[BookingService] publish booking.confirmed failed: %v", err)
	}
}
