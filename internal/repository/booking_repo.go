package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"gorm.io/gorm"
)

type BookingRepository interface {
	Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	FindConfirmedIntervals(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]pricing.Interval, error)
	UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error
	GetDB() *gorm.DB
}

type bookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

func (r *bookingRepository) GetDB() *gorm.DB {
	return r.db
}

func (r *bookingRepository) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	return tx.WithContext(ctx).Create(booking).Error
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "booking_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *bookingRepository) FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	var bookings []models.Booking
	q := r.db.WithContext(ctx).Where("listing_id = ?", listingID)
	if status != nil {
		q = q.Where("booking_status = ?", *status)
	}
	if err := q.Order("check_in_date ASC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

// FindConfirmedIntervals returns the stay ranges of all confirmed bookings
// for the listing. Run inside the admission transaction the result is
// authoritative; outside it the check is advisory.
func (r *bookingRepository) FindConfirmedIntervals(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]pricing.Interval, error) {
	var rows []models.Booking
	err := tx.WithContext(ctx).
		Select("check_in_date", "check_out_date").
		Where("listing_id = ? AND booking_status = ?", listingID, models.StatusConfirmed).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	intervals := make([]pricing.Interval, len(rows))
	for i, b := range rows {
		intervals[i] = pricing.Interval{CheckIn: b.CheckInDate, CheckOut: b.CheckOutDate}
	}
	return intervals, nil
}

func (r *bookingRepository) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error {
	return tx.WithContext(ctx).
		Model(&models.Booking{}).
		Where("booking_id = ?", bookingID).
		Update("booking_status", status).Error
}

// IsExclusionViolation reports whether err is the storage-level overlap
// constraint firing (SQLSTATE 23P01). Callers map it to a date conflict.
func IsExclusionViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23P01"
}
