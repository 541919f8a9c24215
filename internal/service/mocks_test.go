package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"gorm.io/gorm"
)

// --- Mock ListingRepository ---

type mockListingRepo struct {
	createFn    func(ctx context.Context, listing *models.Listing) error
	findByIDFn  func(ctx context.Context, id uuid.UUID) (*models.Listing, error)
	findAllFn   func(ctx context.Context) ([]models.Listing, error)
	updateFn    func(ctx context.Context, listing *models.Listing) error
	deleteFn    func(ctx context.Context, id uuid.UUID) error
}

func (m *mockListingRepo) Create(ctx context.Context, listing *models.Listing) error {
	return m.createFn(ctx, listing)
}
func (m *mockListingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) FindByIDForUpdate(ctx context.Context, tx *gorm.DB, id uuid.UUID) (*models.Listing, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockListingRepo) FindAll(ctx context.Context) ([]models.Listing, error) {
	return m.findAllFn(ctx)
}
func (m *mockListingRepo) Update(ctx context.Context, listing *models.Listing) error {
	return m.updateFn(ctx, listing)
}
func (m *mockListingRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return m.deleteFn(ctx, id)
}

// --- Mock BookingRepository ---

type mockBookingRepo struct {
	createFn        func(ctx context.Context, tx *gorm.DB, booking *models.Booking) error
	findByIDFn      func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	findByListingFn func(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	intervalsFn     func(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]pricing.Interval, error)
	updateStatusFn  func(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error
}

func (m *mockBookingRepo) Create(ctx context.Context, tx *gorm.DB, booking *models.Booking) error {
	if m.createFn != nil {
		return m.createFn(ctx, tx, booking)
	}
	return nil
}
func (m *mockBookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockBookingRepo) FindByListingID(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.findByListingFn(ctx, listingID, status)
}
func (m *mockBookingRepo) FindConfirmedIntervals(ctx context.Context, tx *gorm.DB, listingID uuid.UUID) ([]pricing.Interval, error) {
	if m.intervalsFn != nil {
		return m.intervalsFn(ctx, tx, listingID)
	}
	return nil, nil
}
func (m *mockBookingRepo) UpdateStatus(ctx context.Context, tx *gorm.DB, bookingID uuid.UUID, status models.BookingStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, tx, bookingID, status)
	}
	return nil
}
func (m *mockBookingRepo) GetDB() *gorm.DB { return nil }

// --- Mock ReviewRepository ---

type mockReviewRepo struct {
	createFn      func(ctx context.Context, review *models.Review) error
	findByListing func(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	findRatingsFn func(ctx context.Context, listingID uuid.UUID) ([]int, error)
}

func (m *mockReviewRepo) Create(ctx context.Context, review *models.Review) error {
	return m.createFn(ctx, review)
}
func (m *mockReviewRepo) FindByListingID(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	return m.findByListing(ctx, listingID)
}
func (m *mockReviewRepo) FindRatings(ctx context.Context, listingID uuid.UUID) ([]int, error) {
	return m.findRatingsFn(ctx, listingID)
}

// --- Mock UserRepository ---

type mockUserRepo struct {
	createFn      func(ctx context.Context, user *models.User) error
	findByIDFn    func(ctx context.Context, id uuid.UUID) (*models.User, error)
	findByEmailFn func(ctx context.Context, email string) (*models.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, user *models.User) error {
	return m.createFn(ctx, user)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return m.findByEmailFn(ctx, email)
}

// --- Mock PaymentRepository ---

type mockPaymentRepo struct {
	createFn       func(ctx context.Context, payment *models.Payment) error
	findByIDFn     func(ctx context.Context, id uuid.UUID) (*models.Payment, error)
	findByBooking  func(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error)
	updateStatusFn func(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error
}

func (m *mockPaymentRepo) Create(ctx context.Context, payment *models.Payment) error {
	return m.createFn(ctx, payment)
}
func (m *mockPaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Payment, error) {
	return m.findByIDFn(ctx, id)
}
func (m *mockPaymentRepo) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]models.Payment, error) {
	return m.findByBooking(ctx, bookingID)
}
func (m *mockPaymentRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status models.PaymentStatus) error {
	if m.updateStatusFn != nil {
		return m.updateStatusFn(ctx, id, status)
	}
	return nil
}
