package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/service"
)

type UserResponse struct {
	UserID    uuid.UUID `json:"user_id"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
}

type TokenResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type ListingResponse struct {
	ListingID         uuid.UUID          `json:"listing_id"`
	Title             string             `json:"title"`
	Description       string             `json:"description"`
	HostID            uuid.UUID          `json:"host_id"`
	ListingType       models.ListingType `json:"listing_type"`
	PricePerNight     float64            `json:"price_per_night"`
	LocationAddress   string             `json:"location_address"`
	AllowableGuests   int                `json:"allowable_guests"`
	NumberOfBedrooms  int                `json:"number_of_bedrooms"`
	NumberOfBathrooms int                `json:"number_of_bathrooms"`
	Amenities         []string           `json:"amenities"`
	AvailableFrom     time.Time          `json:"available_from"`
	AverageRating     float64            `json:"average_rating"`
	ReviewCount       int                `json:"review_count"`
	CreatedAt         time.Time          `json:"created_at"`
}

type BookingResponse struct {
	BookingID      uuid.UUID            `json:"booking_id"`
	ListingID      uuid.UUID            `json:"listing_id"`
	BookedBy       uuid.UUID            `json:"booked_by"`
	NumberOfGuests int                  `json:"number_of_guests"`
	BookingStatus  models.BookingStatus `json:"booking_status"`
	CheckInDate    time.Time            `json:"check_in_date"`
	CheckOutDate   time.Time            `json:"check_out_date"`
	AmountDue      float64              `json:"amount_due"`
	CreatedAt      time.Time            `json:"created_at"`
}

type ReviewResponse struct {
	ReviewID   uuid.UUID `json:"review_id"`
	ListingID  uuid.UUID `json:"listing_id"`
	ReviewedBy uuid.UUID `json:"reviewed_by"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"created_at"`
}

type PaymentResponse struct {
	TransactionID   uuid.UUID            `json:"transaction_id"`
	BookingID       uuid.UUID            `json:"booking_id"`
	PayerID         uuid.UUID            `json:"payer_id"`
	PayeeID         uuid.UUID            `json:"payee_id"`
	Amount          float64              `json:"amount"`
	Status          models.PaymentStatus `json:"status"`
	TransactionDate time.Time            `json:"transaction_date"`
}

type AvailabilityResponse struct {
	ListingID uuid.UUID `json:"listing_id"`
	CheckIn   time.Time `json:"check_in"`
	CheckOut  time.Time `json:"check_out"`
	Available bool      `json:"available"`
}

type ErrorResponse struct {
	Message string `json:"message"`
}

func ToUserResponse(u *models.User) UserResponse {
	return UserResponse{
		UserID:    u.UserID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		CreatedAt: u.CreatedAt,
	}
}

func ToListingResponse(d *service.ListingDetail) ListingResponse {
	l := d.Listing
	return ListingResponse{
		ListingID:         l.ListingID,
		Title:             l.Title,
		Description:       l.Description,
		HostID:            l.HostID,
		ListingType:       l.ListingType,
		PricePerNight:     l.PricePerNight,
		LocationAddress:   l.LocationAddress,
		AllowableGuests:   l.AllowableGuests,
		NumberOfBedrooms:  l.NumberOfBedrooms,
		NumberOfBathrooms: l.NumberOfBathrooms,
		Amenities:         l.Amenities,
		AvailableFrom:     l.AvailableFrom,
		AverageRating:     d.AverageRating,
		ReviewCount:       d.ReviewCount,
		CreatedAt:         l.CreatedAt,
	}
}

func ToBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		BookingID:      b.BookingID,
		ListingID:      b.ListingID,
		BookedBy:       b.BookedBy,
		NumberOfGuests: b.NumberOfGuests,
		BookingStatus:  b.BookingStatus,
		CheckInDate:    b.CheckInDate,
		CheckOutDate:   b.CheckOutDate,
		AmountDue:      b.AmountDue,
		CreatedAt:      b.CreatedAt,
	}
}

func ToReviewResponse(r *models.Review) ReviewResponse {
	return ReviewResponse{
		ReviewID:   r.ReviewID,
		ListingID:  r.ListingID,
		ReviewedBy: r.ReviewedBy,
		Rating:     r.Rating,
		Comment:    r.Comment,
		CreatedAt:  r.CreatedAt,
	}
}

func ToPaymentResponse(p *models.Payment) PaymentResponse {
	return PaymentResponse{
		TransactionID:   p.TransactionID,
		BookingID:       p.BookingID,
		PayerID:         p.PayerID,
		PayeeID:         p.PayeeID,
		Amount:          p.Amount,
		Status:          p.Status,
		TransactionDate: p.TransactionDate,
	}
}
