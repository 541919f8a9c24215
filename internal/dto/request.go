package dto

import "time"

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateListingRequest struct {
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description"`
	ListingType       string   `json:"listing_type" validate:"required"`
	PricePerNight     float64  `json:"price_per_night" validate:"required,gt=0"`
	LocationAddress   string   `json:"location_address" validate:"required"`
	AllowableGuests   int      `json:"allowable_guests" validate:"required,gte=1"`
	NumberOfBedrooms  int      `json:"number_of_bedrooms" validate:"gte=0,lte=100"`
	NumberOfBathrooms int      `json:"number_of_bathrooms" validate:"gte=0,lte=100"`
	Amenities         []string `json:"amenities"`
	AvailableFrom     time.Time `json:"available_from"`
}

type CreateBookingRequest struct {
	NumberOfGuests int       `json:"number_of_guests" validate:"required,gte=1"`
	CheckInDate    time.Time `json:"check_in_date" validate:"required"`
	CheckOutDate   time.Time `json:"check_out_date" validate:"required,gtfield=CheckInDate"`
	Confirm        bool      `json:"confirm"`
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment"`
}
