package main

import (
	"context"
	"flag"
	"log"

	"github.com/kasemsan/travelstay/config"
	"github.com/kasemsan/travelstay/internal/auth"
	"github.com/kasemsan/travelstay/internal/repository"
	"github.com/kasemsan/travelstay/internal/seed"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/kasemsan/travelstay/pkg/database"
)

func main() {
	defaults := seed.DefaultParams()
	hosts := flag.Int("hosts", defaults.Hosts, "number of host accounts")
	guests := flag.Int("guests", defaults.Guests, "number of guest accounts")
	perHost := flag.Int("listings-per-host", defaults.ListingsPerHost, "listings created per host")
	bookings := flag.Int("bookings-per-listing", defaults.BookingsPerListing, "confirmed bookings created per listing")
	reviews := flag.Int("reviews-per-listing", defaults.ReviewsPerListing, "reviews created per listing")
	seedVal := flag.Int64("seed", defaults.Seed, "random seed; same seed produces the same data")
	flag.Parse()

	cfg := config.Load()
	db := database.NewPostgresDB(cfg.DSN())

	userRepo := repository.NewUserRepository(db)
	listingRepo := repository.NewListingRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	reviewRepo := repository.NewReviewRepository(db)

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	userSvc := service.NewUserService(userRepo, issuer)
	listingSvc := service.NewListingService(listingRepo, reviewRepo)
	bookingSvc := service.NewBookingService(bookingRepo, listingRepo, nil)
	reviewSvc := service.NewReviewService(reviewRepo, listingRepo)

	fx := seed.Build(seed.Params{
		Hosts:              *hosts,
		Guests:             *guests,
		ListingsPerHost:    *perHost,
		BookingsPerListing: *bookings,
		ReviewsPerListing:  *reviews,
		Seed:               *seedVal,
	})

	if err := seed.Apply(context.Background(), fx, userSvc, listingSvc, bookingSvc, reviewSvc); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	log.Println("seeding complete")
}
