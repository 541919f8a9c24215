package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/service"
)

// Params controls how much sample data Build generates. The same Params and
// seed always produce the same fixtures.
type Params struct {
	Hosts              int
	Guests             int
	ListingsPerHost    int
	BookingsPerListing int
	ReviewsPerListing  int
	Seed               int64
}

func DefaultParams() Params {
	return Params{
		Hosts:              3,
		Guests:             5,
		ListingsPerHost:    2,
		BookingsPerListing: 2,
		ReviewsPerListing:  2,
		Seed:               42,
	}
}

type UserFixture struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
	Host      bool
}

type ListingFixture struct {
	HostIndex int // index into the host users
	Listing   models.Listing
}

// BookingFixture describes a stay relative to its listing. Intervals within
// one listing never overlap: Build lays them out on an advancing cursor.
type BookingFixture struct {
	ListingIndex int
	GuestIndex   int // index into the guest users
	CheckIn      time.Time
	CheckOut     time.Time
}

type ReviewFixture struct {
	ListingIndex int
	GuestIndex   int
	Rating       int
	Comment      string
}

type Fixtures struct {
	Users    []UserFixture
	Listings []ListingFixture
	Bookings []BookingFixture
	Reviews  []ReviewFixture
}

var (
	firstNames = []string{"Ava", "Liam", "Mia", "Noah", "Zoe", "Eli", "Ivy", "Max", "Ana", "Leo"}
	lastNames  = []string{"Reed", "Cole", "Hale", "Fox", "Lane", "Gray", "Wolfe", "Dean", "Pike", "Nash"}
	cities     = []string{"Lisbon", "Kyoto", "Oaxaca", "Tallinn", "Hoi An", "Cusco", "Bergen", "Valletta"}
	adjectives = []string{"Sunny", "Quiet", "Rustic", "Modern", "Cozy", "Breezy", "Hidden", "Grand"}
	amenities  = []string{"wifi", "kitchen", "parking", "pool", "washer", "air_conditioning", "workspace", "fireplace"}
	comments   = []string{
		"Great location and spotless.",
		"Exactly as described, would stay again.",
		"Host was responsive, check-in was easy.",
		"A bit noisy at night but otherwise lovely.",
		"Perfect for a short stay.",
	}
)

// Build generates deterministic sample data. It never touches storage; pass
// the result to Apply.
func Build(p Params) Fixtures {
	rng := rand.New(rand.NewSource(p.Seed))
	var fx Fixtures

	for i := 0; i < p.Hosts+p.Guests; i++ {
		first := firstNames[rng.Intn(len(firstNames))]
		last := lastNames[rng.Intn(len(lastNames))]
		fx.Users = append(fx.Users, UserFixture{
			Email:     fmt.Sprintf("%s.%s.%d@travelstay.test", first, last, i),
			Password:  fmt.Sprintf("seedpass-%d-%04d", p.Seed, rng.Intn(10000)),
			FirstName: first,
			LastName:  last,
			Host:      i < p.Hosts,
		})
	}

	for h := 0; h < p.Hosts; h++ {
		for j := 0; j < p.ListingsPerHost; j++ {
			kind := models.ListingTypes[rng.Intn(len(models.ListingTypes))]
			city := cities[rng.Intn(len(cities))]
			fx.Listings = append(fx.Listings, ListingFixture{
				HostIndex: h,
				Listing: models.Listing{
					Title:             fmt.Sprintf("%s %s in %s", adjectives[rng.Intn(len(adjectives))], kind, city),
					Description:       fmt.Sprintf("A %s stay near the center of %s.", kind, city),
					ListingType:       kind,
					PricePerNight:     float64(30+rng.Intn(270)) + 0.50*float64(rng.Intn(2)),
					LocationAddress:   fmt.Sprintf("%d Harbor Street, %s", 1+rng.Intn(200), city),
					AllowableGuests:   1 + rng.Intn(8),
					NumberOfBedrooms:  1 + rng.Intn(4),
					NumberOfBathrooms: 1 + rng.Intn(3),
					Amenities:         pickAmenities(rng),
					AvailableFrom:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(90)),
				},
			})
		}
	}

	if p.Guests > 0 {
		base := time.Date(2026, 7, 1, 0, 0, 0, 0, time.UTC)
		for li := range fx.Listings {
			cursor := rng.Intn(10)
			for b := 0; b < p.BookingsPerListing; b++ {
				nights := 2 + rng.Intn(4)
				checkIn := base.AddDate(0, 0, cursor)
				fx.Bookings = append(fx.Bookings, BookingFixture{
					ListingIndex: li,
					GuestIndex:   rng.Intn(p.Guests),
					CheckIn:      checkIn,
					CheckOut:     checkIn.AddDate(0, 0, nights),
				})
				cursor += nights + rng.Intn(3)
			}

			for r := 0; r < p.ReviewsPerListing; r++ {
				fx.Reviews = append(fx.Reviews, ReviewFixture{
					ListingIndex: li,
					GuestIndex:   rng.Intn(p.Guests),
					Rating:       1 + rng.Intn(5),
					Comment:      comments[rng.Intn(len(comments))],
				})
			}
		}
	}

	return fx
}

func pickAmenities(rng *rand.Rand) models.AmenityList {
	n := 2 + rng.Intn(4)
	perm := rng.Perm(len(amenities))
	out := make(models.AmenityList, 0, n)
	for _, idx := range perm[:n] {
		out = append(out, amenities[idx])
	}
	return out
}

// Apply inserts fixtures through the service layer so the usual admission
// rules run: bookings go through ValidateAndPrice and come out confirmed,
// reviews come from non-hosts. Existing accounts with the same email are
// skipped, which makes reseeding a no-op for users but may still add
// listings.
func Apply(
	ctx context.Context,
	fx Fixtures,
	users service.UserService,
	listings service.ListingService,
	bookings service.BookingService,
	reviews service.ReviewService,
) error {
	var hosts, guests []*models.User

	for _, uf := range fx.Users {
		user, err := users.Register(ctx, uf.Email, uf.Password, uf.FirstName, uf.LastName)
		if err != nil {
			if errors.Is(err, service.ErrEmailTaken) {
				log.Printf("[Seed] user %s already exists, skipping", uf.Email)
				if uf.Host {
					hosts = append(hosts, nil)
				} else {
					guests = append(guests, nil)
				}
				continue
			}
			return fmt.Errorf("seed user %s: %w", uf.Email, err)
		}
		if uf.Host {
			hosts = append(hosts, user)
		} else {
			guests = append(guests, user)
		}
	}

	created := make([]*models.Listing, len(fx.Listings))
	for i, lf := range fx.Listings {
		if lf.HostIndex >= len(hosts) || hosts[lf.HostIndex] == nil {
			continue
		}
		listing := lf.Listing
		listing.HostID = hosts[lf.HostIndex].UserID
		if err := listings.CreateListing(ctx, &listing); err != nil {
			return fmt.Errorf("seed listing %q: %w", listing.Title, err)
		}
		created[i] = &listing
	}

	for _, bf := range fx.Bookings {
		listing := created[bf.ListingIndex]
		if listing == nil || bf.GuestIndex >= len(guests) || guests[bf.GuestIndex] == nil {
			continue
		}
		_, err := bookings.CreateBooking(ctx, service.CreateBookingInput{
			ListingID:      listing.ListingID,
			BookedBy:       guests[bf.GuestIndex].UserID,
			NumberOfGuests: 1,
			CheckInDate:    bf.CheckIn,
			CheckOutDate:   bf.CheckOut,
			Confirm:        true,
		})
		if err != nil {
			return fmt.Errorf("seed booking for %q: %w", listing.Title, err)
		}
	}

	for _, rf := range fx.Reviews {
		listing := created[rf.ListingIndex]
		if listing == nil || rf.GuestIndex >= len(guests) || guests[rf.GuestIndex] == nil {
			continue
		}
		if _, err := reviews.CreateReview(ctx, listing.ListingID, guests[rf.GuestIndex].UserID, rf.Rating, rf.Comment); err != nil {
			return fmt.Errorf("seed review for %q: %w", listing.Title, err)
		}
	}

	log.Printf("[Seed] applied %d users, %d listings, %d bookings, %d reviews",
		len(fx.Users), len(fx.Listings), len(fx.Bookings), len(fx.Reviews))
	return nil
}
