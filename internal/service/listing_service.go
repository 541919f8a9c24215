package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"github.com/kasemsan/travelstay/internal/rating"
	"github.com/kasemsan/travelstay/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrNotListingHost = errors.New("only the host can modify this listing")
	ErrInvalidType    = errors.New("unknown listing type")
)

// ListingDetail carries a listing together with its read-time aggregates.
type ListingDetail struct {
	Listing       *models.Listing
	AverageRating float64
	ReviewCount   int
}

type ListingService interface {
	CreateListing(ctx context.Context, listing *models.Listing) error
	GetListing(ctx context.Context, id uuid.UUID) (*ListingDetail, error)
	ListListings(ctx context.Context) ([]ListingDetail, error)
	UpdateListing(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error
	DeleteListing(ctx context.Context, hostID, listingID uuid.UUID) error
}

type listingService struct {
	listingRepo repository.ListingRepository
	reviewRepo  repository.ReviewRepository
}

func NewListingService(listingRepo repository.ListingRepository, reviewRepo repository.ReviewRepository) ListingService {
	return &listingService{listingRepo: listingRepo, reviewRepo: reviewRepo}
}

func (s *listingService) CreateListing(ctx context.Context, listing *models.Listing) error {
	if listing.PricePerNight <= 0 {
		return pricing.ErrInvalidListingState
	}
	if !listing.ListingType.Valid() {
		return ErrInvalidType
	}
	return s.listingRepo.Create(ctx, listing)
}

func (s *listingService) GetListing(ctx context.Context, id uuid.UUID) (*ListingDetail, error) {
	listing, err := s.listingRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}

	ratings, err := s.reviewRepo.FindRatings(ctx, id)
	if err != nil {
		return nil, err
	}

	return &ListingDetail{
		Listing:       listing,
		AverageRating: rating.Average(ratings),
		ReviewCount:   len(ratings),
	}, nil
}

func (s *listingService) ListListings(ctx context.Context) ([]ListingDetail, error) {
	listings, err := s.listingRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	details := make([]ListingDetail, len(listings))
	for i := range listings {
		ratings, err := s.reviewRepo.FindRatings(ctx, listings[i].ListingID)
		if err != nil {
			return nil, err
		}
		details[i] = ListingDetail{
			Listing:       &listings[i],
			AverageRating: rating.Average(ratings),
			ReviewCount:   len(ratings),
		}
	}
	return details, nil
}

func (s *listingService) UpdateListing(ctx context.Context, hostID uuid.UUID, listing *models.Listing) error {
	existing, err := s.listingRepo.FindByID(ctx, listing.ListingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	if existing.HostID != hostID {
		return ErrNotListingHost
	}
	if listing.PricePerNight <= 0 {
		return pricing.ErrInvalidListingState
	}
	if !listing.ListingType.Valid() {
		return ErrInvalidType
	}

	// Identity and ownership are immutable.
	listing.HostID = existing.HostID
	listing.CreatedAt = existing.CreatedAt
	return s.listingRepo.Update(ctx, listing)
}

func (s *listingService) DeleteListing(ctx context.Context, hostID, listingID uuid.UUID) error {
	existing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrListingNotFound
		}
		return err
	}
	if existing.HostID != hostID {
		return ErrNotListingHost
	}
	return s.listingRepo.Delete(ctx, listingID)
}
