package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/rating"
	"github.com/kasemsan/travelstay/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrOwnListingReview = errors.New("hosts cannot review their own listing")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
)

type ReviewService interface {
	CreateReview(ctx context.Context, listingID, reviewedBy uuid.UUID, ratingValue int, comment string) (*models.Review, error)
	ListReviews(ctx context.Context, listingID uuid.UUID) ([]models.Review, error)
	AverageRating(ctx context.Context, listingID uuid.UUID) (float64, error)
}

type reviewService struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
}

func NewReviewService(reviewRepo repository.ReviewRepository, listingRepo repository.ListingRepository) ReviewService {
	return &reviewService{reviewRepo: reviewRepo, listingRepo: listingRepo}
}

func (s *reviewService) CreateReview(ctx context.Context, listingID, reviewedBy uuid.UUID, ratingValue int, comment string) (*models.Review, error) {
	if ratingValue < 1 || ratingValue > 5 {
		return nil, ErrInvalidRating
	}

	listing, err := s.listingRepo.FindByID(ctx, listingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, err
	}
	if listing.HostID == reviewedBy {
		return nil, ErrOwnListingReview
	}

	review := &models.Review{
		ListingID:  listingID,
		ReviewedBy: reviewedBy,
		Rating:     ratingValue,
		Comment:    comment,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListReviews(ctx context.Context, listingID uuid.UUID) ([]models.Review, error) {
	return s.reviewRepo.FindByListingID(ctx, listingID)
}

func (s *reviewService) AverageRating(ctx context.Context, listingID uuid.UUID) (float64, error) {
	ratings, err := s.reviewRepo.FindRatings(ctx, listingID)
	if err != nil {
		return 0, err
	}
	return rating.Average(ratings), nil
}
