package handler

import (
	"errors"
	"net/http"

	"github.com/kasemsan/travelstay/internal/dto"
	"github.com/kasemsan/travelstay/internal/middleware"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/labstack/echo/v4"
)

type ReviewHandler struct {
	svc service.ReviewService
}

func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

func (h *ReviewHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	listings := e.Group("/api/v1/listings")
	listings.POST("/:id/reviews", h.CreateReview, requireAuth)
	listings.GET("/:id/reviews", h.ListReviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	reviewerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	review, err := h.svc.CreateReview(c.Request().Context(), listingID, reviewerID, req.Rating, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrOwnListingReview):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidRating):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToReviewResponse(review))
}

func (h *ReviewHandler) ListReviews(c echo.Context) error {
	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	reviews, err := h.svc.ListReviews(c.Request().Context(), listingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ReviewResponse, len(reviews))
	for i, r := range reviews {
		resp[i] = dto.ToReviewResponse(&r)
	}
	return c.JSON(http.StatusOK, resp)
}
