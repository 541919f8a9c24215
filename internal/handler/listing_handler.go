package handler

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/dto"
	"github.com/kasemsan/travelstay/internal/middleware"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/labstack/echo/v4"
)

type ListingHandler struct {
	svc service.ListingService
}

func NewListingHandler(svc service.ListingService) *ListingHandler {
	return &ListingHandler{svc: svc}
}

func (h *ListingHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	listings := e.Group("/api/v1/listings")
	listings.GET("", h.ListListings)
	listings.GET("/:id", h.GetListing)
	listings.POST("", h.CreateListing, requireAuth)
	listings.PUT("/:id", h.UpdateListing, requireAuth)
	listings.DELETE("/:id", h.DeleteListing, requireAuth)
}

func (h *ListingHandler) CreateListing(c echo.Context) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing := &models.Listing{
		Title:             req.Title,
		Description:       req.Description,
		HostID:            hostID,
		ListingType:       models.ListingType(req.ListingType),
		PricePerNight:     req.PricePerNight,
		LocationAddress:   req.LocationAddress,
		AllowableGuests:   req.AllowableGuests,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		Amenities:         req.Amenities,
		AvailableFrom:     req.AvailableFrom,
	}

	if err := h.svc.CreateListing(c.Request().Context(), listing); err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidType), errors.Is(err, pricing.ErrInvalidListingState):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToListingResponse(&service.ListingDetail{Listing: listing}))
}

func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.svc.GetListing(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrListingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(detail))
}

func (h *ListingHandler) ListListings(c echo.Context) error {
	details, err := h.svc.ListListings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ListingResponse, len(details))
	for i := range details {
		resp[i] = dto.ToListingResponse(&details[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ListingHandler) UpdateListing(c echo.Context) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateListingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	listing := &models.Listing{
		ListingID:         id,
		Title:             req.Title,
		Description:       req.Description,
		ListingType:       models.ListingType(req.ListingType),
		PricePerNight:     req.PricePerNight,
		LocationAddress:   req.LocationAddress,
		AllowableGuests:   req.AllowableGuests,
		NumberOfBedrooms:  req.NumberOfBedrooms,
		NumberOfBathrooms: req.NumberOfBathrooms,
		Amenities:         req.Amenities,
		AvailableFrom:     req.AvailableFrom,
	}

	if err := h.svc.UpdateListing(c.Request().Context(), hostID, listing); err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotListingHost):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		case errors.Is(err, service.ErrInvalidType), errors.Is(err, pricing.ErrInvalidListingState):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusOK, dto.ToListingResponse(&service.ListingDetail{Listing: listing}))
}

func (h *ListingHandler) DeleteListing(c echo.Context) error {
	hostID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteListing(c.Request().Context(), hostID, id); err != nil {
		switch {
		case errors.Is(err, service.ErrListingNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrNotListingHost):
			return echo.NewHTTPError(http.StatusForbidden, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}
