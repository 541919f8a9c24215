package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/kasemsan/travelstay/internal/dto"
	"github.com/kasemsan/travelstay/internal/middleware"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/pricing"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	listings := e.Group("/api/v1/listings")
	listings.GET("/:id/availability", h.CheckAvailability)
	listings.POST("/:id/bookings", h.CreateBooking, requireAuth)
	listings.GET("/:id/bookings", h.ListBookings)

	bookings := e.Group("/api/v1/bookings", requireAuth)
	bookings.GET("/:id", h.GetBooking)
	bookings.POST("/:id/confirm", h.ConfirmBooking)
	bookings.DELETE("/:id", h.CancelBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	bookerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req dto.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), service.CreateBookingInput{
		ListingID:      listingID,
		BookedBy:       bookerID,
		NumberOfGuests: req.NumberOfGuests,
		CheckInDate:    req.CheckInDate,
		CheckOutDate:   req.CheckOutDate,
		Confirm:        req.Confirm,
	})
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ConfirmBooking(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.ConfirmBooking(c.Request().Context(), bookingID)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) CancelBooking(c echo.Context) error {
	bookingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.CancelBooking(c.Request().Context(), bookingID)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookings(c echo.Context) error {
	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var status *models.BookingStatus
	if s := c.QueryParam("status"); s != "" {
		bs := models.BookingStatus(s)
		if !bs.Valid() {
			return echo.NewHTTPError(http.StatusBadRequest, "unknown booking status")
		}
		status = &bs
	}

	bookings, err := h.svc.ListBookings(c.Request().Context(), listingID, status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.BookingResponse, len(bookings))
	for i, b := range bookings {
		resp[i] = dto.ToBookingResponse(&b)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) CheckAvailability(c echo.Context) error {
	listingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	checkIn, err := parseTimestamp(c.QueryParam("check_in"))
	if err != nil {
		return err
	}
	checkOut, err := parseTimestamp(c.QueryParam("check_out"))
	if err != nil {
		return err
	}

	available, err := h.svc.IsAvailable(c.Request().Context(), listingID, checkIn, checkOut)
	if err != nil {
		return mapBookingError(err)
	}

	return c.JSON(http.StatusOK, dto.AvailabilityResponse{
		ListingID: listingID,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Available: available,
	})
}

// parseTimestamp accepts RFC 3339 timestamps or plain dates.
func parseTimestamp(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "check_in and check_out are required")
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, echo.NewHTTPError(http.StatusBadRequest, "timestamps must be RFC 3339 or YYYY-MM-DD")
}

func mapBookingError(err error) error {
	switch {
	case errors.Is(err, service.ErrListingNotFound), errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, pricing.ErrInvalidInterval):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrHostBooking):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrCapacityExceeded),
		errors.Is(err, service.ErrDateConflict),
		errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, pricing.ErrInvalidListingState):
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
