package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/kasemsan/travelstay/internal/dto"
	"github.com/kasemsan/travelstay/internal/middleware"
	"github.com/kasemsan/travelstay/internal/receipt"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	payments service.PaymentService
	bookings service.BookingService
	listings service.ListingService
}

func NewPaymentHandler(payments service.PaymentService, bookings service.BookingService, listings service.ListingService) *PaymentHandler {
	return &PaymentHandler{payments: payments, bookings: bookings, listings: listings}
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, requireAuth echo.MiddlewareFunc) {
	e.POST("/api/v1/bookings/:id/payments", h.CreatePayment, requireAuth)

	payments := e.Group("/api/v1/payments", requireAuth)
	payments.GET("/:id", h.GetPayment)
	payments.POST("/:id/complete", h.CompletePayment)
	payments.POST("/:id/fail", h.FailPayment)
	payments.GET("/:id/receipt", h.GetReceipt)
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	payerID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.CreatePayment(c.Request().Context(), bookingID, payerID)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) CompletePayment(c echo.Context) error {
	paymentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.CompletePayment(c.Request().Context(), paymentID)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) FailPayment(c echo.Context) error {
	paymentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.FailPayment(c.Request().Context(), paymentID)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

func (h *PaymentHandler) GetPayment(c echo.Context) error {
	paymentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	payment, err := h.payments.GetPayment(c.Request().Context(), paymentID)
	if err != nil {
		return mapPaymentError(err)
	}

	return c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// GetReceipt renders the payment receipt as a PDF download.
func (h *PaymentHandler) GetReceipt(c echo.Context) error {
	paymentID, err := parseID(c, "id")
	if err != nil {
		return err
	}

	ctx := c.Request().Context()
	payment, err := h.payments.GetPayment(ctx, paymentID)
	if err != nil {
		return mapPaymentError(err)
	}

	booking, err := h.bookings.GetBooking(ctx, payment.BookingID)
	if err != nil {
		return mapBookingError(err)
	}

	detail, err := h.listings.GetListing(ctx, booking.ListingID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	pdf, filename, err := receipt.Generate(payment, booking, detail.Listing)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func mapPaymentError(err error) error {
	switch {
	case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrNotBooker):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, service.ErrBookingNotPayable), errors.Is(err, service.ErrPaymentNotPending):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
