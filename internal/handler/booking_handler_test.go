package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/kasemsan/travelstay/internal/dto"
	"github.com/kasemsan/travelstay/internal/models"
	"github.com/kasemsan/travelstay/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Mock BookingService ---

type mockBookingService struct {
	createFn    func(ctx context.Context, in service.CreateBookingInput) (*models.Booking, error)
	confirmFn   func(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	cancelFn    func(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error)
	getFn       func(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	listFn      func(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error)
	availableFn func(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (bool, error)
}

func (m *mockBookingService) CreateBooking(ctx context.Context, in service.CreateBookingInput) (*models.Booking, error) {
	return m.createFn(ctx, in)
}
func (m *mockBookingService) ConfirmBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return m.confirmFn(ctx, bookingID)
}
func (m *mockBookingService) CancelBooking(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
	return m.cancelFn(ctx, bookingID)
}
func (m *mockBookingService) GetBooking(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	return m.getFn(ctx, id)
}
func (m *mockBookingService) ListBookings(ctx context.Context, listingID uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
	return m.listFn(ctx, listingID, status)
}
func (m *mockBookingService) IsAvailable(ctx context.Context, listingID uuid.UUID, checkIn, checkOut time.Time) (bool, error) {
	return m.availableFn(ctx, listingID, checkIn, checkOut)
}

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestCreateBooking_Handler_Success(t *testing.T) {
	listingID := uuid.New()
	bookerID := uuid.New()

	svc := &mockBookingService{
		createFn: func(ctx context.Context, in service.CreateBookingInput) (*models.Booking, error) {
			return &models.Booking{
				BookingID:      uuid.New(),
				ListingID:      in.ListingID,
				BookedBy:       in.BookedBy,
				NumberOfGuests: in.NumberOfGuests,
				BookingStatus:  models.StatusConfirmed,
				CheckInDate:    in.CheckInDate,
				CheckOutDate:   in.CheckOutDate,
				AmountDue:      300.00,
				CreatedAt:      time.Now(),
			}, nil
		},
	}

	body := `{"number_of_guests":2,"check_in_date":"2024-06-05T00:00:00Z","check_out_date":"2024-06-08T00:00:00Z","confirm":true}`
	c, rec := newTestContext(t, http.MethodPost, "/api/v1/listings/"+listingID.String()+"/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	c.Set("user_id", bookerID)

	h := NewBookingHandler(svc)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.BookingResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, listingID, resp.ListingID)
	assert.Equal(t, bookerID, resp.BookedBy)
	assert.Equal(t, models.StatusConfirmed, resp.BookingStatus)
	assert.Equal(t, 300.00, resp.AmountDue)
}

func TestCreateBooking_Handler_DateConflict(t *testing.T) {
	svc := &mockBookingService{
		createFn: func(ctx context.Context, in service.CreateBookingInput) (*models.Booking, error) {
			return nil, service.ErrDateConflict
		},
	}

	listingID := uuid.New()
	body := `{"number_of_guests":2,"check_in_date":"2024-06-03T00:00:00Z","check_out_date":"2024-06-06T00:00:00Z"}`
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/listings/"+listingID.String()+"/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	c.Set("user_id", uuid.New())

	h := NewBookingHandler(svc)
	err := h.CreateBooking(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestCreateBooking_Handler_InvalidBody(t *testing.T) {
	// check_out before check_in fails DTO validation before the service.
	body := `{"number_of_guests":2,"check_in_date":"2024-06-08T00:00:00Z","check_out_date":"2024-06-05T00:00:00Z"}`
	listingID := uuid.New()
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/listings/"+listingID.String()+"/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())
	c.Set("user_id", uuid.New())

	h := NewBookingHandler(&mockBookingService{})
	err := h.CreateBooking(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCreateBooking_Handler_BadListingID(t *testing.T) {
	c, _ := newTestContext(t, http.MethodPost, "/api/v1/listings/nope/bookings", `{}`)
	c.SetParamNames("id")
	c.SetParamValues("nope")
	c.Set("user_id", uuid.New())

	h := NewBookingHandler(&mockBookingService{})
	err := h.CreateBooking(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCheckAvailability_Handler(t *testing.T) {
	listingID := uuid.New()
	svc := &mockBookingService{
		availableFn: func(ctx context.Context, id uuid.UUID, in, out time.Time) (bool, error) {
			return true, nil
		},
	}

	target := "/api/v1/listings/" + listingID.String() + "/availability?check_in=2024-06-05T00:00:00Z&check_out=2024-06-08T00:00:00Z"
	c, rec := newTestContext(t, http.MethodGet, target, "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	h := NewBookingHandler(svc)
	require.NoError(t, h.CheckAvailability(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Available)
}

func TestCheckAvailability_Handler_MissingDates(t *testing.T) {
	listingID := uuid.New()
	c, _ := newTestContext(t, http.MethodGet, "/api/v1/listings/"+listingID.String()+"/availability", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	h := NewBookingHandler(&mockBookingService{})
	err := h.CheckAvailability(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestCancelBooking_Handler_AlreadyCancelled(t *testing.T) {
	svc := &mockBookingService{
		cancelFn: func(ctx context.Context, bookingID uuid.UUID) (*models.Booking, error) {
			return nil, service.ErrInvalidTransition
		},
	}

	id := uuid.New()
	c, _ := newTestContext(t, http.MethodDelete, "/api/v1/bookings/"+id.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(id.String())

	h := NewBookingHandler(svc)
	err := h.CancelBooking(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestListBookings_Handler_StatusFilter(t *testing.T) {
	listingID := uuid.New()
	var gotStatus *models.BookingStatus
	svc := &mockBookingService{
		listFn: func(ctx context.Context, id uuid.UUID, status *models.BookingStatus) ([]models.Booking, error) {
			gotStatus = status
			return []models.Booking{{BookingID: uuid.New(), ListingID: id, BookingStatus: *status}}, nil
		},
	}

	c, rec := newTestContext(t, http.MethodGet, "/api/v1/listings/"+listingID.String()+"/bookings?status=confirmed", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	h := NewBookingHandler(svc)
	require.NoError(t, h.ListBookings(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, gotStatus)
	assert.Equal(t, models.StatusConfirmed, *gotStatus)
}

func TestListBookings_Handler_UnknownStatus(t *testing.T) {
	listingID := uuid.New()
	c, _ := newTestContext(t, http.MethodGet, "/api/v1/listings/"+listingID.String()+"/bookings?status=waitlisted", "")
	c.SetParamNames("id")
	c.SetParamValues(listingID.String())

	h := NewBookingHandler(&mockBookingService{})
	err := h.ListBookings(c)

	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}
