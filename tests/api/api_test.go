//go:build api

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseURL = "http://localhost:8080"

// TestAPI_FullFlow walks the whole booking lifecycle end-to-end against a
// running server: accounts, listing, availability, booking, conflict,
// payment and review.
func TestAPI_FullFlow(t *testing.T) {
	waitForServer(t)

	// Unique emails so the test can rerun against a persistent database
	run := time.Now().UnixNano()
	hostEmail := fmt.Sprintf("host-%d@travelstay.test", run)
	guestEmail := fmt.Sprintf("guest-%d@travelstay.test", run)

	var hostToken, guestToken string
	var listingID, bookingID, paymentID string

	t.Run("Step1_RegisterAndLogin", func(t *testing.T) {
		resp := post(t, "", baseURL+"/api/v1/auth/register", map[string]string{
			"email": hostEmail, "password": "hostpass123", "first_name": "Hana", "last_name": "Host",
		})
		require.Equal(t, 201, resp.StatusCode, "host registration should succeed")
		drain(resp)

		resp = post(t, "", baseURL+"/api/v1/auth/register", map[string]string{
			"email": guestEmail, "password": "guestpass123", "first_name": "Gary", "last_name": "Guest",
		})
		require.Equal(t, 201, resp.StatusCode, "guest registration should succeed")
		drain(resp)

		hostToken = login(t, hostEmail, "hostpass123")
		guestToken = login(t, guestEmail, "guestpass123")
		require.NotEmpty(t, hostToken)
		require.NotEmpty(t, guestToken)
	})

	t.Run("Step2_CreateListing", func(t *testing.T) {
		resp := post(t, hostToken, baseURL+"/api/v1/listings", map[string]interface{}{
			"title":            "Lakeside Cabin",
			"listing_type":     "cabin",
			"price_per_night":  100.00,
			"location_address": "1 Shore Road",
			"allowable_guests": 4,
		})
		require.Equal(t, 201, resp.StatusCode)

		var listing map[string]interface{}
		decodeJSON(t, resp, &listing)
		listingID, _ = listing["listing_id"].(string)
		require.NotEmpty(t, listingID)
	})

	t.Run("Step3_CheckAvailability", func(t *testing.T) {
		resp := get(t, "", fmt.Sprintf("%s/api/v1/listings/%s/availability?check_in=2026-09-01&check_out=2026-09-04", baseURL, listingID))
		require.Equal(t, 200, resp.StatusCode)

		var avail map[string]interface{}
		decodeJSON(t, resp, &avail)
		assert.Equal(t, true, avail["available"], "fresh listing should be available")
	})

	t.Run("Step4_CreateBooking", func(t *testing.T) {
		resp := post(t, guestToken, baseURL+"/api/v1/listings/"+listingID+"/bookings", map[string]interface{}{
			"number_of_guests": 2,
			"check_in_date":    "2026-09-01T00:00:00Z",
			"check_out_date":   "2026-09-04T00:00:00Z",
			"confirm":          true,
		})
		require.Equal(t, 201, resp.StatusCode)

		var booking map[string]interface{}
		decodeJSON(t, resp, &booking)
		bookingID, _ = booking["booking_id"].(string)
		assert.Equal(t, "confirmed", booking["booking_status"])
		assert.Equal(t, 300.00, booking["amount_due"], "3 nights at 100.00")
	})

	t.Run("Step5_OverlappingBookingRejected", func(t *testing.T) {
		resp := post(t, guestToken, baseURL+"/api/v1/listings/"+listingID+"/bookings", map[string]interface{}{
			"number_of_guests": 1,
			"check_in_date":    "2026-09-03T00:00:00Z",
			"check_out_date":   "2026-09-06T00:00:00Z",
			"confirm":          true,
		})
		assert.Equal(t, 409, resp.StatusCode, "overlapping dates should conflict")
		drain(resp)
	})

	t.Run("Step6_AdjacentBookingAllowed", func(t *testing.T) {
		resp := post(t, guestToken, baseURL+"/api/v1/listings/"+listingID+"/bookings", map[string]interface{}{
			"number_of_guests": 1,
			"check_in_date":    "2026-09-04T00:00:00Z",
			"check_out_date":   "2026-09-06T00:00:00Z",
			"confirm":          true,
		})
		assert.Equal(t, 201, resp.StatusCode, "checkout day can be the next checkin day")
		drain(resp)
	})

	t.Run("Step7_HostCannotBookOwnListing", func(t *testing.T) {
		resp := post(t, hostToken, baseURL+"/api/v1/listings/"+listingID+"/bookings", map[string]interface{}{
			"number_of_guests": 1,
			"check_in_date":    "2026-10-01T00:00:00Z",
			"check_out_date":   "2026-10-03T00:00:00Z",
		})
		assert.Equal(t, 403, resp.StatusCode)
		drain(resp)
	})

	t.Run("Step8_PayForBooking", func(t *testing.T) {
		resp := post(t, guestToken, baseURL+"/api/v1/bookings/"+bookingID+"/payments", nil)
		require.Equal(t, 201, resp.StatusCode)

		var payment map[string]interface{}
		decodeJSON(t, resp, &payment)
		paymentID, _ = payment["transaction_id"].(string)
		assert.Equal(t, "pending", payment["status"])
		assert.Equal(t, 300.00, payment["amount"])

		resp = post(t, guestToken, baseURL+"/api/v1/payments/"+paymentID+"/complete", nil)
		require.Equal(t, 200, resp.StatusCode)

		var completed map[string]interface{}
		decodeJSON(t, resp, &completed)
		assert.Equal(t, "completed", completed["status"])
	})

	t.Run("Step9_DownloadReceipt", func(t *testing.T) {
		resp := get(t, guestToken, baseURL+"/api/v1/payments/"+paymentID+"/receipt")
		require.Equal(t, 200, resp.StatusCode)
		assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
		drain(resp)
	})

	t.Run("Step10_ReviewAndRating", func(t *testing.T) {
		resp := post(t, guestToken, baseURL+"/api/v1/listings/"+listingID+"/reviews", map[string]interface{}{
			"rating": 4, "comment": "Great stay by the lake",
		})
		require.Equal(t, 201, resp.StatusCode)
		drain(resp)

		resp = get(t, "", baseURL+"/api/v1/listings/"+listingID)
		require.Equal(t, 200, resp.StatusCode)

		var listing map[string]interface{}
		decodeJSON(t, resp, &listing)
		assert.Equal(t, 4.0, listing["average_rating"])
		assert.Equal(t, 1.0, listing["review_count"])
	})
}

// Helper functions

func waitForServer(t *testing.T) {
	maxRetries := 30
	for i := 0; i < maxRetries; i++ {
		resp, err := http.Get(baseURL + "/health")
		if err == nil && resp.StatusCode == 200 {
			resp.Body.Close()
			return
		}
		time.Sleep(1 * time.Second)
	}
	t.Fatal("server did not become ready in time")
}

func login(t *testing.T, email, password string) string {
	resp := post(t, "", baseURL+"/api/v1/auth/login", map[string]string{
		"email": email, "password": password,
	})
	require.Equal(t, 200, resp.StatusCode)

	var body map[string]interface{}
	decodeJSON(t, resp, &body)
	token, _ := body["token"].(string)
	return token
}

func do(t *testing.T, method, token, url string, body interface{}) *http.Response {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func get(t *testing.T, token, url string) *http.Response {
	return do(t, http.MethodGet, token, url, nil)
}

func post(t *testing.T, token, url string, body interface{}) *http.Response {
	return do(t, http.MethodPost, token, url, body)
}

func decodeJSON(t *testing.T, resp *http.Response, target interface{}) {
	defer resp.Body.Close()
	err := json.NewDecoder(resp.Body).Decode(target)
	if err != nil && resp.StatusCode >= 400 {
		// Error bodies might not be JSON
		return
	}
	require.NoError(t, err)
}

func drain(resp *http.Response) {
	resp.Body.Close()
}

func TestMain(m *testing.M) {
	fmt.Println("Starting API tests, make sure the server is running on :8080")
	os.Exit(m.Run())
}
