// Package pricing holds the pure booking math: stay duration, amount due
// and half-open interval overlap. Nothing here touches storage.
package pricing

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrInvalidInterval is returned when a stay resolves to zero or
	// negative whole nights.
	ErrInvalidInterval = errors.New("check-out date must be at least one night after check-in date")

	// ErrInvalidListingState flags a non-positive nightly price. That is a
	// data-integrity bug upstream, not a user error.
	ErrInvalidListingState = errors.New("listing has a non-positive nightly price")
)

// Nights returns the whole-day difference between check-in and check-out.
// Partial days truncate down.
func Nights(checkIn, checkOut time.Time) int {
	return int(checkOut.Sub(checkIn) / (24 * time.Hour))
}

// AmountDue computes nights * nightly price, rounded to 2 fractional digits.
// Deterministic and pure; the caller persists the result once at booking
// creation and never recomputes it.
func AmountDue(pricePerNight float64, checkIn, checkOut time.Time) (float64, error) {
	if pricePerNight <= 0 {
		return 0, ErrInvalidListingState
	}
	nights := Nights(checkIn, checkOut)
	if nights <= 0 {
		return 0, ErrInvalidInterval
	}
	return round2(float64(nights) * pricePerNight), nil
}

// Interval is a half-open [CheckIn, CheckOut) stay range.
type Interval struct {
	CheckIn  time.Time
	CheckOut time.Time
}

// Overlaps reports whether two half-open intervals intersect. Back-to-back
// stays sharing a boundary do not conflict.
func Overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	return aIn.Before(bOut) && bIn.Before(aOut)
}

// ConflictsAny reports whether the proposed range intersects any of the
// given intervals.
func ConflictsAny(checkIn, checkOut time.Time, existing []Interval) bool {
	for _, iv := range existing {
		if Overlaps(iv.CheckIn, iv.CheckOut, checkIn, checkOut) {
			return true
		}
	}
	return false
}

func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
