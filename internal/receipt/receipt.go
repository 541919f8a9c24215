// Package receipt renders payment receipts as PDF documents.
package receipt

import (
	"bytes"
	"fmt"

	"github.com/kasemsan/travelstay/internal/models"
	"github.com/phpdave11/gofpdf"
)

// Generate builds the receipt PDF for a payment and returns the document
// bytes with a suggested filename.
func Generate(payment *models.Payment, booking *models.Booking, listing *models.Listing) ([]byte, string, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle("Payment Receipt", false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "PAYMENT RECEIPT")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	lines := []string{
		fmt.Sprintf("Transaction : %s", payment.TransactionID),
		fmt.Sprintf("Date        : %s", payment.TransactionDate.Format("2006-01-02 15:04")),
		fmt.Sprintf("Status      : %s", payment.Status),
		fmt.Sprintf("Listing     : %s", listing.Title),
		fmt.Sprintf("Address     : %s", listing.LocationAddress),
		fmt.Sprintf("Check-in    : %s", booking.CheckInDate.Format("2006-01-02")),
		fmt.Sprintf("Check-out   : %s", booking.CheckOutDate.Format("2006-01-02")),
		fmt.Sprintf("Guests      : %d", booking.NumberOfGuests),
		fmt.Sprintf("Amount      : %.2f USD", payment.Amount),
	}
	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(5)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.Cell(0, 6, "Thank you for booking with travelstay.")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, "", fmt.Errorf("render receipt pdf: %w", err)
	}

	filename := fmt.Sprintf("receipt-%s.pdf", payment.TransactionID)
	return buf.Bytes(), filename, nil
}
