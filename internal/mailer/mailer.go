package mailer

import (
	"encoding/json"
	"fmt"
	"log"

	"github.com/kasemsan/travelstay/internal/service"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Mailer consumes booking events and sends confirmation emails. The default
// transport just logs the rendered message; SMTP wiring can be swapped in
// through the Sender func.
type Mailer struct {
	Sender func(to, subject, body string) error
}

func New() *Mailer {
	return &Mailer{
		Sender: func(to, subject, body string) error {
			log.Printf("[Mailer] to=%s subject=%q\n%s", to, subject, body)
			return nil
		},
	}
}

// Start consumes deliveries in the background until the channel closes.
func (m *Mailer) Start(msgs <-chan amqp.Delivery) {
	go func() {
		log.Println("[Mailer] started, waiting for booking events...")
		for msg := range msgs {
			m.handleMessage(msg)
		}
		log.Println("[Mailer] channel closed, stopping consumer")
	}()
}

func (m *Mailer) handleMessage(msg amqp.Delivery) {
	switch msg.RoutingKey {
	case "booking.confirmed":
		if err := m.handleBookingConfirmed(msg.Body); err != nil {
			log.Printf("[Mailer] failed to process booking.confirmed: %v", err)
			msg.Nack(false, false)
			return
		}
		msg.Ack(false)
	default:
		// Not ours, drop without requeue
		msg.Ack(false)
	}
}

func (m *Mailer) handleBookingConfirmed(body []byte) error {
	var event service.BookingConfirmedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	subject, text := RenderConfirmation(event)
	return m.Sender(event.GuestID.String(), subject, text)
}

// RenderConfirmation builds the confirmation email for a confirmed booking.
func RenderConfirmation(event service.BookingConfirmedEvent) (subject, body string) {
	subject = fmt.Sprintf("Booking confirmed: %s", event.ListingTitle)
	body = fmt.Sprintf(
		"Your booking %s is confirmed.\n\nListing: %s\nCheck-in: %s\nCheck-out: %s\nAmount due: %.2f\n",
		event.BookingID,
		event.ListingTitle,
		event.CheckInDate.Format("2006-01-02"),
		event.CheckOutDate.Format("2006-01-02"),
		event.AmountDue,
	)
	return subject, body
}
