package notify

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Retry policy for outbound email: a fixed number of additional attempts with
// a flat delay between them. No backoff growth, no jitter.
const (
	MaxRetries = 3
	RetryDelay = 1 * time.Second
)

// Confirmation carries the details rendered into a booking confirmation email
type Confirmation struct {
	Email      string
	FullName   string
	RoomID     int
	Nights     int
	BookingID  int
	TotalPrice int
	RoomName   string
}

// Notifier defines the interface for sending booking notifications.
// A false result means delivery failed after all retries; it never fails
// the chat turn that triggered it.
type Notifier interface {
	NotifyBooking(ctx context.Context, conf Confirmation) bool
}

// Sender defines the interface for a single email delivery attempt
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// RetryingNotifier implements Notifier with the fixed retry policy on top of
// a Sender
type RetryingNotifier struct {
	sender Sender
	logger *zap.Logger
	delay  time.Duration
}

// NewRetryingNotifier creates a new retrying notifier
func NewRetryingNotifier(sender Sender, logger *zap.Logger) *RetryingNotifier {
	return &RetryingNotifier{
		sender: sender,
		logger: logger,
		delay:  RetryDelay,
	}
}

// NotifyBooking sends the booking confirmation email, retrying up to
// MaxRetries additional times with RetryDelay between attempts.
func (n *RetryingNotifier) NotifyBooking(ctx context.Context, conf Confirmation) bool {
	body := confirmationBody(conf)

	for attempt := 0; ; attempt++ {
		err := n.sender.Send(ctx, conf.Email, "Booking Confirmation", body)
		if err == nil {
			n.logger.Info("Confirmation email sent",
				zap.String("to", conf.Email),
				zap.Int("booking_id", conf.BookingID))
			return true
		}

		n.logger.Error("Error sending email",
			zap.Int("attempt", attempt+1),
			zap.String("to", conf.Email),
			zap.Error(err))

		if attempt >= MaxRetries {
			return false
		}

		n.logger.Info("Retrying email send",
			zap.Duration("delay", n.delay),
			zap.Int("retry", attempt+1),
			zap.Int("max_retries", MaxRetries))
		time.Sleep(n.delay)
	}
}

// confirmationBody renders the fixed booking confirmation email text
func confirmationBody(conf Confirmation) string {
	roomName := conf.RoomName
	if roomName == "" {
		roomName = "Not specified"
	}

	return fmt.Sprintf(`Dear %s,

Thank you for booking a room at our hotel. Here are your booking details:

Room ID: %d
Number of nights: %d
Booking ID: %d
Total cost: $%d
Room type: %s

We look forward to welcoming you!

Best regards,
Hotel Booking Team`,
		conf.FullName, conf.RoomID, conf.Nights, conf.BookingID, conf.TotalPrice, roomName)
}
