package notify

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeSender struct {
	failures int
	attempts int
	lastTo   string
	lastBody string
}

func (f *fakeSender) Send(ctx context.Context, to, subject, body string) error {
	f.attempts++
	f.lastTo = to
	f.lastBody = body
	if f.attempts <= f.failures {
		return errors.New("smtp unavailable")
	}
	return nil
}

func newTestNotifier(sender Sender) *RetryingNotifier {
	n := NewRetryingNotifier(sender, zap.NewNop())
	n.delay = 0
	return n
}

func testConfirmation() Confirmation {
	return Confirmation{
		Email:      "ada@example.com",
		FullName:   "Ada Lovelace",
		RoomID:     2,
		Nights:     3,
		BookingID:  123456,
		TotalPrice: 600,
		RoomName:   "Deluxe",
	}
}

func TestNotifyBookingFirstAttemptSucceeds(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	ok := n.NotifyBooking(context.Background(), testConfirmation())

	assert.True(t, ok)
	assert.Equal(t, 1, sender.attempts)
	assert.Equal(t, "ada@example.com", sender.lastTo)
}

func TestNotifyBookingRecoversWithinRetryBudget(t *testing.T) {
	sender := &fakeSender{failures: 2}
	n := newTestNotifier(sender)

	ok := n.NotifyBooking(context.Background(), testConfirmation())

	assert.True(t, ok)
	assert.Equal(t, 3, sender.attempts)
}

func TestNotifyBookingExhaustsRetries(t *testing.T) {
	// 1 initial attempt + MaxRetries retries, then give up
	sender := &fakeSender{failures: 10}
	n := newTestNotifier(sender)

	ok := n.NotifyBooking(context.Background(), testConfirmation())

	assert.False(t, ok)
	assert.Equal(t, 1+MaxRetries, sender.attempts)
}

func TestConfirmationBodyContent(t *testing.T) {
	sender := &fakeSender{}
	n := newTestNotifier(sender)

	n.NotifyBooking(context.Background(), testConfirmation())

	body := sender.lastBody
	assert.True(t, strings.HasPrefix(body, "Dear Ada Lovelace,"))
	assert.Contains(t, body, "Room ID: 2")
	assert.Contains(t, body, "Number of nights: 3")
	assert.Contains(t, body, "Booking ID: 123456")
	assert.Contains(t, body, "Total cost: $600")
	assert.Contains(t, body, "Room type: Deluxe")
}

func TestConfirmationBodyRoomNameFallback(t *testing.T) {
	conf := testConfirmation()
	conf.RoomName = ""

	assert.Contains(t, confirmationBody(conf), "Room type: Not specified")
}
