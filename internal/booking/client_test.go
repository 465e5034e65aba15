package booking

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return NewClient(server.URL+"/rooms", server.URL+"/book", 5*time.Second)
}

func TestListOfferings(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/rooms", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"name": "Deluxe", "description": "Sea view", "price": 200},
			{"name": "Standard", "description": "Garden view", "price": 100}
		]`))
	}))
	defer server.Close()

	offerings, err := newTestClient(server).ListOfferings(context.Background())
	require.NoError(t, err)
	require.Len(t, offerings, 2)

	// Upstream order preserved, no re-sorting
	assert.Equal(t, Offering{Name: "Deluxe", Description: "Sea view", Price: 200}, offerings[0])
	assert.Equal(t, Offering{Name: "Standard", Description: "Garden view", Price: 100}, offerings[1])
}

func TestListOfferingsUpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).ListOfferings(context.Background())
	assert.Error(t, err)
}

func TestCreateBooking(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/book", r.URL.Path)

		var req Request
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, Request{RoomID: 2, FullName: "Ada Lovelace", Email: "ada@example.com", Nights: 3}, req)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"bookingId": 424242, "roomName": "Deluxe", "totalPrice": 600}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).CreateBooking(context.Background(), Request{
		RoomID:   2,
		FullName: "Ada Lovelace",
		Email:    "ada@example.com",
		Nights:   3,
	})
	require.NoError(t, err)
	assert.Equal(t, &Result{BookingID: 424242, RoomName: "Deluxe", TotalPrice: 600}, result)
}

func TestCreateBookingSynthesizesID(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roomName": "Deluxe", "totalPrice": 600}`))
	}))
	defer server.Close()

	result, err := newTestClient(server).CreateBooking(context.Background(), Request{
		RoomID: 2, FullName: "Ada Lovelace", Email: "ada@example.com", Nights: 3,
	})
	require.NoError(t, err)

	assert.GreaterOrEqual(t, result.BookingID, 100000)
	assert.Less(t, result.BookingID, 999999)
}

func TestCreateBookingUpstreamError(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	_, err := newTestClient(server).CreateBooking(context.Background(), Request{RoomID: 99})
	assert.Error(t, err)
	// Single attempt only, booking is never retried
	assert.Equal(t, 1, calls)
}
