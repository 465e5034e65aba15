package booking

// Offering represents one bookable room returned by the upstream service
type Offering struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int    `json:"price"`
}

// Request carries the booking parameters supplied by the assistant's
// function call. All four fields are required by the declared schema.
type Request struct {
	RoomID   int    `json:"roomId"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Nights   int    `json:"nights"`
}

// Result is the upstream booking outcome. BookingID is synthesized locally
// when the upstream response omits one; it is informational only and carries
// no uniqueness guarantee.
type Result struct {
	BookingID  int    `json:"bookingId"`
	RoomName   string `json:"roomName"`
	TotalPrice int    `json:"totalPrice"`
}
