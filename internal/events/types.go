package events

import (
	"time"

	"github.com/portosolutions/tv-mounting/internal/booking"
)

// EventTypeBookingConfirmed is emitted once per confirmed booking.
const EventTypeBookingConfirmed = "booking.confirmed.v1"

// BookingConfirmedV1 carries the confirmation record downstream. Keys are
// snake_case like the rest of the booking API.
type BookingConfirmedV1 struct {
	BookingID      string    `json:"booking_id"`
	SessionID      string    `json:"session_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Address        string    `json:"address"`
	TVSize         string    `json:"tv_size"`
	WallType       string    `json:"wall_type"`
	AdditionalInfo string    `json:"additional_info"`
	Date           string    `json:"date"`
	Time           string    `json:"time"`
	ConfirmedAt    time.Time `json:"confirmed_at"`
}

func (BookingConfirmedV1) EventType() string { return EventTypeBookingConfirmed }

// NewBookingConfirmedV1 converts a booking confirmation into its event form.
func NewBookingConfirmedV1(c booking.Confirmation) BookingConfirmedV1 {
	return BookingConfirmedV1{
		BookingID:      c.BookingID,
		SessionID:      c.SessionID,
		Name:           c.Name,
		Email:          c.Email,
		Phone:          c.Phone,
		Address:        c.Address,
		TVSize:         c.TVSize,
		WallType:       string(c.WallType),
		AdditionalInfo: c.AdditionalInfo,
		Date:           c.Date,
		Time:           c.Time,
		ConfirmedAt:    c.ConfirmedAt,
	}
}
