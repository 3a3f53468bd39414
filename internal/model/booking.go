package model

import "time"

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

// Booking lifecycle states. A booking is created PENDING, becomes
// CONFIRMED when the owner confirms it or the payment succeeds, and
// CANCELLED when either party cancels. Nothing ever returns to PENDING.
const (
	StatusPending   BookingStatus = "PENDING"
	StatusConfirmed BookingStatus = "CONFIRMED"
	StatusCancelled BookingStatus = "CANCELLED"
)

// transitions is the set of permitted status changes.
var transitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
	StatusCancelled: nil, // terminal
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to BookingStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// ValidStatus reports whether s is one of the known booking states.
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// Booking records a player's reservation of a court for a contiguous range
// of whole hours on one calendar date. Date and times are naive wall-clock
// strings exactly as entered ("2006-01-02", "15:04"); the service runs in a
// single region and does no timezone normalization.
//
// Fields:
//
//	ID         – primary key identifier.
//	CourtID    – court being booked.
//	UserID     – player who requested the booking.
//	Date       – calendar date, "YYYY-MM-DD".
//	StartTime  – first booked hour, "HH:MM" (always ":00").
//	EndTime    – end of the booked range, exclusive.
//	TotalPrice – hourlyRate × durationHours, rounded to 2 decimals.
//	Status     – PENDING, CONFIRMED or CANCELLED.
//	Sport      – sport tag copied from the court at booking time.
//	Notes      – optional free-text notes from the player.
//	PaymentRef – receipt identifier returned by the payment processor.
type Booking struct {
	ID         uint64        `json:"id"`
	CourtID    uint64        `json:"court_id"`
	UserID     uint64        `json:"user_id"`
	Date       string        `json:"date"`
	StartTime  string        `json:"start_time"`
	EndTime    string        `json:"end_time"`
	TotalPrice float64       `json:"total_price"`
	Status     BookingStatus `json:"status"`
	Sport      string        `json:"sport"`
	Notes      string        `json:"notes,omitempty"`
	PaymentRef *string       `json:"payment_ref,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
