// Package queue defines message payloads exchanged over the message broker
// and the background consumer that processes them.
package queue

// BookingConfirmedEvent is published when a booking reaches CONFIRMED,
// whether through owner confirmation or a successful payment. It carries
// enough denormalized detail for downstream consumers (receipts,
// notifications, analytics) to act without querying the primary database.
type BookingConfirmedEvent struct {
	BookingID         uint64  `json:"booking_id"`
	UserID            uint64  `json:"user_id"`
	CourtID           uint64  `json:"court_id"`
	CourtName         string  `json:"court_name"`
	EstablishmentID   uint64  `json:"establishment_id"`
	EstablishmentName string  `json:"establishment_name"`
	Sport             string  `json:"sport"`
	Date              string  `json:"date"`
	StartTime         string  `json:"start_time"`
	EndTime           string  `json:"end_time"`
	TotalPrice        float64 `json:"total_price"`
	PaymentRef        string  `json:"payment_ref,omitempty"`
	ConfirmedAt       string  `json:"confirmed_at"`
}
