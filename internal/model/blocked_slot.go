package model

import "time"

// BlockedSlot is an hour explicitly withdrawn from availability by the
// court owner (maintenance, private events, ...), independent of bookings.
// Blocks are hour-granular: one row per (court, date, hour).
type BlockedSlot struct {
	ID        uint64    `json:"id"`
	CourtID   uint64    `json:"court_id"`
	Date      string    `json:"date"`      // "YYYY-MM-DD"
	SlotHour  int       `json:"slot_hour"` // 0..23
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}
