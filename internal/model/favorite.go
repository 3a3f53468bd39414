package model

import "time"

// Favorite marks a court as a favorite of a player. The pair
// (UserID, CourtID) is unique. Court display fields are denormalized at
// favoriting time so the list renders without joining courts that may have
// changed or been removed since.
type Favorite struct {
	ID         uint64    `json:"id"`
	UserID     uint64    `json:"user_id"`
	CourtID    uint64    `json:"court_id"`
	CourtName  string    `json:"court_name"`
	Sport      string    `json:"sport"`
	HourlyRate float64   `json:"hourly_rate"`
	Indoor     bool      `json:"indoor"`
	Address    string    `json:"address"`
	CreatedAt  time.Time `json:"created_at"`
}
