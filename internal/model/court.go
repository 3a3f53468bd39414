package model

import "time"

// Court describes a bookable sports court inside an establishment.
// Availability is never stored on the court; it is derived at query time
// from bookings and blocked slots by the availability package.
//
// Fields:
//
//	ID              – primary key identifier.
//	EstablishmentID – establishment the court belongs to.
//	Name            – display name (e.g. "Quadra 1").
//	Sport           – sport tag (futsal, tennis, ...).
//	HourlyRate      – price per hour in the platform currency.
//	Indoor          – whether the court is covered.
//	Address         – free-text location; defaults to the establishment address.
//	PhotoURL        – durable URL of the court photo, if one was uploaded.
//	Rating          – average rating in [0, 5].
type Court struct {
	ID              uint64    `json:"id"`
	EstablishmentID uint64    `json:"establishment_id"`
	Name            string    `json:"name"`
	Sport           string    `json:"sport"`
	HourlyRate      float64   `json:"hourly_rate"`
	Indoor          bool      `json:"indoor"`
	Address         string    `json:"address"`
	PhotoURL        *string   `json:"photo_url,omitempty"`
	Rating          float64   `json:"rating"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Sport is a row in the `sports` table: the fixed catalogue of sport tags
// a court can carry.
type Sport struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}
