// Package repository implements the data access layer over MySQL with raw
// SQL. This file defines sentinel errors shared across repositories so
// handlers can map failure scenarios to HTTP statuses: ErrForbidden → 403,
// the not-found sentinels → 404, ErrSlotTaken / ErrSlotBlocked /
// ErrConflict → 409.
package repository

import (
	"errors"
	"strings"
)

// ErrForbidden is returned when the caller attempts an operation on a
// resource they do not own.
var ErrForbidden = errors.New("forbidden")

// ErrConflict is returned when an update cannot proceed because of
// conflicting state, such as confirming a booking that is already
// cancelled.
var ErrConflict = errors.New("conflict")

// ErrSlotTaken is returned when a booking cannot claim one of its hours
// because another booking holds the (court, date, hour) claim. This is the
// conditional write that makes concurrent double booking lose instead of
// silently succeeding.
var ErrSlotTaken = errors.New("slot already booked")

// ErrSlotBlocked is returned when a booking overlaps an hour the owner has
// withdrawn from availability.
var ErrSlotBlocked = errors.New("slot blocked by owner")

// Not-found sentinels, one per aggregate.
var (
	ErrEstablishmentNotFound = errors.New("establishment not found")
	ErrCourtNotFound         = errors.New("court not found")
	ErrBookingNotFound       = errors.New("booking not found")
	ErrBlockedSlotNotFound   = errors.New("blocked slot not found")
	ErrFavoriteNotFound      = errors.New("favorite not found")
	ErrFavoriteExists        = errors.New("court already favorited")
	ErrEmailExists           = errors.New("email already exists")
)

// isDuplicate reports whether err is a MySQL duplicate-entry violation
// (error 1062 on a UNIQUE key).
func isDuplicate(err error) bool {
	return err != nil && strings.Contains(err.Error(), "1062")
}
