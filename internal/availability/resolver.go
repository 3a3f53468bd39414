// Package availability computes, for a court and a calendar date, the
// ordered grid of hourly slots between the opening and closing hour and
// classifies each one as available, booked, blocked or past. It is a pure
// function of its inputs: no I/O, no caching, no writes.
package availability

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// Default court opening window. Both bounds are inclusive: with 8 and 22
// the grid runs 08:00, 09:00, ..., 22:00.
const (
	DefaultOpenHour  = 8
	DefaultCloseHour = 22
)

// SlotStatus classifies a single hourly slot.
type SlotStatus string

const (
	StatusAvailable SlotStatus = "available"
	StatusBooked    SlotStatus = "booked"
	StatusBlocked   SlotStatus = "blocked"
	StatusPast      SlotStatus = "past"
)

// Slot is one bookable hour-long interval for a court and date.
type Slot struct {
	Time   string     `json:"time"` // "HH:00"
	Status SlotStatus `json:"status"`
}

// Resolve builds the slot grid for date ("2006-01-02") between openHour and
// closeHour inclusive. Bookings and blocked slots may span any date; rows
// for other dates are ignored. now supplies the reference instant for the
// past classification.
//
// Classification precedence, highest first: booked > blocked > past >
// available. A slot is booked when a pending or confirmed booking's start
// hour equals the slot hour or the slot hour falls inside the booking's
// [start, end) range. Cancelled bookings do not block a slot; their claims
// are released at cancellation time (see the booking repository).
func Resolve(date string, openHour, closeHour int, now time.Time, bookings []model.Booking, blocked []model.BlockedSlot) ([]Slot, error) {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", date, err)
	}
	if openHour < 0 || closeHour > 23 || openHour > closeHour {
		return nil, fmt.Errorf("invalid hour window [%d, %d]", openHour, closeHour)
	}

	blockedHours := make(map[int]bool)
	for _, b := range blocked {
		if b.Date == date {
			blockedHours[b.SlotHour] = true
		}
	}

	slots := make([]Slot, 0, closeHour-openHour+1)
	for h := openHour; h <= closeHour; h++ {
		status := StatusAvailable
		switch {
		case hourBooked(h, date, bookings):
			status = StatusBooked
		case blockedHours[h]:
			status = StatusBlocked
		case day.Add(time.Duration(h) * time.Hour).Before(now):
			status = StatusPast
		}
		slots = append(slots, Slot{
			Time:   fmt.Sprintf("%02d:00", h),
			Status: status,
		})
	}
	return slots, nil
}

// hourBooked reports whether any non-cancelled booking on the given date
// covers hour h.
func hourBooked(h int, date string, bookings []model.Booking) bool {
	for _, b := range bookings {
		if b.Date != date || b.Status == model.StatusCancelled {
			continue
		}
		start, ok := ParseHour(b.StartTime)
		if !ok {
			continue
		}
		if h == start {
			return true
		}
		if end, ok := ParseHour(b.EndTime); ok && h > start && h < end {
			return true
		}
	}
	return false
}

// ParseHour extracts the hour component from a wall-clock "HH:MM" string.
func ParseHour(clock string) (int, bool) {
	hh, _, found := strings.Cut(clock, ":")
	if !found {
		return 0, false
	}
	h, err := strconv.Atoi(hh)
	if err != nil || h < 0 || h > 23 {
		return 0, false
	}
	return h, true
}

// Duration returns the whole-hour span of [start, end). Zero when either
// time is malformed or the range is not positive.
func Duration(start, end string) int {
	s, okS := ParseHour(start)
	e, okE := ParseHour(end)
	if !okS || !okE || e <= s {
		return 0
	}
	return e - s
}

// Price computes hourlyRate × durationHours rounded to 2 decimal places.
// Zero rate or non-positive duration yields 0; the caller is expected to
// block submission in that case.
func Price(hourlyRate float64, durationHours int) float64 {
	if hourlyRate <= 0 || durationHours <= 0 {
		return 0
	}
	return math.Round(hourlyRate*float64(durationHours)*100) / 100
}
