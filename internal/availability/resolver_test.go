package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// far-future reference instant so no slot is classified as past unless a
// test wants it to be.
var longAgo = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

func statusAt(t *testing.T, slots []Slot, clock string) SlotStatus {
	t.Helper()
	for _, s := range slots {
		if s.Time == clock {
			return s.Status
		}
	}
	t.Fatalf("no slot at %s", clock)
	return ""
}

func TestResolveGridBounds(t *testing.T) {
	slots, err := Resolve("2026-10-01", 8, 22, longAgo, nil, nil)
	require.NoError(t, err)
	require.Len(t, slots, 15)
	assert.Equal(t, "08:00", slots[0].Time)
	assert.Equal(t, "22:00", slots[len(slots)-1].Time)
	for _, s := range slots {
		h, ok := ParseHour(s.Time)
		require.True(t, ok)
		assert.GreaterOrEqual(t, h, 8)
		assert.LessOrEqual(t, h, 22)
		assert.Equal(t, StatusAvailable, s.Status)
	}
}

func TestResolveClassification(t *testing.T) {
	const date = "2026-10-01"

	booking := func(start, end string, status model.BookingStatus) model.Booking {
		return model.Booking{Date: date, StartTime: start, EndTime: end, Status: status}
	}

	tests := []struct {
		name    string
		booked  []model.Booking
		blocked []model.BlockedSlot
		now     time.Time
		want    map[string]SlotStatus
	}{
		{
			name:   "confirmed booking covers start up to but not end",
			booked: []model.Booking{booking("14:00", "16:00", model.StatusConfirmed)},
			want: map[string]SlotStatus{
				"13:00": StatusAvailable,
				"14:00": StatusBooked,
				"15:00": StatusBooked,
				"16:00": StatusAvailable,
			},
		},
		{
			name:   "pending booking also blocks the hour",
			booked: []model.Booking{booking("09:00", "10:00", model.StatusPending)},
			want:   map[string]SlotStatus{"09:00": StatusBooked},
		},
		{
			name:   "cancelled booking frees the hour",
			booked: []model.Booking{booking("09:00", "11:00", model.StatusCancelled)},
			want: map[string]SlotStatus{
				"09:00": StatusAvailable,
				"10:00": StatusAvailable,
			},
		},
		{
			name:    "blocked slot without booking",
			blocked: []model.BlockedSlot{{Date: date, SlotHour: 11, Reason: "Manutenção"}},
			want:    map[string]SlotStatus{"11:00": StatusBlocked},
		},
		{
			name:    "booked wins over blocked",
			booked:  []model.Booking{booking("11:00", "12:00", model.StatusConfirmed)},
			blocked: []model.BlockedSlot{{Date: date, SlotHour: 11, Reason: "Manutenção"}},
			want:    map[string]SlotStatus{"11:00": StatusBooked},
		},
		{
			name:   "rows for other dates are ignored",
			booked: []model.Booking{{Date: "2026-10-02", StartTime: "14:00", EndTime: "16:00", Status: model.StatusConfirmed}},
			blocked: []model.BlockedSlot{
				{Date: "2026-10-02", SlotHour: 9, Reason: "torneio"},
			},
			want: map[string]SlotStatus{
				"14:00": StatusAvailable,
				"09:00": StatusAvailable,
			},
		},
		{
			name: "past hours on the current day",
			now:  time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
			want: map[string]SlotStatus{
				"08:00": StatusPast,
				"12:00": StatusPast,
				"13:00": StatusAvailable,
			},
		},
		{
			name:    "blocked wins over past",
			now:     time.Date(2026, 10, 1, 12, 30, 0, 0, time.UTC),
			blocked: []model.BlockedSlot{{Date: date, SlotHour: 9, Reason: "Manutenção"}},
			want:    map[string]SlotStatus{"09:00": StatusBlocked},
		},
		{
			name: "whole day in the past",
			now:  time.Date(2026, 10, 2, 0, 0, 0, 0, time.UTC),
			want: map[string]SlotStatus{"08:00": StatusPast, "22:00": StatusPast},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			now := tt.now
			if now.IsZero() {
				now = longAgo
			}
			slots, err := Resolve(date, 8, 22, now, tt.booked, tt.blocked)
			require.NoError(t, err)
			for clock, want := range tt.want {
				assert.Equal(t, want, statusAt(t, slots, clock), "slot %s", clock)
			}
		})
	}
}

// Worked example: rate 100, one confirmed booking 14:00–16:00, one blocked
// slot at 11:00. Everything else on a future date is available and a
// two-hour booking costs 200.00.
func TestResolveWorkedExample(t *testing.T) {
	const date = "2026-10-01"
	bookings := []model.Booking{
		{Date: date, StartTime: "14:00", EndTime: "16:00", Status: model.StatusConfirmed},
	}
	blocked := []model.BlockedSlot{{Date: date, SlotHour: 11, Reason: "Manutenção"}}

	slots, err := Resolve(date, 8, 22, longAgo, bookings, blocked)
	require.NoError(t, err)

	for _, s := range slots {
		switch s.Time {
		case "11:00":
			assert.Equal(t, StatusBlocked, s.Status)
		case "14:00", "15:00":
			assert.Equal(t, StatusBooked, s.Status)
		default:
			assert.Equal(t, StatusAvailable, s.Status, "slot %s", s.Time)
		}
	}

	assert.Equal(t, 200.0, Price(100, 2))
}

func TestResolveIdempotent(t *testing.T) {
	const date = "2026-10-01"
	bookings := []model.Booking{
		{Date: date, StartTime: "09:00", EndTime: "12:00", Status: model.StatusConfirmed},
	}
	blocked := []model.BlockedSlot{{Date: date, SlotHour: 17, Reason: "Manutenção"}}

	first, err := Resolve(date, 8, 22, longAgo, bookings, blocked)
	require.NoError(t, err)
	second, err := Resolve(date, 8, 22, longAgo, bookings, blocked)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestResolveRejectsBadInput(t *testing.T) {
	if _, err := Resolve("01/10/2026", 8, 22, longAgo, nil, nil); err == nil {
		t.Error("expected error for malformed date")
	}
	if _, err := Resolve("2026-10-01", 22, 8, longAgo, nil, nil); err == nil {
		t.Error("expected error for inverted hour window")
	}
	if _, err := Resolve("2026-10-01", -1, 22, longAgo, nil, nil); err == nil {
		t.Error("expected error for negative open hour")
	}
}

func TestPrice(t *testing.T) {
	tests := []struct {
		rate     float64
		duration int
		want     float64
	}{
		{100, 1, 100.00},
		{100, 2, 200.00},
		{100, 3, 300.00},
		{100, 4, 400.00},
		{79.9, 2, 159.80},
		{33.335, 3, 100.01}, // rounded to 2 decimals
		{0, 2, 0},
		{100, 0, 0},
		{-5, 1, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Price(tt.rate, tt.duration), "rate=%v duration=%d", tt.rate, tt.duration)
	}
}

func TestDuration(t *testing.T) {
	assert.Equal(t, 2, Duration("14:00", "16:00"))
	assert.Equal(t, 1, Duration("21:00", "22:00"))
	assert.Equal(t, 0, Duration("16:00", "14:00"))
	assert.Equal(t, 0, Duration("14:00", "14:00"))
	assert.Equal(t, 0, Duration("bogus", "16:00"))
}
