package model

import "testing"

func TestBookingTransitions(t *testing.T) {
	tests := []struct {
		name        string
		from        BookingStatus
		to          BookingStatus
		shouldAllow bool
	}{
		{"pending to confirmed", StatusPending, StatusConfirmed, true},
		{"pending to cancelled", StatusPending, StatusCancelled, true},
		{"confirmed to cancelled", StatusConfirmed, StatusCancelled, true},
		// Terminal states
		{"cancelled to pending", StatusCancelled, StatusPending, false},
		{"cancelled to confirmed", StatusCancelled, StatusConfirmed, false},
		{"confirmed to pending", StatusConfirmed, StatusPending, false},
		{"confirmed to confirmed", StatusConfirmed, StatusConfirmed, false},
		{"pending to pending", StatusPending, StatusPending, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			allowed := CanTransition(tt.from, tt.to)
			if allowed != tt.shouldAllow {
				t.Errorf("transition %s -> %s: expected allowed=%v, got %v",
					tt.from, tt.to, tt.shouldAllow, allowed)
			}
		})
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []BookingStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		if !ValidStatus(s) {
			t.Errorf("expected %s to be valid", s)
		}
	}
	if ValidStatus("FINISHED") {
		t.Error("unknown status accepted")
	}
}

func TestMatchResult(t *testing.T) {
	tests := []struct {
		user, opponent int
		want           MatchResult
	}{
		{6, 4, ResultWin},
		{3, 7, ResultLoss},
		{2, 2, ResultDraw},
		{0, 0, ResultDraw},
	}
	for _, tt := range tests {
		m := MatchEntry{UserScore: tt.user, OpponentScore: tt.opponent}
		if got := m.Result(); got != tt.want {
			t.Errorf("score %d-%d: expected %s, got %s", tt.user, tt.opponent, tt.want, got)
		}
	}
}
