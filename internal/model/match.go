package model

import "time"

// MatchResult is the outcome of a match from the recording player's
// perspective. It is derived from the scores and never stored.
type MatchResult string

const (
	ResultWin  MatchResult = "WIN"
	ResultLoss MatchResult = "LOSS"
	ResultDraw MatchResult = "DRAW"
)

// MatchEntry is one row of a player's match history.
//
// Fields:
//
//	ID            – primary key identifier.
//	UserID        – player who recorded the match.
//	Opponent      – free-text opponent name.
//	Sport         – sport tag.
//	Date          – calendar date, "YYYY-MM-DD".
//	UserScore     – recording player's score.
//	OpponentScore – opponent's score.
type MatchEntry struct {
	ID            uint64    `json:"id"`
	UserID        uint64    `json:"user_id"`
	Opponent      string    `json:"opponent"`
	Sport         string    `json:"sport"`
	Date          string    `json:"date"`
	UserScore     int       `json:"user_score"`
	OpponentScore int       `json:"opponent_score"`
	CreatedAt     time.Time `json:"created_at"`
}

// Result derives the win/loss/draw outcome from the scores.
func (m MatchEntry) Result() MatchResult {
	switch {
	case m.UserScore > m.OpponentScore:
		return ResultWin
	case m.UserScore < m.OpponentScore:
		return ResultLoss
	}
	return ResultDraw
}
