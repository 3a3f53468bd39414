package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// MatchRepo stores the personal match history players keep for themselves.
type MatchRepo struct{ DB *sql.DB }

func NewMatchRepo(db *sql.DB) *MatchRepo { return &MatchRepo{DB: db} }

// Create records a match entry and returns its ID.
func (r *MatchRepo) Create(ctx context.Context, m *model.MatchEntry) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO match_history (user_id, opponent, sport, date, user_score, opponent_score) VALUES (?,?,?,?,?,?)",
		m.UserID, m.Opponent, m.Sport, m.Date, m.UserScore, m.OpponentScore)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns the user's match history, most recent date first.
func (r *MatchRepo) ListByUser(ctx context.Context, userID uint64) ([]model.MatchEntry, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, opponent, sport, date, user_score, opponent_score, created_at
		   FROM match_history WHERE user_id=? ORDER BY date DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.MatchEntry{}
	for rows.Next() {
		var m model.MatchEntry
		if err := rows.Scan(&m.ID, &m.UserID, &m.Opponent, &m.Sport, &m.Date,
			&m.UserScore, &m.OpponentScore, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
