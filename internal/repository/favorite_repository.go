package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// FavoriteRepo manages a player's saved courts. Each favorite stores a
// display snapshot of the court taken at favoriting time, so later renames
// or price changes do not rewrite the player's list.
type FavoriteRepo struct{ DB *sql.DB }

func NewFavoriteRepo(db *sql.DB) *FavoriteRepo { return &FavoriteRepo{DB: db} }

// Add favorites a court for the user, snapshotting its current display
// fields. A second add of the same court maps to ErrFavoriteExists via the
// UNIQUE(user_id, court_id) index.
func (r *FavoriteRepo) Add(ctx context.Context, userID, courtID uint64) (uint64, error) {
	var (
		name, sport, address string
		rate                 float64
		indoor               bool
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT name, sport, hourly_rate, indoor, address FROM courts WHERE id=? LIMIT 1",
		courtID).Scan(&name, &sport, &rate, &indoor, &address)
	if err == sql.ErrNoRows {
		return 0, ErrCourtNotFound
	}
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO favorites (user_id, court_id, court_name, sport, hourly_rate, indoor, address)
		 VALUES (?,?,?,?,?,?,?)`,
		userID, courtID, name, sport, rate, indoor, address)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrFavoriteExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByUser returns the user's favorites with their snapshots, newest
// first.
func (r *FavoriteRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Favorite, error) {
	rows, err := r.DB.QueryContext(ctx,
		`SELECT id, user_id, court_id, court_name, sport, hourly_rate, indoor, address, created_at
		   FROM favorites WHERE user_id=? ORDER BY id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Favorite{}
	for rows.Next() {
		var f model.Favorite
		if err := rows.Scan(&f.ID, &f.UserID, &f.CourtID, &f.CourtName, &f.Sport,
			&f.HourlyRate, &f.Indoor, &f.Address, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Remove unfavorites a court. Deleting by (user, court) rather than row id
// keeps the client API symmetric with Add.
func (r *FavoriteRepo) Remove(ctx context.Context, userID, courtID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM favorites WHERE user_id=? AND court_id=?", userID, courtID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrFavoriteNotFound
	}
	return nil
}
