package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// SportRepo reads the seeded sports catalogue.
type SportRepo struct{ DB *sql.DB }

func NewSportRepo(db *sql.DB) *SportRepo { return &SportRepo{DB: db} }

// List returns all sports ordered by name.
func (r *SportRepo) List(ctx context.Context) ([]model.Sport, error) {
	rows, err := r.DB.QueryContext(ctx, "SELECT id, name FROM sports ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Sport{}
	for rows.Next() {
		var s model.Sport
		if err := rows.Scan(&s.ID, &s.Name); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Exists reports whether a sport with the given name is in the catalogue.
func (r *SportRepo) Exists(ctx context.Context, name string) (bool, error) {
	var one int
	err := r.DB.QueryRowContext(ctx, "SELECT 1 FROM sports WHERE name=? LIMIT 1", name).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
