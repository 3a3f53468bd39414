package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// CourtRepo manages courts. Ownership is always resolved through the
// parent establishment; courts carry no owner column of their own.
type CourtRepo struct{ DB *sql.DB }

func NewCourtRepo(db *sql.DB) *CourtRepo { return &CourtRepo{DB: db} }

const courtCols = `c.id, c.establishment_id, c.name, c.sport, c.hourly_rate, c.indoor,
       c.address, c.photo_url, c.rating, c.created_at, c.updated_at`

// Create inserts a court under an establishment the caller owns.
func (r *CourtRepo) Create(ctx context.Context, ownerID uint64, ct *model.Court) (uint64, error) {
	if err := r.checkEstablishmentOwner(ctx, ct.EstablishmentID, ownerID); err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO courts (establishment_id, name, sport, hourly_rate, indoor, address)
		 VALUES (?,?,?,?,?,?)`,
		ct.EstablishmentID, ct.Name, ct.Sport, ct.HourlyRate, ct.Indoor, ct.Address)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches one court.
func (r *CourtRepo) GetByID(ctx context.Context, id uint64) (model.Court, error) {
	var ct model.Court
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+courtCols+" FROM courts c WHERE c.id=? LIMIT 1", id).Scan(
		&ct.ID, &ct.EstablishmentID, &ct.Name, &ct.Sport, &ct.HourlyRate, &ct.Indoor,
		&ct.Address, &ct.PhotoURL, &ct.Rating, &ct.CreatedAt, &ct.UpdatedAt)
	if err == sql.ErrNoRows {
		return ct, ErrCourtNotFound
	}
	return ct, err
}

// List returns courts for public browsing, optionally filtered by sport
// and/or establishment. Zero values mean no filter.
func (r *CourtRepo) List(ctx context.Context, sport string, establishmentID uint64) ([]model.Court, error) {
	q := "SELECT " + courtCols + " FROM courts c WHERE 1=1"
	args := []interface{}{}
	if sport != "" {
		q += " AND c.sport=?"
		args = append(args, sport)
	}
	if establishmentID != 0 {
		q += " AND c.establishment_id=?"
		args = append(args, establishmentID)
	}
	q += " ORDER BY c.id DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourts(rows)
}

// ListByOwner returns all courts across the owner's establishments.
func (r *CourtRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Court, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+courtCols+` FROM courts c
		 JOIN establishments e ON e.id = c.establishment_id
		 WHERE e.owner_id=? ORDER BY c.id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanCourts(rows)
}

// Update rewrites the mutable fields after verifying that the caller owns
// the court's establishment.
func (r *CourtRepo) Update(ctx context.Context, ownerID uint64, ct *model.Court) error {
	if err := r.CheckOwner(ctx, ct.ID, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE courts SET name=?, sport=?, hourly_rate=?, indoor=?, address=? WHERE id=?",
		ct.Name, ct.Sport, ct.HourlyRate, ct.Indoor, ct.Address, ct.ID)
	return err
}

// UpdatePhotoURL stores the uploaded photo's delivery URL.
func (r *CourtRepo) UpdatePhotoURL(ctx context.Context, ownerID, courtID uint64, url string) error {
	if err := r.CheckOwner(ctx, courtID, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "UPDATE courts SET photo_url=? WHERE id=?", url, courtID)
	return err
}

// Delete removes a court after verifying ownership. Bookings, slot claims
// and blocked slots cascade at the schema level.
func (r *CourtRepo) Delete(ctx context.Context, ownerID, courtID uint64) error {
	if err := r.CheckOwner(ctx, courtID, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM courts WHERE id=?", courtID)
	return err
}

// CheckOwner verifies that ownerID owns the establishment the court
// belongs to. Returns ErrCourtNotFound or ErrForbidden accordingly.
func (r *CourtRepo) CheckOwner(ctx context.Context, courtID, ownerID uint64) error {
	var actual uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT e.owner_id FROM courts c
		 JOIN establishments e ON e.id = c.establishment_id
		 WHERE c.id=? LIMIT 1`, courtID).Scan(&actual)
	if err == sql.ErrNoRows {
		return ErrCourtNotFound
	}
	if err != nil {
		return err
	}
	if actual != ownerID {
		return ErrForbidden
	}
	return nil
}

func (r *CourtRepo) checkEstablishmentOwner(ctx context.Context, estID, ownerID uint64) error {
	var actual uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT owner_id FROM establishments WHERE id=? LIMIT 1", estID).Scan(&actual)
	if err == sql.ErrNoRows {
		return ErrEstablishmentNotFound
	}
	if err != nil {
		return err
	}
	if actual != ownerID {
		return ErrForbidden
	}
	return nil
}

func scanCourts(rows *sql.Rows) ([]model.Court, error) {
	out := []model.Court{}
	for rows.Next() {
		var ct model.Court
		if err := rows.Scan(&ct.ID, &ct.EstablishmentID, &ct.Name, &ct.Sport, &ct.HourlyRate,
			&ct.Indoor, &ct.Address, &ct.PhotoURL, &ct.Rating, &ct.CreatedAt, &ct.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, ct)
	}
	return out, rows.Err()
}
