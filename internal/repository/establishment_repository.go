package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// EstablishmentRepo manages the venues that group courts under an owner.
type EstablishmentRepo struct{ DB *sql.DB }

func NewEstablishmentRepo(db *sql.DB) *EstablishmentRepo { return &EstablishmentRepo{DB: db} }

// Create inserts an establishment owned by ownerID and returns its ID.
func (r *EstablishmentRepo) Create(ctx context.Context, e *model.Establishment) (uint64, error) {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO establishments (owner_id, name, address, phone) VALUES (?,?,?,?)",
		e.OwnerID, e.Name, e.Address, e.Phone)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByID fetches one establishment.
func (r *EstablishmentRepo) GetByID(ctx context.Context, id uint64) (model.Establishment, error) {
	var e model.Establishment
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, owner_id, name, address, phone, created_at, updated_at FROM establishments WHERE id=? LIMIT 1",
		id).Scan(&e.ID, &e.OwnerID, &e.Name, &e.Address, &e.Phone, &e.CreatedAt, &e.UpdatedAt)
	if err == sql.ErrNoRows {
		return e, ErrEstablishmentNotFound
	}
	return e, err
}

// List returns every establishment, newest first. Public browsing is
// unauthenticated so no owner filter applies here.
func (r *EstablishmentRepo) List(ctx context.Context) ([]model.Establishment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, owner_id, name, address, phone, created_at, updated_at FROM establishments ORDER BY id DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEstablishments(rows)
}

// ListByOwner returns the establishments of one owner.
func (r *EstablishmentRepo) ListByOwner(ctx context.Context, ownerID uint64) ([]model.Establishment, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, owner_id, name, address, phone, created_at, updated_at FROM establishments WHERE owner_id=? ORDER BY id DESC",
		ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanEstablishments(rows)
}

// Update rewrites the mutable fields. Only the owner may update; a
// mismatched owner yields ErrForbidden, a missing row
// ErrEstablishmentNotFound.
func (r *EstablishmentRepo) Update(ctx context.Context, e *model.Establishment) error {
	if err := r.checkOwner(ctx, e.ID, e.OwnerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx,
		"UPDATE establishments SET name=?, address=?, phone=? WHERE id=?",
		e.Name, e.Address, e.Phone, e.ID)
	return err
}

// Delete removes an establishment after verifying ownership. Courts and
// their bookings cascade at the schema level.
func (r *EstablishmentRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	if err := r.checkOwner(ctx, id, ownerID); err != nil {
		return err
	}
	_, err := r.DB.ExecContext(ctx, "DELETE FROM establishments WHERE id=?", id)
	return err
}

func (r *EstablishmentRepo) checkOwner(ctx context.Context, id, ownerID uint64) error {
	var actual uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT owner_id FROM establishments WHERE id=? LIMIT 1", id).Scan(&actual)
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

func scanEstablishments(rows *sql.Rows) ([]model.Establishment, error) {
	out := []model.Establishment{}
	for rows.Next() {
		var e model.Establishment
		if err := rows.Scan(&e.ID, &e.OwnerID, &e.Name, &e.Address, &e.Phone, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
