package repository

import (
	"context"
	"database/sql"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// BlockedSlotRepo manages owner-withdrawn hours. A blocked slot covers a
// single (court, date, hour); blocking a range means one row per hour.
type BlockedSlotRepo struct{ DB *sql.DB }

func NewBlockedSlotRepo(db *sql.DB) *BlockedSlotRepo { return &BlockedSlotRepo{DB: db} }

// Create inserts a blocked slot. Duplicate (court, date, hour) rows map to
// ErrConflict, as does attempting to block an hour an active booking
// already claims.
func (r *BlockedSlotRepo) Create(ctx context.Context, bs *model.BlockedSlot) (uint64, error) {
	var one int
	err := r.DB.QueryRowContext(ctx,
		"SELECT 1 FROM booking_slots WHERE court_id=? AND date=? AND slot_hour=? LIMIT 1",
		bs.CourtID, bs.Date, bs.SlotHour).Scan(&one)
	if err == nil {
		return 0, ErrConflict
	}
	if err != sql.ErrNoRows {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO blocked_slots (court_id, date, slot_hour, reason) VALUES (?,?,?,?)",
		bs.CourtID, bs.Date, bs.SlotHour, bs.Reason)
	if err != nil {
		if isDuplicate(err) {
			return 0, ErrConflict
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// ListByCourtAndDate returns the blocked slots for one court on one date,
// ordered by hour. The availability resolver consumes this directly.
func (r *BlockedSlotRepo) ListByCourtAndDate(ctx context.Context, courtID uint64, date string) ([]model.BlockedSlot, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, court_id, date, slot_hour, reason, created_at FROM blocked_slots WHERE court_id=? AND date=? ORDER BY slot_hour",
		courtID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.BlockedSlot{}
	for rows.Next() {
		var bs model.BlockedSlot
		if err := rows.Scan(&bs.ID, &bs.CourtID, &bs.Date, &bs.SlotHour, &bs.Reason, &bs.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

// Delete removes a blocked slot after verifying that ownerID owns the
// court's establishment. Returns ErrBlockedSlotNotFound or ErrForbidden.
func (r *BlockedSlotRepo) Delete(ctx context.Context, id, ownerID uint64) error {
	var actual uint64
	err := r.DB.QueryRowContext(ctx,
		`SELECT e.owner_id FROM blocked_slots bs
		 JOIN courts c ON c.id = bs.court_id
		 JOIN establishments e ON e.id = c.establishment_id
		 WHERE bs.id=? LIMIT 1`, id).Scan(&actual)
	if err == sql.ErrNoRows {
		return ErrBlockedSlotNotFound
	}
	if err != nil {
		return err
	}
	if actual != ownerID {
		return ErrForbidden
	}
	_, err = r.DB.ExecContext(ctx, "DELETE FROM blocked_slots WHERE id=?", id)
	return err
}
