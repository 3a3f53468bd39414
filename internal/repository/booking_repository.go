package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/quadraplay/court-booking-api/internal/model"
)

// BookingRepo provides CRUD operations for bookings and their hourly slot
// claims. Each active (non-cancelled) booking holds one row per hour in
// booking_slots, guarded by UNIQUE(court_id, date, slot_hour): two players
// racing for the same hour resolve at the index, not in application code.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// BeginTx starts a transaction for a multi-statement booking operation.
func (r *BookingRepo) BeginTx(ctx context.Context) (*sql.Tx, error) {
	return r.db.BeginTx(ctx, nil)
}

// CreateTx inserts a booking and claims its hourly slots within the given
// transaction. hours must be the exact hours in [start, end). Returns
// ErrSlotBlocked when the owner has withdrawn one of the hours and
// ErrSlotTaken when another booking already claims one. The caller must
// commit or roll back.
func (r *BookingRepo) CreateTx(ctx context.Context, tx *sql.Tx, b *model.Booking, hours []int) error {
	// Blocked hours are checked inside the transaction so a block landing
	// between the availability read and the booking write still rejects.
	if len(hours) > 0 {
		q := "SELECT COUNT(*) FROM blocked_slots WHERE court_id=? AND date=? AND slot_hour IN ("
		args := []interface{}{b.CourtID, b.Date}
		for i, h := range hours {
			if i > 0 {
				q += ","
			}
			q += "?"
			args = append(args, h)
		}
		q += ")"
		var n int
		if err := tx.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
			return err
		}
		if n > 0 {
			return ErrSlotBlocked
		}
	}
	res, err := tx.ExecContext(ctx,
		`INSERT INTO bookings (court_id, user_id, date, start_time, end_time, total_price, status, sport, notes)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		b.CourtID, b.UserID, b.Date, b.StartTime, b.EndTime, b.TotalPrice, b.Status, b.Sport, b.Notes)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	if err := r.claimSlotsTx(ctx, tx, b.ID, b.CourtID, b.Date, hours); err != nil {
		return err
	}
	// Query back timestamps and column defaults.
	return tx.QueryRowContext(ctx,
		"SELECT created_at, updated_at FROM bookings WHERE id=?", b.ID).
		Scan(&b.CreatedAt, &b.UpdatedAt)
}

// claimSlotsTx inserts one booking_slots row per hour in a single
// statement. A duplicate key on any hour fails the whole insert, which is
// exactly the all-or-nothing semantics a multi-hour booking needs.
func (r *BookingRepo) claimSlotsTx(ctx context.Context, tx *sql.Tx, bookingID, courtID uint64, date string, hours []int) error {
	if len(hours) == 0 {
		return nil
	}
	query := "INSERT INTO booking_slots (booking_id, court_id, date, slot_hour) VALUES "
	args := make([]interface{}, 0, len(hours)*4)
	for i, h := range hours {
		if i > 0 {
			query += ","
		}
		query += "(?, ?, ?, ?)"
		args = append(args, bookingID, courtID, date, h)
	}
	_, err := tx.ExecContext(ctx, query, args...)
	if isDuplicate(err) {
		return ErrSlotTaken
	}
	return err
}

// ReleaseSlotsTx frees the claims of a booking. Called when the booking is
// cancelled so the hours become available again immediately.
func (r *BookingRepo) ReleaseSlotsTx(ctx context.Context, tx *sql.Tx, bookingID uint64) error {
	_, err := tx.ExecContext(ctx, "DELETE FROM booking_slots WHERE booking_id=?", bookingID)
	return err
}

// GetByID fetches a booking by id without any ownership restriction. The
// caller decides what the requester is allowed to see.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	return r.scanOne(r.db.QueryRowContext(ctx,
		bookingSelect+" WHERE id=? LIMIT 1", id))
}

// GetByIDTx is GetByID inside a transaction with FOR UPDATE, so a status
// transition reads the row it is about to change.
func (r *BookingRepo) GetByIDTx(ctx context.Context, tx *sql.Tx, id uint64) (model.Booking, error) {
	return r.scanOne(tx.QueryRowContext(ctx,
		bookingSelect+" WHERE id=? LIMIT 1 FOR UPDATE", id))
}

// UpdateStatusTx sets the booking status and optional payment reference
// within a transaction. It does not validate the transition; callers run
// model.CanTransition first against the locked row.
func (r *BookingRepo) UpdateStatusTx(ctx context.Context, tx *sql.Tx, id uint64, status model.BookingStatus, paymentRef *string) error {
	var err error
	if paymentRef != nil {
		_, err = tx.ExecContext(ctx,
			"UPDATE bookings SET status=?, payment_ref=? WHERE id=?", status, *paymentRef, id)
	} else {
		_, err = tx.ExecContext(ctx,
			"UPDATE bookings SET status=? WHERE id=?", status, id)
	}
	return err
}

// BookingDetail is a booking joined with its court and establishment for
// display to players.
type BookingDetail struct {
	model.Booking
	CourtName         string  `json:"court_name"`
	EstablishmentID   uint64  `json:"establishment_id"`
	EstablishmentName string  `json:"establishment_name"`
	HourlyRate        float64 `json:"hourly_rate"`
}

const bookingSelect = `SELECT id, court_id, user_id, date, start_time, end_time,
       total_price, status, sport, notes, payment_ref, created_at, updated_at FROM bookings`

const bookingDetailSelect = `SELECT b.id, b.court_id, b.user_id, b.date, b.start_time, b.end_time,
       b.total_price, b.status, b.sport, b.notes, b.payment_ref, b.created_at, b.updated_at,
       c.name, e.id, e.name, c.hourly_rate
  FROM bookings b
  JOIN courts c ON c.id = b.court_id
  JOIN establishments e ON e.id = c.establishment_id`

// ListByUser returns the player's bookings newest first, each joined with
// court and establishment names.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingDetailSelect+" WHERE b.user_id=? ORDER BY b.date DESC, b.start_time DESC, b.id DESC", userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}

// GetDetailForUser returns one booking with its joins, restricted to the
// owning player. Returns ErrBookingNotFound when the row is absent and
// ErrForbidden when it belongs to someone else.
func (r *BookingRepo) GetDetailForUser(ctx context.Context, bookingID, userID uint64) (*BookingDetail, error) {
	det, err := r.getDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if det.UserID != userID {
		return nil, ErrForbidden
	}
	return det, nil
}

// GetForOwner returns a booking after verifying the caller owns the court's
// establishment.
func (r *BookingRepo) GetForOwner(ctx context.Context, bookingID, ownerID uint64) (*BookingDetail, error) {
	det, err := r.getDetail(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	var actual uint64
	err = r.db.QueryRowContext(ctx,
		"SELECT owner_id FROM establishments WHERE id=? LIMIT 1", det.EstablishmentID).Scan(&actual)
	if err != nil {
		return nil, err
	}
	if actual != ownerID {
		return nil, ErrForbidden
	}
	return det, nil
}

// ListByCourtAndDate returns an owner's view of one court's bookings on a
// date, ordered by start time. Cancelled bookings are included so owners
// can see history; callers filter if needed.
func (r *BookingRepo) ListByCourtAndDate(ctx context.Context, courtID uint64, date string) ([]BookingDetail, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingDetailSelect+" WHERE b.court_id=? AND b.date=? ORDER BY b.start_time, b.id", courtID, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanBookingDetails(rows)
}

// ListActiveByCourtAndDate returns the PENDING and CONFIRMED bookings the
// availability resolver needs for one court on one date. Cancelled rows
// never occupy slots.
func (r *BookingRepo) ListActiveByCourtAndDate(ctx context.Context, courtID uint64, date string) ([]model.Booking, error) {
	rows, err := r.db.QueryContext(ctx,
		bookingSelect+" WHERE court_id=? AND date=? AND status<>? ORDER BY start_time", courtID, date, model.StatusCancelled)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		var notes sql.NullString
		var ref sql.NullString
		if err := rows.Scan(&b.ID, &b.CourtID, &b.UserID, &b.Date, &b.StartTime, &b.EndTime,
			&b.TotalPrice, &b.Status, &b.Sport, &notes, &ref, &b.CreatedAt, &b.UpdatedAt); err != nil {
			return nil, err
		}
		b.Notes = notes.String
		if ref.Valid {
			v := ref.String
			b.PaymentRef = &v
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SlotClaimed reports whether any active booking claims the given hour.
// Used when an owner tries to block an hour that already has a booking.
func (r *BookingRepo) SlotClaimed(ctx context.Context, courtID uint64, date string, hour int) (bool, error) {
	var one int
	err := r.db.QueryRowContext(ctx,
		"SELECT 1 FROM booking_slots WHERE court_id=? AND date=? AND slot_hour=? LIMIT 1",
		courtID, date, hour).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *BookingRepo) getDetail(ctx context.Context, bookingID uint64) (*BookingDetail, error) {
	row := r.db.QueryRowContext(ctx, bookingDetailSelect+" WHERE b.id=? LIMIT 1", bookingID)
	det, err := scanBookingDetail(row)
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, err
	}
	return det, nil
}

func (r *BookingRepo) scanOne(row *sql.Row) (model.Booking, error) {
	var b model.Booking
	var notes sql.NullString
	var ref sql.NullString
	err := row.Scan(&b.ID, &b.CourtID, &b.UserID, &b.Date, &b.StartTime, &b.EndTime,
		&b.TotalPrice, &b.Status, &b.Sport, &notes, &ref, &b.CreatedAt, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return b, ErrBookingNotFound
	}
	if err != nil {
		return b, err
	}
	b.Notes = notes.String
	if ref.Valid {
		v := ref.String
		b.PaymentRef = &v
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBookingDetail(row rowScanner) (*BookingDetail, error) {
	var det BookingDetail
	var notes sql.NullString
	var ref sql.NullString
	err := row.Scan(&det.ID, &det.CourtID, &det.UserID, &det.Date, &det.StartTime, &det.EndTime,
		&det.TotalPrice, &det.Status, &det.Sport, &notes, &ref, &det.CreatedAt, &det.UpdatedAt,
		&det.CourtName, &det.EstablishmentID, &det.EstablishmentName, &det.HourlyRate)
	if err != nil {
		return nil, err
	}
	det.Notes = notes.String
	if ref.Valid {
		v := ref.String
		det.PaymentRef = &v
	}
	return &det, nil
}

func scanBookingDetails(rows *sql.Rows) ([]BookingDetail, error) {
	out := []BookingDetail{}
	for rows.Next() {
		det, err := scanBookingDetail(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *det)
	}
	return out, rows.Err()
}

// PruneExpiredClaims deletes claims of past dates. Run periodically so the
// claims table does not grow unbounded; bookings themselves are kept.
func (r *BookingRepo) PruneExpiredClaims(ctx context.Context, before time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"DELETE FROM booking_slots WHERE date < ?", before.UTC().Format("2006-01-02"))
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
