package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quadraplay/court-booking-api/internal/availability"
	"github.com/quadraplay/court-booking-api/internal/config"
	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/payment"
	"github.com/quadraplay/court-booking-api/internal/queue"
	"github.com/quadraplay/court-booking-api/internal/repository"
	"github.com/quadraplay/court-booking-api/internal/service"
)

// BookingHandler serves the player-facing booking lifecycle: create, pay,
// list, inspect and cancel.
type BookingHandler struct {
	Cfg       config.Config
	Courts    *repository.CourtRepo
	Bookings  *repository.BookingRepo
	Processor payment.Processor
	Log       zerolog.Logger
}

func NewBookingHandler(cfg config.Config, ct *repository.CourtRepo, b *repository.BookingRepo,
	p payment.Processor, log zerolog.Logger) *BookingHandler {
	return &BookingHandler{Cfg: cfg, Courts: ct, Bookings: b, Processor: p, Log: log}
}

type createBookingReq struct {
	CourtID   uint64 `json:"court_id"`
	Date      string `json:"date"`       // YYYY-MM-DD
	StartTime string `json:"start_time"` // HH:MM, whole hours
	EndTime   string `json:"end_time"`   // HH:MM, exclusive
	Notes     string `json:"notes"`
}

// Create books a court for a contiguous range of whole hours. The hourly
// slot claims are written in the same transaction as the booking row, so
// two players racing for an hour cannot both succeed. The price is always
// computed server-side from the court's current rate.
func (h *BookingHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.CourtID == 0 || !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "court_id and date required"})
	}
	startH, okS := availability.ParseHour(req.StartTime)
	endH, okE := availability.ParseHour(req.EndTime)
	if !okS || !okE || startH >= endH {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "start_time must be a whole hour before end_time"})
	}
	if endH-startH > 4 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "bookings are limited to 4 hours"})
	}
	// The last bookable slot starts at CloseHour, so a booking may end at
	// CloseHour+1.
	if startH < h.Cfg.OpenHour || endH > h.Cfg.CloseHour+1 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking outside court hours"})
	}
	day, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid date"})
	}
	if day.Add(time.Duration(startH) * time.Hour).Before(time.Now().UTC()) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "booking starts in the past"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	court, err := h.Courts.GetByID(ctx, req.CourtID)
	if err != nil {
		return errJSON(c, err, "load court failed")
	}

	booking := model.Booking{
		CourtID:    court.ID,
		UserID:     uid,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: availability.Price(court.HourlyRate, endH-startH),
		Status:     model.StatusPending,
		Sport:      court.Sport,
		Notes:      strings.TrimSpace(req.Notes),
	}
	hours := make([]int, 0, endH-startH)
	for hr := startH; hr < endH; hr++ {
		hours = append(hours, hr)
	}

	tx, err := h.Bookings.BeginTx(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	if err := h.Bookings.CreateTx(ctx, tx, &booking, hours); err != nil {
		return errJSON(c, err, "create booking failed")
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	return c.JSON(http.StatusCreated, booking)
}

type payReq struct {
	Card payment.Card `json:"card"`
}

// Pay charges the booking's total to the submitted card and confirms the
// booking. Only the booking's owner may pay, and only while it is PENDING.
// A successful charge stores the receipt reference and publishes a
// booking.confirmed event.
func (h *BookingHandler) Pay(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID := paramID(c, "id")
	if bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req payReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	tx, err := h.Bookings.BeginTx(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.Bookings.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		return errJSON(c, err, "load booking failed")
	}
	if booking.UserID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if !model.CanTransition(booking.Status, model.StatusConfirmed) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not payable in status " + string(booking.Status)})
	}

	receipt, err := h.Processor.Charge(req.Card, booking.TotalPrice)
	if err != nil {
		if err == payment.ErrInvalidCard {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid card details"})
		}
		return c.JSON(http.StatusPaymentRequired, echo.Map{"error": "payment declined"})
	}

	if err := h.Bookings.UpdateStatusTx(ctx, tx, bookingID, model.StatusConfirmed, &receipt); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	h.publishConfirmed(bookingID, receipt)

	return c.JSON(http.StatusOK, echo.Map{
		"id":          bookingID,
		"status":      model.StatusConfirmed,
		"payment_ref": receipt,
		"total_price": booking.TotalPrice,
	})
}

// publishConfirmed emits a booking.confirmed event in the background. The
// event is best-effort; a broker outage never fails the payment.
func (h *BookingHandler) publishConfirmed(bookingID uint64, receipt string) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		b, err := h.Bookings.GetByID(ctx, bookingID)
		if err != nil {
			h.Log.Warn().Err(err).Uint64("booking_id", bookingID).Msg("event: load booking failed")
			return
		}
		d, err := h.Bookings.GetDetailForUser(ctx, bookingID, b.UserID)
		if err != nil {
			h.Log.Warn().Err(err).Uint64("booking_id", bookingID).Msg("event: load detail failed")
			return
		}
		_ = service.PublishBookingConfirmed(ctx, h.Log, queue.BookingConfirmedEvent{
			BookingID:         d.ID,
			UserID:            d.UserID,
			CourtID:           d.CourtID,
			CourtName:         d.CourtName,
			EstablishmentID:   d.EstablishmentID,
			EstablishmentName: d.EstablishmentName,
			Sport:             d.Sport,
			Date:              d.Date,
			StartTime:         d.StartTime,
			EndTime:           d.EndTime,
			TotalPrice:        d.TotalPrice,
			PaymentRef:        receipt,
			ConfirmedAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}()
}

// ListMine returns the caller's bookings with court and venue names.
func (h *BookingHandler) ListMine(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list, err := h.Bookings.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// Get returns one of the caller's bookings.
func (h *BookingHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID := paramID(c, "id")
	if bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	det, err := h.Bookings.GetDetailForUser(c.Request().Context(), bookingID, uid)
	if err != nil {
		return errJSON(c, err, "load booking failed")
	}
	return c.JSON(http.StatusOK, det)
}

// Cancel moves the caller's booking to CANCELLED and releases its slot
// claims so the hours can be rebooked immediately.
func (h *BookingHandler) Cancel(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	bookingID := paramID(c, "id")
	if bookingID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tx, err := h.Bookings.BeginTx(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "begin tx failed"})
	}
	committed := false
	defer func() {
		if !committed {
			_ = tx.Rollback()
		}
	}()

	booking, err := h.Bookings.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		return errJSON(c, err, "load booking failed")
	}
	if booking.UserID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking already cancelled"})
	}
	// A booking whose start has passed is history, not cancellable.
	if startH, ok := availability.ParseHour(booking.StartTime); ok {
		if day, perr := time.Parse("2006-01-02", booking.Date); perr == nil {
			if day.Add(time.Duration(startH) * time.Hour).Before(time.Now().UTC()) {
				return c.JSON(http.StatusConflict, echo.Map{"error": "booking already started"})
			}
		}
	}
	if err := h.Bookings.UpdateStatusTx(ctx, tx, bookingID, model.StatusCancelled, nil); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}
	if err := h.Bookings.ReleaseSlotsTx(ctx, tx, bookingID); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "release slots failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	return c.JSON(http.StatusOK, echo.Map{"id": bookingID, "status": model.StatusCancelled})
}
