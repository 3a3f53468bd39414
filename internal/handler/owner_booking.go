package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/queue"
	"github.com/quadraplay/court-booking-api/internal/repository"
	"github.com/quadraplay/court-booking-api/internal/service"
)

// OwnerBookingHandler serves the owner's view of incoming bookings:
// per-court listings, confirmation and cancellation.
type OwnerBookingHandler struct {
	Courts   *repository.CourtRepo
	Bookings *repository.BookingRepo
	Log      zerolog.Logger
}

func NewOwnerBookingHandler(ct *repository.CourtRepo, b *repository.BookingRepo, log zerolog.Logger) *OwnerBookingHandler {
	return &OwnerBookingHandler{Courts: ct, Bookings: b, Log: log}
}

// ListForCourt returns all bookings of one of the owner's courts on a
// date, cancelled included.
func (h *OwnerBookingHandler) ListForCourt(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	courtID := paramID(c, "id")
	if courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date required as YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	if err := h.Courts.CheckOwner(ctx, courtID, uid); err != nil {
		return errJSON(c, err, "load court failed")
	}
	list, err := h.Bookings.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list bookings failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// Confirm moves a PENDING booking on one of the owner's courts to
// CONFIRMED without payment (walk-in or pay-on-site arrangements) and
// publishes the confirmation event.
func (h *OwnerBookingHandler) Confirm(c echo.Context) error {
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

	det, err := h.Bookings.GetForOwner(ctx, bookingID, uid)
	if err != nil {
		return errJSON(c, err, "load booking failed")
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

	booking, err := h.Bookings.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		return errJSON(c, err, "load booking failed")
	}
	if !model.CanTransition(booking.Status, model.StatusConfirmed) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking is not confirmable in status " + string(booking.Status)})
	}
	if err := h.Bookings.UpdateStatusTx(ctx, tx, bookingID, model.StatusConfirmed, nil); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update booking failed"})
	}
	if err := tx.Commit(); err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "commit failed"})
	}
	committed = true

	go func() {
		pubCtx, pubCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer pubCancel()
		_ = service.PublishBookingConfirmed(pubCtx, h.Log, queue.BookingConfirmedEvent{
			BookingID:         det.ID,
			UserID:            det.UserID,
			CourtID:           det.CourtID,
			CourtName:         det.CourtName,
			EstablishmentID:   det.EstablishmentID,
			EstablishmentName: det.EstablishmentName,
			Sport:             det.Sport,
			Date:              det.Date,
			StartTime:         det.StartTime,
			EndTime:           det.EndTime,
			TotalPrice:        det.TotalPrice,
			ConfirmedAt:       time.Now().UTC().Format(time.RFC3339),
		})
	}()

	return c.JSON(http.StatusOK, echo.Map{"id": bookingID, "status": model.StatusConfirmed})
}

// Cancel lets the owner cancel a booking on their court (maintenance,
// no-show policy). Slot claims are released in the same transaction.
func (h *OwnerBookingHandler) Cancel(c echo.Context) error {
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

	if _, err := h.Bookings.GetForOwner(ctx, bookingID, uid); err != nil {
		return errJSON(c, err, "load booking failed")
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

	booking, err := h.Bookings.GetByIDTx(ctx, tx, bookingID)
	if err != nil {
		return errJSON(c, err, "load booking failed")
	}
	if !model.CanTransition(booking.Status, model.StatusCancelled) {
		return c.JSON(http.StatusConflict, echo.Map{"error": "booking already cancelled"})
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
