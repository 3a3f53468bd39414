package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/availability"
	"github.com/quadraplay/court-booking-api/internal/config"
	"github.com/quadraplay/court-booking-api/internal/repository"
)

// PublicHandler serves unauthenticated catalogue and availability routes.
type PublicHandler struct {
	Cfg            config.Config
	Sports         *repository.SportRepo
	Establishments *repository.EstablishmentRepo
	Courts         *repository.CourtRepo
	Bookings       *repository.BookingRepo
	Blocked        *repository.BlockedSlotRepo
}

func NewPublicHandler(cfg config.Config, s *repository.SportRepo, e *repository.EstablishmentRepo,
	ct *repository.CourtRepo, b *repository.BookingRepo, bl *repository.BlockedSlotRepo) *PublicHandler {
	return &PublicHandler{Cfg: cfg, Sports: s, Establishments: e, Courts: ct, Bookings: b, Blocked: bl}
}

// ListSports returns the sports catalogue.
func (h *PublicHandler) ListSports(c echo.Context) error {
	sports, err := h.Sports.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list sports failed"})
	}
	return c.JSON(http.StatusOK, sports)
}

// ListEstablishments returns all venues.
func (h *PublicHandler) ListEstablishments(c echo.Context) error {
	list, err := h.Establishments.List(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list establishments failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// GetEstablishment returns one venue with its courts.
func (h *PublicHandler) GetEstablishment(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	est, err := h.Establishments.GetByID(ctx, id)
	if err != nil {
		return errJSON(c, err, "load establishment failed")
	}
	courts, err := h.Courts.List(ctx, "", id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list courts failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"establishment": est,
		"courts":        courts,
	})
}

// ListEstablishmentCourts returns the courts of one venue.
func (h *PublicHandler) ListEstablishmentCourts(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ctx := c.Request().Context()
	if _, err := h.Establishments.GetByID(ctx, id); err != nil {
		return errJSON(c, err, "load establishment failed")
	}
	courts, err := h.Courts.List(ctx, c.QueryParam("sport"), id)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list courts failed"})
	}
	return c.JSON(http.StatusOK, courts)
}

// ListCourts returns courts, filterable with ?sport= and ?establishment_id=.
func (h *PublicHandler) ListCourts(c echo.Context) error {
	var estID uint64
	if v := c.QueryParam("establishment_id"); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid establishment_id"})
		}
		estID = n
	}
	courts, err := h.Courts.List(c.Request().Context(), c.QueryParam("sport"), estID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list courts failed"})
	}
	return c.JSON(http.StatusOK, courts)
}

// GetCourt returns one court.
func (h *PublicHandler) GetCourt(c echo.Context) error {
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	ct, err := h.Courts.GetByID(c.Request().Context(), id)
	if err != nil {
		return errJSON(c, err, "load court failed")
	}
	return c.JSON(http.StatusOK, ct)
}

// GetAvailability returns the hourly slot grid of a court for one date.
// Each slot is available, booked, blocked or past; clients render the grid
// directly without re-deriving any state.
func (h *PublicHandler) GetAvailability(c echo.Context) error {
	courtID := paramID(c, "id")
	if courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	date := c.QueryParam("date")
	if !validDate(date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date required as YYYY-MM-DD"})
	}
	ctx := c.Request().Context()
	ct, err := h.Courts.GetByID(ctx, courtID)
	if err != nil {
		return errJSON(c, err, "load court failed")
	}
	bookings, err := h.Bookings.ListActiveByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load bookings failed"})
	}
	blocked, err := h.Blocked.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load blocked slots failed"})
	}
	slots, err := availability.Resolve(date, h.Cfg.OpenHour, h.Cfg.CloseHour, time.Now().UTC(), bookings, blocked)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"court_id":    ct.ID,
		"date":        date,
		"hourly_rate": ct.HourlyRate,
		"slots":       slots,
	})
}
