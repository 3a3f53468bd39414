package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/repository"
)

// OwnerHandler bundles the repositories owners use to manage their venues,
// courts, blocked slots and incoming bookings.
type OwnerHandler struct {
	Establishments *repository.EstablishmentRepo
	Courts         *repository.CourtRepo
	Sports         *repository.SportRepo
	Bookings       *repository.BookingRepo
	Blocked        *repository.BlockedSlotRepo
}

func NewOwnerHandler(e *repository.EstablishmentRepo, ct *repository.CourtRepo, s *repository.SportRepo,
	b *repository.BookingRepo, bl *repository.BlockedSlotRepo) *OwnerHandler {
	if e == nil || ct == nil || s == nil || b == nil || bl == nil {
		panic("nil repository passed to NewOwnerHandler")
	}
	return &OwnerHandler{Establishments: e, Courts: ct, Sports: s, Bookings: b, Blocked: bl}
}

type establishmentReq struct {
	Name    string  `json:"name"`
	Address string  `json:"address"`
	Phone   *string `json:"phone"`
}

// CreateEstablishment registers a new venue owned by the caller.
func (h *OwnerHandler) CreateEstablishment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req establishmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and address required"})
	}
	est := model.Establishment{OwnerID: uid, Name: req.Name, Address: req.Address, Phone: req.Phone}
	id, err := h.Establishments.Create(c.Request().Context(), &est)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create establishment failed"})
	}
	est.ID = id
	return c.JSON(http.StatusCreated, est)
}

// ListEstablishments returns the caller's venues.
func (h *OwnerHandler) ListEstablishments(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list, err := h.Establishments.ListByOwner(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list establishments failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// UpdateEstablishment rewrites a venue's details.
func (h *OwnerHandler) UpdateEstablishment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req establishmentReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	req.Address = strings.TrimSpace(req.Address)
	if req.Name == "" || req.Address == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and address required"})
	}
	est := model.Establishment{ID: id, OwnerID: uid, Name: req.Name, Address: req.Address, Phone: req.Phone}
	if err := h.Establishments.Update(c.Request().Context(), &est); err != nil {
		return errJSON(c, err, "update establishment failed")
	}
	return c.JSON(http.StatusOK, est)
}

// DeleteEstablishment removes a venue and everything under it.
func (h *OwnerHandler) DeleteEstablishment(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	id := paramID(c, "id")
	if id == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Establishments.Delete(c.Request().Context(), id, uid); err != nil {
		return errJSON(c, err, "delete establishment failed")
	}
	return c.NoContent(http.StatusNoContent)
}
