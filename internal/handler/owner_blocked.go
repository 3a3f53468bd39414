package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/model"
)

type blockSlotReq struct {
	Date     string `json:"date"`      // YYYY-MM-DD
	SlotHour int    `json:"slot_hour"` // hour of day, within court hours
	Reason   string `json:"reason"`
}

// BlockSlot withdraws one hour of a court from availability. Hours already
// claimed by an active booking cannot be blocked; cancel the booking
// first.
func (h *OwnerHandler) BlockSlot(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	courtID := paramID(c, "id")
	if courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req blockSlotReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date required as YYYY-MM-DD"})
	}
	if req.SlotHour < 0 || req.SlotHour > 23 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "slot_hour out of range"})
	}
	ctx := c.Request().Context()
	if err := h.Courts.CheckOwner(ctx, courtID, uid); err != nil {
		return errJSON(c, err, "load court failed")
	}
	bs := model.BlockedSlot{
		CourtID:  courtID,
		Date:     req.Date,
		SlotHour: req.SlotHour,
		Reason:   strings.TrimSpace(req.Reason),
	}
	id, err := h.Blocked.Create(ctx, &bs)
	if err != nil {
		return errJSON(c, err, "block slot failed")
	}
	bs.ID = id
	return c.JSON(http.StatusCreated, bs)
}

// ListBlockedSlots returns a court's blocked hours for a date.
func (h *OwnerHandler) ListBlockedSlots(c echo.Context) error {
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
	list, err := h.Blocked.ListByCourtAndDate(ctx, courtID, date)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list blocked slots failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// UnblockSlot releases a blocked hour back to availability. Ownership is
// resolved from the blocked slot itself, so the route only needs its id.
func (h *OwnerHandler) UnblockSlot(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	blockID := paramID(c, "id")
	if blockID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Blocked.Delete(c.Request().Context(), blockID, uid); err != nil {
		return errJSON(c, err, "unblock slot failed")
	}
	return c.NoContent(http.StatusNoContent)
}
