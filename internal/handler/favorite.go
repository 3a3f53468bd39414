package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/repository"
)

// FavoriteHandler lets players save and unsave courts.
type FavoriteHandler struct {
	Favorites *repository.FavoriteRepo
}

func NewFavoriteHandler(f *repository.FavoriteRepo) *FavoriteHandler {
	return &FavoriteHandler{Favorites: f}
}

type favoriteReq struct {
	CourtID uint64 `json:"court_id"`
}

// Add favorites a court for the caller.
func (h *FavoriteHandler) Add(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req favoriteReq
	if err := c.Bind(&req); err != nil || req.CourtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "court_id required"})
	}
	id, err := h.Favorites.Add(c.Request().Context(), uid, req.CourtID)
	if err != nil {
		return errJSON(c, err, "add favorite failed")
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": id, "court_id": req.CourtID})
}

// List returns the caller's favorite courts.
func (h *FavoriteHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	list, err := h.Favorites.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list favorites failed"})
	}
	return c.JSON(http.StatusOK, list)
}

// Remove unfavorites a court.
func (h *FavoriteHandler) Remove(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	courtID := paramID(c, "court_id")
	if courtID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid court_id"})
	}
	if err := h.Favorites.Remove(c.Request().Context(), uid, courtID); err != nil {
		return errJSON(c, err, "remove favorite failed")
	}
	return c.NoContent(http.StatusNoContent)
}
