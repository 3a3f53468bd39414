package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/repository"
)

// MatchHandler records and lists a player's personal match history.
type MatchHandler struct {
	Matches *repository.MatchRepo
}

func NewMatchHandler(m *repository.MatchRepo) *MatchHandler {
	return &MatchHandler{Matches: m}
}

type createMatchReq struct {
	Opponent      string `json:"opponent"`
	Sport         string `json:"sport"`
	Date          string `json:"date"`
	UserScore     int    `json:"user_score"`
	OpponentScore int    `json:"opponent_score"`
}

type matchResp struct {
	model.MatchEntry
	Result model.MatchResult `json:"result"`
}

// Create records a match result for the caller.
func (h *MatchHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req createMatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Opponent = strings.TrimSpace(req.Opponent)
	if req.Opponent == "" || !validDate(req.Date) {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "opponent and date required"})
	}
	if req.UserScore < 0 || req.OpponentScore < 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scores must be non-negative"})
	}
	entry := model.MatchEntry{
		UserID:        uid,
		Opponent:      req.Opponent,
		Sport:         strings.TrimSpace(req.Sport),
		Date:          req.Date,
		UserScore:     req.UserScore,
		OpponentScore: req.OpponentScore,
	}
	id, err := h.Matches.Create(c.Request().Context(), &entry)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create match failed"})
	}
	entry.ID = id
	return c.JSON(http.StatusCreated, matchResp{MatchEntry: entry, Result: entry.Result()})
}

// List returns the caller's match history with derived results.
func (h *MatchHandler) List(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	entries, err := h.Matches.ListByUser(c.Request().Context(), uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "list matches failed"})
	}
	out := make([]matchResp, 0, len(entries))
	for _, e := range entries {
		out = append(out, matchResp{MatchEntry: e, Result: e.Result()})
	}
	return c.JSON(http.StatusOK, out)
}
