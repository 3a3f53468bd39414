// Package handler contains the HTTP handlers for the court booking API.
// Handlers bind requests, call repositories and translate sentinel errors
// into JSON error responses; business rules live below them.
package handler

import (
	"errors"
	"net/http"
	"regexp"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/repository"
)

// getUserID extracts the user_id claim stored by the JWT middleware and
// converts it to uint64. JWT numeric claims arrive as float64.
func getUserID(c echo.Context) (uint64, error) {
	switch t := c.Get("user_id").(type) {
	case uint64:
		return t, nil
	case int:
		return uint64(t), nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid user_id in context")
}

// paramID parses a numeric path parameter. Zero means absent or malformed.
func paramID(c echo.Context, name string) uint64 {
	n, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// validDate reports whether s looks like a YYYY-MM-DD calendar date.
// Repositories and the availability resolver re-validate; this keeps
// obviously bad input out of queries.
func validDate(s string) bool {
	return dateRe.MatchString(s)
}

// errJSON maps a repository sentinel to its HTTP response, or falls back
// to a 500 with the given message.
func errJSON(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, repository.ErrEstablishmentNotFound),
		errors.Is(err, repository.ErrCourtNotFound),
		errors.Is(err, repository.ErrBookingNotFound),
		errors.Is(err, repository.ErrBlockedSlotNotFound),
		errors.Is(err, repository.ErrFavoriteNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": err.Error()})
	case errors.Is(err, repository.ErrSlotTaken),
		errors.Is(err, repository.ErrSlotBlocked),
		errors.Is(err, repository.ErrFavoriteExists),
		errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
