package middleware

// identity.go holds helpers shared by the cache and rate-limit middleware
// for attributing a request to a caller.

import (
	"fmt"

	"github.com/labstack/echo/v4"
)

// callerID returns a stable identifier for the requester: the user_id claim
// set by JWTAuth when present, otherwise "guest". Anonymous traffic shares
// one bucket per IP via RealIP in the rate limiter.
func callerID(c echo.Context) string {
	switch v := c.Get("user_id").(type) {
	case string:
		if v != "" {
			return v
		}
	case float64:
		return fmt.Sprintf("%.0f", v)
	case uint64:
		return fmt.Sprintf("%d", v)
	}
	return "guest"
}
