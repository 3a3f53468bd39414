package router

import (
	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/handler"
	"github.com/quadraplay/court-booking-api/internal/middleware"
	"github.com/quadraplay/court-booking-api/internal/model"
)

// RegisterPlayer registers player-scoped endpoints under /v1. All routes
// require a valid JWT with the PLAYER role. Players create and pay
// bookings, manage favorites and keep a personal match history.
func RegisterPlayer(e *echo.Echo, b *handler.BookingHandler, f *handler.FavoriteHandler,
	m *handler.MatchHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RolePlayer),
	)

	g.POST("/bookings", b.Create)
	g.POST("/bookings/:id/pay", b.Pay)
	g.GET("/my-bookings", b.ListMine)
	g.GET("/bookings/:id", b.Get)
	g.DELETE("/bookings/:id", b.Cancel)

	g.POST("/favorites", f.Add)
	g.GET("/favorites", f.List)
	g.DELETE("/favorites/:court_id", f.Remove)

	g.POST("/matches", m.Create)
	g.GET("/matches", m.List)
}
