package router

import (
	"github.com/labstack/echo/v4"

	"github.com/quadraplay/court-booking-api/internal/handler"
	"github.com/quadraplay/court-booking-api/internal/middleware"
	"github.com/quadraplay/court-booking-api/internal/model"
)

// RegisterOwner registers owner-scoped endpoints under /v1. All routes
// require a valid JWT with the OWNER role. Owners manage establishments,
// courts, blocked hours and the bookings that land on their courts. photo
// may be nil when no Cloudinary credentials are configured; the upload
// route is then not registered.
func RegisterOwner(e *echo.Echo, o *handler.OwnerHandler, ob *handler.OwnerBookingHandler,
	photo *handler.CourtPhotoHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleOwner),
	)

	g.POST("/establishments", o.CreateEstablishment)
	g.GET("/owner/establishments", o.ListEstablishments)
	g.PUT("/establishments/:id", o.UpdateEstablishment)
	g.DELETE("/establishments/:id", o.DeleteEstablishment)

	g.POST("/courts", o.CreateCourt)
	g.GET("/owner/courts", o.ListCourts)
	g.PUT("/courts/:id", o.UpdateCourt)
	g.DELETE("/courts/:id", o.DeleteCourt)
	if photo != nil {
		g.POST("/courts/:id/photo", photo.Upload)
	}

	g.POST("/courts/:id/blocked-slots", o.BlockSlot)
	g.GET("/courts/:id/blocked-slots", o.ListBlockedSlots)
	g.DELETE("/blocked-slots/:id", o.UnblockSlot)

	g.GET("/courts/:id/bookings", ob.ListForCourt)
	g.POST("/bookings/:id/confirm", ob.Confirm)
	g.DELETE("/owner/bookings/:id", ob.Cancel)
}
