// Package router maps HTTP routes to handlers and applies the auth
// middleware per group. Public catalogue routes are unauthenticated;
// player and owner routes require a JWT with the matching role.
package router

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/quadraplay/court-booking-api/internal/config"
	"github.com/quadraplay/court-booking-api/internal/handler"
	"github.com/quadraplay/court-booking-api/internal/middleware"
	"github.com/quadraplay/court-booking-api/internal/model"
)

// RegisterRoutes registers routes that require no authentication at all.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication endpoints. Register, login,
// refresh and logout live under /v1/auth without middleware; /v1/me
// requires a valid token of either role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	g.POST("/refresh-access", a.RefreshAccess)
	// Logout validates the refresh token itself so it stays outside the
	// JWT middleware; a client with an expired access token can still end
	// its session.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole(model.RoleOwner, model.RolePlayer),
	)
	auth.GET("/me", a.Me)
}

// RegisterPublic registers the unauthenticated catalogue and availability
// endpoints. Catalogue listings run behind the Redis response cache;
// availability does not, since it must reflect every booking instantly.
func RegisterPublic(e *echo.Echo, p *handler.PublicHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	cached := middleware.NewResponseCache(cacheCfg, rdb)

	e.GET("/v1/sports", p.ListSports, cached)
	e.GET("/v1/establishments", p.ListEstablishments, cached)
	e.GET("/v1/establishments/:id", p.GetEstablishment, cached)
	e.GET("/v1/establishments/:id/courts", p.ListEstablishmentCourts, cached)
	e.GET("/v1/courts", p.ListCourts, cached)
	e.GET("/v1/courts/:id", p.GetCourt, cached)
	e.GET("/v1/courts/:id/availability", p.GetAvailability)
}
