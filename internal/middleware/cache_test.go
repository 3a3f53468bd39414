package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/quadraplay/court-booking-api/internal/config"
)

func cacheCtx(t *testing.T, target string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/courts/:id/availability")
	return c
}

func TestCacheKeyDistinguishesQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route_query"}
	k1 := cacheKey(cfg, cacheCtx(t, "/v1/courts/1/availability?date=2025-06-01"))
	k2 := cacheKey(cfg, cacheCtx(t, "/v1/courts/1/availability?date=2025-06-02"))
	assert.NotEqual(t, k1, k2)
	assert.Contains(t, k1, "cache:")
}

func TestCacheKeyRouteStrategyIgnoresQuery(t *testing.T) {
	cfg := config.CacheConfig{Prefix: "cache", KeyStrategy: "route"}
	k1 := cacheKey(cfg, cacheCtx(t, "/v1/courts/1/availability?date=2025-06-01"))
	k2 := cacheKey(cfg, cacheCtx(t, "/v1/courts/1/availability?date=2025-06-02"))
	assert.Equal(t, k1, k2)
}

func TestCacheDisabledPassesThrough(t *testing.T) {
	mw := NewResponseCache(config.CacheConfig{Enabled: false}, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)
	assert.True(t, called)
	assert.Empty(t, rec.Header().Get("X-Cache"))
}

func TestRateLimiterDisabledPassesThrough(t *testing.T) {
	mw := NewRateLimiter(config.RateLimitConfig{Enabled: false}, nil)
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/sports", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	called := false
	err := mw(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})(c)
	assert.NoError(t, err)
	assert.True(t, called)
}
