package middleware

import (
	"bytes"
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/quadraplay/court-booking-api/internal/config"
)

// cachedResponse is the envelope stored in Redis for a cache entry. Headers
// are kept so replayed responses are byte-identical to the original.
type cachedResponse struct {
	Status int         `json:"status"`
	Header http.Header `json:"header"`
	Body   []byte      `json:"body"`
}

// bodyRecorder tees the response body into a buffer, up to limit bytes.
// Oversized responses are served normally but not cached.
type bodyRecorder struct {
	http.ResponseWriter
	status   int
	buf      bytes.Buffer
	written  int64
	limit    int64
	overflow bool
}

func (br *bodyRecorder) WriteHeader(code int) {
	br.status = code
	br.ResponseWriter.WriteHeader(code)
}

func (br *bodyRecorder) Write(b []byte) (int, error) {
	br.written += int64(len(b))
	if br.limit > 0 && br.written > br.limit {
		br.overflow = true
	} else {
		br.buf.Write(b)
	}
	return br.ResponseWriter.Write(b)
}

// NewResponseCache caches whole responses of the configured methods in
// Redis. Public catalogue routes (sports, establishments, courts) are the
// intended targets; availability must NOT run behind this middleware since
// its output changes with every booking. Disabled config or a nil client
// yields a pass-through.
func NewResponseCache(cfg config.CacheConfig, rdb *redis.Client) echo.MiddlewareFunc {
	if !cfg.Enabled || rdb == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(c echo.Context) error { return next(c) }
		}
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 30 * time.Second
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !cfg.Methods[strings.ToUpper(c.Request().Method)] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg, c)

			if raw, err := rdb.Get(ctx, key).Bytes(); err == nil {
				var entry cachedResponse
				if json.Unmarshal(raw, &entry) == nil && entry.Status != 0 {
					for k, vals := range entry.Header {
						if strings.EqualFold(k, "Content-Length") {
							continue
						}
						for _, v := range vals {
							c.Response().Header().Add(k, v)
						}
					}
					c.Response().Header().Set("X-Cache", "HIT")
					c.Response().WriteHeader(entry.Status)
					if len(entry.Body) > 0 {
						_, _ = c.Response().Write(entry.Body)
					}
					return nil
				}
			}

			rec := &bodyRecorder{
				ResponseWriter: c.Response().Writer,
				status:         http.StatusOK,
				limit:          int64(cfg.MaxBodyBytes),
			}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")

			if err := next(c); err != nil {
				return err
			}

			// Only successful, size-bounded responses are worth keeping.
			if rec.status == http.StatusOK && !rec.overflow {
				hdr := make(http.Header, len(c.Response().Header()))
				for k, vals := range c.Response().Header() {
					vv := make([]string, len(vals))
					copy(vv, vals)
					hdr[k] = vv
				}
				entry := cachedResponse{Status: rec.status, Header: hdr, Body: rec.buf.Bytes()}
				if raw, err := json.Marshal(entry); err == nil {
					// Request context may already be done; use a fresh one.
					_ = rdb.SetEx(context.Background(), key, raw, ttl).Err()
				}
			}
			return nil
		}
	}
}

// cacheKey hashes the strategy-selected request parts under the configured
// prefix.
func cacheKey(cfg config.CacheConfig, c echo.Context) string {
	r := c.Request()
	parts := []string{}
	switch strings.ToLower(cfg.KeyStrategy) {
	case "route":
		parts = append(parts, "route", c.Path())
	case "method_route":
		parts = append(parts, "method", r.Method, "route", c.Path())
	case "method_route_query":
		parts = append(parts, "method", r.Method, "route", c.Path(), "q", r.URL.RawQuery)
	default: // "route_query"
		parts = append(parts, "route", c.Path(), "q", r.URL.RawQuery)
	}
	sum := sha1.Sum([]byte(strings.Join(parts, ":")))
	return fmt.Sprintf("%s:%x", cfg.Prefix, sum[:])
}
