package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quadraplay/court-booking-api/internal/model"
	"github.com/quadraplay/court-booking-api/internal/utils"
)

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func TestRequireRole(t *testing.T) {
	cases := []struct {
		name    string
		role    interface{}
		allowed []string
		want    int
	}{
		{"owner allowed", model.RoleOwner, []string{model.RoleOwner}, http.StatusOK},
		{"player rejected on owner route", model.RolePlayer, []string{model.RoleOwner}, http.StatusForbidden},
		{"either role accepted", model.RolePlayer, []string{model.RoleOwner, model.RolePlayer}, http.StatusOK},
		{"missing role", nil, []string{model.RolePlayer}, http.StatusForbidden},
		{"unknown role", "ADMIN", []string{model.RoleOwner, model.RolePlayer}, http.StatusForbidden},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)
			if tc.role != nil {
				c.Set("role", tc.role)
			}
			h := RequireRole(tc.allowed...)(okHandler)
			require.NoError(t, h(c))
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestJWTAuth(t *testing.T) {
	const secret = "test-secret"

	t.Run("valid token passes claims through", func(t *testing.T) {
		tok, err := utils.NewAccessToken(secret, 42, model.RolePlayer, 5)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		var gotRole interface{}
		h := JWTAuth(secret)(func(c echo.Context) error {
			gotRole = c.Get("role")
			return c.NoContent(http.StatusOK)
		})
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, model.RolePlayer, gotRole)
	})

	t.Run("missing header", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		h := JWTAuth(secret)(okHandler)
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := utils.NewAccessToken("other-secret", 42, model.RolePlayer, 5)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+tok.Token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		h := JWTAuth(secret)(okHandler)
		require.NoError(t, h(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
