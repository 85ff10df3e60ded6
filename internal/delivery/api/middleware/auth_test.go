package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"foodorder/internal/domain/entity"
	"foodorder/internal/domain/service"
	servicemocks "foodorder/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAuthMiddleware(t *testing.T) (*AuthMiddleware, *servicemocks.MockTokenService) {
	t.Helper()

	tokenSvc := servicemocks.NewMockTokenService(t)
	m := NewAuthMiddleware(AuthMiddlewareParams{
		TokenService: tokenSvc,
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return m, tokenSvc
}

func serve(h echo.HandlerFunc, authHeader string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	_ = h(e.NewContext(req, rec))

	return rec
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	t.Run("stores caller on context", func(t *testing.T) {
		m, tokenSvc := newTestAuthMiddleware(t)
		tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Role: entity.RoleOwner}, nil).Once()

		var gotID uuid.UUID
		var gotRole entity.Role
		rec := serve(m.Authenticate(func(c echo.Context) error {
			gotID, _ = GetUserID(c)
			gotRole, _ = GetRole(c)

			return c.NoContent(http.StatusNoContent)
		}), "Bearer good")

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, userID, gotID)
		assert.Equal(t, entity.RoleOwner, gotRole)
	})

	rejected := []struct {
		name   string
		header string
		claims *service.Claims
		err    error
	}{
		{name: "missing header"},
		{name: "not a bearer token", header: "Basic abc"},
		{name: "empty bearer", header: "Bearer "},
		{name: "invalid token", header: "Bearer bad", err: errors.New("token is expired")},
		{name: "unknown role", header: "Bearer bad", claims: &service.Claims{UserID: userID, Role: "driver"}},
		{name: "missing subject", header: "Bearer bad", claims: &service.Claims{Role: entity.RoleCustomer}},
	}

	for _, tt := range rejected {
		t.Run(tt.name, func(t *testing.T) {
			m, tokenSvc := newTestAuthMiddleware(t)
			if tt.claims != nil || tt.err != nil {
				tokenSvc.EXPECT().ValidateToken("bad").Return(tt.claims, tt.err).Once()
			}

			rec := serve(m.Authenticate(func(c echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			}), tt.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), `"code":"UNAUTHORIZED"`)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m, _ := newTestAuthMiddleware(t)
	ok := func(c echo.Context) error { return c.NoContent(http.StatusNoContent) }

	tests := []struct {
		name     string
		role     any
		wantCode int
	}{
		{name: "matching role", role: entity.RoleOwner, wantCode: http.StatusNoContent},
		{name: "other role", role: entity.RoleCustomer, wantCode: http.StatusForbidden},
		{name: "no role", role: nil, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
			if tt.role != nil {
				c.Set(contextKeyRole, tt.role)
			}

			require.NoError(t, m.RequireRole(entity.RoleOwner)(ok)(c))
			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
