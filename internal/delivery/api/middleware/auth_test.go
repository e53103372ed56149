package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/service"
	"kala/internal/errors"
	mockSvc "kala/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(configure func(r *http.Request)) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/me/member", nil)
	if configure != nil {
		configure(req)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Roles: []string{"MEMBER", "ADMIN"}, Type: service.TokenTypeAccess}

	t.Run("bearer header", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("good").Return(claims, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

		c, rec := newAuthContext(func(r *http.Request) {
			r.Header.Set(echo.HeaderAuthorization, "Bearer good")
		})

		require.NoError(t, m.Authenticate(okHandler)(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		actor, ok := deliverycontext.GetActor(c)
		require.True(t, ok)
		assert.Equal(t, userID, actor.UserID)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("session cookie", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("from-cookie").Return(claims, nil)
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

		c, _ := newAuthContext(func(r *http.Request) {
			r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "from-cookie"})
		})

		require.NoError(t, m.Authenticate(okHandler)(c))
	})

	t.Run("missing token", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t)})
		c, _ := newAuthContext(nil)

		err := m.Authenticate(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("non bearer scheme", func(t *testing.T) {
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t)})
		c, _ := newAuthContext(func(r *http.Request) {
			r.Header.Set(echo.HeaderAuthorization, "Basic abc")
		})

		err := m.Authenticate(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})

	t.Run("invalid token", func(t *testing.T) {
		tokens := mockSvc.NewMockTokenService(t)
		tokens.EXPECT().ValidateAccessToken("expired").Return(nil, errors.New("token is expired"))
		m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

		c, _ := newAuthContext(func(r *http.Request) {
			r.Header.Set(echo.HeaderAuthorization, "Bearer expired")
		})

		err := m.Authenticate(okHandler)(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
		_, ok := deliverycontext.GetActor(c)
		assert.False(t, ok)
	})
}

func TestAuthMiddleware_Identify_LetsAnonymousThrough(t *testing.T) {
	tokens := mockSvc.NewMockTokenService(t)
	tokens.EXPECT().ValidateAccessToken("stale").Return(nil, errors.New("token is expired"))
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: tokens})

	c, rec := newAuthContext(func(r *http.Request) {
		r.AddCookie(&http.Cookie{Name: AccessTokenCookie, Value: "stale"})
	})

	require.NoError(t, m.Identify(okHandler)(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	_, ok := deliverycontext.GetActor(c)
	assert.False(t, ok)
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	m := NewAuthMiddleware(AuthMiddlewareParams{TokenService: mockSvc.NewMockTokenService(t)})
	requireAdmin := m.RequireRole(entity.RoleAdmin)(okHandler)

	t.Run("member is forbidden", func(t *testing.T) {
		c, _ := newAuthContext(nil)
		deliverycontext.SetActor(c, entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMember}})

		err := requireAdmin(c)
		assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
	})

	t.Run("admin passes", func(t *testing.T) {
		c, rec := newAuthContext(nil)
		deliverycontext.SetActor(c, entity.Actor{UserID: uuid.New(), Roles: entity.Roles{entity.RoleMember, entity.RoleAdmin}})

		require.NoError(t, requireAdmin(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("anonymous is unauthorized", func(t *testing.T) {
		c, _ := newAuthContext(nil)

		err := requireAdmin(c)
		assert.True(t, errors.Is(err, domainerrors.ErrUnauthorized))
	})
}
