package middleware

import (
	"strings"

	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/service"
	"kala/internal/errors"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Session cookie names shared by the API and the HTML pages.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

type AuthMiddlewareParams struct {
	fx.In

	TokenService service.TokenService
}

// AuthMiddleware resolves the caller from a JWT access token.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: params.TokenService}
}

// Authenticate rejects the request with 401 unless it carries a valid access
// token, either as a Bearer header or in the access_token cookie.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := bearerToken(c)
		if token == "" {
			return errors.Wrap(domainerrors.ErrUnauthorized, "access token missing")
		}

		actor, err := m.resolve(token)
		if err != nil {
			return errors.Wrap(domainerrors.ErrUnauthorized, err.Error())
		}
		deliverycontext.SetActor(c, actor)

		return next(c)
	}
}

// Identify sets the actor when a valid token is present and lets anonymous
// requests through untouched.
func (m *AuthMiddleware) Identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if token := bearerToken(c); token != "" {
			if actor, err := m.resolve(token); err == nil {
				deliverycontext.SetActor(c, actor)
			}
		}

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := deliverycontext.GetActor(c)
			if !ok {
				return errors.Wrap(domainerrors.ErrUnauthorized, "no authenticated actor")
			}
			if !actor.Roles.Contains(role) {
				return errors.Wrapf(domainerrors.ErrForbidden, "role %s required", role)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) resolve(token string) (entity.Actor, error) {
	claims, err := m.tokenSvc.ValidateAccessToken(token)
	if err != nil {
		return entity.Actor{}, err
	}

	return entity.Actor{
		UserID: claims.UserID,
		Roles:  entity.RolesFromStrings(claims.Roles),
	}, nil
}

// CurrentActor returns the authenticated caller or ErrUnauthorized.
func CurrentActor(c echo.Context) (entity.Actor, error) {
	actor, ok := deliverycontext.GetActor(c)
	if !ok {
		return entity.Actor{}, errors.WithStack(domainerrors.ErrUnauthorized)
	}

	return actor, nil
}

func bearerToken(c echo.Context) string {
	if header := c.Request().Header.Get(echo.HeaderAuthorization); header != "" {
		if token, ok := strings.CutPrefix(header, "Bearer "); ok {
			return strings.TrimSpace(token)
		}

		return ""
	}

	if cookie, err := c.Cookie(AccessTokenCookie); err == nil {
		return cookie.Value
	}

	return ""
}
