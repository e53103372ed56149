package web

import (
	"net/http"

	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

const (
	csrfField  = "csrf_token"
	csrfCookie = "_csrf"
)

// CSRF guards the admin console forms with a double-submit cookie token.
// Safe requests issue the token; form posts must echo it back.
func (h *PageHandler) CSRF() echo.MiddlewareFunc {
	return echomw.CSRFWithConfig(echomw.CSRFConfig{
		TokenLookup:    "form:" + csrfField + ",header:" + echo.HeaderXCSRFToken,
		ContextKey:     echomw.DefaultCSRFConfig.ContextKey,
		CookieName:     csrfCookie,
		CookiePath:     "/admin",
		CookieHTTPOnly: true,
		CookieSecure:   h.cookieSecure,
		CookieSameSite: http.SameSiteLaxMode,
		ErrorHandler: func(err error, c echo.Context) error {
			return h.renderError(c, errors.Wrap(domainerrors.ErrForbidden, err.Error()))
		},
	})
}

func csrfToken(c echo.Context) string {
	token, _ := c.Get(echomw.DefaultCSRFConfig.ContextKey).(string)

	return token
}
