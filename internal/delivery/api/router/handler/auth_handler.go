package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"kala/config"
	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/response"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	oauthStateCookie = "oauth_state"
	oauthNextCookie  = "oauth_next"
	oauthStateTTL    = 10 * time.Minute

	defaultLoginRedirect = "/admin"
	loginPage            = "/admin/login"
)

type AuthHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
	Config *config.Config
	Logger *slog.Logger
}

// AuthHandler signs users in with Google and manages their session tokens.
type AuthHandler struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC: params.AuthUC,
		cfg:    params.Config,
		logger: params.Logger,
	}
}

type signInResponse struct {
	AccessToken  string   `json:"accessToken"`
	RefreshToken string   `json:"refreshToken"`
	User         UserView `json:"user"`
}

// SignInWithGoogle exchanges a Google ID token for a session.
func (h *AuthHandler) SignInWithGoogle(c echo.Context) error {
	var input usecase.GoogleSignInInput
	if err := bindAndValidate(c, &input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.SignInWithGoogle(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	return response.Success(c, http.StatusOK, signInResponse{
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
		User:         toUserView(output.User),
	})
}

// RefreshToken issues a new access token. The refresh token may come in the
// body or in the refresh_token cookie.
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var input usecase.RefreshTokenInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid refresh token input")
	}
	if input.RefreshToken == "" {
		input.RefreshToken = cookieValue(c, middleware.RefreshTokenCookie)
	}
	if err := c.Validate(&input); err != nil {
		return response.HandleAppError(c, err)
	}

	output, err := h.authUC.RefreshToken(c.Request().Context(), &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	h.setCookie(c, middleware.AccessTokenCookie, output.AccessToken, h.cfg.Auth.AccessTTL)

	return response.Success(c, http.StatusOK, map[string]string{"accessToken": output.AccessToken})
}

// Logout ends the session and clears the session cookies. Form posts from
// the pages are redirected home.
func (h *AuthHandler) Logout(c echo.Context) error {
	var input usecase.LogoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid logout input")
	}
	if input.RefreshToken == "" {
		input.RefreshToken = cookieValue(c, middleware.RefreshTokenCookie)
	}

	if input.RefreshToken != "" {
		if err := h.authUC.Logout(c.Request().Context(), &input); err != nil {
			return response.HandleAppError(c, err)
		}
	}
	h.clearCookie(c, middleware.AccessTokenCookie)
	h.clearCookie(c, middleware.RefreshTokenCookie)

	if strings.HasPrefix(c.Request().Header.Get(echo.HeaderContentType), echo.MIMEApplicationForm) {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"})
}

// GoogleLogin starts the browser code flow.
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state := uuid.NewString()
	h.setCookie(c, oauthStateCookie, state, oauthStateTTL)
	h.setCookie(c, oauthNextCookie, safeRedirect(c.QueryParam("next")), oauthStateTTL)

	return c.Redirect(http.StatusFound, h.authUC.GoogleLoginURL(state))
}

// GoogleCallback completes the browser code flow and lands on the page the
// user came from.
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	log := h.logger.With(slog.String("flow", "google_callback"))

	state := cookieValue(c, oauthStateCookie)
	h.clearCookie(c, oauthStateCookie)
	if state == "" || c.QueryParam("state") != state {
		log.Warn("OAuth state mismatch")

		return c.Redirect(http.StatusSeeOther, loginPage+"?error=state")
	}
	if errParam := c.QueryParam("error"); errParam != "" {
		log.Info("Google sign-in cancelled", slog.String("reason", errParam))

		return c.Redirect(http.StatusSeeOther, loginPage+"?error=cancelled")
	}

	output, err := h.authUC.SignInWithGoogleCode(c.Request().Context(), &usecase.GoogleCodeInput{Code: c.QueryParam("code")})
	if err != nil {
		log.Warn("Google sign-in failed", slog.Any("error", err))

		return c.Redirect(http.StatusSeeOther, loginPage+"?error="+url.QueryEscape(errorCode(err)))
	}
	h.setSessionCookies(c, output.AccessToken, output.RefreshToken)

	next := safeRedirect(cookieValue(c, oauthNextCookie))
	h.clearCookie(c, oauthNextCookie)

	return c.Redirect(http.StatusSeeOther, next)
}

func (h *AuthHandler) setSessionCookies(c echo.Context, access, refresh string) {
	h.setCookie(c, middleware.AccessTokenCookie, access, h.cfg.Auth.AccessTTL)
	h.setCookie(c, middleware.RefreshTokenCookie, refresh, h.cfg.Auth.RefreshTTL)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearCookie(c echo.Context, name string) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Auth.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return cookie.Value
}

// safeRedirect only allows same-site absolute paths.
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") || strings.Contains(next, `\`) {
		return defaultLoginRedirect
	}

	return next
}

func errorCode(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return strings.ToLower(appErr.ErrorCode())
	}

	return "internal"
}
