// Package google verifies Google Sign-In credentials.
package google

import (
	"context"
	"log/slog"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/oauth2"
	googleoauth "golang.org/x/oauth2/google"
	"google.golang.org/api/idtoken"
)

var defaultScopes = []string{"openid", "email", "profile"}

// validateFunc matches idtoken.Validate.
type validateFunc func(ctx context.Context, idToken, audience string) (*idtoken.Payload, error)

// AuthService verifies Google ID tokens and runs the authorization code flow.
type AuthService struct {
	clientID string
	oauth    *oauth2.Config
	validate validateFunc
	logger   *slog.Logger
}

// NewAuthService creates a new Google AuthService
func NewAuthService(cfg *config.Config, logger *slog.Logger) service.OAuthAuthService {
	return newAuthService(cfg, logger, idtoken.Validate, googleoauth.Endpoint)
}

func newAuthService(cfg *config.Config, logger *slog.Logger, validate validateFunc, endpoint oauth2.Endpoint) *AuthService {
	g := cfg.GoogleOAuth
	if g == nil {
		g = &config.GoogleOAuthConfig{}
	}

	return &AuthService{
		clientID: g.ClientID,
		oauth: &oauth2.Config{
			ClientID:     g.ClientID,
			ClientSecret: g.ClientSecret,
			RedirectURL:  g.RedirectURI,
			Scopes:       defaultScopes,
			Endpoint:     endpoint,
		},
		validate: validate,
		logger:   logger,
	}
}

// VerifyIDToken checks the token signature, issuer, expiry and audience, and
// requires a verified email.
func (s *AuthService) VerifyIDToken(ctx context.Context, idToken string) (*service.OAuthUser, error) {
	if s.clientID == "" {
		return nil, errors.New("google client id is not configured")
	}

	payload, err := s.validate(ctx, idToken, s.clientID)
	if err != nil {
		s.logger.Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(err, "invalid ID token")
	}

	user := &service.OAuthUser{
		ID:            payload.Subject,
		Email:         claimString(payload.Claims, "email"),
		Name:          claimString(payload.Claims, "name"),
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     claimString(payload.Claims, "picture"),
		EmailVerified: claimBool(payload.Claims, "email_verified"),
	}
	if user.Email == "" {
		return nil, errors.New("ID token carries no email")
	}
	if !user.EmailVerified {
		return nil, errors.New("email not verified")
	}

	s.logger.Debug("Google ID token verified", slog.String("sub", user.ID))

	return user, nil
}

// AuthCodeURL builds the consent page URL carrying state for CSRF protection.
func (s *AuthService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange redeems an authorization code and verifies the returned ID token.
func (s *AuthService) Exchange(ctx context.Context, code string) (*service.OAuthUser, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, errors.Wrap(err, "exchange authorization code")
	}

	idToken, ok := token.Extra("id_token").(string)
	if !ok || idToken == "" {
		return nil, errors.New("token response carries no id_token")
	}

	return s.VerifyIDToken(ctx, idToken)
}

// GetProvider returns the OAuth provider type
func (s *AuthService) GetProvider() string {
	return entity.ProviderTypeGoogle
}

func claimString(claims map[string]any, key string) string {
	v, _ := claims[key].(string)

	return v
}

// Google encodes email_verified as a bool, some older tokens as "true".
func claimBool(claims map[string]any, key string) bool {
	switch v := claims[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	default:
		return false
	}
}
