package service

import "context"

// OAuthUser represents user information from OAuth providers
type OAuthUser struct {
	ID            string // Provider-specific user ID (e.g., Google's 'sub' claim)
	Email         string
	Name          string
	Provider      string
	AvatarURL     string
	EmailVerified bool
}

// OAuthAuthService verifies identity provider credentials.
type OAuthAuthService interface {
	// VerifyIDToken verifies an ID token sent by a client that signed in directly.
	VerifyIDToken(ctx context.Context, idToken string) (*OAuthUser, error)

	// AuthCodeURL returns the provider consent URL for the browser code flow.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for the signed-in user.
	Exchange(ctx context.Context, code string) (*OAuthUser, error)

	// GetProvider returns the OAuth provider type
	GetProvider() string
}
