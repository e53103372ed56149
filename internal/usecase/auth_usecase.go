// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"kala/internal/domain/entity"
)

// --- Input DTOs ---

// GoogleSignInInput carries an ID token obtained by a client that signed in with Google directly.
type GoogleSignInInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// GoogleCodeInput carries the authorization code returned to the browser callback.
type GoogleCodeInput struct {
	Code string
}

// RefreshTokenInput defines the data required to refresh an access token.
type RefreshTokenInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// LogoutInput defines the data required to end a session.
type LogoutInput struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// --- Output DTOs ---

// SignInOutput returns the generated tokens after a successful sign-in.
type SignInOutput struct {
	AccessToken  string
	RefreshToken string
	User         *entity.User
}

// RefreshTokenOutput returns a fresh access token.
type RefreshTokenOutput struct {
	AccessToken string
}

// AuthUsecase signs users in through the identity provider and manages their sessions.
type AuthUsecase interface {
	SignInWithGoogle(ctx context.Context, input *GoogleSignInInput) (*SignInOutput, error)
	SignInWithGoogleCode(ctx context.Context, input *GoogleCodeInput) (*SignInOutput, error)
	GoogleLoginURL(state string) string
	RefreshToken(ctx context.Context, input *RefreshTokenInput) (*RefreshTokenOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
