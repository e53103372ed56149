package repository

import (
	"context"
	"errors"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for refresh token persistence.
var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrRefreshTokenExpired  = errors.New("refresh token has expired")
)

// RefreshTokenRepository stores user sessions.
type RefreshTokenRepository interface {
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByHash returns ErrRefreshTokenExpired for tokens past their expiry.
	FindRefreshTokenByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	DeleteRefreshTokenByHash(ctx context.Context, tokenHash string) error

	// DeleteOldestRefreshToken removes the user's oldest session.
	DeleteOldestRefreshToken(ctx context.Context, userID uuid.UUID) error

	// CountActiveSessionsByUserID returns the number of non-expired sessions for a user.
	CountActiveSessionsByUserID(ctx context.Context, userID uuid.UUID) (int, error)

	// DeleteExpiredRefreshTokens removes expired sessions and reports how many were removed.
	DeleteExpiredRefreshTokens(ctx context.Context) (int64, error)
}
