package postgres

import (
	"context"
	"testing"
	"time"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository(t *testing.T) {
	db := setupSQLiteTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	user := &entity.User{Email: "priya@example.com", Name: "Priya"}
	require.NoError(t, repo.Create(ctx, user))
	require.NotEqual(t, uuid.Nil, user.ID)

	got, err := repo.FindByEmail(ctx, "priya@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
	assert.Equal(t, entity.RoleMember, got.Role)

	err = repo.Create(ctx, &entity.User{Email: "priya@example.com"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	got.Role = entity.RoleAdmin
	got.Image = "https://example.com/p.png"
	require.NoError(t, repo.Update(ctx, got))

	again, err := repo.FindByID(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, again.IsAdmin())
	assert.Equal(t, "https://example.com/p.png", again.Image)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	err = repo.Update(ctx, &entity.User{ID: uuid.New(), Role: entity.RoleMember})
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestAuthRepository(t *testing.T) {
	db := setupSQLiteTestDB(t)
	ctx := context.Background()
	repo := NewAuthRepository(db)
	userID := uuid.New()

	auth := &entity.Authentication{UserID: userID, Provider: entity.ProviderTypeGoogle, ProviderUserID: "sub-1"}
	require.NoError(t, repo.CreateAuthentication(ctx, auth))

	got, err := repo.FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-1")
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)

	err = repo.CreateAuthentication(ctx, &entity.Authentication{UserID: uuid.New(), Provider: entity.ProviderTypeGoogle, ProviderUserID: "sub-1"})
	assert.ErrorIs(t, err, domainerrors.ErrConflict)

	_, err = repo.FindAuthentication(ctx, entity.ProviderTypeGoogle, "sub-2")
	assert.ErrorIs(t, err, repository.ErrAuthNotFound)
}

func TestRefreshTokenRepository(t *testing.T) {
	db := setupSQLiteTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &refreshTokenRepository{db: db, now: func() time.Time { return now }}
	userID := uuid.New()

	for i, hash := range []string{"old", "new"} {
		require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
			UserID:    userID,
			TokenHash: hash,
			ExpiresAt: now.Add(time.Duration(i+1) * time.Hour),
		}))
	}
	require.NoError(t, repo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    userID,
		TokenHash: "stale",
		ExpiresAt: now.Add(-time.Hour),
	}))

	count, err := repo.CountActiveSessionsByUserID(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	_, err = repo.FindRefreshTokenByHash(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenExpired)

	token, err := repo.FindRefreshTokenByHash(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, userID, token.UserID)

	removed, err := repo.DeleteExpiredRefreshTokens(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	require.NoError(t, repo.DeleteOldestRefreshToken(ctx, userID))
	_, err = repo.FindRefreshTokenByHash(ctx, "old")
	assert.ErrorIs(t, err, repository.ErrRefreshTokenNotFound)

	require.NoError(t, repo.DeleteRefreshTokenByHash(ctx, "new"))
	assert.ErrorIs(t, repo.DeleteRefreshTokenByHash(ctx, "new"), repository.ErrRefreshTokenNotFound)
	assert.ErrorIs(t, repo.DeleteOldestRefreshToken(ctx, userID), repository.ErrRefreshTokenNotFound)
}
