package impl

import (
	"context"
	"testing"
	"time"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	mockRepo "kala/internal/mocks/repository"
	mockSvc "kala/internal/mocks/service"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	refreshRepo  *mockRepo.MockRefreshTokenRepository
	tokenService *mockSvc.MockTokenService
	google       *mockSvc.MockOAuthAuthService
	repos        *txRepos
}

func createTestAuthService(t *testing.T, maxActiveSessions int) authServiceFixtures {
	cfg := newTestConfig()
	cfg.Auth.MaxActiveSessions = maxActiveSessions

	f := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		refreshRepo:  mockRepo.NewMockRefreshTokenRepository(t),
		tokenService: mockSvc.NewMockTokenService(t),
		google:       mockSvc.NewMockOAuthAuthService(t),
		repos:        newTxRepos(t),
	}
	f.service = NewAuthService(AuthServiceParams{
		TxManager:         f.txManager,
		RefreshTokenRepo:  f.refreshRepo,
		TokenService:      f.tokenService,
		GoogleAuthService: f.google,
		Config:            cfg,
		Logger:            newDiscardLogger(),
	})

	return f
}

func googleUser(email string) *service.OAuthUser {
	return &service.OAuthUser{
		ID:            "google-sub-1",
		Email:         email,
		Name:          "Asha Rao",
		Provider:      entity.ProviderTypeGoogle,
		AvatarURL:     "https://lh3.example/asha.png",
		EmailVerified: true,
	}
}

func (f authServiceFixtures) expectSession(userID any, roles []string) {
	f.tokenService.EXPECT().GenerateTokens(userID, roles).Return("access-token", "refresh-token", nil)
	f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
	f.tokenService.EXPECT().GetRefreshTokenDuration().Return(24 * time.Hour)
	f.repos.tokens.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(rt *entity.RefreshToken) bool {
			return rt.TokenHash == "refresh-hash" && rt.ExpiresAt.After(time.Now())
		})).
		Return(nil)
}

func TestAuthService_SignInWithGoogle_CreatesUser(t *testing.T) {
	f := createTestAuthService(t, 0)
	ctx := context.Background()
	newID := uuid.New()

	f.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser("asha@example.com"), nil)
	expectTx(f.txManager, f.repos)
	f.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrAuthNotFound)
	f.repos.users.EXPECT().FindByEmail(ctx, "asha@example.com").Return(nil, repository.ErrUserNotFound)
	f.repos.users.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = newID
		}).
		Return(nil)
	f.repos.auths.EXPECT().
		CreateAuthentication(ctx, mock.MatchedBy(func(a *entity.Authentication) bool {
			return a.UserID == newID && a.ProviderUserID == "google-sub-1"
		})).
		Return(nil)
	f.expectSession(newID, []string{"MEMBER"})

	out, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, "access-token", out.AccessToken)
	assert.Equal(t, "refresh-token", out.RefreshToken)
	assert.Equal(t, newID, out.User.ID)
	assert.Equal(t, entity.RoleMember, out.User.Role)
	assert.Equal(t, "https://lh3.example/asha.png", out.User.Image)
}

func TestAuthService_SignInWithGoogle_LinksSeededAdmin(t *testing.T) {
	f := createTestAuthService(t, 0)
	ctx := context.Background()
	seeded := &entity.User{ID: uuid.New(), Email: "admin@kala.test", Role: entity.RoleMember}

	f.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(googleUser("admin@kala.test"), nil)
	expectTx(f.txManager, f.repos)
	f.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, "google-sub-1").
		Return(nil, repository.ErrAuthNotFound)
	f.repos.users.EXPECT().FindByEmail(ctx, "admin@kala.test").Return(seeded, nil)
	f.repos.users.EXPECT().
		Update(ctx, mock.MatchedBy(func(u *entity.User) bool {
			return u.Role == entity.RoleAdmin && u.Name == "Asha Rao"
		})).
		Return(nil)
	f.repos.auths.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil)
	f.expectSession(seeded.ID, []string{"MEMBER", "ADMIN"})

	out, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.True(t, out.User.IsAdmin())
}

func TestAuthService_SignInWithGoogle_ReturningUserUnchanged(t *testing.T) {
	f := createTestAuthService(t, 0)
	ctx := context.Background()
	oauthUser := googleUser("asha@example.com")
	existing := &entity.User{
		ID:    uuid.New(),
		Email: oauthUser.Email,
		Name:  oauthUser.Name,
		Image: oauthUser.AvatarURL,
		Role:  entity.RoleMember,
	}

	f.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	expectTx(f.txManager, f.repos)
	f.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
		Return(&entity.Authentication{UserID: existing.ID, Provider: entity.ProviderTypeGoogle, ProviderUserID: oauthUser.ID}, nil)
	f.repos.users.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.expectSession(existing.ID, []string{"MEMBER"})

	out, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
	assert.Equal(t, existing.ID, out.User.ID)
}

func TestAuthService_SignInWithGoogle_EvictsOldestSessionAtLimit(t *testing.T) {
	f := createTestAuthService(t, 2)
	ctx := context.Background()
	oauthUser := googleUser("asha@example.com")
	existing := &entity.User{ID: uuid.New(), Email: oauthUser.Email, Name: oauthUser.Name, Image: oauthUser.AvatarURL, Role: entity.RoleMember}

	f.google.EXPECT().VerifyIDToken(ctx, "id-token").Return(oauthUser, nil)
	expectTx(f.txManager, f.repos)
	f.repos.auths.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID).
		Return(&entity.Authentication{UserID: existing.ID}, nil)
	f.repos.users.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	f.repos.tokens.EXPECT().CountActiveSessionsByUserID(ctx, existing.ID).Return(2, nil)
	f.repos.tokens.EXPECT().DeleteOldestRefreshToken(ctx, existing.ID).Return(nil)
	f.expectSession(existing.ID, []string{"MEMBER"})

	_, err := f.service.SignInWithGoogle(ctx, &usecase.GoogleSignInInput{IDToken: "id-token"})

	require.NoError(t, err)
}

func TestAuthService_SignInWithGoogle_Rejections(t *testing.T) {
	t.Run("empty token", func(t *testing.T) {
		f := createTestAuthService(t, 0)

		_, err := f.service.SignInWithGoogle(context.Background(), &usecase.GoogleSignInInput{IDToken: "  "})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("invalid token", func(t *testing.T) {
		f := createTestAuthService(t, 0)
		f.google.EXPECT().VerifyIDToken(mock.Anything, "forged").Return(nil, errors.New("audience mismatch"))

		_, err := f.service.SignInWithGoogle(context.Background(), &usecase.GoogleSignInInput{IDToken: "forged"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthTokenInvalid)
	})

	t.Run("failed code exchange", func(t *testing.T) {
		f := createTestAuthService(t, 0)
		f.google.EXPECT().Exchange(mock.Anything, "code").Return(nil, errors.New("invalid_grant"))

		_, err := f.service.SignInWithGoogleCode(context.Background(), &usecase.GoogleCodeInput{Code: "code"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrOAuthFailed)
	})
}

func TestAuthService_RefreshToken(t *testing.T) {
	userID := uuid.New()
	claims := &service.Claims{UserID: userID, Type: service.TokenTypeRefresh}

	t.Run("issues a new access token", func(t *testing.T) {
		f := createTestAuthService(t, 0)
		ctx := context.Background()

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
		f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		expectTx(f.txManager, f.repos)
		f.repos.tokens.EXPECT().
			FindRefreshTokenByHash(ctx, "refresh-hash").
			Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)
		f.repos.users.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Role: entity.RoleAdmin}, nil)
		f.tokenService.EXPECT().GenerateTokens(userID, []string{"MEMBER", "ADMIN"}).Return("new-access", "unused", nil)

		out, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		require.NoError(t, err)
		assert.Equal(t, "new-access", out.AccessToken)
	})

	t.Run("revoked session", func(t *testing.T) {
		f := createTestAuthService(t, 0)
		ctx := context.Background()

		f.tokenService.EXPECT().ValidateRefreshToken("refresh-token").Return(claims, nil)
		f.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash")
		expectTx(f.txManager, f.repos)
		f.repos.tokens.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound)

		_, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("malformed token", func(t *testing.T) {
		f := createTestAuthService(t, 0)
		f.tokenService.EXPECT().ValidateRefreshToken("garbage").Return(nil, errors.New("token is malformed"))

		_, err := f.service.RefreshToken(context.Background(), &usecase.RefreshTokenInput{RefreshToken: "garbage"})

		require.Error(t, err)
		assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
	})
}

func TestAuthService_Logout_IgnoresUnknownToken(t *testing.T) {
	f := createTestAuthService(t, 0)
	ctx := context.Background()

	f.tokenService.EXPECT().ValidateRefreshToken("stale").Return(nil, errors.New("token has expired"))
	f.tokenService.EXPECT().HashToken("stale").Return("stale-hash")
	f.refreshRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "stale-hash").Return(repository.ErrRefreshTokenNotFound)

	require.NoError(t, f.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "stale"}))
}

func TestAuthService_GoogleLoginURL(t *testing.T) {
	f := createTestAuthService(t, 0)
	f.google.EXPECT().AuthCodeURL("state-1").Return("https://accounts.google.com/o/oauth2/auth?state=state-1")

	assert.Contains(t, f.service.GoogleLoginURL("state-1"), "state=state-1")
}
