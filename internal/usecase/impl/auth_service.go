// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"kala/config"
	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager         repository.TransactionManager
	refreshTokenRepo  repository.RefreshTokenRepository
	tokenService      service.TokenService
	googleAuthService service.OAuthAuthService
	adminEmails       map[string]struct{}
	maxActiveSessions int
	logger            *slog.Logger
	now               func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager         repository.TransactionManager
	RefreshTokenRepo  repository.RefreshTokenRepository
	TokenService      service.TokenService
	GoogleAuthService service.OAuthAuthService
	Config            *config.Config
	Logger            *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	admins := make(map[string]struct{})
	maxActiveSessions := 0
	if params.Config != nil && params.Config.Auth != nil {
		for _, email := range params.Config.Auth.AdminEmails {
			admins[normalizeEmail(email)] = struct{}{}
		}
		maxActiveSessions = params.Config.Auth.MaxActiveSessions
	}

	return &authService{
		txManager:         params.TxManager,
		refreshTokenRepo:  params.RefreshTokenRepo,
		tokenService:      params.TokenService,
		googleAuthService: params.GoogleAuthService,
		adminEmails:       admins,
		maxActiveSessions: maxActiveSessions,
		logger:            params.Logger,
		now:               time.Now,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignInWithGoogle verifies an ID token and signs the user in, creating the account on first use.
func (srv *authService) SignInWithGoogle(ctx context.Context, input *usecase.GoogleSignInInput) (*usecase.SignInOutput, error) {
	if strings.TrimSpace(input.IDToken) == "" {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "idToken", Reason: "is required"})
	}

	oauthUser, err := srv.googleAuthService.VerifyIDToken(ctx, input.IDToken)
	if err != nil {
		srv.log(ctx).Warn("Google ID token rejected", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthTokenInvalid, err.Error())
	}

	return srv.signIn(ctx, oauthUser)
}

// SignInWithGoogleCode completes the browser code flow.
func (srv *authService) SignInWithGoogleCode(ctx context.Context, input *usecase.GoogleCodeInput) (*usecase.SignInOutput, error) {
	if input.Code == "" {
		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, "missing authorization code")
	}

	oauthUser, err := srv.googleAuthService.Exchange(ctx, input.Code)
	if err != nil {
		srv.log(ctx).Warn("Google code exchange failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrOAuthFailed, err.Error())
	}

	return srv.signIn(ctx, oauthUser)
}

func (srv *authService) GoogleLoginURL(state string) string {
	return srv.googleAuthService.AuthCodeURL(state)
}

func (srv *authService) signIn(ctx context.Context, oauthUser *service.OAuthUser) (*usecase.SignInOutput, error) {
	var (
		signedIn                  *entity.User
		accessToken, refreshToken string
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := srv.findOrCreateGoogleUser(ctx, repoFactory, oauthUser)
		if err != nil {
			return err
		}

		accessToken, refreshToken, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate tokens")
		}

		if err := srv.storeRefreshToken(ctx, repoFactory.RefreshTokenRepo(), user.ID, refreshToken); err != nil {
			return err
		}
		signedIn = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to sign in with Google", slog.String("email", oauthUser.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute sign-in transaction")
	}

	srv.log(ctx).Info("User signed in", slog.Any("userID", signedIn.ID), slog.String("role", signedIn.Role.String()))

	return &usecase.SignInOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         signedIn,
	}, nil
}

// findOrCreateGoogleUser resolves the provider subject to a user. An account
// with the same email but no Google link, such as a seeded admin, is linked.
func (srv *authService) findOrCreateGoogleUser(ctx context.Context, repoFactory repository.RepositoryFactory, oauthUser *service.OAuthUser) (*entity.User, error) {
	authRepo := repoFactory.AuthRepo()
	userRepo := repoFactory.UserRepo()

	authRecord, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeGoogle, oauthUser.ID)
	if err != nil && !errors.Is(err, repository.ErrAuthNotFound) {
		return nil, errors.Wrap(err, "failed to find authentication")
	}

	var user *entity.User
	if authRecord != nil {
		if user, err = userRepo.FindByID(ctx, authRecord.UserID); err != nil {
			return nil, errors.Wrap(err, "failed to find user by id")
		}

		return srv.syncProfile(ctx, userRepo, user, oauthUser)
	}

	user, err = userRepo.FindByEmail(ctx, oauthUser.Email)
	switch {
	case errors.Is(err, repository.ErrUserNotFound):
		user = &entity.User{
			Email: oauthUser.Email,
			Name:  oauthUser.Name,
			Image: oauthUser.AvatarURL,
			Role:  srv.roleFor(oauthUser.Email, entity.RoleMember),
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return nil, errors.Wrap(err, "failed to create user for Google authentication")
		}
		srv.log(ctx).Info("Created user from Google sign-in", slog.Any("userID", user.ID))
	case err != nil:
		return nil, errors.Wrap(err, "failed to find user by email")
	default:
		if user, err = srv.syncProfile(ctx, userRepo, user, oauthUser); err != nil {
			return nil, err
		}
	}

	newAuth := &entity.Authentication{
		UserID:         user.ID,
		Provider:       entity.ProviderTypeGoogle,
		ProviderUserID: oauthUser.ID,
	}
	if err := authRepo.CreateAuthentication(ctx, newAuth); err != nil {
		return nil, errors.Wrap(err, "failed to create Google authentication")
	}

	return user, nil
}

// syncProfile refreshes name, avatar and role from the provider when they changed.
func (srv *authService) syncProfile(ctx context.Context, userRepo repository.UserRepository, user *entity.User, oauthUser *service.OAuthUser) (*entity.User, error) {
	changed := false
	if oauthUser.Name != "" && oauthUser.Name != user.Name {
		user.Name = oauthUser.Name
		changed = true
	}
	if oauthUser.AvatarURL != "" && oauthUser.AvatarURL != user.Image {
		user.Image = oauthUser.AvatarURL
		changed = true
	}
	if role := srv.roleFor(user.Email, user.Role); role != user.Role {
		user.Role = role
		changed = true
	}

	if !changed {
		return user, nil
	}
	if err := userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	return user, nil
}

// roleFor promotes configured admin emails; everyone else keeps the stored role.
func (srv *authService) roleFor(email string, stored entity.Role) entity.Role {
	if _, ok := srv.adminEmails[normalizeEmail(email)]; ok {
		return entity.RoleAdmin
	}
	if !stored.IsValid() {
		return entity.RoleMember
	}

	return stored
}

// storeRefreshToken persists the session, evicting the oldest one when the limit is reached.
func (srv *authService) storeRefreshToken(ctx context.Context, refreshRepo repository.RefreshTokenRepository, userID uuid.UUID, refreshToken string) error {
	if srv.maxActiveSessions > 0 {
		active, err := refreshRepo.CountActiveSessionsByUserID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to count active sessions")
		}
		if active >= srv.maxActiveSessions {
			if err := refreshRepo.DeleteOldestRefreshToken(ctx, userID); err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
				return errors.Wrap(err, "failed to evict oldest session")
			}
		}
	}

	token := &entity.RefreshToken{
		UserID:    userID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: srv.now().Add(srv.tokenService.GetRefreshTokenDuration()),
	}
	if err := refreshRepo.CreateRefreshToken(ctx, token); err != nil {
		return errors.Wrap(err, "failed to store refresh token")
	}

	return nil
}

// RefreshToken issues a new access token. The refresh token itself is not rotated.
func (srv *authService) RefreshToken(ctx context.Context, input *usecase.RefreshTokenInput) (*usecase.RefreshTokenOutput, error) {
	claims, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	var accessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken)); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "session user no longer exists")
			}

			return errors.Wrap(err, "failed to find user")
		}

		accessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles().ToStrings())
		if err != nil {
			return errors.Wrap(err, "failed to generate new access token")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to refresh access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return &usecase.RefreshTokenOutput{AccessToken: accessToken}, nil
}

// Logout deletes the session. Unknown tokens are treated as already logged out.
func (srv *authService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if _, err := srv.tokenService.ValidateRefreshToken(input.RefreshToken); err != nil {
		srv.log(ctx).Warn("Logout with invalid token", slog.Any("error", err))
	}

	err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(input.RefreshToken))
	if err != nil && !errors.Is(err, repository.ErrRefreshTokenNotFound) {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
