package impl

import (
	"context"
	"log/slog"

	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	"kala/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// maintenanceService implements the MaintenanceUsecase interface.
type maintenanceService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	drafts           service.DraftStore
	logger           *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	Drafts           service.DraftStore
	Logger           *slog.Logger
}

// NewMaintenanceService is the constructor for maintenanceService.
func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		refreshTokenRepo: params.RefreshTokenRepo,
		drafts:           params.Drafts,
		logger:           params.Logger,
	}
}

func (srv *maintenanceService) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	n, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired refresh tokens")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Purged expired sessions", slog.Int64("count", n))

	return n, nil
}

func (srv *maintenanceService) PurgeExpiredDrafts(ctx context.Context) (int, error) {
	n, err := srv.drafts.PurgeExpired(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "failed to purge expired drafts")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Purged expired drafts", slog.Int("count", n))

	return n, nil
}
