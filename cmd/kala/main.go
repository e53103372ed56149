package main

import (
	"context"
	"log/slog"
	"os"

	"kala/config"
	"kala/internal/delivery"
	"kala/internal/delivery/api"
	apimiddleware "kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/router/handler"
	"kala/internal/delivery/web"
	"kala/internal/delivery/worker"
	"kala/internal/domain/service"
	"kala/internal/infra/auth"
	"kala/internal/infra/auth/google"
	"kala/internal/infra/draftstore"
	logs "kala/internal/infra/log"
	"kala/internal/infra/metrics"
	"kala/internal/infra/persistence/postgres"
	"kala/internal/infra/qrcode"
	"kala/internal/infra/storage"
	"kala/internal/infra/validation"
	"kala/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.New,
		validation.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewUserRepository,
			postgres.NewAuthRepository,
			postgres.NewRefreshTokenRepository,
			postgres.NewTransactionManager,
			postgres.NewMemberRepository,
			postgres.NewApplicationRepository,
			postgres.NewReferenceRepository,
			postgres.NewSurveyRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			google.NewAuthService,
			qrcode.NewQRCodeService,
			storage.New,
			draftstore.New,
			newInputValidator,
			newMetricsRecorder,
		),
	)
}

func newInputValidator(v *validation.Validator) service.InputValidator {
	return v
}

func newMetricsRecorder(m *metrics.Metrics) service.MetricsRecorder {
	return m
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewReferenceService,
			impl.NewMemberService,
			impl.NewOnboardingService,
			impl.NewReviewService,
			impl.NewMediaService,
			impl.NewMaintenanceService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewReferenceHandler,
			handler.NewOnboardingHandler,
			handler.NewMemberHandler,
			handler.NewReviewHandler,
			handler.NewMediaHandler,
			web.NewPageHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewScheduler,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
