package impl

import (
	"context"
	"log/slog"

	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// referenceService implements the ReferenceUsecase interface.
type referenceService struct {
	referenceRepo repository.ReferenceRepository
	surveyRepo    repository.SurveyRepository
	logger        *slog.Logger
}

// ReferenceServiceParams holds dependencies for ReferenceService, injected by Fx.
type ReferenceServiceParams struct {
	fx.In

	ReferenceRepo repository.ReferenceRepository
	SurveyRepo    repository.SurveyRepository
	Logger        *slog.Logger
}

// NewReferenceService is the constructor for referenceService.
func NewReferenceService(params ReferenceServiceParams) usecase.ReferenceUsecase {
	return &referenceService{
		referenceRepo: params.ReferenceRepo,
		surveyRepo:    params.SurveyRepo,
		logger:        params.Logger,
	}
}

func (srv *referenceService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *referenceService) GetTags(ctx context.Context) ([]entity.Tag, error) {
	tags, err := srv.referenceRepo.ListTags(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list tags")
	}

	return tags, nil
}

func (srv *referenceService) GetServices(ctx context.Context) ([]entity.Service, error) {
	services, err := srv.referenceRepo.ListServices(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list services")
	}

	return services, nil
}

func (srv *referenceService) GetLocationStates(ctx context.Context) ([]entity.LocationState, error) {
	states, err := srv.referenceRepo.ListStates(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list states")
	}

	return states, nil
}

func (srv *referenceService) GetLocationCities(ctx context.Context, stateID uuid.UUID) ([]entity.LocationCity, error) {
	cities, err := srv.referenceRepo.ListCities(ctx, stateID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cities")
	}

	return cities, nil
}

// GetSurvey loads a survey by slug. A stored schema that fails validation is reported, not rendered.
func (srv *referenceService) GetSurvey(ctx context.Context, slug string) (*entity.Survey, error) {
	s, err := srv.surveyRepo.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrSurveyNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrSurveyNotFound, "slug %q", slug)
		}
		srv.log(ctx).Error("Failed to load survey", slog.String("slug", slug), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load survey")
	}

	return s, nil
}

func (srv *referenceService) GetSurveyForm(ctx context.Context, slug string, answers survey.Answers) (*usecase.SurveyForm, error) {
	s, err := srv.GetSurvey(ctx, slug)
	if err != nil {
		return nil, err
	}

	fields := survey.EditForm(s.Schema, answers)
	if fields == nil {
		fields = []survey.FormField{}
	}

	return &usecase.SurveyForm{Survey: s, Fields: fields}, nil
}
