package impl

import (
	"context"
	"log/slog"
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

const defaultDraftTTL = 24 * time.Hour

// onboardingService implements the OnboardingUsecase interface.
type onboardingService struct {
	drafts        service.DraftStore
	memberRepo    repository.MemberRepository
	referenceRepo repository.ReferenceRepository
	members       usecase.MemberUsecase
	rules         *applicationRules
	draftTTL      time.Duration
	logger        *slog.Logger
	now           func() time.Time
}

// OnboardingServiceParams holds dependencies for OnboardingService, injected by Fx.
type OnboardingServiceParams struct {
	fx.In

	Drafts        service.DraftStore
	MemberRepo    repository.MemberRepository
	ReferenceRepo repository.ReferenceRepository
	Members       usecase.MemberUsecase
	Validator     service.InputValidator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewOnboardingService is the constructor for onboardingService.
func NewOnboardingService(params OnboardingServiceParams) usecase.OnboardingUsecase {
	ttl := defaultDraftTTL
	if cfg := params.Config; cfg != nil && cfg.Onboarding != nil && cfg.Onboarding.DraftTTL > 0 {
		ttl = cfg.Onboarding.DraftTTL
	}

	return &onboardingService{
		drafts:        params.Drafts,
		memberRepo:    params.MemberRepo,
		referenceRepo: params.ReferenceRepo,
		members:       params.Members,
		rules:         newApplicationRules(params.Config, params.Validator),
		draftTTL:      ttl,
		logger:        params.Logger,
		now:           time.Now,
	}
}

func (srv *onboardingService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Start opens a new draft for userID.
func (srv *onboardingService) Start(ctx context.Context, userID uuid.UUID) (*entity.ApplicationDraft, error) {
	now := srv.now()
	draft := &entity.ApplicationDraft{
		ID:        uuid.New(),
		UserID:    userID,
		Step:      entity.StepStarted,
		CreatedAt: now,
		ExpiresAt: now.Add(srv.draftTTL),
	}

	if err := srv.drafts.Save(ctx, draft); err != nil {
		return nil, errors.Wrap(err, "failed to save draft")
	}

	srv.log(ctx).Debug("Onboarding draft started", slog.Any("draftID", draft.ID), slog.Any("userID", userID))

	return draft, nil
}

// GetDraft returns the caller's draft.
func (srv *onboardingService) GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*entity.ApplicationDraft, error) {
	return srv.load(ctx, userID, draftID)
}

// load fetches a draft and hides drafts owned by someone else.
func (srv *onboardingService) load(ctx context.Context, userID, draftID uuid.UUID) (*entity.ApplicationDraft, error) {
	draft, err := srv.drafts.Get(ctx, draftID)
	if errors.Is(err, service.ErrDraftNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrDraftNotFound, "draft %s", draftID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load draft")
	}
	if draft.UserID != userID || draft.Expired(srv.now()) {
		return nil, errors.Wrapf(domainerrors.ErrDraftNotFound, "draft %s", draftID)
	}

	return draft, nil
}

// SavePersonal records the first step. Saving it again after later steps
// keeps their data.
func (srv *onboardingService) SavePersonal(ctx context.Context, userID, draftID uuid.UUID, input *entity.PersonalDetails) (*entity.ApplicationDraft, error) {
	draft, err := srv.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}

	_, fields, err := srv.rules.checkPersonal(ctx, srv.referenceRepo, input)
	if err != nil {
		return nil, err
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	draft.Personal = input
	if draft.Step < entity.StepPersonal {
		draft.Step = entity.StepPersonal
	}

	if err := srv.drafts.Save(ctx, draft); err != nil {
		return nil, errors.Wrap(err, "failed to save draft")
	}

	return draft, nil
}

// SavePractice records the second step after checking username availability.
func (srv *onboardingService) SavePractice(ctx context.Context, userID, draftID uuid.UUID, input *entity.PracticeDetails) (*entity.ApplicationDraft, error) {
	draft, err := srv.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step < entity.StepPersonal || draft.Personal == nil {
		return nil, errors.Wrap(domainerrors.ErrStepOutOfOrder, "personal details are missing")
	}

	_, _, fields, err := srv.rules.checkPractice(ctx, srv.referenceRepo, input)
	if err != nil {
		return nil, err
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	taken, err := srv.memberRepo.UsernameExists(ctx, input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check username")
	}
	if taken {
		return nil, errors.Wrapf(domainerrors.ErrUsernameTaken, "username %q", input.Username)
	}

	draft.Practice = input
	draft.Step = entity.StepPractice

	if err := srv.drafts.Save(ctx, draft); err != nil {
		return nil, errors.Wrap(err, "failed to save draft")
	}

	return draft, nil
}

// Submit composes the draft with the survey answers into an application.
func (srv *onboardingService) Submit(ctx context.Context, userID, draftID uuid.UUID, input *usecase.SurveyAnswersInput) (*entity.Member, error) {
	draft, err := srv.load(ctx, userID, draftID)
	if err != nil {
		return nil, err
	}
	if draft.Step < entity.StepPractice || draft.Personal == nil || draft.Practice == nil {
		return nil, errors.Wrap(domainerrors.ErrStepOutOfOrder, "practice details are missing")
	}

	payload := &usecase.MembershipApplicationInput{
		Personal: *draft.Personal,
		Practice: *draft.Practice,
	}
	if input != nil {
		payload.Survey = *input
	}

	member, err := srv.members.CreateMembershipApplication(ctx, userID, payload)
	if err != nil {
		return nil, err
	}

	if err := srv.drafts.Delete(ctx, draftID); err != nil {
		srv.log(ctx).Warn("Failed to delete submitted draft", slog.Any("draftID", draftID), slog.Any("error", err))
	}

	return member, nil
}

// Discard drops the caller's draft.
func (srv *onboardingService) Discard(ctx context.Context, userID, draftID uuid.UUID) error {
	if _, err := srv.load(ctx, userID, draftID); err != nil {
		return err
	}

	if err := srv.drafts.Delete(ctx, draftID); err != nil && !errors.Is(err, service.ErrDraftNotFound) {
		return errors.Wrap(err, "failed to delete draft")
	}

	return nil
}
