package impl

import (
	"context"
	"log/slog"
	"math"

	"kala/config"
	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	"kala/internal/domain/survey"
	"kala/internal/usecase"
	"kala/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultAdminPageSize = 10

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	txManager  repository.TransactionManager
	memberRepo repository.MemberRepository
	appRepo    repository.ApplicationRepository
	surveyRepo repository.SurveyRepository
	metrics    service.MetricsRecorder
	surveySlug string
	pageSize   int
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for ReviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	TxManager  repository.TransactionManager
	MemberRepo repository.MemberRepository
	AppRepo    repository.ApplicationRepository
	SurveyRepo repository.SurveyRepository
	Metrics    service.MetricsRecorder `optional:"true"`
	Config     *config.Config
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	srv := &reviewService{
		txManager:  params.TxManager,
		memberRepo: params.MemberRepo,
		appRepo:    params.AppRepo,
		surveyRepo: params.SurveyRepo,
		metrics:    params.Metrics,
		surveySlug: "membershipApplication",
		pageSize:   defaultAdminPageSize,
		logger:     params.Logger,
	}
	if srv.metrics == nil {
		srv.metrics = service.NopMetrics{}
	}
	if cfg := params.Config; cfg != nil {
		if cfg.Onboarding != nil && cfg.Onboarding.SurveySlug != "" {
			srv.surveySlug = cfg.Onboarding.SurveySlug
		}
		if cfg.Directory != nil && cfg.Directory.AdminPageSize > 0 {
			srv.pageSize = cfg.Directory.AdminPageSize
		}
	}

	return srv
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func requireAdmin(actor entity.Actor) error {
	if !actor.IsAdmin() {
		return errors.Wrapf(domainerrors.ErrForbidden, "user %s is not an admin", actor.UserID)
	}

	return nil
}

// ListApplications returns one page of members in the requested status, or all statuses.
func (srv *reviewService) ListApplications(ctx context.Context, actor entity.Actor, input usecase.ListApplicationsInput) (*usecase.ApplicationList, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "status", Reason: "is not a known status"})
	}

	limit := input.Limit
	if limit <= 0 {
		limit = srv.pageSize
	}
	page := max(input.Page, 0)
	offset := math.MaxInt
	if page <= math.MaxInt/limit {
		offset = page * limit
	}

	members, total, err := srv.memberRepo.ListForReview(ctx, input.Status, limit, offset)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list applications")
	}

	return &usecase.ApplicationList{
		Members:    members,
		Page:       page,
		Limit:      limit,
		TotalItems: total,
		TotalPages: util.PageCount(int(total), limit),
	}, nil
}

// GetApplication returns a member with survey answers resolved against the onboarding survey.
func (srv *reviewService) GetApplication(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*usecase.ApplicationDetail, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	member, err := srv.memberRepo.FindByID(ctx, memberID)
	if errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrApplicationNotFound, "member %s", memberID)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find member")
	}

	detail := &usecase.ApplicationDetail{
		Member:      member,
		Survey:      []survey.DisplayItem{},
		Transitions: []*entity.ApplicationTransition{},
	}

	if app := member.Application; app != nil && app.SurveyResponse != nil {
		s, err := srv.surveyRepo.FindBySlug(ctx, srv.surveySlug)
		switch {
		case errors.Is(err, repository.ErrSurveyNotFound):
			srv.log(ctx).Warn("Survey missing for application display", slog.String("slug", srv.surveySlug))
		case err != nil:
			return nil, errors.Wrap(err, "failed to load survey")
		default:
			if items := survey.Display(s.Schema, app.SurveyResponse.Answers); items != nil {
				detail.Survey = items
			}
		}
	}

	transitions, err := srv.appRepo.ListTransitions(ctx, memberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transitions")
	}
	if transitions != nil {
		detail.Transitions = transitions
	}

	return detail, nil
}

// ListTransitions returns the audited status changes of one application, oldest first.
func (srv *reviewService) ListTransitions(ctx context.Context, actor entity.Actor, memberID uuid.UUID) ([]*entity.ApplicationTransition, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}

	if _, err := srv.appRepo.FindByMemberID(ctx, memberID); err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrApplicationNotFound, "member %s", memberID)
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	transitions, err := srv.appRepo.ListTransitions(ctx, memberID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list transitions")
	}

	return transitions, nil
}

func (srv *reviewService) Approve(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error) {
	return srv.transition(ctx, actor, memberID, entity.StatusApproved)
}

func (srv *reviewService) Decline(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error) {
	return srv.transition(ctx, actor, memberID, entity.StatusDeclined)
}

func (srv *reviewService) Block(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error) {
	return srv.transition(ctx, actor, memberID, entity.StatusBlocked)
}

// transition moves an application to next and logs the change in the same transaction.
// Repeating an action is allowed and logged again.
func (srv *reviewService) transition(ctx context.Context, actor entity.Actor, memberID uuid.UUID, next entity.ApplicationStatus) (*entity.MembershipApplication, error) {
	if err := requireAdmin(actor); err != nil {
		srv.log(ctx).Warn("Review action refused", slog.Any("actorID", actor.UserID), slog.String("status", string(next)))

		return nil, err
	}

	var updated *entity.MembershipApplication
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		appRepo := repoFactory.ApplicationRepo()

		app, err := appRepo.FindByMemberID(ctx, memberID)
		if err != nil {
			return errors.Wrap(err, "failed to find application")
		}
		if !app.Status.CanTransitionTo(next) {
			return errors.Wrapf(domainerrors.ErrInvalidStatus, "cannot move from %s to %s", app.Status, next)
		}

		from := app.Status
		if err := appRepo.UpdateStatus(ctx, memberID, next); err != nil {
			return errors.Wrap(err, "failed to update application status")
		}
		if err := appRepo.AppendTransition(ctx, &entity.ApplicationTransition{
			MemberID:    memberID,
			FromStatus:  from,
			ToStatus:    next,
			ActorUserID: actor.UserID,
		}); err != nil {
			return errors.Wrap(err, "failed to record transition")
		}

		app.Status = next
		updated = app

		return nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrApplicationNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrApplicationNotFound, "member %s", memberID)
		}

		return nil, err
	}

	srv.metrics.ApplicationTransitioned(next)
	srv.log(ctx).Info("Application status changed",
		slog.Any("memberID", memberID),
		slog.String("status", string(next)),
		slog.Any("actorID", actor.UserID),
	)

	return updated, nil
}
