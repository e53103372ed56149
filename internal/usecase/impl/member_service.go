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
	"kala/internal/domain/survey"
	"kala/internal/usecase"
	"kala/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultDirectoryPageSize = 12

// memberService implements the MemberUsecase interface.
type memberService struct {
	txManager     repository.TransactionManager
	memberRepo    repository.MemberRepository
	referenceRepo repository.ReferenceRepository
	surveyRepo    repository.SurveyRepository
	qrCodeService service.QRCodeService
	metrics       service.MetricsRecorder
	rules         *applicationRules
	surveySlug    string
	pageSize      int
	logger        *slog.Logger
}

// MemberServiceParams holds dependencies for MemberService, injected by Fx.
type MemberServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	MemberRepo    repository.MemberRepository
	ReferenceRepo repository.ReferenceRepository
	SurveyRepo    repository.SurveyRepository
	QRCodeService service.QRCodeService
	Metrics       service.MetricsRecorder `optional:"true"`
	Validator     service.InputValidator
	Config        *config.Config
	Logger        *slog.Logger
}

// NewMemberService is the constructor for memberService.
func NewMemberService(params MemberServiceParams) usecase.MemberUsecase {
	srv := &memberService{
		txManager:     params.TxManager,
		memberRepo:    params.MemberRepo,
		referenceRepo: params.ReferenceRepo,
		surveyRepo:    params.SurveyRepo,
		qrCodeService: params.QRCodeService,
		metrics:       params.Metrics,
		rules:         newApplicationRules(params.Config, params.Validator),
		surveySlug:    "membershipApplication",
		pageSize:      defaultDirectoryPageSize,
		logger:        params.Logger,
	}
	if srv.metrics == nil {
		srv.metrics = service.NopMetrics{}
	}
	if cfg := params.Config; cfg != nil {
		if cfg.Onboarding != nil && cfg.Onboarding.SurveySlug != "" {
			srv.surveySlug = cfg.Onboarding.SurveySlug
		}
		if cfg.Directory != nil && cfg.Directory.PageSize > 0 {
			srv.pageSize = cfg.Directory.PageSize
		}
	}

	return srv
}

func (srv *memberService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateMembershipApplication validates the composite payload and writes the
// member, its PENDING application and the survey response in one transaction.
func (srv *memberService) CreateMembershipApplication(ctx context.Context, userID uuid.UUID, input *usecase.MembershipApplicationInput) (*entity.Member, error) {
	member, app, err := srv.buildApplication(ctx, userID, input)
	if err != nil {
		return nil, err
	}

	var created *entity.Member
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()

		if err := memberRepo.Create(ctx, member); err != nil {
			return errors.Wrap(err, "failed to create member")
		}
		if err := repoFactory.ApplicationRepo().Create(ctx, app); err != nil {
			return errors.Wrap(err, "failed to create membership application")
		}

		var err error
		created, err = memberRepo.FindByID(ctx, member.ID)
		if err != nil {
			return errors.Wrap(err, "failed to reload member")
		}

		return nil
	})
	if err != nil {
		err = translateMemberError(err)
		srv.log(ctx).Warn("Membership application rejected", slog.Any("userID", userID), slog.Any("error", err))

		return nil, err
	}

	srv.metrics.ApplicationSubmitted()
	srv.log(ctx).Info("Membership application submitted", slog.Any("memberID", created.ID), slog.String("username", created.Username))

	return created, nil
}

// buildApplication runs every input check and returns the rows to insert.
// All rejected fields are reported together.
func (srv *memberService) buildApplication(ctx context.Context, userID uuid.UUID, input *usecase.MembershipApplicationInput) (*entity.Member, *entity.MembershipApplication, error) {
	city, personalFields, err := srv.rules.checkPersonal(ctx, srv.referenceRepo, &input.Personal)
	if err != nil {
		return nil, nil, err
	}
	tags, services, practiceFields, err := srv.rules.checkPractice(ctx, srv.referenceRepo, &input.Practice)
	if err != nil {
		return nil, nil, err
	}
	response, surveyFields, err := srv.buildSurveyResponse(ctx, userID, &input.Survey)
	if err != nil {
		return nil, nil, err
	}

	fields := prefixed("personal.", personalFields)
	fields = append(fields, prefixed("practice.", practiceFields)...)
	fields = append(fields, prefixed("survey.", surveyFields)...)
	if err := validationResult(fields); err != nil {
		return nil, nil, err
	}

	dob, _ := time.Parse(dateLayout, input.Personal.DateOfBirth)
	member := &entity.Member{
		ID:                userID,
		FullName:          input.Personal.FullName,
		Username:          input.Practice.Username,
		Identity:          input.Personal.Identity,
		About:             input.Practice.About,
		Email:             input.Personal.Email,
		PhoneNumber:       input.Personal.PhoneNumber,
		DateOfBirth:       dob,
		YearsOfExperience: *input.Practice.YearsOfExperience,
		TravelPreference:  input.Practice.TravelPreference,
		ProfilePictureURL: input.Practice.ProfilePictureURL,
		Links: entity.Links{
			Instagram: input.Practice.Instagram,
			Website:   input.Practice.Website,
		},
		LocationCityID: city.ID,
		Location:       city,
		Tags:           tags,
		Services:       services,
	}
	app := &entity.MembershipApplication{
		MemberID:       userID,
		Status:         entity.StatusPending,
		SurveyResponse: response,
	}

	return member, app, nil
}

// buildSurveyResponse checks the answers against the onboarding survey. With
// no survey configured, an application without answers is still accepted.
func (srv *memberService) buildSurveyResponse(ctx context.Context, userID uuid.UUID, input *usecase.SurveyAnswersInput) (*entity.SurveyResponse, []domainerrors.FieldError, error) {
	current, err := srv.surveyRepo.FindBySlug(ctx, srv.surveySlug)
	if errors.Is(err, repository.ErrSurveyNotFound) {
		if len(input.Answers) == 0 && input.SurveyID == nil {
			return nil, nil, nil
		}

		return nil, nil, errors.Wrapf(domainerrors.ErrSurveyNotFound, "slug %q", srv.surveySlug)
	}
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to load survey")
	}

	if input.SurveyID != nil && *input.SurveyID != current.ID {
		return nil, []domainerrors.FieldError{{Field: "surveyId", Reason: "does not match the current survey"}}, nil
	}

	answers := input.Answers.Compact()
	fields, err := fieldErrors(survey.ValidateAnswers(current.Schema, answers))
	if err != nil {
		return nil, nil, err
	}

	return &entity.SurveyResponse{
		MemberID: userID,
		SurveyID: current.ID,
		Answers:  answers,
	}, fields, nil
}

// ValidateMemberUsername reports whether the normalised username is free.
// It is a hint only; the unique constraint decides at write time.
func (srv *memberService) ValidateMemberUsername(ctx context.Context, username string) (bool, error) {
	slug := util.Slugify(username)
	if slug == "" {
		return false, nil
	}

	exists, err := srv.memberRepo.UsernameExists(ctx, slug)
	if err != nil {
		return false, errors.Wrap(err, "failed to check username")
	}
	srv.metrics.UsernameChecked(!exists)

	return !exists, nil
}

// ListMembers returns one page of approved members matching filter.
func (srv *memberService) ListMembers(ctx context.Context, filter entity.DirectoryFilter, page int) (*util.Page[*entity.Member], error) {
	if !filter.Sort.IsValid() {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "sort", Reason: "is not a known sort order"})
	}
	for _, p := range filter.TravelPreferences {
		if !p.IsValid() {
			return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "travelPreference", Reason: "must be one of BASE REGION COUNTRY"})
		}
	}
	filter.Status = entity.StatusApproved

	members, err := srv.memberRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list members")
	}

	result := util.Paginate(members, page, srv.pageSize)

	return &result, nil
}

// GetMember returns nil without error when the user has not applied yet.
func (srv *memberService) GetMember(ctx context.Context, userID uuid.UUID) (*entity.Member, error) {
	member, err := srv.memberRepo.FindByID(ctx, userID)
	if errors.Is(err, repository.ErrMemberNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find member")
	}

	return member, nil
}

// GetPublicProfile hides members whose application is not approved.
func (srv *memberService) GetPublicProfile(ctx context.Context, username string) (*entity.Member, error) {
	slug := util.Slugify(username)
	if slug == "" {
		return nil, domainerrors.ErrMemberNotFound
	}

	member, err := srv.memberRepo.FindByUsername(ctx, slug)
	if errors.Is(err, repository.ErrMemberNotFound) {
		return nil, errors.Wrapf(domainerrors.ErrMemberNotFound, "username %q", slug)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find member")
	}
	if !member.IsApproved() {
		return nil, errors.Wrapf(domainerrors.ErrMemberNotFound, "username %q", slug)
	}

	return member, nil
}

// UpdateMember applies a partial profile edit.
func (srv *memberService) UpdateMember(ctx context.Context, userID uuid.UUID, input *usecase.UpdateMemberInput) (*entity.Member, error) {
	fields, err := fieldErrors(srv.rules.validator.Struct(input))
	if err != nil {
		return nil, err
	}
	if err := validationResult(fields); err != nil {
		return nil, err
	}

	var updated *entity.Member
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		memberRepo := repoFactory.MemberRepo()

		member, err := memberRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find member")
		}

		fields, err := applyMemberPatch(ctx, repoFactory.ReferenceRepo(), member, input)
		if err != nil {
			return err
		}
		if err := validationResult(fields); err != nil {
			return err
		}

		if err := memberRepo.Update(ctx, member); err != nil {
			return errors.Wrap(err, "failed to update member")
		}

		updated, err = memberRepo.FindByID(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to reload member")
		}

		return nil
	})
	if err != nil {
		return nil, translateMemberError(err)
	}

	srv.log(ctx).Info("Member profile updated", slog.Any("memberID", userID))

	return updated, nil
}

// applyMemberPatch copies the set fields of input onto member, resolving reference ids.
func applyMemberPatch(ctx context.Context, refs repository.ReferenceRepository, member *entity.Member, input *usecase.UpdateMemberInput) ([]domainerrors.FieldError, error) {
	var fields []domainerrors.FieldError

	if input.FullName != nil {
		member.FullName = *input.FullName
	}
	if input.Username != nil {
		member.Username = util.Slugify(*input.Username)
		if member.Username == "" {
			fields = append(fields, domainerrors.FieldError{Field: "username", Reason: "must contain letters or digits"})
		}
	}
	if input.About != nil {
		member.About = *input.About
	}
	if input.Email != nil {
		member.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		member.PhoneNumber = *input.PhoneNumber
	}
	if input.Instagram != nil {
		member.Links.Instagram = *input.Instagram
	}
	if input.Website != nil {
		member.Links.Website = *input.Website
	}
	if input.YearsOfExperience != nil {
		member.YearsOfExperience = *input.YearsOfExperience
	}
	if input.TravelPreference != nil {
		member.TravelPreference = *input.TravelPreference
	}
	if input.ProfilePictureURL != nil {
		member.ProfilePictureURL = *input.ProfilePictureURL
	}

	if input.CityID != nil {
		city, err := refs.FindCity(ctx, *input.CityID)
		switch {
		case errors.Is(err, repository.ErrCityNotFound):
			fields = append(fields, domainerrors.FieldError{Field: "city", Reason: "is unknown"})
		case err != nil:
			return nil, errors.Wrap(err, "failed to find city")
		default:
			member.LocationCityID = city.ID
			member.Location = city
		}
	}
	if input.TagIDs != nil && len(input.TagIDs) == 0 {
		fields = append(fields, domainerrors.FieldError{Field: "tags", Reason: "must have at least 1 item(s)"})
	} else if input.TagIDs != nil {
		tags, tagFields, err := resolveTags(ctx, refs, input.TagIDs, "tags")
		if err != nil {
			return nil, err
		}
		fields = append(fields, tagFields...)
		member.Tags = tags
	}
	if input.ServiceIDs != nil && len(input.ServiceIDs) == 0 {
		fields = append(fields, domainerrors.FieldError{Field: "services", Reason: "must have at least 1 item(s)"})
	} else if input.ServiceIDs != nil {
		services, serviceFields, err := resolveServices(ctx, refs, input.ServiceIDs, "services")
		if err != nil {
			return nil, err
		}
		fields = append(fields, serviceFields...)
		member.Services = services
	}

	return fields, nil
}

// GetProfileQR renders the share code of an approved member's profile page.
func (srv *memberService) GetProfileQR(ctx context.Context, username string) ([]byte, error) {
	member, err := srv.GetPublicProfile(ctx, username)
	if err != nil {
		return nil, err
	}

	png, err := srv.qrCodeService.GenerateProfileQR(member.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate profile QR code")
	}

	return png, nil
}

// translateMemberError maps repository conflicts onto the errors callers see.
// A username collision at write time reads the same as a failed availability check.
func translateMemberError(err error) error {
	switch {
	case errors.Is(err, repository.ErrUsernameConflict):
		return errors.Wrap(domainerrors.ErrUsernameTaken, err.Error())
	case errors.Is(err, repository.ErrMemberConflict):
		return errors.Wrap(domainerrors.ErrApplicationAlreadyExists, err.Error())
	case errors.Is(err, repository.ErrMemberNotFound):
		return errors.Wrap(domainerrors.ErrMemberNotFound, err.Error())
	case errors.Is(err, repository.ErrCityNotFound):
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: "city", Reason: "is unknown"})
	default:
		return err
	}
}
