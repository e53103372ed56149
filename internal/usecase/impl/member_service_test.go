package impl

import (
	"context"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	"kala/internal/infra/validation"
	mockRepo "kala/internal/mocks/repository"
	mockSvc "kala/internal/mocks/service"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type memberServiceFixtures struct {
	service    usecase.MemberUsecase
	txManager  *mockRepo.MockTransactionManager
	memberRepo *mockRepo.MockMemberRepository
	refs       *mockRepo.MockReferenceRepository
	surveys    *mockRepo.MockSurveyRepository
	qrCode     *mockSvc.MockQRCodeService
	metrics    *mockSvc.MockMetricsRecorder
	repos      *txRepos

	state    entity.LocationState
	city     *entity.LocationCity
	tags     []entity.Tag
	services []entity.Service
}

func createTestMemberService(t *testing.T) *memberServiceFixtures {
	f := &memberServiceFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		memberRepo: mockRepo.NewMockMemberRepository(t),
		refs:       mockRepo.NewMockReferenceRepository(t),
		surveys:    mockRepo.NewMockSurveyRepository(t),
		qrCode:     mockSvc.NewMockQRCodeService(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
		repos:      newTxRepos(t),
	}
	f.service = NewMemberService(MemberServiceParams{
		TxManager:     f.txManager,
		MemberRepo:    f.memberRepo,
		ReferenceRepo: f.refs,
		SurveyRepo:    f.surveys,
		QRCodeService: f.qrCode,
		Metrics:       f.metrics,
		Validator:     validation.New(),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	f.state = entity.LocationState{ID: uuid.New(), Name: "Karnataka"}
	f.city = &entity.LocationCity{ID: uuid.New(), Name: "Bengaluru", StateID: f.state.ID, State: &f.state}
	f.tags = []entity.Tag{{ID: uuid.New(), Name: "Weddings & Events"}}
	f.services = []entity.Service{{ID: uuid.New(), Name: "Photography"}}

	return f
}

func (f *memberServiceFixtures) validInput() *usecase.MembershipApplicationInput {
	return &usecase.MembershipApplicationInput{
		Personal: entity.PersonalDetails{
			Identity:    []string{"female"},
			FullName:    "Asha Rao",
			StateID:     f.state.ID,
			CityID:      f.city.ID,
			Email:       "asha@example.com",
			PhoneNumber: "9876543210",
			DateOfBirth: "1990-04-12",
		},
		Practice: entity.PracticeDetails{
			Username:          "Asha Rao",
			About:             "Wedding photographer",
			YearsOfExperience: intPtr(6),
			ServiceIDs:        []uuid.UUID{f.services[0].ID},
			TagIDs:            []uuid.UUID{f.tags[0].ID},
			TravelPreference:  entity.TravelRegion,
		},
	}
}

func (f *memberServiceFixtures) expectReferenceLookups() {
	f.refs.EXPECT().FindCity(mock.Anything, f.city.ID).Return(f.city, nil)
	f.refs.EXPECT().FindTagsByIDs(mock.Anything, []uuid.UUID{f.tags[0].ID}).Return(f.tags, nil)
	f.refs.EXPECT().FindServicesByIDs(mock.Anything, []uuid.UUID{f.services[0].ID}).Return(f.services, nil)
}

func fieldNames(t *testing.T, err error) []string {
	t.Helper()
	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, err, &vErr)

	names := make([]string, 0, len(vErr.Fields()))
	for _, fe := range vErr.Fields() {
		names = append(names, fe.Field)
	}

	return names
}

func TestMemberService_CreateMembershipApplication_Success(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()
	userID := uuid.New()
	s := newTestSurvey(t)

	input := f.validInput()
	input.Survey = usecase.SurveyAnswersInput{
		SurveyID: &s.ID,
		Answers: survey.Answers{
			"reason": survey.ChoiceAnswer("networking", "retiredOption"),
			"story":  survey.TextAnswer(""),
		},
	}

	f.expectReferenceLookups()
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(s, nil)
	expectTx(f.txManager, f.repos)
	f.repos.members.EXPECT().
		Create(ctx, mock.MatchedBy(func(m *entity.Member) bool {
			return m.ID == userID &&
				m.Username == "asha-rao" &&
				m.LocationCityID == f.city.ID &&
				m.YearsOfExperience == 6 &&
				m.DateOfBirth.Year() == 1990 &&
				len(m.Tags) == 1 && len(m.Services) == 1
		})).
		Return(nil)
	f.repos.apps.EXPECT().
		Create(ctx, mock.MatchedBy(func(app *entity.MembershipApplication) bool {
			resp := app.SurveyResponse

			return app.MemberID == userID &&
				app.Status == entity.StatusPending &&
				resp != nil && resp.SurveyID == s.ID &&
				len(resp.Answers) == 1 &&
				resp.Answers["reason"].Selected("retiredOption")
		})).
		Return(nil)
	f.repos.members.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.Member{ID: userID, Username: "asha-rao", Application: &entity.MembershipApplication{Status: entity.StatusPending}}, nil)
	f.metrics.EXPECT().ApplicationSubmitted().Return()

	member, err := f.service.CreateMembershipApplication(ctx, userID, input)

	require.NoError(t, err)
	assert.Equal(t, "asha-rao", member.Username)
	assert.Equal(t, entity.StatusPending, member.Application.Status)
}

func TestMemberService_CreateMembershipApplication_WithoutSurvey(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()
	userID := uuid.New()

	f.expectReferenceLookups()
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(nil, repository.ErrSurveyNotFound)
	expectTx(f.txManager, f.repos)
	f.repos.members.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Member")).Return(nil)
	f.repos.apps.EXPECT().
		Create(ctx, mock.MatchedBy(func(app *entity.MembershipApplication) bool {
			return app.SurveyResponse == nil
		})).
		Return(nil)
	f.repos.members.EXPECT().FindByID(ctx, userID).Return(&entity.Member{ID: userID}, nil)
	f.metrics.EXPECT().ApplicationSubmitted().Return()

	_, err := f.service.CreateMembershipApplication(ctx, userID, f.validInput())

	require.NoError(t, err)
}

func TestMemberService_CreateMembershipApplication_Conflicts(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		want    error
	}{
		{name: "username taken", repoErr: repository.ErrUsernameConflict, want: domainerrors.ErrUsernameTaken},
		{name: "member exists", repoErr: repository.ErrMemberConflict, want: domainerrors.ErrApplicationAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestMemberService(t)
			ctx := context.Background()

			f.expectReferenceLookups()
			f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(nil, repository.ErrSurveyNotFound)
			expectTx(f.txManager, f.repos)
			f.repos.members.EXPECT().
				Create(ctx, mock.AnythingOfType("*entity.Member")).
				Return(errors.Wrap(tt.repoErr, "insert member"))

			member, err := f.service.CreateMembershipApplication(ctx, uuid.New(), f.validInput())

			require.Error(t, err)
			assert.Nil(t, member)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestMemberService_CreateMembershipApplication_ReportsEveryInvalidField(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()
	s := newTestSurvey(t)
	otherState := uuid.New()

	input := f.validInput()
	input.Personal.FullName = "Al"
	input.Personal.StateID = otherState
	input.Personal.DateOfBirth = "2023-01-01"
	input.Practice.TagIDs = nil
	input.Practice.ServiceIDs = []uuid.UUID{uuid.New()}
	input.Survey.Answers = survey.Answers{
		"story":   survey.ChoiceAnswer("a"),
		"unknown": survey.TextAnswer("x"),
	}

	f.refs.EXPECT().FindCity(ctx, f.city.ID).Return(f.city, nil)
	f.refs.EXPECT().FindServicesByIDs(ctx, input.Practice.ServiceIDs).Return([]entity.Service{}, nil)
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(s, nil)

	_, err := f.service.CreateMembershipApplication(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.ElementsMatch(t, []string{
		"personal.fullName",
		"personal.dateOfBirth",
		"personal.city",
		"practice.tags",
		"practice.services",
		"survey.answers.story",
		"survey.answers.unknown",
	}, fieldNames(t, err))
}

func TestMemberService_CreateMembershipApplication_SurveyMismatch(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()
	stale := uuid.New()

	input := f.validInput()
	input.Survey.SurveyID = &stale

	f.expectReferenceLookups()
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(newTestSurvey(t), nil)

	_, err := f.service.CreateMembershipApplication(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.Equal(t, []string{"survey.surveyId"}, fieldNames(t, err))
}

func TestMemberService_CreateMembershipApplication_AnswersWithoutSurvey(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()

	input := f.validInput()
	input.Survey.Answers = survey.Answers{"reason": survey.ChoiceAnswer("networking")}

	f.expectReferenceLookups()
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(nil, repository.ErrSurveyNotFound)

	_, err := f.service.CreateMembershipApplication(ctx, uuid.New(), input)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrSurveyNotFound)
}

func TestMemberService_ValidateMemberUsername(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()

	f.memberRepo.EXPECT().UsernameExists(ctx, "asha-rao").Return(false, nil).Once()
	f.memberRepo.EXPECT().UsernameExists(ctx, "meera").Return(true, nil).Once()
	f.metrics.EXPECT().UsernameChecked(true).Return().Once()
	f.metrics.EXPECT().UsernameChecked(false).Return().Once()

	available, err := f.service.ValidateMemberUsername(ctx, "  Asha Rao ")
	require.NoError(t, err)
	assert.True(t, available)

	available, err = f.service.ValidateMemberUsername(ctx, "MEERA")
	require.NoError(t, err)
	assert.False(t, available)

	available, err = f.service.ValidateMemberUsername(ctx, "!!!")
	require.NoError(t, err)
	assert.False(t, available)
}

func TestMemberService_ListMembers_ForcesApprovedAndPaginates(t *testing.T) {
	f := createTestMemberService(t)
	ctx := context.Background()

	members := make([]*entity.Member, 15)
	for i := range members {
		members[i] = &entity.Member{ID: uuid.New()}
	}

	f.memberRepo.EXPECT().
		List(ctx, mock.MatchedBy(func(filter entity.DirectoryFilter) bool {
			return filter.Status == entity.StatusApproved && filter.Sort == entity.SortName
		})).
		Return(members, nil)

	page, err := f.service.ListMembers(ctx, entity.DirectoryFilter{Status: entity.StatusPending, Sort: entity.SortName}, 2)

	require.NoError(t, err)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 15, page.TotalItems)
	assert.Equal(t, 2, page.TotalPages)
	assert.Equal(t, members[12:], page.Items)
}

func TestMemberService_ListMembers_RejectsUnknownSort(t *testing.T) {
	f := createTestMemberService(t)

	_, err := f.service.ListMembers(context.Background(), entity.DirectoryFilter{Sort: "newest"}, 1)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestMemberService_GetMember_NoApplicationYet(t *testing.T) {
	f := createTestMemberService(t)
	userID := uuid.New()
	f.memberRepo.EXPECT().FindByID(mock.Anything, userID).Return(nil, repository.ErrMemberNotFound)

	member, err := f.service.GetMember(context.Background(), userID)

	require.NoError(t, err)
	assert.Nil(t, member)
}

func TestMemberService_GetPublicProfile(t *testing.T) {
	approved := &entity.Member{ID: uuid.New(), Username: "asha-rao", Application: &entity.MembershipApplication{Status: entity.StatusApproved}}
	pending := &entity.Member{ID: uuid.New(), Username: "meera", Application: &entity.MembershipApplication{Status: entity.StatusPending}}

	t.Run("approved", func(t *testing.T) {
		f := createTestMemberService(t)
		f.memberRepo.EXPECT().FindByUsername(mock.Anything, "asha-rao").Return(approved, nil)

		member, err := f.service.GetPublicProfile(context.Background(), "Asha-Rao")

		require.NoError(t, err)
		assert.Equal(t, approved.ID, member.ID)
	})

	t.Run("pending is hidden", func(t *testing.T) {
		f := createTestMemberService(t)
		f.memberRepo.EXPECT().FindByUsername(mock.Anything, "meera").Return(pending, nil)

		_, err := f.service.GetPublicProfile(context.Background(), "meera")

		assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
	})

	t.Run("unknown", func(t *testing.T) {
		f := createTestMemberService(t)
		f.memberRepo.EXPECT().FindByUsername(mock.Anything, "ghost").Return(nil, repository.ErrMemberNotFound)

		_, err := f.service.GetPublicProfile(context.Background(), "ghost")

		assert.ErrorIs(t, err, domainerrors.ErrMemberNotFound)
	})
}

func TestMemberService_UpdateMember(t *testing.T) {
	userID := uuid.New()
	current := func() *entity.Member {
		return &entity.Member{ID: userID, FullName: "Asha Rao", Username: "asha-rao", YearsOfExperience: 6}
	}

	t.Run("applies set fields", func(t *testing.T) {
		f := createTestMemberService(t)
		ctx := context.Background()

		expectTx(f.txManager, f.repos)
		f.repos.members.EXPECT().FindByID(ctx, userID).Return(current(), nil).Once()
		f.repos.refs.EXPECT().FindTagsByIDs(ctx, []uuid.UUID{f.tags[0].ID}).Return(f.tags, nil)
		f.repos.members.EXPECT().
			Update(ctx, mock.MatchedBy(func(m *entity.Member) bool {
				return m.Username == "asha-photo" &&
					m.FullName == "Asha Rao" &&
					m.YearsOfExperience == 7 &&
					len(m.Tags) == 1
			})).
			Return(nil)
		f.repos.members.EXPECT().FindByID(ctx, userID).Return(&entity.Member{ID: userID, Username: "asha-photo"}, nil).Once()

		member, err := f.service.UpdateMember(ctx, userID, &usecase.UpdateMemberInput{
			Username:          strPtr("Asha Photo"),
			YearsOfExperience: intPtr(7),
			TagIDs:            []uuid.UUID{f.tags[0].ID},
		})

		require.NoError(t, err)
		assert.Equal(t, "asha-photo", member.Username)
	})

	t.Run("username collision", func(t *testing.T) {
		f := createTestMemberService(t)
		ctx := context.Background()

		expectTx(f.txManager, f.repos)
		f.repos.members.EXPECT().FindByID(ctx, userID).Return(current(), nil)
		f.repos.members.EXPECT().Update(ctx, mock.AnythingOfType("*entity.Member")).Return(repository.ErrUsernameConflict)

		_, err := f.service.UpdateMember(ctx, userID, &usecase.UpdateMemberInput{Username: strPtr("meera")})

		assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
	})

	t.Run("empty tag list", func(t *testing.T) {
		f := createTestMemberService(t)
		ctx := context.Background()

		expectTx(f.txManager, f.repos).Maybe()
		f.repos.members.EXPECT().FindByID(ctx, userID).Return(current(), nil).Maybe()

		_, err := f.service.UpdateMember(ctx, userID, &usecase.UpdateMemberInput{TagIDs: []uuid.UUID{}})

		require.Error(t, err)
		assert.Equal(t, []string{"tags"}, fieldNames(t, err))
	})

	t.Run("struct rules", func(t *testing.T) {
		f := createTestMemberService(t)

		_, err := f.service.UpdateMember(context.Background(), userID, &usecase.UpdateMemberInput{PhoneNumber: strPtr("123")})

		require.Error(t, err)
		assert.Equal(t, []string{"phoneNumber"}, fieldNames(t, err))
	})
}

func TestMemberService_GetProfileQR(t *testing.T) {
	f := createTestMemberService(t)
	member := &entity.Member{Username: "asha-rao", Application: &entity.MembershipApplication{Status: entity.StatusApproved}}
	png := []byte{0x89, 'P', 'N', 'G'}

	f.memberRepo.EXPECT().FindByUsername(mock.Anything, "asha-rao").Return(member, nil)
	f.qrCode.EXPECT().GenerateProfileQR("asha-rao").Return(png, nil)

	out, err := f.service.GetProfileQR(context.Background(), "asha-rao")

	require.NoError(t, err)
	assert.Equal(t, png, out)
}
