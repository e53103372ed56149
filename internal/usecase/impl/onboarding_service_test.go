package impl

import (
	"context"
	"testing"
	"time"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/infra/draftstore"
	"kala/internal/infra/validation"
	mockRepo "kala/internal/mocks/repository"
	mockUsecase "kala/internal/mocks/usecase"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type onboardingFixtures struct {
	service    usecase.OnboardingUsecase
	drafts     *draftstore.MemoryStore
	memberRepo *mockRepo.MockMemberRepository
	refs       *mockRepo.MockReferenceRepository
	members    *mockUsecase.MockMemberUsecase

	city   *entity.LocationCity
	tag    entity.Tag
	svcRef entity.Service
}

func createTestOnboardingService(t *testing.T) *onboardingFixtures {
	stateID := uuid.New()
	f := &onboardingFixtures{
		drafts:     draftstore.NewMemoryStore(),
		memberRepo: mockRepo.NewMockMemberRepository(t),
		refs:       mockRepo.NewMockReferenceRepository(t),
		members:    mockUsecase.NewMockMemberUsecase(t),
		city:       &entity.LocationCity{ID: uuid.New(), Name: "Bengaluru", StateID: stateID},
		tag:        entity.Tag{ID: uuid.New(), Name: "Wildlife"},
		svcRef:     entity.Service{ID: uuid.New(), Name: "Photography"},
	}
	f.service = NewOnboardingService(OnboardingServiceParams{
		Drafts:        f.drafts,
		MemberRepo:    f.memberRepo,
		ReferenceRepo: f.refs,
		Members:       f.members,
		Validator:     validation.New(),
		Config:        newTestConfig(),
		Logger:        newDiscardLogger(),
	})

	return f
}

func (f *onboardingFixtures) personal() *entity.PersonalDetails {
	return &entity.PersonalDetails{
		Identity:    []string{"female-identifying"},
		FullName:    "Meera Nair",
		StateID:     f.city.StateID,
		CityID:      f.city.ID,
		Email:       "meera@example.com",
		PhoneNumber: "9123456780",
		DateOfBirth: "1988-11-02",
	}
}

func (f *onboardingFixtures) practice() *entity.PracticeDetails {
	return &entity.PracticeDetails{
		Username:          "Meera Nair",
		About:             "Wildlife and nature",
		YearsOfExperience: intPtr(0),
		ServiceIDs:        []uuid.UUID{f.svcRef.ID},
		TagIDs:            []uuid.UUID{f.tag.ID},
		TravelPreference:  entity.TravelCountry,
	}
}

func (f *onboardingFixtures) expectLookups() {
	f.refs.EXPECT().FindCity(mock.Anything, f.city.ID).Return(f.city, nil).Maybe()
	f.refs.EXPECT().FindTagsByIDs(mock.Anything, []uuid.UUID{f.tag.ID}).Return([]entity.Tag{f.tag}, nil).Maybe()
	f.refs.EXPECT().FindServicesByIDs(mock.Anything, []uuid.UUID{f.svcRef.ID}).Return([]entity.Service{f.svcRef}, nil).Maybe()
}

func TestOnboardingService_FullWizard(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	userID := uuid.New()
	f.expectLookups()

	draft, err := f.service.Start(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepStarted, draft.Step)
	assert.WithinDuration(t, time.Now().Add(time.Hour), draft.ExpiresAt, time.Minute)

	draft, err = f.service.SavePersonal(ctx, userID, draft.ID, f.personal())
	require.NoError(t, err)
	assert.Equal(t, entity.StepPersonal, draft.Step)

	f.memberRepo.EXPECT().UsernameExists(ctx, "meera-nair").Return(false, nil)
	draft, err = f.service.SavePractice(ctx, userID, draft.ID, f.practice())
	require.NoError(t, err)
	assert.Equal(t, entity.StepPractice, draft.Step)
	assert.Equal(t, "meera-nair", draft.Practice.Username)

	// Going back to step one keeps step two.
	draft, err = f.service.SavePersonal(ctx, userID, draft.ID, f.personal())
	require.NoError(t, err)
	assert.Equal(t, entity.StepPractice, draft.Step)
	require.NotNil(t, draft.Practice)

	answers := &usecase.SurveyAnswersInput{}
	f.members.EXPECT().
		CreateMembershipApplication(ctx, userID, mock.MatchedBy(func(in *usecase.MembershipApplicationInput) bool {
			return in.Personal.FullName == "Meera Nair" && in.Practice.Username == "meera-nair"
		})).
		Return(&entity.Member{ID: userID, Username: "meera-nair"}, nil)

	member, err := f.service.Submit(ctx, userID, draft.ID, answers)
	require.NoError(t, err)
	assert.Equal(t, "meera-nair", member.Username)

	_, err = f.service.GetDraft(ctx, userID, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)
}

func TestOnboardingService_StepsMustBeInOrder(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	userID := uuid.New()

	draft, err := f.service.Start(ctx, userID)
	require.NoError(t, err)

	_, err = f.service.SavePractice(ctx, userID, draft.ID, f.practice())
	assert.ErrorIs(t, err, domainerrors.ErrStepOutOfOrder)

	_, err = f.service.Submit(ctx, userID, draft.ID, nil)
	assert.ErrorIs(t, err, domainerrors.ErrStepOutOfOrder)
}

func TestOnboardingService_DraftsAreOwned(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	owner := uuid.New()

	draft, err := f.service.Start(ctx, owner)
	require.NoError(t, err)

	_, err = f.service.GetDraft(ctx, uuid.New(), draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)

	assert.ErrorIs(t, f.service.Discard(ctx, uuid.New(), draft.ID), domainerrors.ErrDraftNotFound)

	require.NoError(t, f.service.Discard(ctx, owner, draft.ID))
	_, err = f.service.GetDraft(ctx, owner, draft.ID)
	assert.ErrorIs(t, err, domainerrors.ErrDraftNotFound)
}

func TestOnboardingService_SavePersonal_Invalid(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	userID := uuid.New()
	f.expectLookups()

	draft, err := f.service.Start(ctx, userID)
	require.NoError(t, err)

	input := f.personal()
	input.PhoneNumber = "98765"
	input.DateOfBirth = "1850-01-01"

	_, err = f.service.SavePersonal(ctx, userID, draft.ID, input)

	require.Error(t, err)
	assert.ElementsMatch(t, []string{"phoneNumber", "dateOfBirth"}, fieldNames(t, err))

	stored, err := f.service.GetDraft(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.Personal)
}

func TestOnboardingService_SavePractice_UsernameTaken(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	userID := uuid.New()
	f.expectLookups()

	draft, err := f.service.Start(ctx, userID)
	require.NoError(t, err)
	_, err = f.service.SavePersonal(ctx, userID, draft.ID, f.personal())
	require.NoError(t, err)

	f.memberRepo.EXPECT().UsernameExists(ctx, "meera-nair").Return(true, nil)

	_, err = f.service.SavePractice(ctx, userID, draft.ID, f.practice())

	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)
}

func TestOnboardingService_Submit_FailureKeepsDraft(t *testing.T) {
	f := createTestOnboardingService(t)
	ctx := context.Background()
	userID := uuid.New()
	f.expectLookups()

	draft, err := f.service.Start(ctx, userID)
	require.NoError(t, err)
	_, err = f.service.SavePersonal(ctx, userID, draft.ID, f.personal())
	require.NoError(t, err)
	f.memberRepo.EXPECT().UsernameExists(ctx, "meera-nair").Return(false, nil)
	_, err = f.service.SavePractice(ctx, userID, draft.ID, f.practice())
	require.NoError(t, err)

	f.members.EXPECT().
		CreateMembershipApplication(ctx, userID, mock.AnythingOfType("*usecase.MembershipApplicationInput")).
		Return(nil, domainerrors.ErrUsernameTaken)

	_, err = f.service.Submit(ctx, userID, draft.ID, &usecase.SurveyAnswersInput{})
	assert.ErrorIs(t, err, domainerrors.ErrUsernameTaken)

	kept, err := f.service.GetDraft(ctx, userID, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StepPractice, kept.Step)
}
