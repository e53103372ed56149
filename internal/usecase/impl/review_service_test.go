package impl

import (
	"context"
	"math"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	mockRepo "kala/internal/mocks/repository"
	mockSvc "kala/internal/mocks/service"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type reviewFixtures struct {
	service    usecase.ReviewUsecase
	txManager  *mockRepo.MockTransactionManager
	memberRepo *mockRepo.MockMemberRepository
	appRepo    *mockRepo.MockApplicationRepository
	surveys    *mockRepo.MockSurveyRepository
	metrics    *mockSvc.MockMetricsRecorder
	repos      *txRepos
}

func createTestReviewService(t *testing.T) *reviewFixtures {
	f := &reviewFixtures{
		txManager:  mockRepo.NewMockTransactionManager(t),
		memberRepo: mockRepo.NewMockMemberRepository(t),
		appRepo:    mockRepo.NewMockApplicationRepository(t),
		surveys:    mockRepo.NewMockSurveyRepository(t),
		metrics:    mockSvc.NewMockMetricsRecorder(t),
		repos:      newTxRepos(t),
	}
	f.service = NewReviewService(ReviewServiceParams{
		TxManager:  f.txManager,
		MemberRepo: f.memberRepo,
		AppRepo:    f.appRepo,
		SurveyRepo: f.surveys,
		Metrics:    f.metrics,
		Config:     newTestConfig(),
		Logger:     newDiscardLogger(),
	})

	return f
}

var (
	adminActor  = entity.Actor{UserID: uuid.MustParse("0190f3a0-0000-7000-8000-000000000001"), Roles: entity.Roles{entity.RoleMember, entity.RoleAdmin}}
	memberActor = entity.Actor{UserID: uuid.MustParse("0190f3a0-0000-7000-8000-000000000002"), Roles: entity.Roles{entity.RoleMember}}
)

func TestReviewService_RequiresAdmin(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	_, err := f.service.ListApplications(ctx, memberActor, usecase.ListApplicationsInput{})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.service.GetApplication(ctx, memberActor, memberID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	_, err = f.service.ListTransitions(ctx, memberActor, memberID)
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	for _, action := range []func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error){
		f.service.Approve, f.service.Decline, f.service.Block,
	} {
		_, err := action(ctx, memberActor, memberID)
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	}
}

func TestReviewService_Transitions(t *testing.T) {
	tests := []struct {
		name   string
		from   entity.ApplicationStatus
		to     entity.ApplicationStatus
		action func(usecase.ReviewUsecase) func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error)
	}{
		{name: "approve pending", from: entity.StatusPending, to: entity.StatusApproved, action: func(s usecase.ReviewUsecase) func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error) {
			return s.Approve
		}},
		{name: "decline pending", from: entity.StatusPending, to: entity.StatusDeclined, action: func(s usecase.ReviewUsecase) func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error) {
			return s.Decline
		}},
		{name: "block approved", from: entity.StatusApproved, to: entity.StatusBlocked, action: func(s usecase.ReviewUsecase) func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error) {
			return s.Block
		}},
		{name: "repeat block", from: entity.StatusBlocked, to: entity.StatusBlocked, action: func(s usecase.ReviewUsecase) func(context.Context, entity.Actor, uuid.UUID) (*entity.MembershipApplication, error) {
			return s.Block
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := createTestReviewService(t)
			ctx := context.Background()
			memberID := uuid.New()

			expectTx(f.txManager, f.repos)
			f.repos.apps.EXPECT().
				FindByMemberID(ctx, memberID).
				Return(&entity.MembershipApplication{MemberID: memberID, Status: tt.from}, nil)
			f.repos.apps.EXPECT().UpdateStatus(ctx, memberID, tt.to).Return(nil)
			f.repos.apps.EXPECT().
				AppendTransition(ctx, mock.MatchedBy(func(tr *entity.ApplicationTransition) bool {
					return tr.MemberID == memberID &&
						tr.FromStatus == tt.from &&
						tr.ToStatus == tt.to &&
						tr.ActorUserID == adminActor.UserID
				})).
				Return(nil)
			f.metrics.EXPECT().ApplicationTransitioned(tt.to).Return()

			app, err := tt.action(f.service)(ctx, adminActor, memberID)

			require.NoError(t, err)
			assert.Equal(t, tt.to, app.Status)
		})
	}
}

func TestReviewService_Approve_UnknownApplication(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	memberID := uuid.New()

	expectTx(f.txManager, f.repos)
	f.repos.apps.EXPECT().FindByMemberID(ctx, memberID).Return(nil, repository.ErrApplicationNotFound)

	_, err := f.service.Approve(ctx, adminActor, memberID)

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}

func TestReviewService_ListApplications(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	status := entity.StatusPending
	members := []*entity.Member{{ID: uuid.New()}, {ID: uuid.New()}}

	f.memberRepo.EXPECT().ListForReview(ctx, &status, 10, 20).Return(members, 25, nil)

	list, err := f.service.ListApplications(ctx, adminActor, usecase.ListApplicationsInput{Status: &status, Page: 2})

	require.NoError(t, err)
	assert.Equal(t, members, list.Members)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 10, list.Limit)
	assert.EqualValues(t, 25, list.TotalItems)
	assert.Equal(t, 3, list.TotalPages)
}

func TestReviewService_ListApplications_HugePageClampsOffset(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()

	f.memberRepo.EXPECT().ListForReview(ctx, (*entity.ApplicationStatus)(nil), 10, math.MaxInt).Return([]*entity.Member{}, 25, nil)

	list, err := f.service.ListApplications(ctx, adminActor, usecase.ListApplicationsInput{Page: 1 << 62})

	require.NoError(t, err)
	assert.Empty(t, list.Members)
	assert.Equal(t, 1<<62, list.Page)
}

func TestReviewService_ListApplications_UnknownStatus(t *testing.T) {
	f := createTestReviewService(t)
	status := entity.ApplicationStatus("ARCHIVED")

	_, err := f.service.ListApplications(context.Background(), adminActor, usecase.ListApplicationsInput{Status: &status})

	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestReviewService_GetApplication_ResolvesSurvey(t *testing.T) {
	f := createTestReviewService(t)
	ctx := context.Background()
	s := newTestSurvey(t)
	memberID := uuid.New()
	member := &entity.Member{
		ID: memberID,
		Application: &entity.MembershipApplication{
			Status: entity.StatusPending,
			SurveyResponse: &entity.SurveyResponse{
				SurveyID: s.ID,
				Answers: survey.Answers{
					"reason": survey.ChoiceAnswer("training", "legacy"),
					"gone":   survey.TextAnswer("old question"),
				},
			},
		},
	}
	transitions := []*entity.ApplicationTransition{{MemberID: memberID, FromStatus: entity.StatusPending, ToStatus: entity.StatusDeclined}}

	f.memberRepo.EXPECT().FindByID(ctx, memberID).Return(member, nil)
	f.surveys.EXPECT().FindBySlug(ctx, "membershipApplication").Return(s, nil)
	f.appRepo.EXPECT().ListTransitions(ctx, memberID).Return(transitions, nil)

	detail, err := f.service.GetApplication(ctx, adminActor, memberID)

	require.NoError(t, err)
	require.Len(t, detail.Survey, 1)
	assert.Equal(t, "Why do you wish to be a part of this community?", detail.Survey[0].Label)
	assert.Equal(t, []string{"Training"}, detail.Survey[0].Values)
	assert.Equal(t, transitions, detail.Transitions)
}

func TestReviewService_GetApplication_UnknownMember(t *testing.T) {
	f := createTestReviewService(t)
	memberID := uuid.New()
	f.memberRepo.EXPECT().FindByID(mock.Anything, memberID).Return(nil, repository.ErrMemberNotFound)

	_, err := f.service.GetApplication(context.Background(), adminActor, memberID)

	assert.ErrorIs(t, err, domainerrors.ErrApplicationNotFound)
}
