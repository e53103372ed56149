package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	mockRepo "kala/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth: &config.AuthConfig{
			AccessTTL:   15 * time.Minute,
			RefreshTTL:  7 * 24 * time.Hour,
			AdminEmails: []string{"Admin@Kala.test"},
		},
		Onboarding: &config.OnboardingConfig{
			DraftTTL:   time.Hour,
			SurveySlug: "membershipApplication",
		},
		Directory: &config.DirectoryConfig{
			PageSize:      12,
			AdminPageSize: 10,
			PublicBaseURL: "https://kala.test",
		},
	}
}

// txRepos is the set of repositories handed to a transaction callback.
type txRepos struct {
	factory *mockRepo.MockRepositoryFactory
	users   *mockRepo.MockUserRepository
	auths   *mockRepo.MockAuthRepository
	tokens  *mockRepo.MockRefreshTokenRepository
	members *mockRepo.MockMemberRepository
	apps    *mockRepo.MockApplicationRepository
	refs    *mockRepo.MockReferenceRepository
}

func newTxRepos(t *testing.T) *txRepos {
	r := &txRepos{
		factory: mockRepo.NewMockRepositoryFactory(t),
		users:   mockRepo.NewMockUserRepository(t),
		auths:   mockRepo.NewMockAuthRepository(t),
		tokens:  mockRepo.NewMockRefreshTokenRepository(t),
		members: mockRepo.NewMockMemberRepository(t),
		apps:    mockRepo.NewMockApplicationRepository(t),
		refs:    mockRepo.NewMockReferenceRepository(t),
	}
	r.factory.EXPECT().UserRepo().Return(r.users).Maybe()
	r.factory.EXPECT().AuthRepo().Return(r.auths).Maybe()
	r.factory.EXPECT().RefreshTokenRepo().Return(r.tokens).Maybe()
	r.factory.EXPECT().MemberRepo().Return(r.members).Maybe()
	r.factory.EXPECT().ApplicationRepo().Return(r.apps).Maybe()
	r.factory.EXPECT().ReferenceRepo().Return(r.refs).Maybe()

	return r
}

// expectTx runs the transaction callback against repos and returns its error.
func expectTx(txManager *mockRepo.MockTransactionManager, repos *txRepos) *mockRepo.MockTransactionManager_Execute_Call {
	return txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(repos.factory)
		})
}

const testSurveySchema = `{
	"reason": {
		"type": "checkbox",
		"label": "Why do you wish to be a part of this community?",
		"options": [
			{"key": "networking", "label": "Networking"},
			{"key": "training", "label": "Training"}
		]
	},
	"story": {"type": "textarea", "label": "Tell us about your work"}
}`

func newTestSurvey(t *testing.T) *entity.Survey {
	t.Helper()
	schema, err := survey.Parse([]byte(testSurveySchema))
	require.NoError(t, err)

	return &entity.Survey{
		ID:     uuid.New(),
		Slug:   "membershipApplication",
		Title:  "Membership application",
		Schema: schema,
	}
}

func intPtr(v int) *int { return &v }

func strPtr(v string) *string { return &v }
