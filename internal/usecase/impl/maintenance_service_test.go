package impl

import (
	"context"
	"testing"

	mockRepo "kala/internal/mocks/repository"
	mockSvc "kala/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaintenanceService(t *testing.T) {
	tokens := mockRepo.NewMockRefreshTokenRepository(t)
	drafts := mockSvc.NewMockDraftStore(t)
	srv := NewMaintenanceService(MaintenanceServiceParams{
		RefreshTokenRepo: tokens,
		Drafts:           drafts,
		Logger:           newDiscardLogger(),
	})
	ctx := context.Background()

	tokens.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(3, nil).Once()
	drafts.EXPECT().PurgeExpired(ctx).Return(2, nil).Once()

	n, err := srv.PurgeExpiredSessions(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	m, err := srv.PurgeExpiredDrafts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, m)

	tokens.EXPECT().DeleteExpiredRefreshTokens(ctx).Return(0, errors.New("connection reset")).Once()

	_, err = srv.PurgeExpiredSessions(ctx)
	assert.ErrorContains(t, err, "failed to purge expired refresh tokens")
}
