package draftstore

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/domain/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDraft(ttl time.Duration) *entity.ApplicationDraft {
	now := time.Now().UTC().Truncate(time.Second)

	return &entity.ApplicationDraft{
		ID:     uuid.New(),
		UserID: uuid.New(),
		Step:   entity.StepPersonal,
		Personal: &entity.PersonalDetails{
			Identity: []string{"female"},
			FullName: "Asha Rao",
		},
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// exerciseStore runs the behaviour every DraftStore shares.
func exerciseStore(t *testing.T, store service.DraftStore) {
	t.Helper()
	ctx := context.Background()

	draft := newDraft(time.Hour)
	require.NoError(t, store.Save(ctx, draft))

	got, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.UserID, got.UserID)
	assert.Equal(t, entity.StepPersonal, got.Step)
	assert.Equal(t, "Asha Rao", got.Personal.FullName)

	got.Personal.FullName = "changed"
	again, err := store.Get(ctx, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", again.Personal.FullName)

	require.NoError(t, store.Delete(ctx, draft.ID))
	_, err = store.Get(ctx, draft.ID)
	assert.ErrorIs(t, err, service.ErrDraftNotFound)

	_, err = store.Get(ctx, uuid.New())
	assert.ErrorIs(t, err, service.ErrDraftNotFound)
}

func TestMemoryStore(t *testing.T) {
	exerciseStore(t, NewMemoryStore())
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	now := time.Now()
	store.now = func() time.Time { return now }

	live := newDraft(time.Hour)
	stale := newDraft(time.Minute)
	require.NoError(t, store.Save(ctx, live))
	require.NoError(t, store.Save(ctx, stale))

	now = now.Add(10 * time.Minute)

	_, err := store.Get(ctx, stale.ID)
	assert.ErrorIs(t, err, service.ErrDraftNotFound)

	require.NoError(t, store.Save(ctx, stale))
	purged, err := store.PurgeExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	_, err = store.Get(ctx, live.ID)
	assert.NoError(t, err)
}

func TestRedisStore(t *testing.T) {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		t.Skip("REDIS_ADDR not set")
	}
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))

	client, err := NewRedisClient(context.Background(), &config.RedisConfig{Addr: addr, DB: db})
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	store := NewRedisStore(client)
	exerciseStore(t, store)

	ttl, err := client.TTL(context.Background(), draftKey(uuid.New())).Result()
	require.NoError(t, err)
	assert.Negative(t, ttl)
}

func TestNewRedisClient_RequiresAddress(t *testing.T) {
	_, err := NewRedisClient(context.Background(), &config.RedisConfig{})
	assert.Error(t, err)
}
