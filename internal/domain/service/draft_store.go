package service

import (
	"context"
	"errors"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrDraftNotFound is returned for unknown or expired drafts.
var ErrDraftNotFound = errors.New("application draft not found")

// DraftStore keeps onboarding drafts between wizard steps.
type DraftStore interface {
	// Save creates or replaces a draft. The store expires it at draft.ExpiresAt.
	Save(ctx context.Context, draft *entity.ApplicationDraft) error

	Get(ctx context.Context, id uuid.UUID) (*entity.ApplicationDraft, error)

	Delete(ctx context.Context, id uuid.UUID) error

	// PurgeExpired drops drafts past their expiry and reports how many were removed.
	PurgeExpired(ctx context.Context) (int, error)
}
