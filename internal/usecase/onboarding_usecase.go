package usecase

import (
	"context"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

// OnboardingUsecase drives the three-step application wizard. Drafts belong to
// the user who started them; other users see ErrDraftNotFound.
type OnboardingUsecase interface {
	Start(ctx context.Context, userID uuid.UUID) (*entity.ApplicationDraft, error)
	GetDraft(ctx context.Context, userID, draftID uuid.UUID) (*entity.ApplicationDraft, error)
	SavePersonal(ctx context.Context, userID, draftID uuid.UUID, input *entity.PersonalDetails) (*entity.ApplicationDraft, error)
	SavePractice(ctx context.Context, userID, draftID uuid.UUID, input *entity.PracticeDetails) (*entity.ApplicationDraft, error)
	// Submit sends the accumulated draft with the survey answers. The draft is
	// deleted on success and kept on failure.
	Submit(ctx context.Context, userID, draftID uuid.UUID, input *SurveyAnswersInput) (*entity.Member, error)
	Discard(ctx context.Context, userID, draftID uuid.UUID) error
}
