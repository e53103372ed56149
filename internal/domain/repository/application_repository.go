package repository

import (
	"context"
	"errors"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrApplicationNotFound is returned when a member has no membership application.
var ErrApplicationNotFound = errors.New("membership application not found")

// ApplicationRepository persists membership applications, their survey responses and the transition log.
type ApplicationRepository interface {
	// Create inserts the application and its survey response.
	Create(ctx context.Context, app *entity.MembershipApplication) error

	// FindByMemberID reads from the primary, with the survey response.
	FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.MembershipApplication, error)

	UpdateStatus(ctx context.Context, memberID uuid.UUID, status entity.ApplicationStatus) error

	AppendTransition(ctx context.Context, transition *entity.ApplicationTransition) error

	// ListTransitions returns the log for one member, oldest first.
	ListTransitions(ctx context.Context, memberID uuid.UUID) ([]*entity.ApplicationTransition, error)
}
