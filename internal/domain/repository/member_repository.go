package repository

import (
	"context"
	"errors"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	// ErrMemberNotFound is returned when no member matches the lookup.
	ErrMemberNotFound = errors.New("member not found")
	// ErrUsernameConflict is returned when a write collides with an existing username.
	ErrUsernameConflict = errors.New("username already in use")
	// ErrMemberConflict is returned when a member already exists for the user.
	ErrMemberConflict = errors.New("member already exists")
)

// MemberRepository persists member profiles together with their tag and service links.
type MemberRepository interface {
	// Create inserts the member and its tag/service links.
	Create(ctx context.Context, member *entity.Member) error

	// Update writes profile fields and replaces tag/service links.
	Update(ctx context.Context, member *entity.Member) error

	// UpdateProfilePicture sets only the picture URL.
	UpdateProfilePicture(ctx context.Context, id uuid.UUID, url string) error

	// FindByID loads a member with location, tags, services and application.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error)

	// FindByUsername loads a member by its normalised username.
	FindByUsername(ctx context.Context, username string) (*entity.Member, error)

	// UsernameExists reads from the primary.
	UsernameExists(ctx context.Context, username string) (bool, error)

	// List returns every member matching the filter, featured first.
	List(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Member, error)

	// ListForReview pages members by application status, oldest application first.
	// A nil status lists every application.
	ListForReview(ctx context.Context, status *entity.ApplicationStatus, limit, offset int) ([]*entity.Member, int64, error)
}
