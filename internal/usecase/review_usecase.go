package usecase

import (
	"context"

	"kala/internal/domain/entity"
	"kala/internal/domain/survey"

	"github.com/google/uuid"
)

// ListApplicationsInput selects one page of applications. Page is 0-based.
type ListApplicationsInput struct {
	Status *entity.ApplicationStatus
	Limit  int
	Page   int
}

// ApplicationList is one page of applications with the total across all pages.
type ApplicationList struct {
	Members    []*entity.Member `json:"members"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalItems int64            `json:"totalItems"`
	TotalPages int              `json:"totalPages"`
}

// ApplicationDetail is a member under review with the survey answers resolved for display.
type ApplicationDetail struct {
	Member      *entity.Member                  `json:"member"`
	Survey      []survey.DisplayItem            `json:"survey"`
	Transitions []*entity.ApplicationTransition `json:"transitions"`
}

// ReviewUsecase is the admin review console. Every operation requires the ADMIN role.
type ReviewUsecase interface {
	ListApplications(ctx context.Context, actor entity.Actor, input ListApplicationsInput) (*ApplicationList, error)
	GetApplication(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*ApplicationDetail, error)
	ListTransitions(ctx context.Context, actor entity.Actor, memberID uuid.UUID) ([]*entity.ApplicationTransition, error)

	Approve(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error)
	Decline(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error)
	Block(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error)
}
