package entity

import (
	"time"

	"kala/internal/domain/survey"

	"github.com/google/uuid"
)

// ApplicationStatus is the review state of a membership application.
type ApplicationStatus string

const (
	StatusPending  ApplicationStatus = "PENDING"
	StatusApproved ApplicationStatus = "APPROVED"
	StatusDeclined ApplicationStatus = "DECLINED"
	StatusBlocked  ApplicationStatus = "BLOCKED"
)

// IsValid checks if the status is a known value.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusDeclined, StatusBlocked:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether the status is a review outcome.
func (s ApplicationStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDeclined || s == StatusBlocked
}

// CanTransitionTo reports whether an admin action may move an application from s to next.
// Any state may move to any review outcome, including the one it is already in.
// Nothing moves back to PENDING.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	return s.IsValid() && next.IsTerminal()
}

// MembershipApplication is the review record attached to exactly one Member.
type MembershipApplication struct {
	ID             uuid.UUID
	MemberID       uuid.UUID
	Status         ApplicationStatus
	SurveyResponse *SurveyResponse
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ApplicationTransition is one audited status change.
type ApplicationTransition struct {
	ID          uuid.UUID
	MemberID    uuid.UUID
	FromStatus  ApplicationStatus
	ToStatus    ApplicationStatus
	ActorUserID uuid.UUID
	CreatedAt   time.Time
}

// SurveyResponse stores the answers given with an application.
type SurveyResponse struct {
	ID        uuid.UUID
	MemberID  uuid.UUID
	SurveyID  uuid.UUID
	Answers   survey.Answers
	CreatedAt time.Time
}

// Survey is an admin-defined questionnaire identified by slug.
type Survey struct {
	ID     uuid.UUID      `json:"id"`
	Slug   string         `json:"slug"`
	Title  string         `json:"title"`
	Schema *survey.Schema `json:"schema"`
}
