package usecase

import (
	"context"

	"kala/internal/domain/entity"
	"kala/internal/domain/survey"
	"kala/internal/util"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SurveyAnswersInput is the survey step of an application. SurveyID is optional;
// when set it must name the current onboarding survey.
type SurveyAnswersInput struct {
	SurveyID *uuid.UUID     `json:"surveyId,omitempty"`
	Answers  survey.Answers `json:"answers,omitempty"`
}

// MembershipApplicationInput is the composite payload of the onboarding wizard.
type MembershipApplicationInput struct {
	Personal entity.PersonalDetails `json:"personal"`
	Practice entity.PracticeDetails `json:"practice"`
	Survey   SurveyAnswersInput     `json:"survey"`
}

// UpdateMemberInput is a partial profile edit. Nil fields are left unchanged.
type UpdateMemberInput struct {
	FullName          *string                  `json:"fullName,omitempty" validate:"omitempty,min=3"`
	Username          *string                  `json:"username,omitempty" validate:"omitempty,min=1"`
	About             *string                  `json:"about,omitempty" validate:"omitempty,min=1"`
	Email             *string                  `json:"email,omitempty" validate:"omitempty,looseemail"`
	PhoneNumber       *string                  `json:"phoneNumber,omitempty" validate:"omitempty,numeric,len=10"`
	CityID            *uuid.UUID               `json:"city,omitempty"`
	Instagram         *string                  `json:"instagram,omitempty" validate:"omitempty,max=64"`
	Website           *string                  `json:"website,omitempty" validate:"omitempty,url"`
	YearsOfExperience *int                     `json:"yearsOfExperience,omitempty" validate:"omitempty,min=0,max=100"`
	TravelPreference  *entity.TravelPreference `json:"travelPreference,omitempty" validate:"omitempty,oneof=BASE REGION COUNTRY"`
	ServiceIDs        []uuid.UUID              `json:"services,omitempty" validate:"omitempty,min=1"`
	TagIDs            []uuid.UUID              `json:"tags,omitempty" validate:"omitempty,min=1"`
	ProfilePictureURL *string                  `json:"profilePicture,omitempty" validate:"omitempty,url"`
}

// MemberUsecase covers applications, the public directory and member profiles.
type MemberUsecase interface {
	// CreateMembershipApplication creates the member, its PENDING application and survey response together.
	CreateMembershipApplication(ctx context.Context, userID uuid.UUID, input *MembershipApplicationInput) (*entity.Member, error)

	// ValidateMemberUsername reports whether the normalised username is free.
	ValidateMemberUsername(ctx context.Context, username string) (bool, error)

	// ListMembers returns one page of the directory.
	ListMembers(ctx context.Context, filter entity.DirectoryFilter, page int) (*util.Page[*entity.Member], error)

	// GetMember returns the caller's own member profile, or nil when none exists.
	GetMember(ctx context.Context, userID uuid.UUID) (*entity.Member, error)

	// GetPublicProfile returns an approved member by username.
	GetPublicProfile(ctx context.Context, username string) (*entity.Member, error)

	UpdateMember(ctx context.Context, userID uuid.UUID, input *UpdateMemberInput) (*entity.Member, error)

	// GetProfileQR renders a PNG QR code pointing at an approved member's profile page.
	GetProfileQR(ctx context.Context, username string) ([]byte, error)
}
