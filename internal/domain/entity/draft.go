package entity

import (
	"time"

	"github.com/google/uuid"
)

// OnboardingStep counts the wizard steps a draft has completed.
type OnboardingStep int

const (
	StepStarted  OnboardingStep = 0
	StepPersonal OnboardingStep = 1
	StepPractice OnboardingStep = 2
)

// PersonalDetails is the first wizard step.
type PersonalDetails struct {
	Identity    []string  `json:"identity" validate:"min=1,dive,oneof=female female-identifying"`
	FullName    string    `json:"fullName" validate:"required,min=3"`
	StateID     uuid.UUID `json:"state" validate:"required"`
	CityID      uuid.UUID `json:"city" validate:"required"`
	Email       string    `json:"email" validate:"required,looseemail"`
	PhoneNumber string    `json:"phoneNumber" validate:"required,numeric,len=10"`
	DateOfBirth string    `json:"dateOfBirth" validate:"required,datetime=2006-01-02"`
}

// PracticeDetails is the second wizard step.
type PracticeDetails struct {
	Username          string           `json:"username" validate:"required"`
	About             string           `json:"about" validate:"required"`
	YearsOfExperience *int             `json:"yearsOfExperience" validate:"required,min=0,max=100"`
	ServiceIDs        []uuid.UUID      `json:"services" validate:"min=1"`
	TagIDs            []uuid.UUID      `json:"tags" validate:"min=1"`
	TravelPreference  TravelPreference `json:"travelPreference" validate:"required,oneof=BASE REGION COUNTRY"`
	Instagram         string           `json:"instagram,omitempty" validate:"omitempty,max=64"`
	Website           string           `json:"website,omitempty" validate:"omitempty,url"`
	ProfilePictureURL string           `json:"profilePicture,omitempty" validate:"omitempty,url"`
}

// ApplicationDraft is the in-progress state of one user's onboarding wizard.
// It lives outside the relational store and expires on its own.
type ApplicationDraft struct {
	ID        uuid.UUID        `json:"id"`
	UserID    uuid.UUID        `json:"userId"`
	Step      OnboardingStep   `json:"step"`
	Personal  *PersonalDetails `json:"personal,omitempty"`
	Practice  *PracticeDetails `json:"practice,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
	ExpiresAt time.Time        `json:"expiresAt"`
}

// Expired reports whether the draft is past its lifetime.
func (d *ApplicationDraft) Expired(now time.Time) bool {
	return !d.ExpiresAt.After(now)
}
