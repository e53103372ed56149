package usecase

import (
	"context"

	"kala/internal/domain/entity"
	"kala/internal/domain/survey"

	"github.com/google/uuid"
)

// SurveyForm is a survey rendered for editing.
type SurveyForm struct {
	Survey *entity.Survey     `json:"survey"`
	Fields []survey.FormField `json:"fields"`
}

// ReferenceUsecase serves the static vocabularies and survey definitions.
type ReferenceUsecase interface {
	GetTags(ctx context.Context) ([]entity.Tag, error)
	GetServices(ctx context.Context) ([]entity.Service, error)
	GetLocationStates(ctx context.Context) ([]entity.LocationState, error)
	GetLocationCities(ctx context.Context, stateID uuid.UUID) ([]entity.LocationCity, error)
	GetSurvey(ctx context.Context, slug string) (*entity.Survey, error)
	// GetSurveyForm renders the survey bound to answers; nil answers render an empty form.
	GetSurveyForm(ctx context.Context, slug string, answers survey.Answers) (*SurveyForm, error)
}
