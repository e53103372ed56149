package repository

import (
	"context"
	"errors"

	"kala/internal/domain/entity"
)

// ErrSurveyNotFound is returned when no survey has the requested slug.
var ErrSurveyNotFound = errors.New("survey not found")

// SurveyRepository loads questionnaires. Schemas are validated when read.
type SurveyRepository interface {
	FindBySlug(ctx context.Context, slug string) (*entity.Survey, error)

	// Upsert creates or replaces the survey with the same slug.
	Upsert(ctx context.Context, survey *entity.Survey) error
}
