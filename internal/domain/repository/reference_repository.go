package repository

import (
	"context"
	"errors"

	"kala/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrCityNotFound is returned when a city id is unknown.
var ErrCityNotFound = errors.New("city not found")

// ReferenceRepository serves the fixed vocabularies: tags, services and locations.
type ReferenceRepository interface {
	ListTags(ctx context.Context) ([]entity.Tag, error)
	ListServices(ctx context.Context) ([]entity.Service, error)
	ListStates(ctx context.Context) ([]entity.LocationState, error)
	ListCities(ctx context.Context, stateID uuid.UUID) ([]entity.LocationCity, error)

	FindCity(ctx context.Context, id uuid.UUID) (*entity.LocationCity, error)
	FindTagsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Tag, error)
	FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error)

	// Ensure* insert by name when missing and return the stored row.
	EnsureTag(ctx context.Context, name string) (*entity.Tag, error)
	EnsureService(ctx context.Context, name string) (*entity.Service, error)
	EnsureState(ctx context.Context, name string) (*entity.LocationState, error)
	EnsureCity(ctx context.Context, stateID uuid.UUID, name string) (*entity.LocationCity, error)
}
