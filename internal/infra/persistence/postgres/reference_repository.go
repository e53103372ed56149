package postgres

import (
	"context"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// referenceRepository serves tags, services and the location hierarchy.
type referenceRepository struct {
	db *gorm.DB
}

// NewReferenceRepository is the constructor for referenceRepository.
func NewReferenceRepository(db *gorm.DB) repository.ReferenceRepository {
	return &referenceRepository{db: db}
}

// ListTags returns every tag by name.
func (repo *referenceRepository) ListTags(ctx context.Context) ([]entity.Tag, error) {
	var rows []model.TagModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list tags")
	}

	return toTagsDomain(rows), nil
}

// ListServices returns every service by name.
func (repo *referenceRepository) ListServices(ctx context.Context) ([]entity.Service, error) {
	var rows []model.ServiceModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list services")
	}

	return toServicesDomain(rows), nil
}

// ListStates returns every state by name.
func (repo *referenceRepository) ListStates(ctx context.Context) ([]entity.LocationState, error) {
	var rows []model.LocationStateModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list states")
	}

	states := make([]entity.LocationState, len(rows))
	for i, r := range rows {
		states[i] = entity.LocationState{ID: r.ID, Name: r.Name}
	}

	return states, nil
}

// ListCities returns the cities of one state by name. An unknown state yields none.
func (repo *referenceRepository) ListCities(ctx context.Context, stateID uuid.UUID) ([]entity.LocationCity, error) {
	var rows []model.LocationCityModel
	err := repo.db.WithContext(ctx).
		Where("state_id = ?", stateID).
		Order("name ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list cities")
	}

	cities := make([]entity.LocationCity, len(rows))
	for i := range rows {
		cities[i] = *toCityDomain(&rows[i])
	}

	return cities, nil
}

// FindCity loads a city with its state.
func (repo *referenceRepository) FindCity(ctx context.Context, id uuid.UUID) (*entity.LocationCity, error) {
	var row model.LocationCityModel
	if err := repo.db.WithContext(ctx).Preload("State").Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCityNotFound
		}

		return nil, errors.Wrap(err, "failed to find city")
	}

	return toCityDomain(&row), nil
}

// FindTagsByIDs returns the tags that exist among ids; unknown ids are skipped.
func (repo *referenceRepository) FindTagsByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Tag, error) {
	if len(ids) == 0 {
		return []entity.Tag{}, nil
	}

	var rows []model.TagModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find tags")
	}

	return toTagsDomain(rows), nil
}

// FindServicesByIDs returns the services that exist among ids; unknown ids are skipped.
func (repo *referenceRepository) FindServicesByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Service, error) {
	if len(ids) == 0 {
		return []entity.Service{}, nil
	}

	var rows []model.ServiceModel
	if err := repo.db.WithContext(ctx).Where("id IN ?", ids).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to find services")
	}

	return toServicesDomain(rows), nil
}

// EnsureTag finds a tag by exact name, creating it when absent. Seeding relies on this being idempotent.
func (repo *referenceRepository) EnsureTag(ctx context.Context, name string) (*entity.Tag, error) {
	row := model.TagModel{}
	if err := repo.db.WithContext(ctx).Where(model.TagModel{Name: name}).FirstOrCreate(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure tag")
	}

	return &entity.Tag{ID: row.ID, Name: row.Name}, nil
}

// EnsureService finds a service by exact name, creating it when absent.
func (repo *referenceRepository) EnsureService(ctx context.Context, name string) (*entity.Service, error) {
	row := model.ServiceModel{}
	if err := repo.db.WithContext(ctx).Where(model.ServiceModel{Name: name}).FirstOrCreate(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure service")
	}

	return &entity.Service{ID: row.ID, Name: row.Name}, nil
}

// EnsureState finds a state by exact name, creating it when absent.
func (repo *referenceRepository) EnsureState(ctx context.Context, name string) (*entity.LocationState, error) {
	row := model.LocationStateModel{}
	if err := repo.db.WithContext(ctx).Where(model.LocationStateModel{Name: name}).FirstOrCreate(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure state")
	}

	return &entity.LocationState{ID: row.ID, Name: row.Name}, nil
}

// EnsureCity finds a city by name within a state, creating it when absent.
func (repo *referenceRepository) EnsureCity(ctx context.Context, stateID uuid.UUID, name string) (*entity.LocationCity, error) {
	row := model.LocationCityModel{}
	err := repo.db.WithContext(ctx).
		Where(model.LocationCityModel{StateID: stateID, Name: name}).
		FirstOrCreate(&row).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return nil, errors.Wrapf(repository.ErrCityNotFound, "state %s", stateID)
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to ensure city")
	}

	return &entity.LocationCity{ID: row.ID, Name: row.Name, StateID: row.StateID}, nil
}

// --- Mapper Functions ---

func toTagsDomain(rows []model.TagModel) []entity.Tag {
	tags := make([]entity.Tag, len(rows))
	for i, r := range rows {
		tags[i] = entity.Tag{ID: r.ID, Name: r.Name}
	}

	return tags
}

func toServicesDomain(rows []model.ServiceModel) []entity.Service {
	services := make([]entity.Service, len(rows))
	for i, r := range rows {
		services[i] = entity.Service{ID: r.ID, Name: r.Name}
	}

	return services
}

func toCityDomain(data *model.LocationCityModel) *entity.LocationCity {
	if data == nil {
		return nil
	}

	city := &entity.LocationCity{ID: data.ID, Name: data.Name, StateID: data.StateID}
	if data.State != nil {
		city.State = &entity.LocationState{ID: data.State.ID, Name: data.State.Name}
	}

	return city
}
