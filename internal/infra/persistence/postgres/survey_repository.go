package postgres

import (
	"context"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	"kala/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// surveyRepository loads surveys and validates their schema on the way out.
type surveyRepository struct {
	db *gorm.DB
}

// NewSurveyRepository is the constructor for surveyRepository.
func NewSurveyRepository(db *gorm.DB) repository.SurveyRepository {
	return &surveyRepository{db: db}
}

// FindBySlug returns ErrSurveySchemaInvalid when the stored schema does not parse.
func (repo *surveyRepository) FindBySlug(ctx context.Context, slug string) (*entity.Survey, error) {
	var row model.SurveyModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", slug).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSurveyNotFound
		}

		return nil, errors.Wrap(err, "failed to find survey")
	}

	schema, err := survey.Parse(row.Schema)
	if err != nil {
		return nil, domainerrors.ErrSurveySchemaInvalid.WithDetails(err.Error())
	}

	return &entity.Survey{
		ID:     row.ID,
		Slug:   row.Slug,
		Title:  row.Title,
		Schema: schema,
	}, nil
}

// Upsert inserts the survey or replaces title and schema of the one with the same slug.
func (repo *surveyRepository) Upsert(ctx context.Context, s *entity.Survey) error {
	doc := []byte("{}")
	if s.Schema != nil {
		encoded, err := s.Schema.MarshalJSON()
		if err != nil {
			return errors.Wrap(err, "encode survey schema")
		}
		doc = encoded
	}

	row := &model.SurveyModel{
		ID:     s.ID,
		Slug:   s.Slug,
		Title:  s.Title,
		Schema: datatypes.JSON(doc),
	}

	err := repo.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slug"}},
		DoUpdates: clause.AssignmentColumns([]string{"title", "schema", "updated_at"}),
	}).Create(row).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert survey")
	}

	var stored model.SurveyModel
	if err := repo.db.WithContext(ctx).Where("slug = ?", s.Slug).First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload survey")
	}
	s.ID = stored.ID

	return nil
}
