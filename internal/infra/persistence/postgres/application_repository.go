package postgres

import (
	"context"
	"encoding/json"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// applicationRepository persists membership applications and their audit log.
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create inserts the application and, when present, its survey response.
func (repo *applicationRepository) Create(ctx context.Context, app *entity.MembershipApplication) error {
	appM := &model.MembershipApplicationModel{
		ID:       app.ID,
		MemberID: app.MemberID,
		Status:   string(app.Status),
	}
	if err := repo.db.WithContext(ctx).Omit("SurveyResponse").Create(appM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrApplicationAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create application")
	}
	app.ID = appM.ID
	app.CreatedAt = appM.CreatedAt
	app.UpdatedAt = appM.UpdatedAt

	// A submission without a survey stores no response row.
	if app.SurveyResponse == nil {
		return nil
	}

	answers, err := json.Marshal(app.SurveyResponse.Answers.Compact())
	if err != nil {
		return errors.Wrap(err, "encode survey answers")
	}
	respM := &model.SurveyResponseModel{
		ID:       app.SurveyResponse.ID,
		MemberID: app.MemberID,
		SurveyID: app.SurveyResponse.SurveyID,
		Answers:  datatypes.JSON(answers),
	}
	if err := repo.db.WithContext(ctx).Create(respM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrApplicationAlreadyExists
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create survey response")
	}
	app.SurveyResponse.ID = respM.ID
	app.SurveyResponse.MemberID = app.MemberID
	app.SurveyResponse.CreatedAt = respM.CreatedAt

	return nil
}

// FindByMemberID reads from the primary so status decisions see the latest write.
func (repo *applicationRepository) FindByMemberID(ctx context.Context, memberID uuid.UUID) (*entity.MembershipApplication, error) {
	var row model.MembershipApplicationModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Preload("SurveyResponse").
		Where("member_id = ?", memberID).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrApplicationNotFound
		}

		return nil, errors.Wrap(err, "failed to find application")
	}

	return toApplicationDomain(&row)
}

// UpdateStatus sets the application's status. It does not write the transition
// log; the review service appends that in the same transaction.
func (repo *applicationRepository) UpdateStatus(ctx context.Context, memberID uuid.UUID, status entity.ApplicationStatus) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MembershipApplicationModel{}).
		Where("member_id = ?", memberID).
		Update("status", string(status))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update application status")
	}
	if result.RowsAffected == 0 {
		return repository.ErrApplicationNotFound
	}

	return nil
}

// AppendTransition records one status change. Rows are never updated or deleted.
func (repo *applicationRepository) AppendTransition(ctx context.Context, transition *entity.ApplicationTransition) error {
	row := &model.ApplicationTransitionModel{
		ID:          transition.ID,
		MemberID:    transition.MemberID,
		FromStatus:  string(transition.FromStatus),
		ToStatus:    string(transition.ToStatus),
		ActorUserID: transition.ActorUserID,
	}
	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to record application transition")
	}
	transition.ID = row.ID
	transition.CreatedAt = row.CreatedAt

	return nil
}

// ListTransitions returns a member's status history, oldest first.
func (repo *applicationRepository) ListTransitions(ctx context.Context, memberID uuid.UUID) ([]*entity.ApplicationTransition, error) {
	var rows []model.ApplicationTransitionModel
	err := repo.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list application transitions")
	}

	transitions := make([]*entity.ApplicationTransition, len(rows))
	for i, r := range rows {
		transitions[i] = &entity.ApplicationTransition{
			ID:          r.ID,
			MemberID:    r.MemberID,
			FromStatus:  entity.ApplicationStatus(r.FromStatus),
			ToStatus:    entity.ApplicationStatus(r.ToStatus),
			ActorUserID: r.ActorUserID,
			CreatedAt:   r.CreatedAt,
		}
	}

	return transitions, nil
}
