package postgres

import (
	"context"
	"encoding/json"
	"strings"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

const (
	memberTagsTable     = "member_tags"
	memberServicesTable = "member_services"
)

// memberRepository implements repository.MemberRepository with the GORM chain API.
type memberRepository struct {
	db *gorm.DB
}

// NewMemberRepository is the constructor for memberRepository.
func NewMemberRepository(db *gorm.DB) repository.MemberRepository {
	return &memberRepository{db: db}
}

// withRelations preloads everything a member page or review needs.
func withRelations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Location.State").
		Preload("Tags", func(db *gorm.DB) *gorm.DB { return db.Order("tags.name ASC") }).
		Preload("Services", func(db *gorm.DB) *gorm.DB { return db.Order("services.name ASC") }).
		Preload("Application.SurveyResponse")
}

// Create inserts the member row, then its tag and service links. Callers run
// it inside txManager.Execute so a failed link rolls the member back.
func (repo *memberRepository) Create(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	// Associations are written by replaceLinks, not by gorm's upsert.
	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(memberM).Error; err != nil {
		return translateMemberWriteError(err, "failed to create member")
	}

	if err := repo.replaceLinks(ctx, member.ID, member.TagIDs(), member.ServiceIDs()); err != nil {
		return err
	}

	member.CreatedAt = memberM.CreatedAt
	member.UpdatedAt = memberM.UpdatedAt

	return nil
}

// Update overwrites the editable profile columns and replaces the member's
// links. Identity, date of birth and the featured flag are not editable here.
func (repo *memberRepository) Update(ctx context.Context, member *entity.Member) error {
	memberM := fromMemberDomain(member)

	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", member.ID).
		Updates(map[string]any{
			"full_name":           memberM.FullName,
			"username":            memberM.Username,
			"about":               memberM.About,
			"email":               memberM.Email,
			"phone_number":        memberM.PhoneNumber,
			"years_of_experience": memberM.YearsOfExperience,
			"travel_preference":   memberM.TravelPreference,
			"profile_picture_url": memberM.ProfilePictureURL,
			"instagram":           memberM.Instagram,
			"website":             memberM.Website,
			"location_city_id":    memberM.LocationCityID,
		})
	if result.Error != nil {
		return translateMemberWriteError(result.Error, "failed to update member")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	// Links are replaced wholesale; an empty list clears them.
	return repo.replaceLinks(ctx, member.ID, member.TagIDs(), member.ServiceIDs())
}

// UpdateProfilePicture stores a confirmed upload URL.
func (repo *memberRepository) UpdateProfilePicture(ctx context.Context, id uuid.UUID, url string) error {
	result := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Where("id = ?", id).
		Update("profile_picture_url", url)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update profile picture")
	}
	if result.RowsAffected == 0 {
		return repository.ErrMemberNotFound
	}

	return nil
}

// replaceLinks rewrites the member's tag and service join rows.
func (repo *memberRepository) replaceLinks(ctx context.Context, memberID uuid.UUID, tagIDs, serviceIDs []uuid.UUID) error {
	db := repo.db.WithContext(ctx)

	if err := db.Exec("DELETE FROM "+memberTagsTable+" WHERE member_id = ?", memberID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear member tags")
	}
	if err := db.Exec("DELETE FROM "+memberServicesTable+" WHERE member_id = ?", memberID).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to clear member services")
	}

	if rows := joinRows(memberID, "tag_id", tagIDs); len(rows) > 0 {
		if err := db.Table(memberTagsTable).Create(&rows).Error; err != nil {
			return translateLinkError(err, "tags")
		}
	}
	if rows := joinRows(memberID, "service_id", serviceIDs); len(rows) > 0 {
		if err := db.Table(memberServicesTable).Create(&rows).Error; err != nil {
			return translateLinkError(err, "services")
		}
	}

	return nil
}

func joinRows(memberID uuid.UUID, column string, ids []uuid.UUID) []map[string]any {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	rows := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		rows = append(rows, map[string]any{"member_id": memberID, column: id})
	}

	return rows
}

// FindByID loads a member with location, links, application and survey response.
func (repo *memberRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Member, error) {
	var row model.MemberModel
	if err := withRelations(repo.db.WithContext(ctx)).Where("members.id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by id")
	}

	return toMemberDomain(&row)
}

// FindByUsername loads a member by its normalised username.
func (repo *memberRepository) FindByUsername(ctx context.Context, username string) (*entity.Member, error) {
	var row model.MemberModel
	if err := withRelations(repo.db.WithContext(ctx)).Where("members.username = ?", username).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMemberNotFound
		}

		return nil, errors.Wrap(err, "failed to find member by username")
	}

	return toMemberDomain(&row)
}

// UsernameExists reads from the primary so a just-created member is seen.
func (repo *memberRepository) UsernameExists(ctx context.Context, username string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.MemberModel{}).
		Where("username = ?", username).
		Count(&count).Error
	if err != nil {
		return false, domainerrors.NewDatabaseExecuteError(err, "failed to check username")
	}

	return count > 0, nil
}

// List returns every member matching filter: featured first, then the
// requested sort, then id.
func (repo *memberRepository) List(ctx context.Context, filter entity.DirectoryFilter) ([]*entity.Member, error) {
	filter = filter.Normalize()

	q := repo.db.WithContext(ctx).
		Model(&model.MemberModel{}).
		Joins("JOIN membership_applications ON membership_applications.member_id = members.id")

	if filter.Status != "" {
		q = q.Where("membership_applications.status = ?", string(filter.Status))
	}
	if filter.Search != "" {
		q = q.Where(`LOWER(members.full_name) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.Search))+"%")
	}
	if filter.Experience.Start != nil {
		q = q.Where("members.years_of_experience >= ?", *filter.Experience.Start)
	}
	if filter.Experience.End != nil {
		q = q.Where("members.years_of_experience <= ?", *filter.Experience.End)
	}
	if filter.CityID != nil {
		q = q.Where("members.location_city_id = ?", *filter.CityID)
	}
	if filter.StateID != nil {
		q = q.Joins("JOIN location_cities ON location_cities.id = members.location_city_id").
			Where("location_cities.state_id = ?", *filter.StateID)
	}
	if len(filter.TravelPreferences) > 0 {
		prefs := make([]string, len(filter.TravelPreferences))
		for i, p := range filter.TravelPreferences {
			prefs[i] = string(p)
		}
		q = q.Where("members.travel_preference IN ?", prefs)
	}
	if len(filter.TagIDs) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM member_tags WHERE member_tags.member_id = members.id AND member_tags.tag_id IN ?)", filter.TagIDs)
	}
	if len(filter.ServiceIDs) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM member_services WHERE member_services.member_id = members.id AND member_services.service_id IN ?)", filter.ServiceIDs)
	}

	q = q.Order("members.is_featured DESC")
	switch filter.Sort {
	case entity.SortExperienceAsc:
		q = q.Order("members.years_of_experience ASC")
	case entity.SortExperienceDesc:
		q = q.Order("members.years_of_experience DESC")
	case entity.SortName:
		q = q.Order("members.full_name ASC")
	}
	q = q.Order("members.id ASC")

	// Relations are preloaded so Matches can run on the result.
	var rows []model.MemberModel
	if err := withRelations(q).Find(&rows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to list members")
	}

	return toMembersDomain(rows)
}

// ListForReview pages members by application status, oldest application first.
func (repo *memberRepository) ListForReview(ctx context.Context, status *entity.ApplicationStatus, limit, offset int) ([]*entity.Member, int64, error) {
	base := func() *gorm.DB {
		q := repo.db.WithContext(ctx).
			Model(&model.MemberModel{}).
			Joins("JOIN membership_applications ON membership_applications.member_id = members.id")
		if status != nil {
			q = q.Where("membership_applications.status = ?", string(*status))
		}

		return q
	}

	// Count before paging so TotalPages covers every status match.
	var total int64
	if err := base().Count(&total).Error; err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to count applications")
	}

	var rows []model.MemberModel
	err := withRelations(base()).
		Order("membership_applications.created_at ASC").
		Order("members.id ASC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, 0, domainerrors.NewDatabaseExecuteError(err, "failed to list applications")
	}

	members, err := toMembersDomain(rows)
	if err != nil {
		return nil, 0, err
	}

	return members, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes a search term match literally inside a LIKE pattern.
func escapeLike(term string) string {
	return likeEscaper.Replace(term)
}

func translateMemberWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		if violatesConstraint(err, "username") {
			return repository.ErrUsernameConflict
		}

		return repository.ErrMemberConflict
	}
	if isForeignKeyConstraintViolation(err) {
		return errors.Wrap(repository.ErrCityNotFound, details)
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

func translateLinkError(err error, kind string) error {
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.NewValidationError(domainerrors.FieldError{Field: kind, Reason: "contains an unknown id"})
	}

	return domainerrors.NewDatabaseExecuteError(err, "failed to link member "+kind)
}

// --- Mapper Functions ---

func toMembersDomain(rows []model.MemberModel) ([]*entity.Member, error) {
	members := make([]*entity.Member, len(rows))
	for i := range rows {
		member, err := toMemberDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		members[i] = member
	}

	return members, nil
}

func toMemberDomain(data *model.MemberModel) (*entity.Member, error) {
	if data == nil {
		return nil, nil
	}

	application, err := toApplicationDomain(data.Application)
	if err != nil {
		return nil, err
	}

	return &entity.Member{
		ID:                data.ID,
		FullName:          data.FullName,
		Username:          data.Username,
		Identity:          []string(data.Identity),
		About:             data.About,
		Email:             data.Email,
		PhoneNumber:       data.PhoneNumber,
		DateOfBirth:       data.DateOfBirth,
		YearsOfExperience: data.YearsOfExperience,
		TravelPreference:  entity.TravelPreference(data.TravelPreference),
		ProfilePictureURL: data.ProfilePictureURL,
		Links:             entity.Links{Instagram: data.Instagram, Website: data.Website},
		IsFeatured:        data.IsFeatured,
		LocationCityID:    data.LocationCityID,
		Location:          toCityDomain(data.Location),
		Tags:              toTagsDomain(data.Tags),
		Services:          toServicesDomain(data.Services),
		Application:       application,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}, nil
}

func fromMemberDomain(data *entity.Member) *model.MemberModel {
	identity := data.Identity
	if identity == nil {
		identity = []string{}
	}

	return &model.MemberModel{
		ID:                data.ID,
		FullName:          data.FullName,
		Username:          data.Username,
		Identity:          identity,
		About:             data.About,
		Email:             data.Email,
		PhoneNumber:       data.PhoneNumber,
		DateOfBirth:       data.DateOfBirth,
		YearsOfExperience: data.YearsOfExperience,
		TravelPreference:  string(data.TravelPreference),
		ProfilePictureURL: data.ProfilePictureURL,
		Instagram:         data.Links.Instagram,
		Website:           data.Links.Website,
		IsFeatured:        data.IsFeatured,
		LocationCityID:    data.LocationCityID,
	}
}

func toApplicationDomain(data *model.MembershipApplicationModel) (*entity.MembershipApplication, error) {
	if data == nil {
		return nil, nil
	}

	response, err := toSurveyResponseDomain(data.SurveyResponse)
	if err != nil {
		return nil, err
	}

	return &entity.MembershipApplication{
		ID:             data.ID,
		MemberID:       data.MemberID,
		Status:         entity.ApplicationStatus(data.Status),
		SurveyResponse: response,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}, nil
}

// toSurveyResponseDomain decodes stored answers. A row that no longer decodes
// is reported rather than shown as unanswered.
func toSurveyResponseDomain(data *model.SurveyResponseModel) (*entity.SurveyResponse, error) {
	if data == nil {
		return nil, nil
	}

	answers := survey.Answers{}
	if len(data.Answers) > 0 {
		if err := json.Unmarshal(data.Answers, &answers); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "failed to decode survey answers for member "+data.MemberID.String())
		}
	}

	return &entity.SurveyResponse{
		ID:        data.ID,
		MemberID:  data.MemberID,
		SurveyID:  data.SurveyID,
		Answers:   answers,
		CreatedAt: data.CreatedAt,
	}, nil
}
