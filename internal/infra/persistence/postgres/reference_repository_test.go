package postgres

import (
	"context"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestReferenceRepository(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewReferenceRepository(f.db)

	again, err := repo.EnsureTag(ctx, "Wildlife")
	require.NoError(t, err)
	assert.Equal(t, f.tags["Wildlife"].ID, again.ID)

	tags, err := repo.ListTags(ctx)
	require.NoError(t, err)
	require.Len(t, tags, 3)
	assert.Equal(t, "Fashion", tags[0].Name)

	services, err := repo.ListServices(ctx)
	require.NoError(t, err)
	assert.Len(t, services, 2)

	states, err := repo.ListStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "Karnataka", states[0].Name)

	cities, err := repo.ListCities(ctx, f.otherSt.ID)
	require.NoError(t, err)
	require.Len(t, cities, 1)
	assert.Equal(t, "Kochi", cities[0].Name)

	city, err := repo.FindCity(ctx, f.city.ID)
	require.NoError(t, err)
	require.NotNil(t, city.State)
	assert.Equal(t, "Karnataka", city.State.Name)

	_, err = repo.FindCity(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrCityNotFound)

	found, err := repo.FindTagsByIDs(ctx, []uuid.UUID{f.tags["Wildlife"].ID, uuid.New()})
	require.NoError(t, err)
	assert.Equal(t, []entity.Tag{f.tags["Wildlife"]}, found)

	none, err := repo.FindServicesByIDs(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSurveyRepository(t *testing.T) {
	db := setupSQLiteTestDB(t)
	ctx := context.Background()
	repo := NewSurveyRepository(db)

	schema, err := survey.Parse([]byte(`{"reason":{"type":"checkbox","label":"Why?","options":[{"key":"networking","label":"Networking"}]}}`))
	require.NoError(t, err)

	s := &entity.Survey{Slug: "membershipApplication", Title: "Draft", Schema: schema}
	require.NoError(t, repo.Upsert(ctx, s))
	firstID := s.ID
	require.NotEqual(t, uuid.Nil, firstID)

	s2 := &entity.Survey{Slug: "membershipApplication", Title: "Membership Application", Schema: schema}
	require.NoError(t, repo.Upsert(ctx, s2))
	assert.Equal(t, firstID, s2.ID)

	got, err := repo.FindBySlug(ctx, "membershipApplication")
	require.NoError(t, err)
	assert.Equal(t, "Membership Application", got.Title)
	assert.Equal(t, schema, got.Schema)

	_, err = repo.FindBySlug(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrSurveyNotFound)

	require.NoError(t, db.Create(&model.SurveyModel{
		Slug:   "broken",
		Title:  "Broken",
		Schema: datatypes.JSON(`{"a":{"type":"radio","label":"A"}}`),
	}).Error)
	_, err = repo.FindBySlug(ctx, "broken")
	assert.ErrorIs(t, err, domainerrors.ErrSurveySchemaInvalid)
}

func TestApplicationRepository_SurveyResponse(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	user := &entity.User{Email: "maya@example.com", Role: entity.RoleMember}
	require.NoError(t, NewUserRepository(f.db).Create(ctx, user))
	require.NoError(t, NewMemberRepository(f.db).Create(ctx, &entity.Member{
		ID:               user.ID,
		FullName:         "Maya",
		Username:         "maya",
		TravelPreference: entity.TravelRegion,
		LocationCityID:   f.city.ID,
	}))

	surveyID := uuid.New()
	app := &entity.MembershipApplication{
		MemberID: user.ID,
		Status:   entity.StatusPending,
		SurveyResponse: &entity.SurveyResponse{
			SurveyID: surveyID,
			Answers: survey.Answers{
				"reason": survey.ChoiceAnswer("networking"),
				"story":  survey.TextAnswer(""),
			},
		},
	}
	require.NoError(t, NewApplicationRepository(f.db).Create(ctx, app))
	require.NotEqual(t, uuid.Nil, app.SurveyResponse.ID)

	member, err := NewMemberRepository(f.db).FindByID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, member.Application)
	require.NotNil(t, member.Application.SurveyResponse)
	assert.Equal(t, surveyID, member.Application.SurveyResponse.SurveyID)
	assert.Equal(t, survey.Answers{"reason": survey.ChoiceAnswer("networking")}, member.Application.SurveyResponse.Answers)
}
