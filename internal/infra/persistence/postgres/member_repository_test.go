package postgres

import (
	"context"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestMemberRepository_CreateAndFind(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	created := f.addMember(t, memberSpec{
		name:     "Asha Rao",
		username: "asha-rao",
		years:    6,
		tags:     []string{"Wildlife", "Fashion"},
		services: []string{"Photography"},
	})

	got, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Equal(t, []string{"female"}, got.Identity)
	require.NotNil(t, got.Location)
	assert.Equal(t, "Bengaluru", got.Location.Name)
	require.NotNil(t, got.Location.State)
	assert.Equal(t, "Karnataka", got.Location.State.Name)

	require.Len(t, got.Tags, 2)
	assert.Equal(t, "Fashion", got.Tags[0].Name)
	assert.Equal(t, "Wildlife", got.Tags[1].Name)
	require.Len(t, got.Services, 1)

	require.NotNil(t, got.Application)
	assert.Equal(t, entity.StatusPending, got.Application.Status)
	assert.False(t, got.IsApproved())

	byName, err := repo.FindByUsername(ctx, "asha-rao")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)
}

func TestMemberRepository_NotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	_, err := repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)

	_, err = repo.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)

	err = repo.UpdateProfilePicture(ctx, uuid.New(), "x.png")
	assert.ErrorIs(t, err, repository.ErrMemberNotFound)
}

func TestMemberRepository_UsernameConflict(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	f.addMember(t, memberSpec{name: "Asha Rao", username: "asha"})

	exists, err := repo.UsernameExists(ctx, "asha")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.UsernameExists(ctx, "someone-else")
	require.NoError(t, err)
	assert.False(t, exists)

	err = repo.Create(ctx, &entity.Member{
		ID:               uuid.New(),
		FullName:         "Another Asha",
		Username:         "asha",
		TravelPreference: entity.TravelBase,
		LocationCityID:   f.city.ID,
	})
	assert.ErrorIs(t, err, repository.ErrUsernameConflict)
}

func TestMemberRepository_UpdateReplacesLinks(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	m := f.addMember(t, memberSpec{
		name:     "Ravi",
		username: "ravi",
		tags:     []string{"Wildlife", "Fashion"},
		services: []string{"Photography", "Videography"},
	})

	m.About = "Updated"
	m.Links = entity.Links{Instagram: "ravi.shoots"}
	m.LocationCityID = f.otherCity.ID
	m.Tags = []entity.Tag{f.tags["Weddings & Events"], f.tags["Weddings & Events"]}
	m.Services = nil
	require.NoError(t, repo.Update(ctx, m))

	got, err := repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "Updated", got.About)
	assert.Equal(t, "ravi.shoots", got.Links.Instagram)
	assert.Equal(t, "Kochi", got.Location.Name)
	require.Len(t, got.Tags, 1)
	assert.Equal(t, "Weddings & Events", got.Tags[0].Name)
	assert.Empty(t, got.Services)

	require.NoError(t, repo.UpdateProfilePicture(ctx, m.ID, "https://cdn.example.com/ravi.png"))
	got, err = repo.FindByID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/ravi.png", got.ProfilePictureURL)
}

func TestMemberRepository_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	anil := f.addMember(t, memberSpec{name: "Anil", username: "anil", years: 2, status: entity.StatusApproved,
		tags: []string{"Wildlife"}, services: []string{"Photography"}})
	bela := f.addMember(t, memberSpec{name: "Bela", username: "bela", years: 9, status: entity.StatusApproved,
		travel: entity.TravelCountry, city: f.otherCity, tags: []string{"Fashion"}})
	chitra := f.addMember(t, memberSpec{name: "Chitra", username: "chitra", years: 5, status: entity.StatusApproved,
		featured: true, services: []string{"Videography"}})
	pending := f.addMember(t, memberSpec{name: "Anand", username: "anand", years: 4})

	approved := entity.DirectoryFilter{Status: entity.StatusApproved}

	tests := []struct {
		name   string
		filter entity.DirectoryFilter
		want   []uuid.UUID
	}{
		{
			name:   "featured first then name",
			filter: withSort(approved, entity.SortName),
			want:   []uuid.UUID{chitra.ID, anil.ID, bela.ID},
		},
		{
			name:   "experience descending",
			filter: withSort(approved, entity.SortExperienceDesc),
			want:   []uuid.UUID{chitra.ID, bela.ID, anil.ID},
		},
		{
			name:   "experience ascending",
			filter: withSort(approved, entity.SortExperienceAsc),
			want:   []uuid.UUID{chitra.ID, anil.ID, bela.ID},
		},
		{
			name: "search is case insensitive",
			filter: entity.DirectoryFilter{
				Status: entity.StatusApproved,
				Search: "  BEL ",
			},
			want: []uuid.UUID{bela.ID},
		},
		{
			name: "search wildcards match literally",
			filter: entity.DirectoryFilter{
				Status: entity.StatusApproved,
				Search: "_",
			},
			want: []uuid.UUID{},
		},
		{
			name: "search percent matches literally",
			filter: entity.DirectoryFilter{
				Status: entity.StatusApproved,
				Search: "%",
			},
			want: []uuid.UUID{},
		},
		{
			name: "experience range with zero upper bound",
			filter: entity.DirectoryFilter{
				Status:     entity.StatusApproved,
				Experience: entity.ExperienceRange{Start: intPtr(5), End: intPtr(0)},
				Sort:       entity.SortName,
			},
			want: []uuid.UUID{chitra.ID, bela.ID},
		},
		{
			name: "experience range closed",
			filter: entity.DirectoryFilter{
				Status:     entity.StatusApproved,
				Experience: entity.ExperienceRange{Start: intPtr(1), End: intPtr(5)},
				Sort:       entity.SortName,
			},
			want: []uuid.UUID{chitra.ID, anil.ID},
		},
		{
			name: "state",
			filter: entity.DirectoryFilter{
				Status:  entity.StatusApproved,
				StateID: &f.otherSt.ID,
			},
			want: []uuid.UUID{bela.ID},
		},
		{
			name: "city",
			filter: entity.DirectoryFilter{
				Status: entity.StatusApproved,
				CityID: &f.city.ID,
				Sort:   entity.SortName,
			},
			want: []uuid.UUID{chitra.ID, anil.ID},
		},
		{
			name: "travel preference",
			filter: entity.DirectoryFilter{
				Status:            entity.StatusApproved,
				TravelPreferences: []entity.TravelPreference{entity.TravelCountry, entity.TravelRegion},
			},
			want: []uuid.UUID{bela.ID},
		},
		{
			name: "any of the tags",
			filter: entity.DirectoryFilter{
				Status: entity.StatusApproved,
				TagIDs: []uuid.UUID{f.tags["Wildlife"].ID, f.tags["Fashion"].ID},
				Sort:   entity.SortName,
			},
			want: []uuid.UUID{anil.ID, bela.ID},
		},
		{
			name: "services",
			filter: entity.DirectoryFilter{
				Status:     entity.StatusApproved,
				ServiceIDs: []uuid.UUID{f.services["Videography"].ID},
			},
			want: []uuid.UUID{chitra.ID},
		},
		{
			name: "pending only",
			filter: entity.DirectoryFilter{
				Status: entity.StatusPending,
			},
			want: []uuid.UUID{pending.ID},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.List(ctx, tt.filter)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids(got))

			for _, m := range got {
				assert.True(t, tt.filter.Matches(m), "repository returned %s which the filter rejects", m.Username)
			}
		})
	}
}

func TestMemberRepository_ListForReview(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewMemberRepository(f.db)

	first := f.addMember(t, memberSpec{name: "First", username: "first"})
	second := f.addMember(t, memberSpec{name: "Second", username: "second", status: entity.StatusApproved})
	third := f.addMember(t, memberSpec{name: "Third", username: "third"})

	pending := entity.StatusPending
	members, total, err := repo.ListForReview(ctx, &pending, 10, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 2, total)
	assert.Equal(t, []uuid.UUID{first.ID, third.ID}, ids(members))

	members, total, err = repo.ListForReview(ctx, nil, 2, 2)
	require.NoError(t, err)
	assert.EqualValues(t, 3, total)
	assert.Equal(t, []uuid.UUID{third.ID}, ids(members))

	members, _, err = repo.ListForReview(ctx, nil, 2, 0)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids(members))
}

func TestApplicationRepository_StatusAndTransitions(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	repo := NewApplicationRepository(f.db)

	m := f.addMember(t, memberSpec{name: "Dev", username: "dev"})
	admin := uuid.New()

	err := repo.Create(ctx, &entity.MembershipApplication{MemberID: m.ID, Status: entity.StatusPending})
	assert.ErrorIs(t, err, domainerrors.ErrApplicationAlreadyExists)

	require.NoError(t, repo.UpdateStatus(ctx, m.ID, entity.StatusApproved))
	require.NoError(t, repo.AppendTransition(ctx, &entity.ApplicationTransition{
		MemberID: m.ID, FromStatus: entity.StatusPending, ToStatus: entity.StatusApproved, ActorUserID: admin,
	}))
	require.NoError(t, repo.UpdateStatus(ctx, m.ID, entity.StatusBlocked))
	require.NoError(t, repo.AppendTransition(ctx, &entity.ApplicationTransition{
		MemberID: m.ID, FromStatus: entity.StatusApproved, ToStatus: entity.StatusBlocked, ActorUserID: admin,
	}))

	app, err := repo.FindByMemberID(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusBlocked, app.Status)

	log, err := repo.ListTransitions(ctx, m.ID)
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, entity.StatusApproved, log[0].ToStatus)
	assert.Equal(t, entity.StatusBlocked, log[1].ToStatus)
	assert.Equal(t, admin, log[1].ActorUserID)

	err = repo.UpdateStatus(ctx, uuid.New(), entity.StatusApproved)
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)

	_, err = repo.FindByMemberID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrApplicationNotFound)
}

func withSort(f entity.DirectoryFilter, s entity.SortOrder) entity.DirectoryFilter {
	f.Sort = s

	return f
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `50\%\_off\\`, escapeLike(`50%_off\`))
	assert.Equal(t, "bela", escapeLike("bela"))
}

func TestMemberRepository_UndecodableSurveyAnswers(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	member := f.addMember(t, memberSpec{name: "Devi", username: "devi"})

	require.NoError(t, f.db.Create(&model.SurveyResponseModel{
		MemberID: member.ID,
		SurveyID: uuid.New(),
		Answers:  datatypes.JSON(`["not","an","object"]`),
	}).Error)

	_, err := NewMemberRepository(f.db).FindByID(ctx, member.ID)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "failed to decode survey answers")

	_, err = NewApplicationRepository(f.db).FindByMemberID(ctx, member.ID)
	assert.Error(t, err)
}
