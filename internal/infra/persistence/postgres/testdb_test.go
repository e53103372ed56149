package postgres

import (
	"context"
	"testing"
	"time"

	"kala/internal/domain/entity"
	"kala/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteTestDB opens a private in-memory database with every table migrated.
func setupSQLiteTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		SkipDefaultTransaction:                   true,
		DisableForeignKeyConstraintWhenMigrating: true,
		Logger:                                   logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// Every connection to ":memory:" is a new database.
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

// fixture holds reference rows shared by the repository tests.
type fixture struct {
	db        *gorm.DB
	state     *entity.LocationState
	otherSt   *entity.LocationState
	city      *entity.LocationCity
	otherCity *entity.LocationCity
	tags      map[string]entity.Tag
	services  map[string]entity.Service
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	db := setupSQLiteTestDB(t)
	ref := NewReferenceRepository(db)

	f := &fixture{db: db, tags: map[string]entity.Tag{}, services: map[string]entity.Service{}}

	var err error
	f.state, err = ref.EnsureState(ctx, "Karnataka")
	require.NoError(t, err)
	f.otherSt, err = ref.EnsureState(ctx, "Kerala")
	require.NoError(t, err)
	f.city, err = ref.EnsureCity(ctx, f.state.ID, "Bengaluru")
	require.NoError(t, err)
	f.otherCity, err = ref.EnsureCity(ctx, f.otherSt.ID, "Kochi")
	require.NoError(t, err)

	for _, name := range []string{"Weddings & Events", "Wildlife", "Fashion"} {
		tag, err := ref.EnsureTag(ctx, name)
		require.NoError(t, err)
		f.tags[name] = *tag
	}
	for _, name := range []string{"Photography", "Videography"} {
		svc, err := ref.EnsureService(ctx, name)
		require.NoError(t, err)
		f.services[name] = *svc
	}

	return f
}

type memberSpec struct {
	name     string
	username string
	years    int
	travel   entity.TravelPreference
	city     *entity.LocationCity
	tags     []string
	services []string
	status   entity.ApplicationStatus
	featured bool
}

// addMember creates a user, member and application in one go.
func (f *fixture) addMember(t *testing.T, spec memberSpec) *entity.Member {
	t.Helper()
	ctx := context.Background()

	user := &entity.User{Email: spec.username + "@example.com", Name: spec.name, Role: entity.RoleMember}
	require.NoError(t, NewUserRepository(f.db).Create(ctx, user))

	city := spec.city
	if city == nil {
		city = f.city
	}
	travel := spec.travel
	if travel == "" {
		travel = entity.TravelBase
	}

	member := &entity.Member{
		ID:                user.ID,
		FullName:          spec.name,
		Username:          spec.username,
		Identity:          []string{"female"},
		About:             "About " + spec.name,
		Email:             user.Email,
		PhoneNumber:       "9876543210",
		DateOfBirth:       time.Date(1990, 4, 12, 0, 0, 0, 0, time.UTC),
		YearsOfExperience: spec.years,
		TravelPreference:  travel,
		IsFeatured:        spec.featured,
		LocationCityID:    city.ID,
	}
	for _, n := range spec.tags {
		member.Tags = append(member.Tags, f.tags[n])
	}
	for _, n := range spec.services {
		member.Services = append(member.Services, f.services[n])
	}
	require.NoError(t, NewMemberRepository(f.db).Create(ctx, member))

	status := spec.status
	if status == "" {
		status = entity.StatusPending
	}
	app := &entity.MembershipApplication{MemberID: member.ID, Status: status}
	require.NoError(t, NewApplicationRepository(f.db).Create(ctx, app))

	return member
}

func ids(members []*entity.Member) []uuid.UUID {
	out := make([]uuid.UUID, len(members))
	for i, m := range members {
		out[i] = m.ID
	}

	return out
}

func intPtr(v int) *int {
	return &v
}
