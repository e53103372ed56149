package seed

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/infra/persistence/model"
	"kala/internal/infra/persistence/postgres"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

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
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))

	return db
}

func newTestSeeder(db *gorm.DB) *Seeder {
	return New(Params{
		UserRepo:      postgres.NewUserRepository(db),
		ReferenceRepo: postgres.NewReferenceRepository(db),
		SurveyRepo:    postgres.NewSurveyRepository(db),
		Config: &config.Config{Seed: &config.SeedConfig{
			AdminEmails: []string{"Admin@Example.com", " "},
			Locations: map[string][]string{
				"karnataka":  {"bengaluru", "mysuru"},
				"tamil nadu": {"chennai"},
			},
		}},
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
}

func TestSeeder_Run(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteTestDB(t)

	report, err := newTestSeeder(db).Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, &Report{Admins: 1, Tags: 17, Services: 8, States: 2, Cities: 3}, report)

	admin, err := postgres.NewUserRepository(db).FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)

	ref := postgres.NewReferenceRepository(db)
	states, err := ref.ListStates(ctx)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, "Karnataka", states[0].Name)
	assert.Equal(t, "Tamil Nadu", states[1].Name)

	s, err := postgres.NewSurveyRepository(db).FindBySlug(ctx, MembershipSurveySlug)
	require.NoError(t, err)
	require.Len(t, s.Schema.Fields, 2)
	assert.Equal(t, "reason", s.Schema.Fields[0].Key)
	assert.Equal(t, "assistance", s.Schema.Fields[1].Key)
}

func TestSeeder_Run_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteTestDB(t)
	seeder := newTestSeeder(db)

	_, err := seeder.Run(ctx)
	require.NoError(t, err)
	_, err = seeder.Run(ctx)
	require.NoError(t, err)

	var tags, services, cities, users, surveys int64
	require.NoError(t, db.Model(&model.TagModel{}).Count(&tags).Error)
	require.NoError(t, db.Model(&model.ServiceModel{}).Count(&services).Error)
	require.NoError(t, db.Model(&model.LocationCityModel{}).Count(&cities).Error)
	require.NoError(t, db.Model(&model.UserModel{}).Count(&users).Error)
	require.NoError(t, db.Model(&model.SurveyModel{}).Count(&surveys).Error)

	assert.Equal(t, int64(17), tags)
	assert.Equal(t, int64(8), services)
	assert.Equal(t, int64(3), cities)
	assert.Equal(t, int64(1), users)
	assert.Equal(t, int64(1), surveys)
}

func TestSeeder_PromotesExistingUser(t *testing.T) {
	ctx := context.Background()
	db := setupSQLiteTestDB(t)
	users := postgres.NewUserRepository(db)

	require.NoError(t, users.Create(ctx, &entity.User{Email: "admin@example.com", Name: "Existing", Role: entity.RoleMember}))

	_, err := newTestSeeder(db).Run(ctx)
	require.NoError(t, err)

	admin, err := users.FindByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleAdmin, admin.Role)
	assert.Equal(t, "Existing", admin.Name)
}
