package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"kala/config"
	"kala/internal/domain/lifecycle"
	logs "kala/internal/infra/log"
	"kala/internal/infra/persistence/model"
	"kala/internal/infra/persistence/postgres"
	"kala/internal/infra/persistence/seed"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func main() {
	migrate := flag.Bool("migrate", false, "Create or update tables with AutoMigrate before seeding (development only)")
	flag.Parse()

	var (
		db     *gorm.DB
		seeder *seed.Seeder
		logger *slog.Logger
	)

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			postgres.New,
			postgres.NewUserRepository,
			postgres.NewReferenceRepository,
			postgres.NewSurveyRepository,
			seed.New,
		),
		fx.Populate(&db, &seeder, &logger),
	)

	ctx, cancel := context.WithTimeout(context.Background(), 2*lifecycle.DefaultTimeout)
	defer cancel()

	if err := app.Start(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err := run(ctx, db, seeder, *migrate)
	if stopErr := app.Stop(ctx); stopErr != nil && err == nil {
		err = stopErr
	}
	if err != nil {
		logger.Error("Seed failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, db *gorm.DB, seeder *seed.Seeder, migrate bool) error {
	if migrate {
		if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
			return errors.Wrap(err, "migrate")
		}
	}

	_, err := seeder.Run(ctx)

	return err
}
