// Package seed loads the reference data the application expects to exist:
// admin accounts, tags, services, locations and the membership survey.
// Every step is an upsert so the seed can be re-run safely.
package seed

import (
	"context"
	_ "embed"
	"log/slog"
	"sort"
	"strings"

	"kala/config"
	"kala/internal/domain/entity"
	"kala/internal/domain/repository"
	"kala/internal/domain/survey"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MembershipSurveySlug names the survey attached to membership applications
// unless onboarding.surveySlug says otherwise.
const MembershipSurveySlug = "membershipApplication"

//go:embed membership_survey.json
var membershipSurvey []byte

// Tags are the photography genres members can pick from.
var Tags = []string{
	"Photojournalism",
	"Documentary",
	"Editorial",
	"Fine Art",
	"Weddings & Events",
	"Concerts",
	"Fashion",
	"Headshots",
	"Family & Baby",
	"Travel & Nature",
	"Wildlife",
	"Product",
	"Food",
	"Advertising",
	"Interior & Architecture",
	"Modelling Portfolios",
	"Social Media Content",
}

// Services are the kinds of work members offer.
var Services = []string{
	"Photography",
	"Videography",
	"Image editing",
	"Video editing",
	"Photo Restoration",
	"Album Making",
	"Printing",
	"Social Media Management",
}

// Report counts what a run touched.
type Report struct {
	Admins   int
	Tags     int
	Services int
	States   int
	Cities   int
}

type Params struct {
	fx.In

	UserRepo      repository.UserRepository
	ReferenceRepo repository.ReferenceRepository
	SurveyRepo    repository.SurveyRepository
	Config        *config.Config
	Logger        *slog.Logger
}

type Seeder struct {
	userRepo      repository.UserRepository
	referenceRepo repository.ReferenceRepository
	surveyRepo    repository.SurveyRepository
	cfg           *config.SeedConfig
	surveySlug    string
	logger        *slog.Logger
}

func New(params Params) *Seeder {
	cfg := params.Config.Seed
	if cfg == nil {
		cfg = &config.SeedConfig{}
	}
	slug := MembershipSurveySlug
	if params.Config.Onboarding != nil && params.Config.Onboarding.SurveySlug != "" {
		slug = params.Config.Onboarding.SurveySlug
	}

	return &Seeder{
		userRepo:      params.UserRepo,
		referenceRepo: params.ReferenceRepo,
		surveyRepo:    params.SurveyRepo,
		cfg:           cfg,
		surveySlug:    slug,
		logger:        params.Logger,
	}
}

// Run seeds everything in dependency order.
func (s *Seeder) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	steps := []struct {
		name string
		run  func(ctx context.Context, report *Report) error
	}{
		{name: "admins", run: s.seedAdmins},
		{name: "tags", run: s.seedTags},
		{name: "services", run: s.seedServices},
		{name: "locations", run: s.seedLocations},
		{name: "survey", run: s.seedSurvey},
	}
	for _, step := range steps {
		if err := step.run(ctx, report); err != nil {
			return nil, errors.Wrapf(err, "seed %s", step.name)
		}
	}

	s.logger.Info("Seed complete",
		slog.Int("admins", report.Admins),
		slog.Int("tags", report.Tags),
		slog.Int("services", report.Services),
		slog.Int("states", report.States),
		slog.Int("cities", report.Cities),
	)

	return report, nil
}

// seedAdmins creates each configured admin, promoting existing users.
func (s *Seeder) seedAdmins(ctx context.Context, report *Report) error {
	for _, raw := range s.cfg.AdminEmails {
		email := strings.ToLower(strings.TrimSpace(raw))
		if email == "" {
			continue
		}

		user, err := s.userRepo.FindByEmail(ctx, email)
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			admin := &entity.User{Email: email, Name: strings.SplitN(email, "@", 2)[0], Role: entity.RoleAdmin}
			if err := s.userRepo.Create(ctx, admin); err != nil {
				return errors.Wrapf(err, "create admin %s", email)
			}
		case err != nil:
			return errors.Wrapf(err, "find admin %s", email)
		case user.Role != entity.RoleAdmin:
			user.Role = entity.RoleAdmin
			if err := s.userRepo.Update(ctx, user); err != nil {
				return errors.Wrapf(err, "promote admin %s", email)
			}
		}
		report.Admins++
	}

	return nil
}

func (s *Seeder) seedTags(ctx context.Context, report *Report) error {
	for _, name := range Tags {
		if _, err := s.referenceRepo.EnsureTag(ctx, name); err != nil {
			return err
		}
		report.Tags++
	}

	return nil
}

func (s *Seeder) seedServices(ctx context.Context, report *Report) error {
	for _, name := range Services {
		if _, err := s.referenceRepo.EnsureService(ctx, name); err != nil {
			return err
		}
		report.Services++
	}

	return nil
}

// seedLocations loads states and their cities. Names are title-cased so
// lower-case config keys read well in the directory.
func (s *Seeder) seedLocations(ctx context.Context, report *Report) error {
	title := cases.Title(language.English)

	states := make([]string, 0, len(s.cfg.Locations))
	for name := range s.cfg.Locations {
		states = append(states, name)
	}
	sort.Strings(states)

	for _, stateName := range states {
		state, err := s.referenceRepo.EnsureState(ctx, title.String(strings.TrimSpace(stateName)))
		if err != nil {
			return err
		}
		report.States++

		for _, cityName := range s.cfg.Locations[stateName] {
			if _, err := s.referenceRepo.EnsureCity(ctx, state.ID, title.String(strings.TrimSpace(cityName))); err != nil {
				return err
			}
			report.Cities++
		}
	}

	return nil
}

func (s *Seeder) seedSurvey(ctx context.Context, _ *Report) error {
	schema, err := survey.Parse(membershipSurvey)
	if err != nil {
		return err
	}

	return s.surveyRepo.Upsert(ctx, &entity.Survey{
		Slug:   s.surveySlug,
		Title:  "Membership Application",
		Schema: schema,
	})
}
