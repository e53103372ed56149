package impl

import (
	"context"
	"fmt"
	"time"

	"kala/config"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/repository"
	"kala/internal/domain/service"
	"kala/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const dateLayout = "2006-01-02"

// applicationRules checks application input beyond what struct tags express:
// date-of-birth bounds, the city/state hierarchy and reference ids.
type applicationRules struct {
	validator service.InputValidator
	dobMin    time.Time
	dobMax    time.Time
}

func newApplicationRules(cfg *config.Config, validator service.InputValidator) *applicationRules {
	rules := &applicationRules{
		validator: validator,
		dobMin:    time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC),
		dobMax:    time.Date(2022, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if cfg != nil && cfg.Onboarding != nil {
		if t, err := time.Parse(dateLayout, cfg.Onboarding.DOBMin); err == nil {
			rules.dobMin = t
		}
		if t, err := time.Parse(dateLayout, cfg.Onboarding.DOBMax); err == nil {
			rules.dobMax = t
		}
	}

	return rules
}

// fieldErrors unpacks a validation failure; any other error is returned as is.
func fieldErrors(err error) ([]domainerrors.FieldError, error) {
	if err == nil {
		return nil, nil
	}

	var vErr *domainerrors.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Fields(), nil
	}

	return nil, err
}

func prefixed(prefix string, fields []domainerrors.FieldError) []domainerrors.FieldError {
	out := make([]domainerrors.FieldError, len(fields))
	for i, f := range fields {
		out[i] = domainerrors.FieldError{Field: prefix + f.Field, Reason: f.Reason}
	}

	return out
}

// validationResult returns a ValidationError for fields, or nil when there are none.
func validationResult(fields []domainerrors.FieldError) error {
	if len(fields) == 0 {
		return nil
	}

	return domainerrors.NewValidationError(fields...)
}

// checkPersonal validates the first wizard step and returns the resolved city.
func (r *applicationRules) checkPersonal(ctx context.Context, refs repository.ReferenceRepository, p *entity.PersonalDetails) (*entity.LocationCity, []domainerrors.FieldError, error) {
	fields, err := fieldErrors(r.validator.Struct(p))
	if err != nil {
		return nil, nil, err
	}

	if dob, perr := time.Parse(dateLayout, p.DateOfBirth); perr == nil {
		if dob.Before(r.dobMin) || dob.After(r.dobMax) {
			fields = append(fields, domainerrors.FieldError{
				Field:  "dateOfBirth",
				Reason: fmt.Sprintf("must be between %s and %s", r.dobMin.Format(dateLayout), r.dobMax.Format(dateLayout)),
			})
		}
	}

	if p.CityID == uuid.Nil {
		return nil, fields, nil
	}

	city, err := refs.FindCity(ctx, p.CityID)
	switch {
	case errors.Is(err, repository.ErrCityNotFound):
		return nil, append(fields, domainerrors.FieldError{Field: "city", Reason: "is unknown"}), nil
	case err != nil:
		return nil, nil, errors.Wrap(err, "failed to find city")
	case p.StateID != uuid.Nil && city.StateID != p.StateID:
		return nil, append(fields, domainerrors.FieldError{Field: "city", Reason: "does not belong to the selected state"}), nil
	}

	return city, fields, nil
}

// checkPractice validates the second wizard step and normalises the username in place.
func (r *applicationRules) checkPractice(ctx context.Context, refs repository.ReferenceRepository, p *entity.PracticeDetails) ([]entity.Tag, []entity.Service, []domainerrors.FieldError, error) {
	fields, err := fieldErrors(r.validator.Struct(p))
	if err != nil {
		return nil, nil, nil, err
	}

	if p.Username != "" {
		p.Username = util.Slugify(p.Username)
		if p.Username == "" {
			fields = append(fields, domainerrors.FieldError{Field: "username", Reason: "must contain letters or digits"})
		}
	}

	tags, tagFields, err := resolveTags(ctx, refs, p.TagIDs, "tags")
	if err != nil {
		return nil, nil, nil, err
	}
	services, serviceFields, err := resolveServices(ctx, refs, p.ServiceIDs, "services")
	if err != nil {
		return nil, nil, nil, err
	}
	fields = append(fields, tagFields...)
	fields = append(fields, serviceFields...)

	return tags, services, fields, nil
}

func resolveTags(ctx context.Context, refs repository.ReferenceRepository, ids []uuid.UUID, field string) ([]entity.Tag, []domainerrors.FieldError, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []entity.Tag{}, nil, nil
	}

	tags, err := refs.FindTagsByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find tags")
	}
	if len(tags) != len(ids) {
		return nil, []domainerrors.FieldError{{Field: field, Reason: "contains an unknown id"}}, nil
	}

	return tags, nil, nil
}

func resolveServices(ctx context.Context, refs repository.ReferenceRepository, ids []uuid.UUID, field string) ([]entity.Service, []domainerrors.FieldError, error) {
	ids = uniqueIDs(ids)
	if len(ids) == 0 {
		return []entity.Service{}, nil, nil
	}

	services, err := refs.FindServicesByIDs(ctx, ids)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to find services")
	}
	if len(services) != len(ids) {
		return nil, []domainerrors.FieldError{{Field: field, Reason: "contains an unknown id"}}, nil
	}

	return services, nil, nil
}

func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
