// Package validation wraps go-playground/validator and reports failures as
// domain validation errors keyed by JSON field name.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"

	"github.com/go-playground/validator/v10"
)

// looseEmail only asks for something@something, matching what the sign-up form accepts.
var looseEmail = regexp.MustCompile(`^\S+@\S+$`)

// Validator validates tagged structs.
type Validator struct {
	validate *validator.Validate
}

// New creates a validator with the project's custom tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}

		return name
	})

	_ = v.RegisterValidation("looseemail", func(fl validator.FieldLevel) bool {
		return looseEmail.MatchString(fl.Field().String())
	})

	return &Validator{validate: v}
}

// Struct validates s. Rule violations come back as *domainerrors.ValidationError.
func (v *Validator) Struct(s any) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "validate")
	}

	fields := make([]domainerrors.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, domainerrors.FieldError{
			Field:  fieldPath(fe.Namespace()),
			Reason: reason(fe),
		})
	}

	return domainerrors.NewValidationError(fields...)
}

// Validate implements echo.Validator.
func (v *Validator) Validate(i any) error {
	return v.Struct(i)
}

// fieldPath drops the root struct name from a namespace like "PersonalDetails.fullName".
func fieldPath(namespace string) string {
	if _, rest, ok := strings.Cut(namespace, "."); ok {
		return rest
	}

	return namespace
}

func reason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		if isCollection(fe.Kind()) {
			return fmt.Sprintf("must have at least %s item(s)", fe.Param())
		}
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}

		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}

		return "must be at most " + fe.Param()
	case "len":
		return fmt.Sprintf("must be exactly %s characters", fe.Param())
	case "oneof":
		return "must be one of: " + fe.Param()
	case "numeric":
		return "must contain only digits"
	case "looseemail", "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "datetime":
		return "must be a date formatted as " + fe.Param()
	default:
		return "failed " + fe.Tag() + " check"
	}
}

func isCollection(k reflect.Kind) bool {
	return k == reflect.Slice || k == reflect.Array || k == reflect.Map
}
