package handler

import (
	"net/http"

	"kala/internal/delivery/api/response"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func uuidParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: name, Reason: "must be a valid id"})
	}

	return id, nil
}

// bindAndValidate binds the body into dst and runs the registered validator.
func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return errors.WithStack(err)
	}

	return c.Validate(dst)
}
