package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"kala/internal/delivery/api/response"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/survey"
	"kala/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ReferenceHandlerParams struct {
	fx.In

	ReferenceUC usecase.ReferenceUsecase
	Logger      *slog.Logger
}

// ReferenceHandler serves tags, services, locations and surveys.
type ReferenceHandler struct {
	referenceUC usecase.ReferenceUsecase
	logger      *slog.Logger
}

func NewReferenceHandler(params ReferenceHandlerParams) *ReferenceHandler {
	return &ReferenceHandler{
		referenceUC: params.ReferenceUC,
		logger:      params.Logger,
	}
}

func (h *ReferenceHandler) GetTags(c echo.Context) error {
	tags, err := h.referenceUC.GetTags(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, tags)
}

func (h *ReferenceHandler) GetServices(c echo.Context) error {
	services, err := h.referenceUC.GetServices(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, services)
}

func (h *ReferenceHandler) GetLocationStates(c echo.Context) error {
	states, err := h.referenceUC.GetLocationStates(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, states)
}

func (h *ReferenceHandler) GetLocationCities(c echo.Context) error {
	stateID, err := uuidParam(c, "stateId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	cities, err := h.referenceUC.GetLocationCities(c.Request().Context(), stateID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cities)
}

func (h *ReferenceHandler) GetSurvey(c echo.Context) error {
	s, err := h.referenceUC.GetSurvey(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, s)
}

// GetSurveyForm renders the survey for editing. An optional "answers" query
// parameter holds a JSON answers object to pre-fill the form with.
func (h *ReferenceHandler) GetSurveyForm(c echo.Context) error {
	var answers survey.Answers
	if raw := c.QueryParam("answers"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &answers); err != nil {
			return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
				Field:  "answers",
				Reason: "must be a JSON object of answers",
			}))
		}
	}

	form, err := h.referenceUC.GetSurveyForm(c.Request().Context(), c.Param("slug"), answers)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, form)
}
