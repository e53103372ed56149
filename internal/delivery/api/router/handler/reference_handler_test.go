package handler

import (
	"net/http"
	"net/url"
	"testing"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/survey"
	mockUsecase "kala/internal/mocks/usecase"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestReferenceHandler(t *testing.T) (*ReferenceHandler, *mockUsecase.MockReferenceUsecase) {
	referenceUC := mockUsecase.NewMockReferenceUsecase(t)

	return NewReferenceHandler(ReferenceHandlerParams{ReferenceUC: referenceUC, Logger: newDiscardLogger()}), referenceUC
}

func TestReferenceHandler_GetTags(t *testing.T) {
	h, referenceUC := newTestReferenceHandler(t)
	c, rec := newContext(http.MethodGet, "/api/v1/tags", "")

	id := uuid.New()
	referenceUC.EXPECT().GetTags(mock.Anything).Return([]entity.Tag{{ID: id, Name: "Wedding"}}, nil)

	require.NoError(t, h.GetTags(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"`+id.String()+`","name":"Wedding"}]`, string(decode(t, rec).Data))
}

func TestReferenceHandler_GetLocationCities(t *testing.T) {
	t.Run("invalid state", func(t *testing.T) {
		h, _ := newTestReferenceHandler(t)
		c, rec := newContext(http.MethodGet, "/", "")
		c.SetParamNames("stateId")
		c.SetParamValues("kerala")

		require.NoError(t, h.GetLocationCities(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("cities of state", func(t *testing.T) {
		h, referenceUC := newTestReferenceHandler(t)
		stateID := uuid.New()
		c, rec := newContext(http.MethodGet, "/", "")
		c.SetParamNames("stateId")
		c.SetParamValues(stateID.String())

		referenceUC.EXPECT().GetLocationCities(mock.Anything, stateID).
			Return([]entity.LocationCity{{ID: uuid.New(), Name: "Kochi", StateID: stateID}}, nil)

		require.NoError(t, h.GetLocationCities(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"Kochi"`)
	})
}

func TestReferenceHandler_GetSurvey_NotFound(t *testing.T) {
	h, referenceUC := newTestReferenceHandler(t)
	c, rec := newContext(http.MethodGet, "/", "")
	c.SetParamNames("slug")
	c.SetParamValues("missing")

	referenceUC.EXPECT().GetSurvey(mock.Anything, "missing").Return(nil, domainerrors.ErrSurveyNotFound)

	require.NoError(t, h.GetSurvey(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "SURVEY_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestReferenceHandler_GetSurveyForm(t *testing.T) {
	t.Run("prefilled from answers", func(t *testing.T) {
		h, referenceUC := newTestReferenceHandler(t)
		query := url.Values{"answers": {`{"reason":["networking"]}`}}
		c, rec := newContext(http.MethodGet, "/api/v1/surveys/membershipApplication/form?"+query.Encode(), "")
		c.SetParamNames("slug")
		c.SetParamValues("membershipApplication")

		answers := survey.Answers{"reason": survey.ChoiceAnswer("networking")}
		referenceUC.EXPECT().GetSurveyForm(mock.Anything, "membershipApplication", answers).
			Return(&usecase.SurveyForm{
				Survey: &entity.Survey{Slug: "membershipApplication", Title: "Membership"},
				Fields: []survey.FormField{{
					Key:     "reason",
					Type:    survey.FieldCheckbox,
					Label:   "Why?",
					Options: []survey.FormOption{{Key: "networking", Label: "Networking", Checked: true}},
				}},
			}, nil)

		require.NoError(t, h.GetSurveyForm(c))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(decode(t, rec).Data), `"checked":true`)
	})

	t.Run("malformed answers", func(t *testing.T) {
		h, _ := newTestReferenceHandler(t)
		c, rec := newContext(http.MethodGet, "/api/v1/surveys/x/form?answers=%7Bnope", "")
		c.SetParamNames("slug")
		c.SetParamValues("x")

		require.NoError(t, h.GetSurveyForm(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, string(decode(t, rec).Error.Details), `"field":"answers"`)
	})
}
