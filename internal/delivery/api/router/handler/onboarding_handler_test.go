package handler

import (
	"net/http"
	"testing"
	"time"

	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/domain/survey"
	mockUsecase "kala/internal/mocks/usecase"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestOnboardingHandler(t *testing.T) (*OnboardingHandler, *mockUsecase.MockOnboardingUsecase) {
	onboardingUC := mockUsecase.NewMockOnboardingUsecase(t)

	return NewOnboardingHandler(OnboardingHandlerParams{OnboardingUC: onboardingUC, Logger: newDiscardLogger()}), onboardingUC
}

func withDraftID(c echo.Context, id uuid.UUID) {
	c.SetParamNames("id")
	c.SetParamValues(id.String())
}

func TestOnboardingHandler_Start(t *testing.T) {
	h, onboardingUC := newTestOnboardingHandler(t)
	c, rec := newContext(http.MethodPost, "/api/v1/onboarding", "")
	actor := withActor(c)

	draft := &entity.ApplicationDraft{ID: uuid.New(), UserID: actor.UserID, ExpiresAt: time.Now().Add(time.Hour)}
	onboardingUC.EXPECT().Start(mock.Anything, actor.UserID).Return(draft, nil)

	require.NoError(t, h.Start(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"id":"`+draft.ID.String()+`"`)
}

func TestOnboardingHandler_RequiresSession(t *testing.T) {
	h, _ := newTestOnboardingHandler(t)
	c, rec := newContext(http.MethodGet, "/", "")
	withDraftID(c, uuid.New())

	require.NoError(t, h.GetDraft(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOnboardingHandler_SavePersonal(t *testing.T) {
	h, onboardingUC := newTestOnboardingHandler(t)
	draftID := uuid.New()
	stateID, cityID := uuid.New(), uuid.New()
	body := `{"identity":["female"],"fullName":"Asha Rao","state":"` + stateID.String() + `","city":"` + cityID.String() +
		`","email":"asha@example.com","phoneNumber":"9876543210","dateOfBirth":"1990-04-01"}`
	c, rec := newContext(http.MethodPut, "/", body)
	withDraftID(c, draftID)
	actor := withActor(c)

	expected := &entity.PersonalDetails{
		Identity:    []string{"female"},
		FullName:    "Asha Rao",
		StateID:     stateID,
		CityID:      cityID,
		Email:       "asha@example.com",
		PhoneNumber: "9876543210",
		DateOfBirth: "1990-04-01",
	}
	onboardingUC.EXPECT().SavePersonal(mock.Anything, actor.UserID, draftID, expected).
		Return(&entity.ApplicationDraft{ID: draftID, Step: entity.StepPersonal, Personal: expected}, nil)

	require.NoError(t, h.SavePersonal(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"step":1`)
}

func TestOnboardingHandler_SavePractice_ReportsFields(t *testing.T) {
	h, onboardingUC := newTestOnboardingHandler(t)
	draftID := uuid.New()
	c, rec := newContext(http.MethodPut, "/", `{"username":"asha"}`)
	withDraftID(c, draftID)
	actor := withActor(c)

	onboardingUC.EXPECT().SavePractice(mock.Anything, actor.UserID, draftID, &entity.PracticeDetails{Username: "asha"}).
		Return(nil, domainerrors.NewValidationError(
			domainerrors.FieldError{Field: "about", Reason: "is required"},
			domainerrors.FieldError{Field: "services", Reason: "must contain at least 1 item"},
		))

	require.NoError(t, h.SavePractice(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	require.NotNil(t, body.Error)
	assert.JSONEq(t, `[{"field":"about","reason":"is required"},{"field":"services","reason":"must contain at least 1 item"}]`, string(body.Error.Details))
}

func TestOnboardingHandler_Submit(t *testing.T) {
	h, onboardingUC := newTestOnboardingHandler(t)
	draftID := uuid.New()
	c, rec := newContext(http.MethodPost, "/", `{"answers":{"reason":["networking"]}}`)
	withDraftID(c, draftID)
	actor := withActor(c)

	input := &usecase.SurveyAnswersInput{Answers: survey.Answers{"reason": survey.ChoiceAnswer("networking")}}
	member := &entity.Member{
		ID:          uuid.New(),
		Username:    "asha",
		Application: &entity.MembershipApplication{Status: entity.StatusPending},
	}
	onboardingUC.EXPECT().Submit(mock.Anything, actor.UserID, draftID, input).Return(member, nil)

	require.NoError(t, h.Submit(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, string(decode(t, rec).Data), `"status":"PENDING"`)
}

func TestOnboardingHandler_Discard(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		h, onboardingUC := newTestOnboardingHandler(t)
		draftID := uuid.New()
		c, rec := newContext(http.MethodDelete, "/", "")
		withDraftID(c, draftID)
		actor := withActor(c)

		onboardingUC.EXPECT().Discard(mock.Anything, actor.UserID, draftID).Return(nil)

		require.NoError(t, h.Discard(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("someone else's draft", func(t *testing.T) {
		h, onboardingUC := newTestOnboardingHandler(t)
		draftID := uuid.New()
		c, rec := newContext(http.MethodDelete, "/", "")
		withDraftID(c, draftID)
		actor := withActor(c)

		onboardingUC.EXPECT().Discard(mock.Anything, actor.UserID, draftID).Return(domainerrors.ErrDraftNotFound)

		require.NoError(t, h.Discard(c))
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "DRAFT_NOT_FOUND", decode(t, rec).Error.Code)
	})
}
