package handler

import (
	"log/slog"
	"net/http"

	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/response"
	"kala/internal/domain/entity"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type OnboardingHandlerParams struct {
	fx.In

	OnboardingUC usecase.OnboardingUsecase
	Logger       *slog.Logger
}

// OnboardingHandler exposes the application wizard. Step payloads are
// validated by the use case so that every rejected field is reported at once.
type OnboardingHandler struct {
	onboardingUC usecase.OnboardingUsecase
	logger       *slog.Logger
}

func NewOnboardingHandler(params OnboardingHandlerParams) *OnboardingHandler {
	return &OnboardingHandler{
		onboardingUC: params.OnboardingUC,
		logger:       params.Logger,
	}
}

func (h *OnboardingHandler) Start(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.onboardingUC.Start(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, draft)
}

func (h *OnboardingHandler) GetDraft(c echo.Context) error {
	userID, draftID, err := h.draftRef(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	draft, err := h.onboardingUC.GetDraft(c.Request().Context(), userID, draftID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

func (h *OnboardingHandler) SavePersonal(c echo.Context) error {
	userID, draftID, err := h.draftRef(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.PersonalDetails
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid personal details")
	}

	draft, err := h.onboardingUC.SavePersonal(c.Request().Context(), userID, draftID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

func (h *OnboardingHandler) SavePractice(c echo.Context) error {
	userID, draftID, err := h.draftRef(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input entity.PracticeDetails
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid practice details")
	}

	draft, err := h.onboardingUC.SavePractice(c.Request().Context(), userID, draftID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, draft)
}

func (h *OnboardingHandler) Submit(c echo.Context) error {
	userID, draftID, err := h.draftRef(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.SurveyAnswersInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid survey answers")
	}

	member, err := h.onboardingUC.Submit(c.Request().Context(), userID, draftID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMemberDetailView(member))
}

func (h *OnboardingHandler) Discard(c echo.Context) error {
	userID, draftID, err := h.draftRef(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if err := h.onboardingUC.Discard(c.Request().Context(), userID, draftID); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *OnboardingHandler) draftRef(c echo.Context) (uuid.UUID, uuid.UUID, error) {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	draftID, err := uuidParam(c, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return actor.UserID, draftID, nil
}
