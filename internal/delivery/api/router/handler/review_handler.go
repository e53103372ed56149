package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/response"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler is the JSON side of the admin review console.
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// ListApplications pages through applications; page is 0-based.
func (h *ReviewHandler) ListApplications(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	input, err := listApplicationsInput(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	list, err := h.reviewUC.ListApplications(c.Request().Context(), actor, input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toApplicationListView(list))
}

func (h *ReviewHandler) GetApplication(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	detail, err := h.reviewUC.GetApplication(c.Request().Context(), actor, memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toApplicationDetailView(detail))
}

func (h *ReviewHandler) ListTransitions(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	transitions, err := h.reviewUC.ListTransitions(c.Request().Context(), actor, memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toTransitionViews(transitions))
}

func (h *ReviewHandler) Approve(c echo.Context) error {
	return h.transition(c, h.reviewUC.Approve)
}

func (h *ReviewHandler) Decline(c echo.Context) error {
	return h.transition(c, h.reviewUC.Decline)
}

func (h *ReviewHandler) Block(c echo.Context) error {
	return h.transition(c, h.reviewUC.Block)
}

type transitionFunc func(ctx context.Context, actor entity.Actor, memberID uuid.UUID) (*entity.MembershipApplication, error)

func (h *ReviewHandler) transition(c echo.Context, apply transitionFunc) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	memberID, err := uuidParam(c, "memberId")
	if err != nil {
		return response.HandleAppError(c, err)
	}

	application, err := apply(c.Request().Context(), actor, memberID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toApplicationView(application))
}

// listApplicationsInput reads status, limit and the 0-based page. An empty
// status lists every application.
func listApplicationsInput(c echo.Context) (usecase.ListApplicationsInput, error) {
	var (
		input  usecase.ListApplicationsInput
		fields []domainerrors.FieldError
	)

	if raw := c.QueryParam("status"); raw != "" {
		status := entity.ApplicationStatus(strings.ToUpper(raw))
		input.Status = &status
	}
	if raw := c.QueryParam("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			fields = append(fields, domainerrors.FieldError{Field: "limit", Reason: "must be a positive number"})
		}
		input.Limit = n
	}
	if raw := c.QueryParam("page"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			fields = append(fields, domainerrors.FieldError{Field: "page", Reason: "must be zero or more"})
		}
		input.Page = n
	}

	if len(fields) > 0 {
		return usecase.ListApplicationsInput{}, domainerrors.NewValidationError(fields...)
	}

	return input, nil
}
