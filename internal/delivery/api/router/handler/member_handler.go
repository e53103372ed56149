package handler

import (
	"log/slog"
	"net/http"

	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/request"
	"kala/internal/delivery/api/response"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type MemberHandlerParams struct {
	fx.In

	MemberUC usecase.MemberUsecase
	Logger   *slog.Logger
}

// MemberHandler serves applications, the directory and member profiles.
type MemberHandler struct {
	memberUC usecase.MemberUsecase
	logger   *slog.Logger
}

func NewMemberHandler(params MemberHandlerParams) *MemberHandler {
	return &MemberHandler{
		memberUC: params.MemberUC,
		logger:   params.Logger,
	}
}

// CreateMembershipApplication submits the whole wizard payload in one call.
func (h *MemberHandler) CreateMembershipApplication(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.MembershipApplicationInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid membership application")
	}

	member, err := h.memberUC.CreateMembershipApplication(c.Request().Context(), actor.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toMemberDetailView(member))
}

func (h *MemberHandler) CheckUsername(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  "username",
			Reason: "is required",
		}))
	}

	available, err := h.memberUC.ValidateMemberUsername(c.Request().Context(), username)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"available": available})
}

// ListMembers returns one page of approved members.
func (h *MemberHandler) ListMembers(c echo.Context) error {
	filter, page, err := request.DirectoryQuery(c.QueryParams())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	result, err := h.memberUC.ListMembers(c.Request().Context(), filter, page)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toDirectoryPage(result))
}

func (h *MemberHandler) GetPublicProfile(c echo.Context) error {
	member, err := h.memberUC.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMemberView(member))
}

// GetProfileQR returns a PNG QR code linking to the member's profile page.
func (h *MemberHandler) GetProfileQR(c echo.Context) error {
	png, err := h.memberUC.GetProfileQR(c.Request().Context(), c.Param("username"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=3600")

	return c.Blob(http.StatusOK, "image/png", png)
}

// GetMyMember returns the caller's own profile, or null before they apply.
func (h *MemberHandler) GetMyMember(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	member, err := h.memberUC.GetMember(c.Request().Context(), actor.UserID)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if member == nil {
		return response.Success(c, http.StatusOK, nil)
	}

	return response.Success(c, http.StatusOK, toMemberDetailView(member))
}

func (h *MemberHandler) UpdateMyMember(c echo.Context) error {
	actor, err := middleware.CurrentActor(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	var input usecase.UpdateMemberInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid member update")
	}

	member, err := h.memberUC.UpdateMember(c.Request().Context(), actor.UserID, &input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toMemberDetailView(member))
}
