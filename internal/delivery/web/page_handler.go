// Package web serves the server-rendered directory, profile and admin pages.
package web

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"kala/config"
	"kala/internal/delivery/api/request"
	deliverycontext "kala/internal/delivery/context"
	"kala/internal/domain/entity"
	domainerrors "kala/internal/domain/errors"
	"kala/internal/errors"
	"kala/internal/usecase"
	"kala/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const adminLoginPath = "/admin/login"

var reviewTabs = []entity.ApplicationStatus{
	entity.StatusPending,
	entity.StatusApproved,
	entity.StatusDeclined,
	entity.StatusBlocked,
}

var loginErrors = map[string]string{
	"forbidden":    "This account is not an administrator.",
	"state":        "The sign-in attempt expired. Please try again.",
	"cancelled":    "Sign-in was cancelled.",
	"oauth_failed": "Google sign-in failed. Please try again.",
}

type PageHandlerParams struct {
	fx.In

	MemberUC    usecase.MemberUsecase
	ReviewUC    usecase.ReviewUsecase
	ReferenceUC usecase.ReferenceUsecase
	Config      *config.Config
	Logger      *slog.Logger
}

// PageHandler renders HTML pages on top of the same use cases as the API.
type PageHandler struct {
	memberUC      usecase.MemberUsecase
	reviewUC      usecase.ReviewUsecase
	referenceUC   usecase.ReferenceUsecase
	templates     *templates
	cookieSecure  bool
	adminPageSize int
	logger        *slog.Logger
}

func NewPageHandler(params PageHandlerParams) (*PageHandler, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	return &PageHandler{
		memberUC:      params.MemberUC,
		reviewUC:      params.ReviewUC,
		referenceUC:   params.ReferenceUC,
		templates:     tmpl,
		cookieSecure:  params.Config.Auth != nil && params.Config.Auth.CookieSecure,
		adminPageSize: params.Config.Directory.AdminPageSize,
		logger:        params.Logger,
	}, nil
}

// Directory lists approved members with the same filters as the API.
func (h *PageHandler) Directory(c echo.Context) error {
	query := c.QueryParams()
	data := map[string]any{}
	status := http.StatusOK

	filter, result, err := h.listMembers(c, query)
	if err != nil {
		var vErr *domainerrors.ValidationError
		if !errors.As(err, &vErr) {
			return h.renderError(c, err)
		}
		data["Invalid"] = vErr.Fields()
		status = http.StatusBadRequest
	}
	data["Filter"] = filter

	if result != nil {
		data["Result"] = result
		if result.Page > 1 {
			data["PrevURL"] = pageURL("/", query, result.Page-1)
		}
		if result.Page < result.TotalPages {
			data["NextURL"] = pageURL("/", query, result.Page+1)
		}
	}

	if err := h.loadFilterOptions(c, filter, data); err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, status, pageDirectory, data)
}

func (h *PageHandler) listMembers(c echo.Context, query url.Values) (entity.DirectoryFilter, *util.Page[*entity.Member], error) {
	filter, page, err := request.DirectoryQuery(query)
	if err != nil {
		return filter, nil, err
	}

	result, err := h.memberUC.ListMembers(c.Request().Context(), filter, page)
	if err != nil {
		return filter, nil, err
	}

	return filter, result, nil
}

func (h *PageHandler) loadFilterOptions(c echo.Context, filter entity.DirectoryFilter, data map[string]any) error {
	ctx := c.Request().Context()

	tags, err := h.referenceUC.GetTags(ctx)
	if err != nil {
		return err
	}
	services, err := h.referenceUC.GetServices(ctx)
	if err != nil {
		return err
	}
	states, err := h.referenceUC.GetLocationStates(ctx)
	if err != nil {
		return err
	}

	var cities []entity.LocationCity
	if filter.StateID != nil {
		if cities, err = h.referenceUC.GetLocationCities(ctx, *filter.StateID); err != nil {
			return err
		}
	}

	data["Tags"] = tags
	data["Services"] = services
	data["States"] = states
	data["Cities"] = cities
	data["TravelOptions"] = []entity.TravelPreference{entity.TravelBase, entity.TravelRegion, entity.TravelCountry}
	data["SortOptions"] = []entity.SortOrder{entity.SortExperienceAsc, entity.SortExperienceDesc, entity.SortName}

	return nil
}

// Profile renders an approved member's page; anything else is a 404.
func (h *PageHandler) Profile(c echo.Context) error {
	member, err := h.memberUC.GetPublicProfile(c.Request().Context(), c.Param("username"))
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, http.StatusOK, pageProfile, map[string]any{
		"Member": member,
		"QRURL":  "/api/v1/members/" + url.PathEscape(member.Username) + "/qr",
	})
}

func (h *PageHandler) AdminLogin(c echo.Context) error {
	if actor, ok := deliverycontext.GetActor(c); ok && actor.IsAdmin() {
		return c.Redirect(http.StatusFound, "/admin")
	}

	next := c.QueryParam("next")
	if next == "" {
		next = "/admin"
	}

	data := map[string]any{
		"LoginURL": "/auth/google/login?next=" + url.QueryEscape(next),
	}
	if code := c.QueryParam("error"); code != "" {
		msg, ok := loginErrors[code]
		if !ok {
			msg = loginErrors["oauth_failed"]
		}
		data["Error"] = msg
	}

	return h.render(c, http.StatusOK, pageAdminLogin, data)
}

// RequireAdmin sends anonymous visitors and non-admins to the login page.
func (h *PageHandler) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := deliverycontext.GetActor(c)
		if !ok {
			return c.Redirect(http.StatusFound, adminLoginPath+"?next="+url.QueryEscape(c.Request().URL.RequestURI()))
		}
		if !actor.IsAdmin() {
			return c.Redirect(http.StatusFound, adminLoginPath+"?error=forbidden")
		}

		return next(c)
	}
}

// AdminConsole lists applications in one status tab. Pages are 0-based.
func (h *PageHandler) AdminConsole(c echo.Context) error {
	actor, _ := deliverycontext.GetActor(c)

	status := entity.ApplicationStatus(c.QueryParam("status"))
	if !status.IsValid() {
		status = entity.StatusPending
	}
	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 0 {
		page = 0
	}

	list, err := h.reviewUC.ListApplications(c.Request().Context(), actor, usecase.ListApplicationsInput{
		Status: &status,
		Limit:  h.adminPageSize,
		Page:   page,
	})
	if err != nil {
		return h.renderError(c, err)
	}

	query := url.Values{"status": {string(status)}}
	data := map[string]any{
		"Tabs":   reviewTabs,
		"Status": status,
		"List":   list,
	}
	if page > 0 {
		data["PrevURL"] = pageURL("/admin", query, page-1)
	}
	if page+1 < list.TotalPages {
		data["NextURL"] = pageURL("/admin", query, page+1)
	}

	return h.render(c, http.StatusOK, pageAdminConsole, data)
}

func (h *PageHandler) AdminApplication(c echo.Context) error {
	actor, _ := deliverycontext.GetActor(c)

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return h.renderError(c, domainerrors.ErrApplicationNotFound)
	}

	detail, err := h.reviewUC.GetApplication(c.Request().Context(), actor, memberID)
	if err != nil {
		return h.renderError(c, err)
	}

	return h.render(c, http.StatusOK, pageAdminApplication, map[string]any{
		"Detail":  detail,
		"Actions": []string{"approve", "decline", "block"},
	})
}

// AdminAction applies approve, decline or block from the console forms.
// The CSRF middleware has checked the form token before it runs.
func (h *PageHandler) AdminAction(c echo.Context) error {
	actor, _ := deliverycontext.GetActor(c)

	memberID, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		return h.renderError(c, domainerrors.ErrApplicationNotFound)
	}

	ctx := c.Request().Context()
	switch c.Param("action") {
	case "approve":
		_, err = h.reviewUC.Approve(ctx, actor, memberID)
	case "decline":
		_, err = h.reviewUC.Decline(ctx, actor, memberID)
	case "block":
		_, err = h.reviewUC.Block(ctx, actor, memberID)
	default:
		return h.renderError(c, echo.ErrNotFound)
	}
	if err != nil {
		return h.renderError(c, err)
	}

	return c.Redirect(http.StatusSeeOther, "/admin/applications/"+memberID.String())
}

func (h *PageHandler) render(c echo.Context, status int, page string, data map[string]any) error {
	if data == nil {
		data = map[string]any{}
	}
	if actor, ok := deliverycontext.GetActor(c); ok {
		data["Actor"] = actor
		data["CSRFToken"] = csrfToken(c)
	}

	body, err := h.templates.render(page, data)
	if err != nil {
		return err
	}

	return c.HTMLBlob(status, body)
}

// renderError shows typed errors with their status; anything unexpected is
// logged and rendered as an opaque 500.
func (h *PageHandler) renderError(c echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "Something went wrong. Please try again later."

	var appErr domainerrors.AppError
	var httpErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status = appErr.HTTPCode()
		if status < http.StatusInternalServerError {
			message = appErr.Message()
		}
	case errors.As(err, &httpErr):
		status = httpErr.Code
		message = http.StatusText(status)
	}

	if status >= http.StatusInternalServerError {
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
			Error("Page request failed", slog.Any("error", err), slog.String("path", c.Request().URL.Path))
	}

	if status == http.StatusNotFound {
		return h.render(c, status, pageNotFound, nil)
	}

	return h.render(c, status, pageError, map[string]any{"Status": status, "Message": message})
}
