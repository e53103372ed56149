// Package router wires handlers and middleware onto the echo instance.
package router

import (
	"kala/config"
	"kala/internal/delivery/api/middleware"
	"kala/internal/delivery/api/router/handler"
	"kala/internal/delivery/web"
	"kala/internal/domain/entity"
	"kala/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	ReferenceHandler  *handler.ReferenceHandler
	OnboardingHandler *handler.OnboardingHandler
	MemberHandler     *handler.MemberHandler
	ReviewHandler     *handler.ReviewHandler
	MediaHandler      *handler.MediaHandler
	PageHandler       *web.PageHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics
	Config            *config.Config
}

type router struct {
	authHandler       *handler.AuthHandler
	referenceHandler  *handler.ReferenceHandler
	onboardingHandler *handler.OnboardingHandler
	memberHandler     *handler.MemberHandler
	reviewHandler     *handler.ReviewHandler
	mediaHandler      *handler.MediaHandler
	pageHandler       *web.PageHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
	config            *config.Config
}

func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		referenceHandler:  params.ReferenceHandler,
		onboardingHandler: params.OnboardingHandler,
		memberHandler:     params.MemberHandler,
		reviewHandler:     params.ReviewHandler,
		mediaHandler:      params.MediaHandler,
		pageHandler:       params.PageHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
		config:            params.Config,
	}
}

// RegisterRoutes sets up the JSON API.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/google", r.authHandler.SignInWithGoogle)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/google/login", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	apiV1 := e.Group("/api/v1")

	// Public reference data and directory
	{
		apiV1.GET("/tags", r.referenceHandler.GetTags)
		apiV1.GET("/services", r.referenceHandler.GetServices)
		apiV1.GET("/locations/states", r.referenceHandler.GetLocationStates)
		apiV1.GET("/locations/states/:stateId/cities", r.referenceHandler.GetLocationCities)
		apiV1.GET("/surveys/:slug", r.referenceHandler.GetSurvey)
		apiV1.GET("/surveys/:slug/form", r.referenceHandler.GetSurveyForm)

		apiV1.GET("/members", r.memberHandler.ListMembers)
		apiV1.GET("/members/username-availability", r.memberHandler.CheckUsername, middleware.NewUsernameRateLimiter(r.config))
		apiV1.GET("/members/:username", r.memberHandler.GetPublicProfile)
		apiV1.GET("/members/:username/qr", r.memberHandler.GetProfileQR)
	}

	// Signed-in users
	authed := apiV1.Group("", r.authMiddleware.Authenticate)
	{
		authed.POST("/membership-applications", r.memberHandler.CreateMembershipApplication)
		authed.GET("/me/member", r.memberHandler.GetMyMember)
		authed.PATCH("/me/member", r.memberHandler.UpdateMyMember)

		authed.POST("/media/uploads", r.mediaHandler.RequestUpload)
		authed.POST("/media/uploads/confirm", r.mediaHandler.ConfirmUpload)
	}

	onboarding := authed.Group("/onboarding")
	{
		onboarding.POST("", r.onboardingHandler.Start)
		onboarding.GET("/:id", r.onboardingHandler.GetDraft)
		onboarding.PUT("/:id/personal", r.onboardingHandler.SavePersonal)
		onboarding.PUT("/:id/practice", r.onboardingHandler.SavePractice)
		onboarding.POST("/:id/submit", r.onboardingHandler.Submit)
		onboarding.DELETE("/:id", r.onboardingHandler.Discard)
	}

	admin := authed.Group("/admin", r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.GET("/applications", r.reviewHandler.ListApplications)
		admin.GET("/applications/:memberId", r.reviewHandler.GetApplication)
		admin.GET("/applications/:memberId/transitions", r.reviewHandler.ListTransitions)
		admin.POST("/applications/:memberId/approve", r.reviewHandler.Approve)
		admin.POST("/applications/:memberId/decline", r.reviewHandler.Decline)
		admin.POST("/applications/:memberId/block", r.reviewHandler.Block)
	}
}

// RegisterPageRoutes sets up the server-rendered pages.
func (r *router) RegisterPageRoutes(e *echo.Echo) {
	pages := e.Group("", r.authMiddleware.Identify)
	{
		pages.GET("/", r.pageHandler.Directory)
		pages.GET("/member/:username", r.pageHandler.Profile)
		pages.GET("/admin/login", r.pageHandler.AdminLogin)
	}

	adminPages := pages.Group("/admin", r.pageHandler.RequireAdmin, r.pageHandler.CSRF())
	{
		adminPages.GET("", r.pageHandler.AdminConsole)
		adminPages.GET("/applications/:memberId", r.pageHandler.AdminApplication)
		adminPages.POST("/applications/:memberId/:action", r.pageHandler.AdminAction)
	}
}
