package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/meettrack-team/meettrack/internal/infrastructure/http/middleware"
	"github.com/meettrack-team/meettrack/internal/usecase/auth"
	"github.com/meettrack-team/meettrack/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg              *config.Config
	authHandler      *Auth
	meetingHandler   *Meeting
	analyticsHandler *Analytics
	uploadHandler    *Upload
	oauthService     *auth.OAuthService
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authHandler *Auth,
	meetingHandler *Meeting,
	analyticsHandler *Analytics,
	uploadHandler *Upload,
	oauthService *auth.OAuthService,
) *Router {
	return &Router{
		cfg:              cfg,
		authHandler:      authHandler,
		meetingHandler:   meetingHandler,
		analyticsHandler: analyticsHandler,
		uploadHandler:    uploadHandler,
		oauthService:     oauthService,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")

	rt.setupAuthRoutes(v1)
	rt.setupMeetingRoutes(v1)
	rt.setupAnalyticsRoutes(v1)
	rt.setupUploadRoutes(v1)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group) {
	authGroup := g.Group("/auth")

	authGroup.GET("/google/login", rt.authHandler.GoogleLogin)
	authGroup.GET("/google/callback", rt.authHandler.GoogleCallback)
	authGroup.POST("/refresh", rt.authHandler.RefreshToken)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me)
}

// setupMeetingRoutes configures meeting management routes
func (rt *Router) setupMeetingRoutes(g *echo.Group) {
	meetingGroup := g.Group("/meetings", middleware.EchoAuth(rt.oauthService))

	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.POST("", rt.meetingHandler.CreateMeeting)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.PUT("/:id", rt.meetingHandler.UpdateMeeting)
	meetingGroup.PATCH("/:id/status", rt.meetingHandler.UpdateStatus)
	meetingGroup.DELETE("/:id", rt.meetingHandler.DeleteMeeting)
}

// setupAnalyticsRoutes configures analytics routes
func (rt *Router) setupAnalyticsRoutes(g *echo.Group) {
	analyticsGroup := g.Group("/analytics", middleware.EchoAuth(rt.oauthService))

	analyticsGroup.GET("", rt.analyticsHandler.GetSummary)
}

// setupUploadRoutes configures upload routes
func (rt *Router) setupUploadRoutes(g *echo.Group) {
	uploadGroup := g.Group("/uploads", middleware.EchoAuth(rt.oauthService))

	uploadGroup.POST("/selfie", rt.uploadHandler.UploadSelfie)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
