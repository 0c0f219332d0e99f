package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/http/middleware"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/auth"
	"github.com/johnquangdev/ami-meeting-svc/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg               *config.Config
	authService       auth.Service
	authHandler       *Auth
	meetingHandler    *Meeting
	actionItemHandler *ActionItem
	dashboardHandler  *Dashboard
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	authService auth.Service,
	authHandler *Auth,
	meetingHandler *Meeting,
	actionItemHandler *ActionItem,
	dashboardHandler *Dashboard,
) *Router {
	return &Router{
		cfg:               cfg,
		authService:       authService,
		authHandler:       authHandler,
		meetingHandler:    meetingHandler,
		actionItemHandler: actionItemHandler,
		dashboardHandler:  dashboardHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	// API v1 group
	v1 := e.Group("/v1")
	requireAuth := middleware.EchoAuth(rt.authService)

	rt.setupAuthRoutes(v1, requireAuth)
	rt.setupMeetingRoutes(v1, requireAuth)
	rt.setupActionItemRoutes(v1, requireAuth)
	rt.setupDashboardRoutes(v1, requireAuth)
}

// setupAuthRoutes configures authentication routes
func (rt *Router) setupAuthRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	authGroup := g.Group("/auth")

	authGroup.POST("/login", rt.authHandler.Login)
	authGroup.POST("/logout", rt.authHandler.Logout)
	authGroup.GET("/me", rt.authHandler.Me, requireAuth)
}

// setupMeetingRoutes configures meeting management routes
func (rt *Router) setupMeetingRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	meetingGroup := g.Group("/meetings", requireAuth)

	meetingGroup.POST("", rt.meetingHandler.CreateMeeting)
	meetingGroup.GET("", rt.meetingHandler.ListMeetings)
	meetingGroup.GET("/:id", rt.meetingHandler.GetMeeting)
	meetingGroup.POST("/:id/analyze", rt.meetingHandler.AnalyzeMeeting)
	meetingGroup.POST("/:id/extract-actions", rt.meetingHandler.ExtractActions)
	meetingGroup.GET("/:id/action-items", rt.actionItemHandler.ListByMeeting)
}

// setupActionItemRoutes configures action item routes
func (rt *Router) setupActionItemRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	itemGroup := g.Group("/action-items", requireAuth)

	itemGroup.PATCH("/:id", rt.actionItemHandler.UpdateActionItem)
}

// setupDashboardRoutes configures dashboard routes
func (rt *Router) setupDashboardRoutes(g *echo.Group, requireAuth echo.MiddlewareFunc) {
	dashboardGroup := g.Group("/dashboard", requireAuth)

	dashboardGroup.GET("/metrics", rt.dashboardHandler.Metrics)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}
