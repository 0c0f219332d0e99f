package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/johnquangdev/ami-meeting-svc/pkg/validator"

	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/handler"
	"github.com/johnquangdev/ami-meeting-svc/internal/adapter/repository"
	"github.com/johnquangdev/ami-meeting-svc/internal/infrastructure/database"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/actionitem"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/auth"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/dashboard"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/extraction"
	"github.com/johnquangdev/ami-meeting-svc/internal/usecase/meeting"
	pkgai "github.com/johnquangdev/ami-meeting-svc/pkg/ai"
	"github.com/johnquangdev/ami-meeting-svc/pkg/config"
	"github.com/johnquangdev/ami-meeting-svc/pkg/jwt"
)

// @title           AMI Meeting Service API
// @version         1.0
// @description     Meeting recording backend with AI action item extraction and dashboard metrics

// @host      localhost:8080
// @BasePath  /v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := zap.NewProduction()
	if cfg.Server.Environment != "production" {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Echo instance
	e := echo.New()
	e.Validator = pkgvalidator.New()
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders:     []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization, "Set-Cookie", "Cookie"},
		AllowCredentials: true,
	}))

	// Initialize Database
	db, err := database.NewPostgresDB(cfg, logger)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Apply migrations only when explicitly enabled in config.
	// Production deployments manage schema via sql-migrate in CI/CD.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("DB_AUTO_MIGRATE is enabled in production. Manage schema with sql-migrate instead.")
		}
		if err := database.RunMigrations(db, logger); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	// Initialize JWT manager and auth service
	jwtManager := jwt.NewManager(cfg.Auth.Secret, cfg.Auth.TokenExpiry)
	authService := auth.NewAuthService(userRepo, jwtManager, logger)

	// Initialize AI completion client and services
	openaiClient := pkgai.NewOpenAIClient(&cfg.OpenAI)
	meetingService := meeting.NewMeetingService(meetingRepo, logger)
	extractionService := extraction.NewExtractionService(meetingRepo, actionItemRepo, openaiClient, logger)
	actionItemService := actionitem.NewActionItemService(actionItemRepo, meetingRepo, logger)
	dashboardService := dashboard.NewDashboardService(actionItemRepo, logger)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg, logger)
	meetingHandler := handler.NewMeetingHandler(meetingService, extractionService, logger)
	actionItemHandler := handler.NewActionItemHandler(actionItemService, logger)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, logger)

	// Setup router with handlers
	router := handler.NewRouter(cfg, authService, authHandler, meetingHandler, actionItemHandler, dashboardHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		logger.Info("starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment))

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
}
