package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/gravadigital/promoter-portal-api/internal/config"
	"github.com/gravadigital/promoter-portal-api/internal/handlers"
	"github.com/gravadigital/promoter-portal-api/internal/logger"
	"github.com/gravadigital/promoter-portal-api/internal/middleware/auth"
	"github.com/gravadigital/promoter-portal-api/internal/services"
	"github.com/gravadigital/promoter-portal-api/internal/storage/object"
	"github.com/gravadigital/promoter-portal-api/internal/storage/postgres"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	db         *gorm.DB
	store      object.Store
}

// New creates a new server instance
func New(cfg *config.Config, db *gorm.DB, store object.Store) *Server {
	return &Server{
		config: cfg,
		db:     db,
		store:  store,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = strings.Split(s.config.CORS.AllowOrigins, ",")
	if s.config.CORS.AllowOrigins == "*" {
		corsConfig.AllowAllOrigins = true
		corsConfig.AllowOrigins = nil
	} else {
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	eventRepo := postgres.NewPostgresEventRepository(s.db)
	photoRepo := postgres.NewPostgresPhotoRepository(s.db)
	reportingRepo := postgres.NewPostgresReportingRepository(s.db)
	curationRepo := postgres.NewPostgresCurationRepository(s.db)
	userRepo := postgres.NewPostgresUserRepository(s.db)

	authService := services.NewAuthService(userRepo, s.config.Auth.JWTSecret, s.config.Auth.TokenTTL)
	uploadService := services.NewUploadService(s.store, photoRepo, eventRepo, s.config.Upload.MaxFileSize)
	curationService := services.NewCurationService(photoRepo, reportingRepo, curationRepo)
	exportService := services.NewExportService(reportingRepo, eventRepo, s.config.List.ReportingCap)

	authHandler := handlers.NewAuthHandler(authService)
	eventHandler := handlers.NewEventHandler(eventRepo, uploadService)
	photoHandler := handlers.NewPhotoHandler(photoRepo, uploadService, s.store, s.config.List.PhotoCap)
	reportingHandler := handlers.NewReportingHandler(reportingRepo, eventRepo, exportService, s.config.List.ReportingCap)
	archiveHandler := handlers.NewArchiveHandler(s.store, s.config.Archive.PageSize)
	curationHandler := handlers.NewCurationHandler(curationService)
	customerHandler := handlers.NewCustomerHandler(eventRepo, curationRepo, s.store)

	// Health check
	router.GET("/ping", func(c *gin.Context) {
		status := "healthy"
		code := http.StatusOK
		if err := postgres.HealthCheck(s.db); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{
			"message": "Promoter Portal API is running",
			"status":  status,
		})
	})

	s.setupAPIRoutes(router, authHandler, eventHandler, photoHandler, reportingHandler, archiveHandler, curationHandler, customerHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	authHandler *handlers.AuthHandler,
	eventHandler *handlers.EventHandler,
	photoHandler *handlers.PhotoHandler,
	reportingHandler *handlers.ReportingHandler,
	archiveHandler *handlers.ArchiveHandler,
	curationHandler *handlers.CurationHandler,
	customerHandler *handlers.CustomerHandler,
) {
	secret := s.config.Auth.JWTSecret
	adminOnly := auth.RequireRole(secret, auth.RoleAdmin)
	customerOnly := auth.RequireRole(secret, auth.RoleCustomer)
	anyRole := auth.RequireRole(secret, auth.RoleAdmin, auth.RoleCustomer)

	api := router.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.AdminLogin)
			authRoutes.POST("/customer-login", authHandler.CustomerLogin)
			authRoutes.POST("/register", adminOnly, authHandler.RegisterAdmin)
		}

		events := api.Group("/events")
		{
			events.GET("", eventHandler.List)
			events.GET("/:id", eventHandler.Get)
			events.POST("", adminOnly, eventHandler.Create)
			events.PATCH("/:id", adminOnly, eventHandler.Update)
			events.PUT("/:id/cover", adminOnly, eventHandler.UpdateCover)
			events.DELETE("/:id", adminOnly, eventHandler.Delete)

			// Promoter submission surface; no token required.
			events.POST("/:id/photos", photoHandler.Upload)
			events.POST("/:id/reportings", reportingHandler.Create)
		}

		photos := api.Group("/photos")
		{
			// The zip route predates the rest of the API and keeps its
			// query-parameter contract.
			photos.GET("/zip", anyRole, archiveHandler.Download)

			photos.GET("", adminOnly, photoHandler.List)
			photos.DELETE("/:id", adminOnly, photoHandler.Delete)
		}

		reportings := api.Group("/reportings")
		{
			reportings.GET("", adminOnly, reportingHandler.List)
			reportings.GET("/export", adminOnly, reportingHandler.Export)
			reportings.PATCH("/:id", adminOnly, reportingHandler.Update)
			reportings.DELETE("/:id", adminOnly, reportingHandler.Delete)
		}

		api.POST("/curation", adminOnly, curationHandler.Accept)

		customer := api.Group("/customer", customerOnly)
		{
			customer.GET("/events", customerHandler.ListEvents)
			customer.GET("/events/:id/photos", customerHandler.ListPhotos)
			customer.GET("/events/:id/reportings", customerHandler.ListReportings)
		}
	}
}
