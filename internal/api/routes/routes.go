package routes

import (
	"context"
	"log"

	"boatlog-backend/internal/api/handlers"
	"boatlog-backend/internal/api/middleware"
	"boatlog-backend/internal/auth"
	"boatlog-backend/internal/config"
	"boatlog-backend/internal/repository"
	"boatlog-backend/internal/service"
	"boatlog-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Metrics())

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	boatRepo := repository.NewBoatRepository(db)
	componentRepo := repository.NewComponentRepository(db)
	logRepo := repository.NewMaintenanceLogRepository(db)
	checkRepo := repository.NewHealthCheckRepository(db)
	documentRepo := repository.NewDocumentRepository(db)
	crewRepo := repository.NewCrewMemberRepository(db)
	partRepo := repository.NewPartRepository(db)
	equipmentRepo := repository.NewSafetyEquipmentRepository(db)

	// Document storage is optional. Without a bucket, file endpoints answer 503.
	var store service.DocumentStore
	if cfg.S3Bucket != "" {
		s3Store, err := storage.NewS3Store(context.Background(), cfg.S3Bucket, cfg.S3Region)
		if err != nil {
			log.Printf("Warning: Failed to initialize document storage: %v", err)
		} else {
			store = s3Store
		}
	}

	// Auth configuration comes first: the management client (if configured)
	// feeds the user service, the JWT middleware guards /api/v1.
	authConfig, err := auth.LoadAuthConfig("config/auth.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load auth config: %v", err)
		authConfig = nil
	}

	var provider service.IdentityProvider
	if authConfig != nil && authConfig.HasManagementAPI() {
		mgmt, err := auth.NewManagementClient(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize management client: %v", err)
		} else {
			provider = mgmt
		}
	}

	// Initialize services
	userService := service.NewUserService(userRepo, provider)
	boatService := service.NewBoatService(boatRepo, validate)
	componentService := service.NewComponentService(componentRepo, boatRepo, logRepo, validate)
	logService := service.NewMaintenanceLogService(logRepo, boatRepo, validate)
	checkService := service.NewHealthCheckService(checkRepo, boatRepo, validate)
	documentService := service.NewDocumentService(documentRepo, boatRepo, store, validate)
	mailerService := service.NewMailerService(cfg)
	crewService := service.NewCrewMemberService(crewRepo, boatRepo, mailerService, validate)
	partService := service.NewPartService(partRepo, componentRepo, validate)
	equipmentService := service.NewSafetyEquipmentService(equipmentRepo, boatRepo, validate)
	alertsService := service.NewAlertsService(boatRepo, componentRepo, documentRepo)
	activityService := service.NewActivityService(boatRepo, logRepo, checkRepo, documentRepo)
	weatherService := service.NewWeatherService(cfg)

	// Initialize auth middleware
	var authMiddleware *auth.AuthMiddleware
	if authConfig != nil {
		authService, err := auth.NewAuthService(authConfig)
		if err != nil {
			log.Printf("Warning: Failed to initialize auth service: %v", err)
		} else {
			authMiddleware = auth.NewAuthMiddleware(authService, userService)
		}
	}

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	userHandler := handlers.NewUserHandler(userService)
	boatHandler := handlers.NewBoatHandler(boatService)
	componentHandler := handlers.NewComponentHandler(componentService)
	logHandler := handlers.NewMaintenanceLogHandler(logService)
	checkHandler := handlers.NewHealthCheckHandler(checkService)
	documentHandler := handlers.NewDocumentHandler(documentService)
	crewHandler := handlers.NewCrewMemberHandler(crewService)
	partHandler := handlers.NewPartHandler(partService)
	equipmentHandler := handlers.NewSafetyEquipmentHandler(equipmentService)
	alertsHandler := handlers.NewAlertsHandler(alertsService, componentService)
	activityHandler := handlers.NewActivityHandler(activityService)
	weatherHandler := handlers.NewWeatherHandler(weatherService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Prometheus metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")

	if authMiddleware != nil {
		v1.Use(authMiddleware.RequireAuth())
	}

	{
		// Account routes
		v1.GET("/me", userHandler.GetMe)

		// Alert routes
		alerts := v1.Group("/alerts")
		{
			alerts.GET("", alertsHandler.GetAlerts)
			alerts.POST("/dismiss", alertsHandler.DismissAlert)
			alerts.POST("/quick-complete", alertsHandler.QuickComplete)
		}

		// Activity feed
		v1.GET("/activity", activityHandler.GetActivity)

		// Boat routes
		boats := v1.Group("/boats")
		{
			boats.GET("", boatHandler.ListBoats)
			boats.POST("", boatHandler.CreateBoat)
			boats.GET("/:id", boatHandler.GetBoat)
			boats.PUT("/:id", boatHandler.UpdateBoat)
			boats.DELETE("/:id", boatHandler.DeleteBoat)
			boats.GET("/:id/components", componentHandler.ListComponents)
			boats.GET("/:id/maintenance-logs", logHandler.ListMaintenanceLogs)
			boats.GET("/:id/health-checks", checkHandler.ListHealthChecks)
			boats.GET("/:id/documents", documentHandler.ListDocuments)
			boats.GET("/:id/crew-members", crewHandler.ListCrewMembers)
			boats.GET("/:id/safety-equipment", equipmentHandler.ListSafetyEquipment)
		}

		// Component routes
		components := v1.Group("/components")
		{
			components.POST("", componentHandler.CreateComponent)
			components.GET("/:id", componentHandler.GetComponent)
			components.PUT("/:id", componentHandler.UpdateComponent)
			components.DELETE("/:id", componentHandler.DeleteComponent)
			components.GET("/:id/parts", partHandler.ListParts)
		}

		// Maintenance log routes
		logs := v1.Group("/maintenance-logs")
		{
			logs.POST("", logHandler.CreateMaintenanceLog)
			logs.DELETE("/:id", logHandler.DeleteMaintenanceLog)
		}

		// Health check record routes
		checks := v1.Group("/health-checks")
		{
			checks.POST("", checkHandler.CreateHealthCheck)
			checks.DELETE("/:id", checkHandler.DeleteHealthCheck)
		}

		// Document routes
		documents := v1.Group("/documents")
		{
			documents.POST("", documentHandler.CreateDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
			documents.DELETE("/:id", documentHandler.DeleteDocument)
			documents.GET("/:id/download", documentHandler.DownloadDocument)
		}

		// Crew routes
		crew := v1.Group("/crew-members")
		{
			crew.POST("", crewHandler.InviteCrewMember)
			crew.POST("/:id/activate", crewHandler.ActivateCrewMember)
			crew.DELETE("/:id", crewHandler.DeleteCrewMember)
		}

		// Part routes
		parts := v1.Group("/parts")
		{
			parts.POST("", partHandler.CreatePart)
			parts.PUT("/:id", partHandler.UpdatePart)
			parts.DELETE("/:id", partHandler.DeletePart)
		}

		// Safety equipment routes
		equipment := v1.Group("/safety-equipment")
		{
			equipment.POST("", equipmentHandler.CreateSafetyEquipment)
			equipment.PUT("/:id", equipmentHandler.UpdateSafetyEquipment)
			equipment.DELETE("/:id", equipmentHandler.DeleteSafetyEquipment)
		}

		// Weather lookup
		v1.GET("/weather", weatherHandler.GetWeather)

		// Admin routes, restricted to the configured allowlist
		admin := v1.Group("/admin")
		if authMiddleware != nil {
			admin.Use(authMiddleware.RequireAdmin(cfg.IsAdmin))
		}
		{
			admin.GET("/users", userHandler.ListUsers)
			admin.DELETE("/users/:id", userHandler.DeleteUser)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": middleware.GetRequestID(c),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
