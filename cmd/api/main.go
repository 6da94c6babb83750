package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"bella/internal/config"
	"bella/internal/database"
	"bella/internal/genai"
	"bella/internal/handlers"
	"bella/internal/logger"
	"bella/internal/middleware"
	"bella/internal/services"
	"bella/internal/store"
	"bella/internal/validator"
)

// @title           Bella API
// @version         1.0
// @description     Bella is a wedding planning application covering the guest list, budget, checklist, day-of timeline and an AI planning assistant.
// @termsOfService  http://swagger.io/terms/

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register request validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	st := store.New(db)
	// No client-level timeout: chat replies stream for as long as the
	// model keeps talking. Per-request contexts bound each call.
	gateway := genai.NewClient(&http.Client{}, appConfig.GeminiAPIKey)

	userService := services.NewUserService(db)
	auditService := services.NewAuditService(db)
	weddingService := services.NewWeddingService(st)
	budgetService := services.NewBudgetService(st, gateway)
	guestService := services.NewGuestService(st)
	taskService := services.NewTaskService(st)
	eventService := services.NewEventService(st)
	assistantService := services.NewAssistantService(gateway)
	sessionService := services.NewSessionService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(userService, auditService)
	weddingHandler := handlers.NewWeddingHandler(weddingService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	guestHandler := handlers.NewGuestHandler(guestService, auditService)
	taskHandler := handlers.NewTaskHandler(taskService, auditService)
	eventHandler := handlers.NewEventHandler(eventService, auditService)
	assistantHandler := handlers.NewAssistantHandler(assistantService)
	reportHandler := handlers.NewReportHandler(budgetService, guestService, taskService, eventService, weddingService, auditService)
	contactHandler := handlers.NewContactHandler(auditService)
	sessionHandler := handlers.NewSessionHandler(sessionService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	// Protected routes
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())

	// User profile
	protected.GET("/profile", authHandler.GetProfile)

	// Wedding date and dashboard
	protected.GET("/wedding/date", weddingHandler.GetDate)
	protected.PUT("/wedding/date", weddingHandler.SetDate)
	protected.GET("/dashboard/stats", weddingHandler.GetStats)

	// Budget routes
	budget := protected.Group("/budget")
	budget.GET("", budgetHandler.ListItems)
	budget.POST("", budgetHandler.AddItem)
	budget.PUT("/:id", budgetHandler.UpdateItem)
	budget.DELETE("/:id", budgetHandler.RemoveItem)
	budget.POST("/suggest", budgetHandler.Suggest)

	// Guest routes
	guests := protected.Group("/guests")
	guests.GET("", guestHandler.ListGuests)
	guests.POST("", guestHandler.AddGuest)
	guests.PUT("/:id", guestHandler.UpdateGuest)
	guests.PATCH("/:id/rsvp", guestHandler.SetRSVP)
	guests.DELETE("/:id", guestHandler.DeleteGuest)

	// Checklist routes
	tasks := protected.Group("/tasks")
	tasks.GET("", taskHandler.ListTasks)
	tasks.POST("", taskHandler.AddTask)
	tasks.PATCH("/:id/toggle", taskHandler.ToggleTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	// Timeline routes
	events := protected.Group("/events")
	events.GET("", eventHandler.ListEvents)
	events.POST("", eventHandler.AddEvent)
	events.DELETE("/:id", eventHandler.DeleteEvent)

	// Assistant routes
	protected.POST("/assistant/chat", assistantHandler.Chat)
	protected.GET("/assistant/history", assistantHandler.History)
	protected.DELETE("/assistant/history", assistantHandler.ClearHistory)
	protected.POST("/inspiration", assistantHandler.Inspiration)

	// Reports, contact and session state
	protected.GET("/reports/:kind", reportHandler.Download)
	protected.POST("/contact", contactHandler.Submit)
	protected.GET("/session/view", sessionHandler.GetView)
	protected.PUT("/session/view", sessionHandler.SetView)

	log.Infof("Starting Bella backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
