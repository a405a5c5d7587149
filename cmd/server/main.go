package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ameetempireone721/employeemonitoringsystem/internal/config"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/database"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/handlers"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/metrics"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/middleware"
	"github.com/ameetempireone721/employeemonitoringsystem/internal/services"
	"github.com/ameetempireone721/employeemonitoringsystem/pkg/jwt"
)

var (
	version   = "1.0.0"
	buildTime = "unknown"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	logger.Info("Starting Employee Monitoring Backend")
	logger.Infof("Version: %s, Build Time: %s", version, buildTime)

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("Failed to load configuration: %v", err)
	}

	// Set log level
	logLevel, err := logrus.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		logger.Warn("Invalid log level, using INFO")
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Set Gin mode
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Initialize database connection
	logger.Info("Connecting to database...")
	db, err := database.NewConnection(cfg.Database)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()
	logger.Info("Database connection established")

	// Initialize services
	logger.Info("Initializing services...")
	jwtService := jwt.NewService(
		cfg.JWT.Secret,
		cfg.JWT.WebTokenExpiry,
		cfg.JWT.MobileTokenExpiry,
	)
	employeeRepository := database.NewEmployeeRepository(db)
	statusRepository := database.NewStatusRepository(db)
	intervalRepository := database.NewIntervalRepository(db)

	ledgerService := services.NewLedgerService(intervalRepository, statusRepository, logger)

	// Nightly read-only report summary
	summaryService := services.NewSummaryService(ledgerService, logger)
	if err := summaryService.Start(); err != nil {
		logger.Fatalf("Failed to start summary service: %v", err)
	}

	logger.Info("Services initialized")

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(jwtService, employeeRepository, cfg, logger)
	employeeHandler := handlers.NewEmployeeHandler(employeeRepository, cfg, logger)
	statusHandler := handlers.NewStatusHandler(ledgerService, logger)
	activityHandler := handlers.NewActivityHandler(ledgerService, logger)

	// Initialize Gin router
	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))
	router.Use(metrics.Middleware())

	// CORS configuration
	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     cfg.CORS.AllowedMethods,
		AllowHeaders:     cfg.CORS.AllowedHeaders,
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	// Health check and metrics endpoints
	router.GET("/health", healthCheckHandler(db))
	router.GET("/metrics", metrics.Handler())

	// API routes
	api := router.Group("/api")
	{
		// Public
		api.POST("/login", authHandler.Login)

		// Protected (require JWT authentication)
		protected := api.Group("")
		protected.Use(middleware.AuthMiddleware(jwtService))
		{
			// Dashboard projections
			protected.GET("/agent-status", statusHandler.GetAgentStatus)
			protected.GET("/employee-status", statusHandler.GetEmployeeStatus)
			protected.GET("/single-employee", statusHandler.GetSingleEmployee)
			protected.GET("/generate-report", statusHandler.GenerateReport)
			protected.GET("/getemployees", employeeHandler.GetEmployees)

			// Interval operations (mobile client naming)
			protected.POST("/clockin", activityHandler.ClockIn)
			protected.POST("/clockout", activityHandler.ClockOut)
			protected.POST("/markidle", activityHandler.MarkIdle)
			protected.POST("/change-status", activityHandler.ChangeStatus)
			protected.POST("/activitymarked", activityHandler.ActivityMarked)

			// Admin-only roster management
			admin := protected.Group("")
			admin.Use(middleware.RequireAdmin())
			{
				admin.POST("/signup", employeeHandler.Signup)
				admin.POST("/update-team", employeeHandler.UpdateTeam)
				admin.POST("/reset-password", employeeHandler.ResetPassword)
			}
		}
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Infof("Server starting on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	summaryService.Stop()

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exited successfully")
}

// requestLogger middleware for logging HTTP requests
func requestLogger(logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		latency := time.Since(start)

		fields := logrus.Fields{
			"status":     c.Writer.Status(),
			"method":     c.Request.Method,
			"path":       path,
			"query":      query,
			"ip":         c.ClientIP(),
			"latency_ms": latency.Milliseconds(),
			"user_agent": c.Request.UserAgent(),
			"has_auth":   c.GetHeader("Authorization") != "",
		}

		if userCtx, exists := middleware.GetUserContext(c); exists {
			fields["employee_id"] = userCtx.EmployeeID
		}

		entry := logger.WithFields(fields)

		status := c.Writer.Status()
		switch {
		case status >= 500:
			entry.Error("Request completed with server error")
		case status >= 400:
			entry.Warn("Request completed with client error")
		default:
			entry.Info("Request completed successfully")
		}
	}
}

// healthCheckHandler returns a health check endpoint
func healthCheckHandler(db database.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":   "unhealthy",
				"database": "unhealthy",
				"error":    err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"database":  "healthy",
			"version":   version,
			"timestamp": time.Now().Unix(),
		})
	}
}
