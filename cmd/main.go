package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/franciscosanchezn/uplate-admin/docs" // Import generated docs
	"github.com/franciscosanchezn/uplate-admin/internal/config"
	"github.com/franciscosanchezn/uplate-admin/internal/controllers"
	"github.com/franciscosanchezn/uplate-admin/internal/middleware"
	"github.com/franciscosanchezn/uplate-admin/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/crypto/bcrypt"
)

var (
	catalog       services.Catalog
	configuration *config.Config
)

// @title Uplate Admin API
// @version 1.0
// @description Campus dining administration: sections, restaurants, foods and menu items
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey AdminKey
// @in query
// @name key
// @description Shared admin key required by every /admin route.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()
	applyLogLevel(configuration.Level())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize the collection store
	var err error
	catalog, err = services.NewCatalog(ctx, configuration)
	checkPanicErr(err)
	defer func() {
		if err := catalog.Close(); err != nil {
			log.WithError(err).Error("Failed to close catalog")
		}
	}()

	adminKeyHash, err := middleware.HashAdminKey(configuration.AdminKey, bcrypt.DefaultCost)
	checkPanicErr(err)

	// Initialize Gin router
	router := setupRouter(adminKeyHash)

	server := &http.Server{
		Addr:    fmt.Sprintf("%v:%d", configuration.Host, configuration.Port),
		Handler: router,
	}

	// Start the server
	go func() {
		log.Infof("Starting server on %s (backend: %s, school: %s)", server.Addr, configuration.StoreBackend, configuration.School)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("Server stopped unexpectedly")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Graceful shutdown failed")
	}
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
		gin.SetMode(gin.DebugMode)
	case "production":
		log.SetLevel(log.ErrorLevel)
		gin.SetMode(gin.ReleaseMode)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// applyLogLevel propagates LOG_LEVEL to the package loggers
func applyLogLevel(level log.Level) {
	log.SetLevel(level)
	services.SetLogLevel(level)
	middleware.SetLogLevel(level)
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	log.Infof("Configuration loaded: %s", conf)
	return conf
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter(adminKeyHash []byte) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger())

	// Define routes
	setupRoutes(router, adminKeyHash)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, adminKeyHash []byte) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Tenant routes: /api/:school/...
	controllers.RegisterRoutes(router.Group("/api"), catalog, configuration.School, adminKeyHash)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "uplate-admin",
		"backend":   configuration.StoreBackend,
	})
}
