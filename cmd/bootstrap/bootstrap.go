package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"product-catalog-api/config"
	deliveryHttp "product-catalog-api/internal/delivery/http"
	"product-catalog-api/internal/delivery/http/handler"
	"product-catalog-api/internal/delivery/http/middleware"
	"product-catalog-api/internal/infrastructure/ai"
	"product-catalog-api/internal/infrastructure/cache"
	"product-catalog-api/internal/infrastructure/database"
	"product-catalog-api/internal/repository"
	"product-catalog-api/internal/service"
	"product-catalog-api/internal/usecase"
	"product-catalog-api/pkg/jwt"
	"product-catalog-api/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	MongoClient *mongo.Client
	DB          *mongo.Database
	RedisClient *redis.Client
	Gemini      *ai.GeminiClient
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize MongoDB
	client, db, err := database.NewMongoConnection(cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.MongoClient = client
	app.DB = db
	logrus.Info("Database connected successfully")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return nil, fmt.Errorf("failed to ensure indexes: %w", err)
	}
	logrus.Info("Database indexes ensured")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize Gemini
	gemini, err := ai.NewGeminiClient(context.Background(), cfg.Gemini)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Gemini client: %w", err)
	}
	app.Gemini = gemini
	logrus.Info("Gemini client initialized")

	// Initialize all layers
	server := initializeServer(cfg, db, redisClient, gemini)
	app.Server = server

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *mongo.Database, redisClient *redis.Client, gemini *ai.GeminiClient) *http.Server {
	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	auditLogRepo := repository.NewAuditLogRepository(db)

	// Initialize services
	auditService := service.NewAuditService(log, auditLogRepo)

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(log, userRepo, jwtService, redisClient, auditService)
	productUsecase := usecase.NewProductUsecase(log, productRepo, userRepo, gemini, auditService)
	auditLogUsecase := usecase.NewAuditLogUsecase(log, auditLogRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(log, customValidator, jwtService, authUsecase)
	productHandler := handler.NewProductHandler(log, customValidator, productUsecase)
	auditLogHandler := handler.NewAuditLogHandler(log, auditLogUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, redisClient)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(authHandler, productHandler, auditLogHandler, authMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.MongoClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		app.MongoClient.Disconnect(ctx)
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}

	if app.Gemini != nil {
		app.Gemini.Close()
	}
}
