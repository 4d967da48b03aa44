package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"maternity-dashboard/config"
	deliveryHttp "maternity-dashboard/internal/delivery/http"
	"maternity-dashboard/internal/delivery/http/handler"
	"maternity-dashboard/internal/delivery/http/middleware"
	domainRepo "maternity-dashboard/internal/domain/repository"
	"maternity-dashboard/internal/infrastructure/cache"
	"maternity-dashboard/internal/infrastructure/database"
	"maternity-dashboard/internal/infrastructure/seed"
	"maternity-dashboard/internal/repository"
	"maternity-dashboard/internal/service"
	"maternity-dashboard/internal/usecase"
	"maternity-dashboard/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	Log         *logrus.Logger
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// repositories is the entity store selected by STORE_DRIVER
type repositories struct {
	user        domainRepo.UserRepository
	policy      domainRepo.PolicyRepository
	claim       domainRepo.ClaimRepository
	transaction domainRepo.TransactionRepository
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Load configuration
	loader := config.NewLoader(".env")
	cfg, err := loader.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg

	// Setup logger
	log, err := setupLogger(cfg.Log)
	if err != nil {
		return nil, err
	}
	app.Log = log
	loader.WatchLogLevel(log)
	log.Info("Configuration loaded successfully")

	// Initialize entity store
	repos, err := app.initializeStore(cfg)
	if err != nil {
		app.Close()
		return nil, err
	}

	if cfg.Store.SeedSample {
		seeder := seed.NewSeeder(log, repos.user, repos.policy, repos.claim, repos.transaction)
		if err := seeder.Run(context.Background()); err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to seed sample data: %w", err)
		}
	}

	// Initialize dashboard cache
	dashboardCache := service.NewNoopDashboardCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
		app.RedisClient = redisClient
		dashboardCache = service.NewRedisDashboardCache(redisClient, log, cfg.Cache.DashboardTTL)
		log.Info("Redis connected successfully")
	}

	// Initialize all layers
	app.Server = initializeServer(cfg, log, repos, dashboardCache)

	return app, nil
}

// setupLogger configures a JSON logrus logger at the configured level
func setupLogger(cfg config.LogConfig) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.Level, err)
	}

	log := logrus.StandardLogger()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stdout)
	log.SetLevel(level)
	return log, nil
}

// initializeStore builds the in-memory store, or connects and migrates Postgres
func (app *App) initializeStore(cfg *config.Config) (*repositories, error) {
	if cfg.Store.Driver == config.StoreDriverMemory {
		app.Log.Info("Using in-memory entity store")
		return &repositories{
			user:        repository.NewMemoryUserRepository(),
			policy:      repository.NewMemoryPolicyRepository(),
			claim:       repository.NewMemoryClaimRepository(),
			transaction: repository.NewMemoryTransactionRepository(),
		}, nil
	}

	if err := database.Migrate(database.MigrationURL(cfg.DB), app.Log); err != nil {
		return nil, err
	}

	db, err := database.NewPostgresConnection(cfg.DB, app.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	app.Log.Info("Database connected successfully")

	return &repositories{
		user:        repository.NewUserRepository(db),
		policy:      repository.NewPolicyRepository(db),
		claim:       repository.NewClaimRepository(db),
		transaction: repository.NewTransactionRepository(db),
	}, nil
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, log *logrus.Logger, repos *repositories, dashboardCache service.DashboardCache) *http.Server {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize services
	ledgerService := service.NewLedgerService(log, repos.transaction)

	// Initialize usecases
	claimUsecase := usecase.NewClaimUsecase(log, customValidator, repos.claim, repos.policy, ledgerService, dashboardCache)
	dashboardUsecase := usecase.NewDashboardUsecase(log, repos.user, repos.policy, repos.claim, repos.transaction, dashboardCache)
	transactionUsecase := usecase.NewTransactionUsecase(log, repos.transaction)
	uploadUsecase := usecase.NewUploadUsecase(log, cfg.Upload.BaseURL)

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardUsecase)
	claimHandler := handler.NewClaimHandler(claimUsecase)
	transactionHandler := handler.NewTransactionHandler(transactionUsecase)
	uploadHandler := handler.NewUploadHandler(uploadUsecase, cfg.Upload.MaxBytes)

	// Initialize middleware
	loggingMiddleware := middleware.NewLoggingMiddleware(log)
	corsMiddleware := middleware.NewCORSMiddleware()

	// Initialize router
	router := deliveryHttp.NewRouter(dashboardHandler, claimHandler, transactionHandler, uploadHandler, loggingMiddleware, corsMiddleware)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s, store: %s", app.Config.App.Env, app.Config.Store.Driver)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			app.Log.Fatalf("Failed to start server: %v", err)
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

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
	}

	// Close connections
	app.Close()

	app.Log.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
