package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"clinic-management/config"
	"clinic-management/internal/delivery/cli"
	deliveryHttp "clinic-management/internal/delivery/http"
	"clinic-management/internal/delivery/http/handler"
	"clinic-management/internal/delivery/http/middleware"
	"clinic-management/internal/infrastructure/cache"
	"clinic-management/internal/infrastructure/database"
	"clinic-management/internal/repository"
	"clinic-management/internal/service"
	"clinic-management/internal/usecase"
	"clinic-management/pkg/validator"

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

	usecases cli.Usecases
}

var _ cli.Runtime = (*App)(nil)

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	log := setupLogger()
	app.Log = log

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	configureLogger(log, cfg)
	log.Debug("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Initialize Redis; the list cache is optional
	listCache := service.NewNoopListCache()
	if cfg.Redis.Enabled() {
		redisClient, err := cache.NewRedisClient(cfg.Redis, log)
		if err != nil {
			log.Warnf("List cache disabled: %v", err)
		} else {
			app.RedisClient = redisClient
			listCache = service.NewRedisListCache(redisClient, log, cfg.Redis.TTL)
		}
	}

	// Initialize all layers
	app.usecases = initializeUsecases(db, log, listCache)
	server, err := initializeServer(cfg, db, log, app.usecases)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Server = server

	return app, nil
}

// setupLogger configures a JSON logger writing to stderr
func setupLogger() *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)
	return log
}

// configureLogger applies the configured level; development uses readable text output
func configureLogger(log *logrus.Logger, cfg *config.Config) {
	if cfg.IsDev() {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	setLogLevel(log, cfg.Log.Level)
}

func setLogLevel(log *logrus.Logger, level string) {
	parsed, err := logrus.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		log.Warnf("Unknown LOG_LEVEL %q, using info", level)
		return
	}
	log.SetLevel(parsed)
}

func initializeUsecases(db *gorm.DB, log *logrus.Logger, listCache service.ListCache) cli.Usecases {
	// Initialize repositories
	patientRepo := repository.NewPatientRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()

	// Initialize usecases
	return cli.Usecases{
		Patients:     usecase.NewPatientUsecase(db, log, patientRepo, appointmentRepo, listCache),
		Doctors:      usecase.NewDoctorUsecase(db, log, doctorRepo, appointmentRepo, listCache),
		Appointments: usecase.NewAppointmentUsecase(db, log, appointmentRepo, patientRepo, doctorRepo, listCache),
	}
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, log *logrus.Logger, usecases cli.Usecases) (*http.Server, error) {
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize handlers
	patientHandler := handler.NewPatientHandler(usecases.Patients, customValidator)
	doctorHandler := handler.NewDoctorHandler(usecases.Doctors, customValidator)
	appointmentHandler := handler.NewAppointmentHandler(usecases.Appointments, customValidator)

	// Initialize middleware
	requestLogger := middleware.NewRequestLogger(log)
	corsMiddleware := middleware.NewCORSMiddleware(cfg.App.CORSOrigin)

	// Initialize router
	router := deliveryHttp.NewRouter(patientHandler, doctorHandler, appointmentHandler, requestLogger, corsMiddleware, sqlDB)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}, nil
}

func (app *App) Usecases() cli.Usecases {
	return app.usecases
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully
func (app *App) Serve(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Start server in goroutine
	go func() {
		app.Log.Infof("Server starting on port %s", app.Config.App.Port)
		app.Log.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	app.Log.Info("Shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(shutdownCtx); err != nil {
		app.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	app.Log.Info("Server shutdown complete")
	return nil
}

func (app *App) Migrate(direction string) (uint, error) {
	version, err := database.Migrate(app.DB, direction)
	if err != nil {
		return 0, err
	}
	app.Log.Infof("Migration %s complete, schema version %d", direction, version)
	return version, nil
}

func (app *App) Ping(ctx context.Context) error {
	sqlDB, err := app.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// Close closes all connections (database, redis)
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
