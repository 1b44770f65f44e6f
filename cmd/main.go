package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/mysql"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/promco/backend/docs"
	"github.com/promco/backend/internal/auth/middleware"
	"github.com/promco/backend/internal/auth/service"
	"github.com/promco/backend/internal/config"
	"github.com/promco/backend/internal/handlers"
	"github.com/promco/backend/internal/logger"
	"github.com/promco/backend/internal/repositories"
	"github.com/promco/backend/internal/router"
	"github.com/promco/backend/internal/services"
	"go.uber.org/zap"
)

// @title Promco Maintenance API
// @version 1.0
// @description Authentication, user administration and master data for the Promco maintenance backend

// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v\n", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logging.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v\n", err)
	}
	defer logger.Sync()

	logger.Logger.Info("Starting Promco backend",
		zap.String("env", cfg.App.Env),
		zap.Bool("dev_mode", cfg.App.DevMode),
	)

	// Initialize token generator and password hasher
	tokenGenerator, err := service.NewTokenGenerator(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenExpiry)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize token generator", zap.Error(err))
	}
	hasher, err := service.NewPasswordHasher(cfg.Auth.BcryptCost)
	if err != nil {
		logger.Logger.Fatal("Failed to initialize password hasher", zap.Error(err))
	}

	// Initialize repositories
	var (
		userRepo      services.UserRepository
		machineRepo   services.MachineRepository
		recordRepo    services.MachineRecordRepository
		parameterRepo services.ParameterRepository
	)
	if cfg.App.DevMode {
		logger.Logger.Warn("Development mode: using in-memory stores with fixture data")

		devUsers, err := repositories.DevUsers(hasher.Hash)
		if err != nil {
			logger.Logger.Fatal("Failed to prepare fixture users", zap.Error(err))
		}
		userRepo = repositories.NewMemoryUserRepository(logger.Logger, devUsers...)
		machineRepo = repositories.NewMemoryMachineRepository(repositories.DevMachines()...)
		recordRepo = repositories.NewMemoryMachineRecordRepository(repositories.DevMaintenanceRecords(), repositories.DevFaults())
		parameterRepo = repositories.NewMemoryParameterRepository(repositories.DevParameters(), repositories.DevQualifiedValues())
	} else {
		db, err := connectDB(cfg.DSN())
		if err != nil {
			logger.Logger.Fatal("Failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := runMigrations(db); err != nil {
			logger.Logger.Fatal("Failed to run migrations", zap.Error(err))
		}

		userRepo = repositories.NewUserRepository(db, logger.Logger, cfg.Database.QueryTimeout)
		machineRepo = repositories.NewMachineRepository(db, logger.Logger, cfg.Database.QueryTimeout)
		recordRepo = repositories.NewMachineRecordRepository(db, logger.Logger, cfg.Database.QueryTimeout)
		parameterRepo = repositories.NewParameterRepository(db, logger.Logger, cfg.Database.QueryTimeout)
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, hasher, tokenGenerator, logger.Logger)
	userService := services.NewUserService(userRepo, hasher, logger.Logger)
	machineService := services.NewMachineService(machineRepo, recordRepo, logger.Logger)
	parameterService := services.NewParameterService(parameterRepo, logger.Logger)

	if cfg.Admin.Email != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := authService.EnsureAdmin(ctx, cfg.Admin.Username, cfg.Admin.Email, cfg.Admin.Password)
		cancel()
		if err != nil {
			logger.Logger.Fatal("Failed to bootstrap admin account", zap.Error(err))
		}
	}

	// Initialize gate and handlers
	gate := middleware.NewGate(tokenGenerator, logger.Logger)

	r := router.New(cfg, gate, router.Handlers{
		Health:     handlers.NewHealthHandler(logger.Logger),
		Auth:       handlers.NewAuthHandler(authService, gate, logger.Logger, cfg.RateLimit.Login),
		Users:      handlers.NewUsersHandler(userService, gate, logger.Logger),
		Machines:   handlers.NewMachinesHandler(machineService, gate, logger.Logger),
		Parameters: handlers.NewParametersHandler(parameterService, gate, logger.Logger),
	}, logger.Logger)

	// Start server
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Logger.Info("Server starting", zap.Int("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Logger.Info("Shutting down server...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Logger.Info("Server exited")
}

// connectDB connects to the database
func connectDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB) error {
	driver, err := mysql.WithInstance(db, &mysql.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	// Resolve migrations relative to the working directory or its parent when running from cmd
	migrationPath := "file://migrations"
	if _, err := os.Stat("migrations"); os.IsNotExist(err) {
		if _, err := os.Stat("../migrations"); err == nil {
			migrationPath = "file://../migrations"
		}
	}

	m, err := migrate.NewWithDatabaseInstance(migrationPath, "mysql", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
