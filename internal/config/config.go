// Package config provides configuration for the application
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Environment names
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config holds all configuration for the application
type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	Server    ServerConfig
	Logging   LoggingConfig
	CORS      CORSConfig
	Auth      AuthConfig
	RateLimit RateLimitConfig
	Admin     AdminConfig
}

// AppConfig holds the runtime mode
type AppConfig struct {
	Env string
	// DevMode selects the in-memory stores seeded with fixtures
	DevMode bool
}

// DatabaseConfig holds database connection settings
type DatabaseConfig struct {
	Host         string
	Port         int
	User         string
	Password     string
	DBName       string
	QueryTimeout time.Duration
}

// ServerConfig holds server settings
type ServerConfig struct {
	Port int
}

// LoggingConfig holds logging settings
type LoggingConfig struct {
	Level string
}

// CORSConfig holds CORS settings
type CORSConfig struct {
	AllowedOrigins []string
}

// AuthConfig holds token settings
type AuthConfig struct {
	JWTSecret         string
	AccessTokenExpiry time.Duration
	BcryptCost        int
}

// AdminConfig describes the account created at startup when it does not exist yet.
// An empty Email disables the bootstrap.
type AdminConfig struct {
	Username string
	Email    string
	Password string
}

// RateLimitConfig holds per-IP request limits per minute. Zero disables a limit.
type RateLimitConfig struct {
	Global int
	Login  int
}

// Load reads configuration from environment variables.
// A .env file in the working directory is loaded first when present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := &Config{}
	var err error

	// App configuration
	cfg.App.Env = strings.ToLower(os.Getenv("APP_ENV"))
	if cfg.App.Env == "" {
		cfg.App.Env = EnvDevelopment
	}
	if cfg.App.DevMode, err = getBool("DEV_MODE", false); err != nil {
		return nil, err
	}
	if cfg.App.DevMode && cfg.App.Env == EnvProduction {
		return nil, fmt.Errorf("DEV_MODE must not be enabled when APP_ENV is %s", EnvProduction)
	}

	// Auth configuration
	cfg.Auth.JWTSecret = os.Getenv("JWT_SECRET")
	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.Auth.AccessTokenExpiry, err = getDuration("JWT_ACCESS_TOKEN_EXPIRY", 24*time.Hour); err != nil {
		return nil, err
	}
	if cfg.Auth.BcryptCost, err = getInt("BCRYPT_COST", 10); err != nil {
		return nil, err
	}

	// Database configuration, not needed for the in-memory stores
	if !cfg.App.DevMode {
		if err := loadDatabase(&cfg.Database); err != nil {
			return nil, err
		}
	}
	if cfg.Database.QueryTimeout, err = getDuration("DB_QUERY_TIMEOUT", 5*time.Second); err != nil {
		return nil, err
	}

	// Server configuration
	if cfg.Server.Port, err = getInt("SERVER_PORT", 8080); err != nil {
		return nil, err
	}

	// Logging configuration
	cfg.Logging.Level = os.Getenv("LOG_LEVEL")
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}

	cfg.CORS.AllowedOrigins = parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS"))

	// Rate limits, zero turns a limit off
	if cfg.RateLimit.Global, err = getLimit("RATE_LIMIT", 100); err != nil {
		return nil, err
	}
	if cfg.RateLimit.Login, err = getLimit("LOGIN_RATE_LIMIT", 10); err != nil {
		return nil, err
	}

	// Admin bootstrap
	cfg.Admin.Email = os.Getenv("ADMIN_EMAIL")
	cfg.Admin.Password = os.Getenv("ADMIN_PASSWORD")
	cfg.Admin.Username = os.Getenv("ADMIN_USERNAME")
	if cfg.Admin.Username == "" {
		cfg.Admin.Username = "admin"
	}
	if cfg.Admin.Email != "" && cfg.Admin.Password == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD is required when ADMIN_EMAIL is set")
	}

	return cfg, nil
}

func loadDatabase(db *DatabaseConfig) error {
	db.Host = os.Getenv("DB_HOST")
	if db.Host == "" {
		return fmt.Errorf("DB_HOST is required")
	}

	dbPortStr := os.Getenv("DB_PORT")
	if dbPortStr == "" {
		return fmt.Errorf("DB_PORT is required")
	}
	port, err := strconv.Atoi(dbPortStr)
	if err != nil {
		return fmt.Errorf("invalid DB_PORT: %w", err)
	}
	db.Port = port

	db.User = os.Getenv("DB_USER")
	if db.User == "" {
		return fmt.Errorf("DB_USER is required")
	}

	db.Password = os.Getenv("DB_PASSWORD")
	if db.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}

	db.DBName = os.Getenv("DB_NAME")
	if db.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}

	return nil
}

// parseOrigins splits a comma-separated list; an empty list allows all origins
func parseOrigins(raw string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getInt(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return v, nil
}

// getLimit is getInt that also accepts zero
func getLimit(key string, def int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v < 0 {
		return 0, fmt.Errorf("invalid %s: must not be negative", key)
	}
	return v, nil
}

func getBool(key string, def bool) (bool, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return v, nil
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return def, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", key)
	}
	return v, nil
}

// DSN returns the database connection string.
// clientFoundRows makes UPDATE report matched rows so unchanged updates are not mistaken for misses.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?parseTime=true&charset=utf8mb4&clientFoundRows=true",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
	)
}
