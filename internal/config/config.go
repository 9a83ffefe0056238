// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Environment string
	Server      ServerConfig
	Backend     BackendConfig
	Auth        AuthConfig
	Log         LogConfig
	I18n        I18nConfig
	CORS        CORSConfig
	RateLimit   RateLimitConfig
}

type ServerConfig struct {
	Port         string
	Host         string
	ReadTimeout  int
	WriteTimeout int
	IdleTimeout  int
}

// BackendConfig points at the catalog API that owns every entity.
type BackendConfig struct {
	BaseURL   string
	Timeout   int     // in seconds
	RateLimit float64 // requests per second, 0 disables
	RateBurst int
}

// AuthConfig controls how bearer tokens issued by the backend are checked. Without a secret
// only their shape and expiry are read.
type AuthConfig struct {
	JWTSecret      string
	WorkspaceIdle  int // in minutes
	WorkspaceSweep int // in minutes
}

type LogConfig struct {
	Level      string
	Format     string // text or json
	Output     string // stdout, file or both
	Path       string
	MaxSize    int // in MB
	MaxBackups int
	MaxAge     int // in days
	Compress   bool
}

type I18nConfig struct {
	DefaultLocale string
}

type CORSConfig struct {
	AllowOrigins []string
}

type RateLimitConfig struct {
	General int // requests per second
	Auth    int // requests per minute
	Upload  int // requests per minute
}

func Load() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	config := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8080"),
			Host:         getEnv("SERVER_HOST", "localhost"),
			ReadTimeout:  getEnvAsInt("SERVER_READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:  getEnvAsInt("SERVER_IDLE_TIMEOUT", 60),
		},
		Backend: BackendConfig{
			BaseURL:   strings.TrimRight(getEnv("BACKEND_BASE_URL", "http://localhost:3000"), "/"),
			Timeout:   getEnvAsInt("BACKEND_TIMEOUT", 20),
			RateLimit: getEnvAsFloat("BACKEND_RATE_LIMIT", 0),
			RateBurst: getEnvAsInt("BACKEND_RATE_BURST", 5),
		},
		Auth: AuthConfig{
			JWTSecret:      getEnv("BACKEND_JWT_SECRET", ""),
			WorkspaceIdle:  getEnvAsInt("WORKSPACE_IDLE_MINUTES", 60),
			WorkspaceSweep: getEnvAsInt("WORKSPACE_SWEEP_MINUTES", 10),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Format:     getEnv("LOG_FORMAT", "text"),
			Output:     getEnv("LOG_OUTPUT", "stdout"),
			Path:       getEnv("LOG_PATH", "./logs"),
			MaxSize:    getEnvAsInt("LOG_MAX_SIZE", 100),
			MaxBackups: getEnvAsInt("LOG_MAX_BACKUPS", 5),
			MaxAge:     getEnvAsInt("LOG_MAX_AGE", 28),
			Compress:   getEnvAsBool("LOG_COMPRESS", true),
		},
		I18n: I18nConfig{
			DefaultLocale: getEnv("DEFAULT_LOCALE", "fr"),
		},
		CORS: CORSConfig{
			AllowOrigins: getEnvAsSlice("CORS_ALLOW_ORIGINS", []string{"http://localhost:3000"}),
		},
		RateLimit: RateLimitConfig{
			General: getEnvAsInt("RATE_LIMIT_GENERAL", 10),
			Auth:    getEnvAsInt("RATE_LIMIT_AUTH", 5),
			Upload:  getEnvAsInt("RATE_LIMIT_UPLOAD", 10),
		},
	}

	return config, config.Validate()
}

func (c *Config) Validate() error {
	if c.Environment == "production" && strings.HasPrefix(c.Backend.BaseURL, "http://localhost") {
		return fmt.Errorf("BACKEND_BASE_URL must point at the catalog API in production")
	}

	if c.Backend.BaseURL == "" {
		return fmt.Errorf("BACKEND_BASE_URL is required")
	}

	switch c.Log.Output {
	case "stdout", "file", "both":
	default:
		return fmt.Errorf("LOG_OUTPUT must be stdout, file or both, got %q", c.Log.Output)
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.ToLower(value)); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvAsSlice(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
