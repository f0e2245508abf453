package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}

	Server struct {
		Port    string
		GinMode string
	}

	Storage struct {
		Endpoint  string
		AccessKey string
		SecretKey string
		Bucket    string
		Secure    bool
		// PublicBaseURL is the externally reachable prefix for public object
		// URLs, e.g. https://cdn.example.com/photos.
		PublicBaseURL string
	}

	Auth struct {
		JWTSecret string
		TokenTTL  time.Duration
	}

	Upload struct {
		MaxFileSize int64
	}

	Archive struct {
		PageSize int
	}

	List struct {
		PhotoCap     int
		ReportingCap int
	}

	CORS struct {
		AllowOrigins string
		AllowMethods string
		AllowHeaders string
	}
}

// Load loads configuration from environment variables
func Load() *Config {
	_ = godotenv.Load()

	config := &Config{}

	config.DB.Host = getEnv("DB_HOST", "localhost")
	config.DB.Port = getEnv("DB_PORT", "5432")
	config.DB.User = getEnv("DB_USER", "portal")
	config.DB.Password = getEnv("DB_PASSWORD", "portal_password")
	config.DB.Name = getEnv("DB_NAME", "portal_db")
	config.DB.SSLMode = getEnv("DB_SSLMODE", "disable")

	config.Server.Port = getEnv("PORT", "8080")
	config.Server.GinMode = getEnv("GIN_MODE", "debug")

	config.Storage.Endpoint = getEnv("STORAGE_ENDPOINT", "localhost:9000")
	config.Storage.AccessKey = getEnv("STORAGE_ACCESS_KEY", "minioadmin")
	config.Storage.SecretKey = getEnv("STORAGE_SECRET_KEY", "minioadmin")
	config.Storage.Bucket = getEnv("STORAGE_BUCKET", "photos")
	config.Storage.Secure = getEnvAsBool("STORAGE_SECURE", false)
	config.Storage.PublicBaseURL = getEnv("STORAGE_PUBLIC_BASE_URL", "")

	config.Auth.JWTSecret = getEnv("JWT_SECRET", "dev-secret-change-me")
	config.Auth.TokenTTL = getEnvAsDuration("TOKEN_TTL", 12*time.Hour)

	config.Upload.MaxFileSize = getEnvAsInt64("MAX_FILE_SIZE", 10485760)

	config.Archive.PageSize = getEnvAsInt("ARCHIVE_PAGE_SIZE", 100)

	config.List.PhotoCap = getEnvAsInt("PHOTO_LIST_CAP", 200)
	config.List.ReportingCap = getEnvAsInt("REPORTING_LIST_CAP", 100)

	config.CORS.AllowOrigins = getEnv("CORS_ALLOW_ORIGINS", "*")
	config.CORS.AllowMethods = getEnv("CORS_ALLOW_METHODS", "GET,POST,PUT,PATCH,DELETE,HEAD,OPTIONS")
	config.CORS.AllowHeaders = getEnv("CORS_ALLOW_HEADERS", "Origin,Content-Length,Content-Type,Authorization")

	return config
}

// GetDatabaseURL returns the database connection URL
func (c *Config) GetDatabaseURL() string {
	return "postgres://" + c.DB.User + ":" + c.DB.Password + "@" + c.DB.Host + ":" + c.DB.Port + "/" + c.DB.Name + "?sslmode=" + c.DB.SSLMode
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as int or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsInt64 gets an environment variable as int64 or returns a default value
func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsBool gets an environment variable as bool or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvAsDuration gets an environment variable as duration or returns a default value
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
