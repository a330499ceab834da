package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config holds all application configuration. It is built once at startup
// and only read afterwards.
type Config struct {
	// Server configuration
	Port     string `validate:"required,numeric"`
	BasePath string `validate:"required,startswith=/,endswith=/"`
	MediaURL string `validate:"required,endswith=/"`
	SiteURL  string `validate:"required,url"`

	// Database configuration
	DBType            string `validate:"oneof=mysql mariadb postgres postgresql sqlite sqlite-pure sqlserver mssql"`
	DBHost            string
	DBPort            string
	DBDatabase        string `validate:"required"`
	DBUser            string
	DBPassword        string
	DBConnectionLimit int `validate:"min=1"`

	// Authorizer configuration, optional as a pair
	AuthzURL      string `validate:"required_with=AuthzClientID"`
	AuthzClientID string `validate:"required_with=AuthzURL"`

	// CORS origins; empty disables the middleware
	CORSAllowedOrigins []string `validate:"dive,required"`

	// Logging
	LogLevel  string `validate:"oneof=trace debug info warn error"`
	LogFormat string `validate:"oneof=json console"`
}

var validate = validator.New()

// Load loads configuration from environment variables
func Load() (*Config, error) {
	basePath := normalizeBasePath(getEnv("BASE_PATH", "/"))
	dbType := getEnv("DB_TYPE", "sqlite")

	cfg := &Config{
		Port:               getEnv("PORT", "3000"),
		BasePath:           basePath,
		MediaURL:           getEnv("MEDIA_URL", basePath+"media/"),
		SiteURL:            getEnv("SITE_URL", "http://localhost:3000"),
		DBType:             dbType,
		DBHost:             getEnv("DB_HOST", "localhost"),
		DBPort:             getEnv("DB_PORT", defaultDBPort(dbType)),
		DBDatabase:         getEnv("DB_DATABASE", defaultDBDatabase(dbType)),
		DBUser:             getEnv("DB_USER", ""),
		DBPassword:         getEnv("DB_PASSWORD", ""),
		DBConnectionLimit:  getEnvAsInt("DB_CONNECTION_LIMIT", 5),
		AuthzURL:           getEnv("AUTHZ_URL", ""),
		AuthzClientID:      getEnv("AUTHZ_CLIENT_ID", ""),
		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		LogLevel:           strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:          strings.ToLower(getEnv("LOG_FORMAT", "json")),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the configuration for missing or malformed values
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// AuthorizerEnabled reports whether session validation is configured
func (c *Config) AuthorizerEnabled() bool {
	return c.AuthzURL != "" && c.AuthzClientID != ""
}

// APIPath joins the base path with the api prefix and the given route
func (c *Config) APIPath(route string) string {
	return c.BasePath + "api" + route
}

func normalizeBasePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if !strings.HasSuffix(p, "/") {
		p += "/"
	}
	return p
}

func defaultDBPort(dbType string) string {
	switch dbType {
	case "postgres", "postgresql":
		return "5432"
	case "sqlserver", "mssql":
		return "1433"
	default:
		return "3306"
	}
}

// defaultDBDatabase names a local file for the sqlite drivers; servers need DB_DATABASE
func defaultDBDatabase(dbType string) string {
	switch dbType {
	case "sqlite", "sqlite-pure":
		return "cheminova.db"
	default:
		return ""
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated environment variable, dropping blanks
func getEnvAsList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}
