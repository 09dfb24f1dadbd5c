package config

import "time"

// Deployment environments.
const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"
)

// Supported document store backends.
const (
	DriverMongo    = "mongo"
	DriverPostgres = "postgres"
)

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port               int      `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel           string   `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
	Environment        string   `mapstructure:"environment" validate:"required,oneof=development production"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
	// RateLimitRPS is the per-client request rate; 0 disables limiting.
	RateLimitRPS   float64 `mapstructure:"rate_limit_rps" validate:"gte=0"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst" validate:"gte=1"`
}

// IsProduction reports whether the server runs in production mode.
// Cookies are only marked Secure with SameSite=None in production.
func (c ServerConfig) IsProduction() bool {
	return c.Environment == EnvironmentProduction
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	Driver                  string `mapstructure:"driver" validate:"required,oneof=mongo postgres"`
	URL                     string `mapstructure:"url" validate:"required,url"`
	Name                    string `mapstructure:"name" validate:"required"`
	OperationTimeoutSeconds int    `mapstructure:"operation_timeout_seconds" validate:"gt=0"`
}

// OperationTimeout returns the per-operation deadline applied to store calls.
func (c DatabaseConfig) OperationTimeout() time.Duration {
	return time.Duration(c.OperationTimeoutSeconds) * time.Second
}

// AuthConfig contains all authentication settings.
type AuthConfig struct {
	JWTSecret            string `mapstructure:"jwt_secret" validate:"required,min=32"`
	TokenLifetimeMinutes int    `mapstructure:"token_lifetime_minutes" validate:"required,gt=0"`
}
