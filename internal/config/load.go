package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for every environment variable read by Load.
const EnvPrefix = "TRAVELBLOG"

// atlasHost is the Atlas cluster used when only DB_USER and DB_PASS are set.
const atlasHost = "cluster0.zswhz.mongodb.net"

// Load configuration from environment variables and optionally config files.
// Environment variables take precedence over values from config files.
// A .env file in the working directory is loaded first when present; it
// never overrides variables that are already set.
// Returns a populated Config struct or an error if loading/validation fails.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	bindLegacyEnv(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if cfg.Database.URL == "" {
		cfg.Database.URL = atlasURL(os.Getenv("DB_USER"), os.Getenv("DB_PASS"))
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", EnvironmentDevelopment)
	v.SetDefault("server.cors_allowed_origins", []string{"http://localhost:5173"})
	v.SetDefault("server.rate_limit_rps", 0)
	v.SetDefault("server.rate_limit_burst", 20)

	v.SetDefault("database.driver", DriverMongo)
	v.SetDefault("database.url", "")
	v.SetDefault("database.name", "Blogs-collection")
	v.SetDefault("database.operation_timeout_seconds", 10)

	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("auth.token_lifetime_minutes", 60)
}

// bindLegacyEnv lets the unprefixed variables used by existing deployments
// (PORT, ACCESS_TOKEN_SECRET, NODE_ENV) fill in keys that the prefixed
// variables leave unset.
func bindLegacyEnv(v *viper.Viper) {
	legacy := map[string]string{
		"server.port":     "PORT",
		"auth.jwt_secret": "ACCESS_TOKEN_SECRET",
	}
	for key, env := range legacy {
		if _, set := os.LookupEnv(EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))); set {
			continue
		}
		if val := os.Getenv(env); val != "" {
			v.Set(key, val)
		}
	}

	if _, set := os.LookupEnv(EnvPrefix + "_SERVER_ENVIRONMENT"); !set && os.Getenv("NODE_ENV") == EnvironmentProduction {
		v.Set("server.environment", EnvironmentProduction)
	}
}

// atlasURL builds the MongoDB SRV connection string from separate
// credentials. Returns "" when either part is missing so validation reports
// the missing URL.
func atlasURL(user, pass string) string {
	if user == "" || pass == "" {
		return ""
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(user, pass),
		Host:     atlasHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority&appName=Cluster0",
	}
	return u.String()
}
