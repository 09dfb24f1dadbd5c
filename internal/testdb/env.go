package testdb

import (
	"log/slog"
	"os"

	"github.com/phrazzld/travel-blog-api/internal/redact"
)

// Environment variables read by this package.
const (
	EnvCI            = "CI"
	EnvGitHubActions = "GITHUB_ACTIONS"
	EnvGitLabCI      = "GITLAB_CI"
	EnvJenkinsURL    = "JENKINS_URL"
	EnvCircleCI      = "CIRCLECI"

	EnvPostgresTestURL = "TRAVELBLOG_TEST_POSTGRES_URL"
	EnvDatabaseURL     = "DATABASE_URL"
	EnvMongoTestURL    = "TRAVELBLOG_TEST_MONGODB_URL"
	EnvMongoLegacyURL  = "MONGODB_TEST_URL"
)

// Lookup order per backend; the first entry is the preferred name.
var (
	postgresURLVars = []string{EnvPostgresTestURL, EnvDatabaseURL}
	mongoURLVars    = []string{EnvMongoTestURL, EnvMongoLegacyURL}
)

// IsCI reports whether the process runs under a known CI provider.
func IsCI() bool {
	for _, name := range []string{EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI} {
		if os.Getenv(name) != "" {
			return true
		}
	}
	return false
}

// GetEnvWithFallbacks returns the value of the first non-empty variable in
// names, or "" when none is set. Using a fallback name logs a warning with
// the value redacted.
func GetEnvWithFallbacks(names []string, logger *slog.Logger) string {
	for i, name := range names {
		val := os.Getenv(name)
		if val == "" {
			continue
		}
		if i > 0 && logger != nil {
			logger.Warn("using fallback environment variable",
				slog.String("used_var", name),
				slog.String("preferred_var", names[0]),
				slog.String("value", redact.String(val)))
		}
		return val
	}
	return ""
}
