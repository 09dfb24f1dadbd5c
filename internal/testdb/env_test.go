package testdb

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		EnvCI, EnvGitHubActions, EnvGitLabCI, EnvJenkinsURL, EnvCircleCI,
		EnvPostgresTestURL, EnvDatabaseURL, EnvMongoTestURL, EnvMongoLegacyURL,
	} {
		t.Setenv(name, "")
	}
}

func TestIsCI(t *testing.T) {
	clearEnv(t)
	assert.False(t, IsCI())

	t.Setenv(EnvGitHubActions, "true")
	assert.True(t, IsCI())
}

func TestGetEnvWithFallbacks(t *testing.T) {
	t.Run("preferred name wins", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvPostgresTestURL, "postgres://a")
		t.Setenv(EnvDatabaseURL, "postgres://b")

		assert.Equal(t, "postgres://a", GetEnvWithFallbacks(postgresURLVars, nil))
	})

	t.Run("fallback is logged redacted", func(t *testing.T) {
		clearEnv(t)
		t.Setenv(EnvDatabaseURL, "postgres://user:hunter2@db:5432/blog")

		var buf bytes.Buffer
		logger := slog.New(slog.NewJSONHandler(&buf, nil))

		got := GetEnvWithFallbacks(postgresURLVars, logger)
		assert.Equal(t, "postgres://user:hunter2@db:5432/blog", got)
		require.Contains(t, buf.String(), EnvDatabaseURL)
		assert.NotContains(t, buf.String(), "hunter2")
	})

	t.Run("nothing set", func(t *testing.T) {
		clearEnv(t)
		assert.Empty(t, GetEnvWithFallbacks(mongoURLVars, nil))
	})
}

func TestMongoURL(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvMongoLegacyURL, "mongodb://localhost:27017")

	assert.Equal(t, "mongodb://localhost:27017", MongoURL(t))
}
