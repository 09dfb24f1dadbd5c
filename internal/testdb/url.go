package testdb

import (
	"log/slog"
	"strings"
	"testing"
)

// PostgresURL returns the PostgreSQL URL for integration tests.
func PostgresURL(t testing.TB) string {
	t.Helper()
	return requireURL(t, "postgres", postgresURLVars)
}

// MongoURL returns the MongoDB URL for integration tests.
func MongoURL(t testing.TB) string {
	t.Helper()
	return requireURL(t, "mongodb", mongoURLVars)
}

func requireURL(t testing.TB, backend string, names []string) string {
	t.Helper()

	url := GetEnvWithFallbacks(names, slog.Default().With(slog.String("backend", backend)))
	if url != "" {
		return url
	}

	msg := "no " + backend + " test database configured; set one of " + strings.Join(names, ", ")
	if IsCI() {
		t.Fatal(msg)
	}
	t.Skip(msg)
	return ""
}
