// Package testutils provides helpers shared by handler and router tests:
// a log-capturing slog handler and assertions on the JSON error body.
package testutils
