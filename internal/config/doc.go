// Package config handles configuration loading, parsing, and validation
// from a .env file, an optional config.yaml, and environment variables.
// It provides type-safe access to the settings the server needs while
// keeping configuration details out of the handlers and stores.
package config
