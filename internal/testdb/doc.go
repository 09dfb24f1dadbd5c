// Package testdb locates the databases used by integration tests.
//
// Tests ask for a URL through PostgresURL or MongoURL. When no URL is
// configured the test is skipped locally, but fails in CI so a misconfigured
// pipeline cannot silently pass.
package testdb
