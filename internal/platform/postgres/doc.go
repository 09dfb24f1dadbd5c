// Package postgres provides PostgreSQL-backed implementations of the
// document stores defined in internal/store.
//
// Each collection is a table of (id, doc) rows where doc is a JSONB object.
// Identifiers are the same 24-character ObjectID hex strings the MongoDB
// backend uses, so clients cannot tell the backends apart. The schema is
// managed by goose migrations embedded in the binary.
package postgres
