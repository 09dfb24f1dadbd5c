// Package store defines interfaces for document persistence.
// These interfaces hide whether posts, wishlist items and comments live in
// MongoDB collections or PostgreSQL JSONB tables, so handlers and services
// depend only on the operations the API needs: filtered scans, point reads,
// inserts, upserts and deletes.
package store
