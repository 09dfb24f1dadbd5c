// Package service contains the application-level operations behind the
// HTTP API: listing, ranking and writing posts, wishlist access gated by
// ownership, and comments.
//
// Services depend on the store interfaces only, never on a concrete
// backend. They translate store failures into errors the API layer maps to
// status codes with errors.Is.
package service
