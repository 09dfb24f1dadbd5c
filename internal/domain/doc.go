// Package domain contains the core entities of the travel blog: posts,
// wishlist items and comments. All three are open JSON documents; the package
// only knows about the handful of fields the API filters or ranks on, plus the
// identifier format shared by every store backend.
package domain
