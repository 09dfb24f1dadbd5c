// Package mongodb implements the store interfaces on MongoDB using the
// official Go driver. Posts live in the "Blogs" collection, wishlist items
// in "wishlist" and comments in "comments", all in one logical database.
//
// Filter documents are built by small pure functions so the query shape
// can be tested without a server; the stores themselves are tested against
// the driver's mock deployment.
package mongodb
