// Package mocks provides centralized mock implementations for testing.
//
// Two flavours are available:
//
//   - testify mocks (MockPostStore, MockWishlistStore, MockCommentStore)
//     for tests that assert on exact calls and arguments
//   - in-memory stores (NewMemoryStores) for tests that exercise whole
//     request flows and only care about observable results
//
// MockJWTService follows the function-field style: set the Fn fields for
// custom behaviour or the plain fields for fixed results.
package mocks
